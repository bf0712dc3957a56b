// Package similarity groups stored creatives into visually duplicate
// clusters and buckets the clusters into report tiers.
package similarity

import "adwatch/internal/core/domain"

// DefaultThreshold is the largest fingerprint distance, in bits, at which
// two creatives still count as the same picture.
const DefaultThreshold = 14

// Cluster is a non-empty group of creatives. The first member is the
// representative and is the only member later candidates are compared with.
type Cluster struct {
	Members []domain.AdCreative `json:"members"`
}

// Representative returns the member that founded the cluster.
func (c Cluster) Representative() domain.AdCreative {
	return c.Members[0]
}

// Size returns the number of members.
func (c Cluster) Size() int {
	return len(c.Members)
}

// Group clusters creatives in a single greedy pass over the given order.
//
// Each creative joins the first existing cluster whose representative is
// within threshold bits of it, or founds a new cluster. Membership is never
// transitive and nothing is reassigned, so the result depends on the input
// order. Creatives without a fingerprint are skipped.
func Group(creatives []domain.AdCreative, threshold int) []Cluster {
	var clusters []Cluster
	for _, c := range creatives {
		if c.Fingerprint == nil {
			continue
		}
		joined := false
		for i := range clusters {
			rep := clusters[i].Members[0].Fingerprint
			if rep.Distance(*c.Fingerprint) <= threshold {
				clusters[i].Members = append(clusters[i].Members, c)
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, Cluster{Members: []domain.AdCreative{c}})
		}
	}
	return clusters
}
