package similarity

import (
	"cmp"
	"slices"

	"adwatch/internal/core/domain"
)

// Tier size bounds.
const (
	TopMinSize = 5
	MidMinSize = 2
)

// Entry is one cluster as shown in a report: its representative and how
// many creatives it holds.
type Entry struct {
	Representative domain.AdCreative `json:"representative"`
	Size           int               `json:"size"`
}

// Tiers partitions clusters by size. Top holds clusters of at least
// TopMinSize creatives, Mid clusters of MidMinSize up to TopMinSize-1 and
// Single the one-off creatives.
type Tiers struct {
	Top    []Entry `json:"top"`
	Mid    []Entry `json:"mid"`
	Single []Entry `json:"single"`
}

// Counts is the number of clusters in each tier.
type Counts struct {
	Top    int `json:"top"`
	Mid    int `json:"mid"`
	Single int `json:"single"`
}

// Counts summarizes t.
func (t Tiers) Counts() Counts {
	return Counts{Top: len(t.Top), Mid: len(t.Mid), Single: len(t.Single)}
}

// Categorize buckets clusters into tiers. Within a tier entries are sorted
// by size, largest first; equal sizes keep the order of clusters.
func Categorize(clusters []Cluster) Tiers {
	t := Tiers{Top: []Entry{}, Mid: []Entry{}, Single: []Entry{}}
	for _, c := range clusters {
		e := Entry{Representative: c.Representative(), Size: c.Size()}
		switch {
		case e.Size >= TopMinSize:
			t.Top = append(t.Top, e)
		case e.Size >= MidMinSize:
			t.Mid = append(t.Mid, e)
		default:
			t.Single = append(t.Single, e)
		}
	}
	bySizeDesc := func(a, b Entry) int { return cmp.Compare(b.Size, a.Size) }
	slices.SortStableFunc(t.Top, bySizeDesc)
	slices.SortStableFunc(t.Mid, bySizeDesc)
	return t
}
