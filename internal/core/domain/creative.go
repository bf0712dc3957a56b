package domain

import "time"

// AdCreative is one observed image ad and its lifecycle.
//
// StartDate is fixed at creation. EndDate is set the first time the
// creative is missing from its business's snapshot and is never changed
// afterwards. DurationDays follows LastSeen while the creative is active and
// is frozen once it is deactivated.
type AdCreative struct {
	ID             int64        `json:"id"`
	AdID           string       `json:"ad_id"`
	BusinessID     int64        `json:"business_id"`
	BusinessName   string       `json:"business_name,omitempty"`
	ImageURL       string       `json:"image_url,omitempty"`
	LocalPath      string       `json:"local_path,omitempty"`
	Fingerprint    *Fingerprint `json:"fingerprint,omitempty"`
	SimilarityHint int          `json:"similarity_hint"`
	StartDate      time.Time    `json:"start_date"`
	EndDate        *time.Time   `json:"end_date,omitempty"`
	DurationDays   int          `json:"duration_days"`
	Active         bool         `json:"active"`
	LastSeen       time.Time    `json:"last_seen"`
}

// HasFingerprint reports whether the creative can take part in clustering.
func (c AdCreative) HasFingerprint() bool {
	return c.Fingerprint != nil
}

// Observation is a single ad seen on the advertiser's page during one pass.
// Everything except AdID and RawStartText may be empty: the image can be
// missing or fail to download, and the similarity hint is only shown for
// some ads.
type Observation struct {
	AdID           string
	RawStartText   string
	ImageURL       string
	LocalPath      string
	Fingerprint    *Fingerprint
	SimilarityHint int
}

// Snapshot is the set of ads observed for one business in one pass, in the
// order they were found. Ad ids are expected to be unique; when they are
// not, the first observation wins.
type Snapshot []Observation

// Index returns the observations keyed by ad id, keeping the first one for
// duplicated ids.
func (s Snapshot) Index() map[string]Observation {
	idx := make(map[string]Observation, len(s))
	for _, o := range s {
		if _, ok := idx[o.AdID]; !ok {
			idx[o.AdID] = o
		}
	}
	return idx
}

// AdIDs returns the distinct ad ids in observation order.
func (s Snapshot) AdIDs() []string {
	seen := make(map[string]struct{}, len(s))
	ids := make([]string, 0, len(s))
	for _, o := range s {
		if _, ok := seen[o.AdID]; ok {
			continue
		}
		seen[o.AdID] = struct{}{}
		ids = append(ids, o.AdID)
	}
	return ids
}
