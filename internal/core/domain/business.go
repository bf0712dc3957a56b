package domain

// Business is a monitored advertiser. PageID is the advertiser's page
// identifier in the ad library and is unique.
type Business struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	PageID string `json:"page_id"`
}
