package port

import (
	"context"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/similarity"
)

//go:generate mockery

// ScrapeUseCase runs reconciliation passes. Both the scheduler and manual
// requests go through RunOnce.
type ScrapeUseCase interface {
	// RunOnce scrapes and reconciles every business. When a run is already
	// in progress it returns a RunSkipped summary without doing anything.
	// An error means storage could not be reached at all.
	RunOnce(ctx context.Context) (domain.RunSummary, error)
}

// ReportUseCase builds the human-facing reports.
type ReportUseCase interface {
	// UniqueReport clusters the matching creatives and buckets them by
	// cluster size.
	UniqueReport(ctx context.Context, req ReportRequest) (*Report, error)
	// FullReport lists every matching creative grouped by business,
	// duplicates included.
	FullReport(ctx context.Context, req ReportRequest) (*FullReport, error)
}

// BusinessUseCase administers the monitored businesses.
type BusinessUseCase interface {
	AddBusiness(ctx context.Context, name, pageID string) (domain.Business, error)
	DeleteBusiness(ctx context.Context, pageID string) (domain.Business, error)
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
}

// ReportRequest selects the creatives a report covers. A nil BusinessID
// means all businesses.
type ReportRequest struct {
	Period     domain.Period
	BusinessID *int64
}

// ReportStatus tells an empty report apart from one with data.
type ReportStatus string

const (
	ReportOK ReportStatus = "ok"
	// ReportNoAds means no creative matched the request.
	ReportNoAds ReportStatus = "no_ads"
	// ReportNoFingerprints means creatives matched but none could be
	// compared visually.
	ReportNoFingerprints ReportStatus = "no_fingerprints"
)

// Report is the clustered report. Tiers and Counts are only meaningful
// when Status is ReportOK.
type Report struct {
	Period       domain.Period     `json:"period"`
	PeriodLabel  string            `json:"period_label"`
	BusinessName string            `json:"business_name"`
	Status       ReportStatus      `json:"status"`
	Matched      int               `json:"matched"`
	Eligible     int               `json:"eligible"`
	Tiers        similarity.Tiers  `json:"tiers"`
	Counts       similarity.Counts `json:"counts"`
}

// FullReport lists creatives per business without deduplication.
type FullReport struct {
	Period       domain.Period   `json:"period"`
	PeriodLabel  string          `json:"period_label"`
	BusinessName string          `json:"business_name"`
	Status       ReportStatus    `json:"status"`
	Groups       []BusinessGroup `json:"groups"`
}

// BusinessGroup is one business's section of a FullReport. Batches holds
// the creatives that have a local image, split into presentation batches.
type BusinessGroup struct {
	BusinessID   int64                 `json:"business_id"`
	BusinessName string                `json:"business_name"`
	Creatives    []domain.AdCreative   `json:"creatives"`
	Batches      [][]domain.AdCreative `json:"batches"`
}
