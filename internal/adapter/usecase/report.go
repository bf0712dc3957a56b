package usecase

import (
	"context"
	"fmt"
	"time"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
	"adwatch/internal/core/similarity"
)

// BatchSize is the largest number of images in one batch of a full report.
const BatchSize = 10

const allBusinesses = "All businesses"

// ReportService builds reports from stored creatives. It only reads and may
// observe a reconciliation that is still in progress.
type ReportService struct {
	businesses port.BusinessRepository
	creatives  port.CreativeRepository
	threshold  int
	loc        *time.Location
	now        func() time.Time
}

// NewReportService creates a report service. A threshold below zero falls
// back to similarity.DefaultThreshold.
func NewReportService(businesses port.BusinessRepository, creatives port.CreativeRepository, threshold int, loc *time.Location) *ReportService {
	if threshold < 0 {
		threshold = similarity.DefaultThreshold
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{
		businesses: businesses,
		creatives:  creatives,
		threshold:  threshold,
		loc:        loc,
		now:        time.Now,
	}
}

// UniqueReport implements port.ReportUseCase.
func (s *ReportService) UniqueReport(ctx context.Context, req port.ReportRequest) (*port.Report, error) {
	today := domain.DayOf(s.now(), s.loc)
	name, err := s.businessName(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	list, err := s.creatives.List(ctx, filterFor(req, today, port.OrderStartDesc))
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}

	eligible := make([]domain.AdCreative, 0, len(list))
	for _, c := range list {
		if c.HasFingerprint() {
			eligible = append(eligible, c)
		}
	}

	tiers := similarity.Categorize(similarity.Group(eligible, s.threshold))
	rep := &port.Report{
		Period:       req.Period,
		PeriodLabel:  req.Period.Label(today),
		BusinessName: name,
		Matched:      len(list),
		Eligible:     len(eligible),
		Tiers:        tiers,
		Counts:       tiers.Counts(),
	}
	switch {
	case len(list) == 0:
		rep.Status = port.ReportNoAds
	case len(eligible) == 0:
		rep.Status = port.ReportNoFingerprints
	default:
		rep.Status = port.ReportOK
	}
	return rep, nil
}

// FullReport implements port.ReportUseCase.
func (s *ReportService) FullReport(ctx context.Context, req port.ReportRequest) (*port.FullReport, error) {
	today := domain.DayOf(s.now(), s.loc)
	name, err := s.businessName(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	list, err := s.creatives.List(ctx, filterFor(req, today, port.OrderBusinessStartDesc))
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}

	rep := &port.FullReport{
		Period:       req.Period,
		PeriodLabel:  req.Period.Label(today),
		BusinessName: name,
		Status:       port.ReportOK,
		Groups:       []port.BusinessGroup{},
	}
	if len(list) == 0 {
		rep.Status = port.ReportNoAds
		return rep, nil
	}

	for _, c := range list {
		n := len(rep.Groups)
		if n == 0 || rep.Groups[n-1].BusinessID != c.BusinessID {
			rep.Groups = append(rep.Groups, port.BusinessGroup{BusinessID: c.BusinessID, BusinessName: c.BusinessName})
			n++
		}
		rep.Groups[n-1].Creatives = append(rep.Groups[n-1].Creatives, c)
	}
	for i := range rep.Groups {
		rep.Groups[i].Batches = batches(rep.Groups[i].Creatives, BatchSize)
	}
	return rep, nil
}

func (s *ReportService) businessName(ctx context.Context, id *int64) (string, error) {
	if id == nil {
		return allBusinesses, nil
	}
	b, err := s.businesses.Get(ctx, *id)
	if err != nil {
		return "", fmt.Errorf("get business %d: %w", *id, err)
	}
	return b.Name, nil
}

func filterFor(req port.ReportRequest, today time.Time, order port.CreativeOrder) port.CreativeFilter {
	w := req.Period.Window(today)
	return port.CreativeFilter{
		BusinessID: req.BusinessID,
		ActiveOnly: w.ActiveOnly,
		StartOn:    w.StartOn,
		StartFrom:  w.StartFrom,
		Order:      order,
	}
}

// batches splits the creatives that have a local image into chunks of at
// most size elements.
func batches(creatives []domain.AdCreative, size int) [][]domain.AdCreative {
	out := [][]domain.AdCreative{}
	var cur []domain.AdCreative
	for _, c := range creatives {
		if c.LocalPath == "" {
			continue
		}
		cur = append(cur, c)
		if len(cur) == size {
			out = append(out, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
