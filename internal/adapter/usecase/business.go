package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

// BusinessService administers the monitored businesses.
type BusinessService struct {
	repo   port.BusinessRepository
	logger *slog.Logger
}

func NewBusinessService(repo port.BusinessRepository, logger *slog.Logger) *BusinessService {
	return &BusinessService{repo: repo, logger: logger}
}

// AddBusiness starts monitoring a page. It returns port.ErrBusinessExists
// when the page is already monitored.
func (s *BusinessService) AddBusiness(ctx context.Context, name, pageID string) (domain.Business, error) {
	b := domain.Business{Name: strings.TrimSpace(name), PageID: strings.TrimSpace(pageID)}
	if err := s.repo.Create(ctx, &b); err != nil {
		return domain.Business{}, fmt.Errorf("create business %s: %w", b.PageID, err)
	}
	s.logger.Info("business added", "id", b.ID, "page_id", b.PageID, "name", b.Name)
	return b, nil
}

// DeleteBusiness stops monitoring a page and drops its creatives.
func (s *BusinessService) DeleteBusiness(ctx context.Context, pageID string) (domain.Business, error) {
	b, err := s.repo.DeleteByPageID(ctx, strings.TrimSpace(pageID))
	if err != nil {
		return domain.Business{}, fmt.Errorf("delete business %s: %w", pageID, err)
	}
	s.logger.Info("business deleted", "id", b.ID, "page_id", b.PageID)
	return b, nil
}

func (s *BusinessService) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	return s.repo.List(ctx)
}
