package holiday

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	repo   store.Interface[*Holiday]
	logger *slog.Logger
}

func NewService(repo store.Interface[*Holiday], logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, h *Holiday) (*Holiday, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	h.Year = h.Date.Year()
	return s.repo.Create(ctx, schoolID, h)
}

func (s *Service) List(ctx context.Context, page, limit int, year int, holidayType string) ([]*Holiday, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}

	filters := []store.Filter{store.Eq("type", holidayType)}
	if year > 0 {
		filters = append(filters, store.Eq("year", year))
	}
	return s.repo.List(ctx, schoolID, page, limit, filters...)
}

func (s *Service) ListAllSchools(ctx context.Context, page, limit int) ([]*Holiday, int, error) {
	return s.repo.ListAllSchools(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Holiday, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, schoolID, id)
}

// Update re-derives the year whenever the date column changes.
func (s *Service) Update(ctx context.Context, id string, h *Holiday, columns ...string) (*Holiday, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	if slices.Contains(columns, "date") {
		h.Year = h.Date.Year()
		columns = append(columns, "year")
	}
	return s.repo.Update(ctx, schoolID, id, h, columns...)
}

func (s *Service) Delete(ctx context.Context, id string) (*Holiday, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, schoolID, id)
}
