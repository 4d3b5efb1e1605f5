package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	repo   store.Interface[*Attendance]
	logger *slog.Logger
}

func NewService(repo store.Interface[*Attendance], logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Mark(ctx context.Context, a *Attendance) (*Attendance, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, schoolID, a)
}

// List supports the two query shapes attendance needs: by student and by
// date range, combinable.
func (s *Service) List(ctx context.Context, page, limit int, studentID string, from, to time.Time) ([]*Attendance, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, schoolID, page, limit,
		store.Eq("student_id", studentID),
		store.From("date", from),
		store.To("date", to),
	)
}

func (s *Service) ListAllSchools(ctx context.Context, page, limit int) ([]*Attendance, int, error) {
	return s.repo.ListAllSchools(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Attendance, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, schoolID, id)
}

func (s *Service) Update(ctx context.Context, id string, a *Attendance, columns ...string) (*Attendance, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, schoolID, id, a, columns...)
}

func (s *Service) Delete(ctx context.Context, id string) (*Attendance, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, schoolID, id)
}
