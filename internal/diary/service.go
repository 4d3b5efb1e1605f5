package diary

import (
	"context"
	"log/slog"
	"time"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	repo   store.Interface[*Diary]
	logger *slog.Logger
}

func NewService(repo store.Interface[*Diary], logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, d *Diary) (*Diary, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, schoolID, d)
}

func (s *Service) List(ctx context.Context, page, limit int, classID, studentID string, from, to time.Time) ([]*Diary, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, schoolID, page, limit,
		store.Eq("class_id", classID),
		store.Eq("student_id", studentID),
		store.From("date", from),
		store.To("date", to),
	)
}

func (s *Service) ListAllSchools(ctx context.Context, page, limit int) ([]*Diary, int, error) {
	return s.repo.ListAllSchools(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Diary, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, schoolID, id)
}

func (s *Service) Update(ctx context.Context, id string, d *Diary, columns ...string) (*Diary, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, schoolID, id, d, columns...)
}

func (s *Service) Delete(ctx context.Context, id string) (*Diary, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, schoolID, id)
}
