package circular

import (
	"context"
	"log/slog"
	"time"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/messaging"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	repo     store.Interface[*Circular]
	producer *messaging.Producer
	logger   *slog.Logger
}

func NewService(repo store.Interface[*Circular], producer *messaging.Producer, logger *slog.Logger) *Service {
	return &Service{repo: repo, producer: producer, logger: logger}
}

func (s *Service) Create(ctx context.Context, c *Circular) (*Circular, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, schoolID, c)
	if err != nil {
		return nil, err
	}

	s.producer.Publish(messaging.Event{
		Type:       "circular.created",
		SchoolID:   schoolID,
		ResourceID: created.ID,
		Title:      created.Title,
	})
	return created, nil
}

func (s *Service) List(ctx context.Context, page, limit int, from, to time.Time) ([]*Circular, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, schoolID, page, limit,
		store.From("date", from),
		store.To("date", to),
	)
}

func (s *Service) ListAllSchools(ctx context.Context, page, limit int) ([]*Circular, int, error) {
	return s.repo.ListAllSchools(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Circular, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, schoolID, id)
}

func (s *Service) Update(ctx context.Context, id string, c *Circular, columns ...string) (*Circular, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, schoolID, id, c, columns...)
}

func (s *Service) Delete(ctx context.Context, id string) (*Circular, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, schoolID, id)
}
