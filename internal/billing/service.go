package billing

import (
	"context"
	"time"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/messaging"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	packages store.Interface[*Package]
	payments store.Interface[*Payment]
	producer *messaging.Producer
}

func NewService(packages store.Interface[*Package], payments store.Interface[*Payment], producer *messaging.Producer) *Service {
	return &Service{packages: packages, payments: payments, producer: producer}
}

func (s *Service) CreatePackage(ctx context.Context, p *Package) (*Package, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.packages.Create(ctx, schoolID, p)
}

func (s *Service) ListPackages(ctx context.Context, page, limit int) ([]*Package, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.packages.List(ctx, schoolID, page, limit)
}

func (s *Service) ListAllPackages(ctx context.Context, page, limit int) ([]*Package, int, error) {
	return s.packages.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetPackage(ctx context.Context, id string) (*Package, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.packages.Get(ctx, schoolID, id)
}

func (s *Service) UpdatePackage(ctx context.Context, id string, p *Package, columns ...string) (*Package, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.packages.Update(ctx, schoolID, id, p, columns...)
}

func (s *Service) DeletePackage(ctx context.Context, id string) (*Package, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.packages.Delete(ctx, schoolID, id)
}

// CreatePayment records a payment against a package of the same school.
func (s *Service) CreatePayment(ctx context.Context, p *Payment) (*Payment, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.packages.Get(ctx, schoolID, p.PackageID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("package")
		}
		return nil, err
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now().UTC()
	}
	created, err := s.payments.Create(ctx, schoolID, p)
	if err != nil {
		return nil, err
	}
	s.producer.Publish(messaging.Event{
		Type:       "payment.created",
		SchoolID:   created.SchoolID,
		ResourceID: created.ID,
		Title:      created.Method,
		At:         created.CreatedAt,
	})
	return created, nil
}

func (s *Service) ListPayments(ctx context.Context, from, to time.Time, page, limit int) ([]*Payment, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	filters := []store.Filter{
		store.From("paid_at", from),
		store.To("paid_at", to),
	}
	return s.payments.List(ctx, schoolID, page, limit, filters...)
}

func (s *Service) ListAllPayments(ctx context.Context, page, limit int) ([]*Payment, int, error) {
	return s.payments.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.payments.Get(ctx, schoolID, id)
}

func (s *Service) UpdatePayment(ctx context.Context, id string, p *Payment, columns ...string) (*Payment, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.payments.Update(ctx, schoolID, id, p, columns...)
}

func (s *Service) DeletePayment(ctx context.Context, id string) (*Payment, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.payments.Delete(ctx, schoolID, id)
}
