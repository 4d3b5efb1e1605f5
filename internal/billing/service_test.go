package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/billing"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store/storetest"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

func newService() *billing.Service {
	packages := storetest.NewMemory[*billing.Package](store.Config{
		Name:         "package",
		UniqueFields: []string{"name", "schoolId"},
	}, "name", "school_id")
	payments := storetest.NewMemory[*billing.Payment](store.Config{Name: "payment"})
	return billing.NewService(packages, payments, nil)
}

func schoolCtx(id string) context.Context {
	return tenant.NewContext(context.Background(), id)
}

func TestPackages(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	created, err := s.CreatePackage(ctx, &billing.Package{
		Name:     "Standard",
		Price:    4999,
		Duration: 12,
		Features: []string{"attendance", "gallery"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	t.Run("duplicate name in the same school conflicts", func(t *testing.T) {
		_, err := s.CreatePackage(ctx, &billing.Package{Name: "Standard", Price: 100, Duration: 1})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("the same name in another school is fine", func(t *testing.T) {
		_, err := s.CreatePackage(schoolCtx("school-2"), &billing.Package{Name: "Standard", Price: 100, Duration: 1})
		assert.NoError(t, err)
	})
}

func TestPayments(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	pkg, err := s.CreatePackage(ctx, &billing.Package{Name: "Standard", Price: 4999, Duration: 12})
	require.NoError(t, err)

	t.Run("requires the package to exist in the same school", func(t *testing.T) {
		_, err := s.CreatePayment(schoolCtx("school-2"), &billing.Payment{
			PackageID: pkg.ID,
			Amount:    4999,
			Method:    billing.MethodUPI,
		})
		assert.True(t, apperr.IsNotFound(err))

		_, err = s.CreatePayment(ctx, &billing.Payment{
			PackageID: "missing",
			Amount:    4999,
			Method:    billing.MethodCard,
		})
		assert.True(t, apperr.IsNotFound(err))
	})

	payment, err := s.CreatePayment(ctx, &billing.Payment{
		PackageID: pkg.ID,
		Amount:    4999,
		Method:    billing.MethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, billing.StatusPending, payment.Status)
	assert.False(t, payment.PaidAt.IsZero())

	t.Run("status moves to completed", func(t *testing.T) {
		updated, err := s.UpdatePayment(ctx, payment.ID, &billing.Payment{
			Status:    billing.StatusCompleted,
			Reference: "TXN-001",
		}, "status", "reference")
		require.NoError(t, err)
		assert.Equal(t, billing.StatusCompleted, updated.Status)
		assert.Equal(t, "TXN-001", updated.Reference)
	})
}

func TestListPaymentsByDateRange(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	pkg, err := s.CreatePackage(ctx, &billing.Package{Name: "Standard", Price: 4999, Duration: 12})
	require.NoError(t, err)

	months := []time.Time{
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, paid := range months {
		_, err := s.CreatePayment(ctx, &billing.Payment{
			PackageID: pkg.ID,
			Amount:    4999,
			Method:    billing.MethodUPI,
			PaidAt:    paid,
		})
		require.NoError(t, err)
	}

	t.Run("closed range", func(t *testing.T) {
		_, total, err := s.ListPayments(ctx, months[0], months[1], 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("open-ended from", func(t *testing.T) {
		_, total, err := s.ListPayments(ctx, months[1], time.Time{}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("no bounds returns everything", func(t *testing.T) {
		_, total, err := s.ListPayments(ctx, time.Time{}, time.Time{}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})
}
