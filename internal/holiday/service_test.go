package holiday_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/holiday"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/logger"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store/storetest"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

func newService() *holiday.Service {
	repo := storetest.NewMemory[*holiday.Holiday](store.Config{
		Name:         "holiday",
		UniqueFields: []string{"name", "date", "schoolId"},
	}, "name", "date", "school_id")
	return holiday.NewService(repo, logger.New())
}

func schoolCtx(id string) context.Context {
	return tenant.NewContext(context.Background(), id)
}

func TestYearDerivation(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	created, err := s.Create(ctx, &holiday.Holiday{
		Name: "Independence Day",
		Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Type: holiday.TypeNational,
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, created.Year)

	t.Run("year follows a date update", func(t *testing.T) {
		updated, err := s.Update(ctx, created.ID, &holiday.Holiday{
			Date: time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC),
		}, "date")
		require.NoError(t, err)
		assert.Equal(t, 2027, updated.Year)
	})

	t.Run("year is untouched when only the name changes", func(t *testing.T) {
		updated, err := s.Update(ctx, created.ID, &holiday.Holiday{
			Name: "National Day",
		}, "name")
		require.NoError(t, err)
		assert.Equal(t, 2027, updated.Year)
		assert.Equal(t, "National Day", updated.Name)
	})
}

func TestListByYearAndType(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	seed := []struct {
		name string
		date time.Time
		typ  string
	}{
		{"Independence Day", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), holiday.TypeNational},
		{"Diwali", time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC), holiday.TypeFestival},
		{"Christmas", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), holiday.TypeReligious},
		{"Independence Day", time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC), holiday.TypeNational},
	}
	for _, h := range seed {
		_, err := s.Create(ctx, &holiday.Holiday{Name: h.name, Date: h.date, Type: h.typ})
		require.NoError(t, err)
	}

	t.Run("by year", func(t *testing.T) {
		_, total, err := s.List(ctx, 1, 10, 2026, "")
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("by type", func(t *testing.T) {
		_, total, err := s.List(ctx, 1, 10, 0, holiday.TypeNational)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("by year and type", func(t *testing.T) {
		_, total, err := s.List(ctx, 1, 10, 2027, holiday.TypeNational)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("unfiltered", func(t *testing.T) {
		_, total, err := s.List(ctx, 1, 10, 0, "")
		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})
}
