package academics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/academics"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/logger"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store/storetest"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

func newService() *academics.Service {
	classes := storetest.NewMemory[*academics.Class](store.Config{
		Name:         "class",
		UniqueFields: []string{"name", "section", "schoolId"},
	}, "name", "section", "school_id")
	sessions := storetest.NewMemory[*academics.Session](store.Config{
		Name:         "session",
		UniqueFields: []string{"name", "schoolId"},
	}, "name", "school_id")
	examTypes := storetest.NewMemory[*academics.ExamType](store.Config{
		Name:         "exam type",
		UniqueFields: []string{"name", "schoolId"},
	}, "name", "school_id")
	return academics.NewService(classes, sessions, examTypes, logger.New())
}

func schoolCtx(id string) context.Context {
	return tenant.NewContext(context.Background(), id)
}

func TestClasses(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	_, err := s.CreateClass(ctx, &academics.Class{Name: "VI", Section: "A"})
	require.NoError(t, err)

	t.Run("same name and section conflicts", func(t *testing.T) {
		_, err := s.CreateClass(ctx, &academics.Class{Name: "VI", Section: "A"})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("another section of the same name is fine", func(t *testing.T) {
		_, err := s.CreateClass(ctx, &academics.Class{Name: "VI", Section: "B"})
		assert.NoError(t, err)
	})

	t.Run("name filter", func(t *testing.T) {
		_, err := s.CreateClass(ctx, &academics.Class{Name: "VII", Section: "A"})
		require.NoError(t, err)

		_, total, err := s.ListClasses(ctx, 1, 10, "VI")
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestSessions(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	created, err := s.CreateSession(ctx, &academics.Session{
		Name:      "2026-27",
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, created.Active)

	t.Run("duplicate name per school conflicts", func(t *testing.T) {
		_, err := s.CreateSession(ctx, &academics.Session{
			Name:      "2026-27",
			StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC),
		})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("activation via partial update", func(t *testing.T) {
		updated, err := s.UpdateSession(ctx, created.ID, &academics.Session{Active: true}, "active")
		require.NoError(t, err)
		assert.True(t, updated.Active)
		assert.Equal(t, "2026-27", updated.Name)
	})
}

func TestExamTypes(t *testing.T) {
	s := newService()
	ctx := schoolCtx("school-1")

	_, err := s.CreateExamType(ctx, &academics.ExamType{Name: "Half Yearly"})
	require.NoError(t, err)

	_, err = s.CreateExamType(ctx, &academics.ExamType{Name: "Half Yearly"})
	assert.True(t, apperr.IsConflict(err))

	_, err = s.CreateExamType(schoolCtx("school-2"), &academics.ExamType{Name: "Half Yearly"})
	assert.NoError(t, err)
}
