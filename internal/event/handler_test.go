package event_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/auth"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/event"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/logger"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store/storetest"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

// newRouter wires the handler behind a stand-in for the auth middleware
// that stamps a fixed school and role onto every request.
func newRouter(schoolID, role string) chi.Router {
	repo := storetest.NewMemory[*event.Event](store.Config{
		Name:         "event",
		UniqueFields: []string{"title", "date", "schoolId"},
	}, "title", "date", "school_id")
	service := event.NewService(repo, nil, logger.New())
	handler := event.NewHandler(service, logger.New())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := tenant.NewContext(r.Context(), schoolID)
			ctx = auth.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.RegisterRoutes(router)
	router.Group(func(admin chi.Router) {
		admin.Use(auth.RequireRole(auth.RoleSuperAdmin))
		handler.RegisterAdminRoutes(admin)
	})
	return router
}

type listEnvelope struct {
	Success    bool              `json:"success"`
	Data       []json.RawMessage `json:"data"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

func createEvent(t *testing.T, router chi.Router, title string, date time.Time) {
	t.Helper()
	payload, _ := json.Marshal(map[string]interface{}{
		"title": title,
		"date":  date.Format(time.RFC3339),
		"venue": "Main Hall",
	})
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateEvent(t *testing.T) {
	router := newRouter("school-1", auth.RoleAdmin)

	t.Run("returns the created record in the envelope", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]interface{}{
			"title": "Sports Day",
			"date":  "2026-09-12T09:00:00Z",
			"venue": "Stadium",
		})
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(payload))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Success bool        `json:"success"`
			Data    event.Event `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Data.ID)
		assert.Equal(t, "Sports Day", body.Data.Title)
		// school comes from the verified context, never the body
		assert.Equal(t, "school-1", body.Data.SchoolID)
	})

	t.Run("duplicate title and date conflicts", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]interface{}{
			"title": "Sports Day",
			"date":  "2026-09-12T09:00:00Z",
			"venue": "Stadium",
		})
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(payload))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing title is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`{"venue":"Hall"}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListEventsPagination(t *testing.T) {
	router := newRouter("school-1", auth.RoleAdmin)

	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		createEvent(t, router, fmt.Sprintf("Event %02d", i), base.AddDate(0, 0, i))
	}

	t.Run("first page is full", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?page=1&limit=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body listEnvelope
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body.Data, 10)
		assert.Equal(t, 15, body.Total)
		assert.Equal(t, 2, body.TotalPages)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?page=2&limit=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var body listEnvelope
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body.Data, 5)
		assert.Equal(t, 15, body.Total)
		assert.Equal(t, 2, body.Page)
	})

	t.Run("a page past the end is empty, total unchanged", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?page=4&limit=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var body listEnvelope
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Empty(t, body.Data)
		assert.Equal(t, 15, body.Total)
	})
}

func TestUpdateEvent(t *testing.T) {
	router := newRouter("school-1", auth.RoleAdmin)
	createEvent(t, router, "Annual Day", time.Date(2026, 12, 20, 18, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var listBody struct {
		Data []event.Event `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listBody))
	require.Len(t, listBody.Data, 1)
	id := listBody.Data[0].ID

	t.Run("partial update only touches sent fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/events/"+id, bytes.NewReader([]byte(`{"venue":"Auditorium"}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Data event.Event `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Auditorium", body.Data.Venue)
		assert.Equal(t, "Annual Day", body.Data.Title)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/events/"+id, bytes.NewReader([]byte(`{"color":"blue"}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/events/missing", bytes.NewReader([]byte(`{"venue":"Hall"}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("school admin cannot list across schools", func(t *testing.T) {
		router := newRouter("school-1", auth.RoleAdmin)
		req := httptest.NewRequest(http.MethodGet, "/events/all", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("superadmin can", func(t *testing.T) {
		router := newRouter("school-1", auth.RoleSuperAdmin)
		createEvent(t, router, "Science Fair", time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC))

		req := httptest.NewRequest(http.MethodGet, "/events/all", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body listEnvelope
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 1, body.Total)
	})
}
