package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/auth"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/logger"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type memStore struct {
	byEmail map[string]*auth.SuperAdmin
}

func newMemStore() *memStore {
	return &memStore{byEmail: make(map[string]*auth.SuperAdmin)}
}

func (m *memStore) Create(ctx context.Context, admin *auth.SuperAdmin) (*auth.SuperAdmin, error) {
	if _, exists := m.byEmail[admin.Email]; exists {
		return nil, apperr.Conflict("admin", "email")
	}
	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now().UTC()
	admin.UpdatedAt = admin.CreatedAt
	m.byEmail[admin.Email] = admin
	return admin, nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*auth.SuperAdmin, error) {
	admin, ok := m.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("admin")
	}
	return admin, nil
}

func newService(t *testing.T) (*auth.Service, *memStore) {
	t.Helper()
	store := newMemStore()
	return auth.NewService(store, "test-secret", time.Hour), store
}

func register(t *testing.T, s *auth.Service) *auth.SuperAdmin {
	t.Helper()
	admin, err := s.Register(context.Background(), auth.RegisterRequest{
		SchoolID: "school-1",
		Name:     "Head Admin",
		Email:    "admin@school.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return admin
}

func TestRegister(t *testing.T) {
	s, store := newService(t)
	admin := register(t, s)

	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, auth.RoleAdmin, admin.Role)
	assert.NotEqual(t, "correct-horse", store.byEmail["admin@school.test"].Password)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := s.Register(context.Background(), auth.RegisterRequest{
			SchoolID: "school-2",
			Name:     "Other",
			Email:    "admin@school.test",
			Password: "whatever-else",
		})
		assert.True(t, apperr.IsConflict(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)
	register(t, s)

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		resp, err := s.Login(ctx, auth.LoginRequest{Email: "admin@school.test", Password: "correct-horse"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		claims, err := s.VerifyToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "school-1", claims.SchoolID)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errPassword := s.Login(ctx, auth.LoginRequest{Email: "admin@school.test", Password: "wrong"})
		_, errEmail := s.Login(ctx, auth.LoginRequest{Email: "nobody@school.test", Password: "correct-horse"})
		require.Error(t, errPassword)
		require.Error(t, errEmail)
		assert.Equal(t, errPassword.Error(), errEmail.Error())
	})
}

func TestVerifyToken(t *testing.T) {
	s, _ := newService(t)

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := s.VerifyToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewService(newMemStore(), "other-secret", time.Hour)
		register(t, other)

		resp, err := other.Login(context.Background(), auth.LoginRequest{Email: "admin@school.test", Password: "correct-horse"})
		require.NoError(t, err)

		_, err = s.VerifyToken(resp.AccessToken)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := auth.NewService(newMemStore(), "test-secret", -time.Minute)
		register(t, expired)

		resp, err := expired.Login(context.Background(), auth.LoginRequest{Email: "admin@school.test", Password: "correct-horse"})
		require.NoError(t, err)

		_, err = s.VerifyToken(resp.AccessToken)
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	s, _ := newService(t)
	register(t, s)

	resp, err := s.Login(context.Background(), auth.LoginRequest{Email: "admin@school.test", Password: "correct-horse"})
	require.NoError(t, err)

	var gotSchool, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSchool, _ = tenant.FromContext(r.Context())
		gotRole, _ = auth.RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := auth.Middleware(s, logger.New())(next)

	t.Run("valid token attaches school and role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "school-1", gotSchool)
		assert.Equal(t, auth.RoleAdmin, gotRole)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("mangled token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		req.Header.Set("Authorization", "Bearer "+strings.Repeat("x", 40))
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := auth.RequireRole(auth.RoleSuperAdmin)(next)

	t.Run("superadmin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events/all", nil)
		req = req.WithContext(auth.WithRole(req.Context(), auth.RoleSuperAdmin))
		w := httptest.NewRecorder()

		guarded.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("school admin is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events/all", nil)
		req = req.WithContext(auth.WithRole(req.Context(), auth.RoleAdmin))
		w := httptest.NewRecorder()

		guarded.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events/all", nil)
		w := httptest.NewRecorder()

		guarded.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
