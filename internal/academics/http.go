package academics

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/httputil"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/classes", h.CreateClass)
	router.Get("/classes", h.ListClasses)
	router.Get("/classes/{id}", h.GetClass)
	router.Put("/classes/{id}", h.UpdateClass)
	router.Delete("/classes/{id}", h.DeleteClass)

	router.Post("/sessions", h.CreateSession)
	router.Get("/sessions", h.ListSessions)
	router.Get("/sessions/{id}", h.GetSession)
	router.Put("/sessions/{id}", h.UpdateSession)
	router.Delete("/sessions/{id}", h.DeleteSession)

	router.Post("/exam-types", h.CreateExamType)
	router.Get("/exam-types", h.ListExamTypes)
	router.Get("/exam-types/{id}", h.GetExamType)
	router.Put("/exam-types/{id}", h.UpdateExamType)
	router.Delete("/exam-types/{id}", h.DeleteExamType)
}

func (h *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/classes/all", h.ListClassesAllSchools)
	router.Get("/sessions/all", h.ListSessionsAllSchools)
	router.Get("/exam-types/all", h.ListExamTypesAllSchools)
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var c Class
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&c); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	created, err := h.service.CreateClass(r.Context(), &c)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListClasses(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	name := r.URL.Query().Get("name")

	items, total, err := h.service.ListClasses(r.Context(), page, limit, name)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListClassesAllSchools(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListClassesAllSchools(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetClass(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetClass(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	var c Class
	columns, err := httputil.DecodePartial(r.Body, &c, classUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.UpdateClass(r.Context(), chi.URLParam(r, "id"), &c, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteClass(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var se Session
	if err := json.NewDecoder(r.Body).Decode(&se); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&se); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if !se.EndDate.After(se.StartDate) {
		httputil.RespondWithValidation(w, "endDate", "end date must be after start date")
		return
	}

	created, err := h.service.CreateSession(r.Context(), &se)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListSessions(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListSessionsAllSchools(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListSessionsAllSchools(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	se, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, se)
}

func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var se Session
	columns, err := httputil.DecodePartial(r.Body, &se, sessionUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.UpdateSession(r.Context(), chi.URLParam(r, "id"), &se, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}

func (h *Handler) CreateExamType(w http.ResponseWriter, r *http.Request) {
	var et ExamType
	if err := json.NewDecoder(r.Body).Decode(&et); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&et); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	created, err := h.service.CreateExamType(r.Context(), &et)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListExamTypes(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListExamTypes(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListExamTypesAllSchools(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListExamTypesAllSchools(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetExamType(w http.ResponseWriter, r *http.Request) {
	et, err := h.service.GetExamType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, et)
}

func (h *Handler) UpdateExamType(w http.ResponseWriter, r *http.Request) {
	var et ExamType
	columns, err := httputil.DecodePartial(r.Body, &et, examTypeUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.UpdateExamType(r.Context(), chi.URLParam(r, "id"), &et, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteExamType(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteExamType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}
