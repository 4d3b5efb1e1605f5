package diary

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
	router.Post("/diaries", h.Create)
	router.Get("/diaries", h.List)
	router.Get("/diaries/{id}", h.Get)
	router.Put("/diaries/{id}", h.Update)
	router.Delete("/diaries/{id}", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/diaries/all", h.ListAllSchools)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var d Diary
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&d); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "creating diary entry", "class", d.ClassID, "kind", d.Kind)
	created, err := h.service.Create(r.Context(), &d)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	classID := r.URL.Query().Get("classId")
	studentID := r.URL.Query().Get("studentId")
	from := httputil.DateParam(r, "from")
	to := httputil.DateParam(r, "to")

	items, total, err := h.service.List(r.Context(), page, limit, classID, studentID, from, to)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListAllSchools(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListAllSchools(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, d)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var d Diary
	columns, err := httputil.DecodePartial(r.Body, &d, updatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &d, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}
