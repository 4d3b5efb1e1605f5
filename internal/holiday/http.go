package holiday

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

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
	router.Post("/holidays", h.Create)
	router.Get("/holidays", h.List)
	router.Get("/holidays/{id}", h.Get)
	router.Put("/holidays/{id}", h.Update)
	router.Delete("/holidays/{id}", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/holidays/all", h.ListAllSchools)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var hol Holiday
	if err := json.NewDecoder(r.Body).Decode(&hol); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&hol); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "creating holiday", "name", hol.Name)
	created, err := h.service.Create(r.Context(), &hol)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	holidayType := r.URL.Query().Get("type")

	items, total, err := h.service.List(r.Context(), page, limit, year, holidayType)
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
	hol, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, hol)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var hol Holiday
	columns, err := httputil.DecodePartial(r.Body, &hol, updatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}
	if hol.Type != "" && hol.Type != TypeNational && hol.Type != TypeFestival && hol.Type != TypeReligious {
		httputil.RespondWithValidation(w, "type", "unknown holiday type")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &hol, columns...)
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
