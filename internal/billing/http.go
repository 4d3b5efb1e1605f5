package billing

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
	router.Post("/packages", h.CreatePackage)
	router.Get("/packages", h.ListPackages)
	router.Get("/packages/{id}", h.GetPackage)
	router.Put("/packages/{id}", h.UpdatePackage)
	router.Delete("/packages/{id}", h.DeletePackage)

	router.Post("/payments", h.CreatePayment)
	router.Get("/payments", h.ListPayments)
	router.Get("/payments/{id}", h.GetPayment)
	router.Put("/payments/{id}", h.UpdatePayment)
	router.Delete("/payments/{id}", h.DeletePayment)
}

func (h *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/packages/all", h.ListAllPackages)
	router.Get("/payments/all", h.ListAllPayments)
}

func (h *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var p Package
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&p); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "creating package", "name", p.Name)
	created, err := h.service.CreatePackage(r.Context(), &p)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListPackages(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListAllPackages(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListAllPackages(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var p Package
	columns, err := httputil.DecodePartial(r.Body, &p, packageUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "id"), &p, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var p Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(&p); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "creating payment", "packageId", p.PackageID, "method", p.Method)
	created, err := h.service.CreatePayment(r.Context(), &p)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	from := httputil.DateParam(r, "from")
	to := httputil.DateParam(r, "to")

	items, total, err := h.service.ListPayments(r.Context(), from, to, page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListAllPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListAllPayments(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var p Payment
	columns, err := httputil.DecodePartial(r.Body, &p, paymentUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}
	if p.Status != "" && p.Status != StatusPending && p.Status != StatusCompleted && p.Status != StatusFailed {
		httputil.RespondWithValidation(w, "status", "must be one of pending, completed, failed")
		return
	}

	updated, err := h.service.UpdatePayment(r.Context(), chi.URLParam(r, "id"), &p, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeletePayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}
