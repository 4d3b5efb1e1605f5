package classwork

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attach"
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
	router.Post("/classwork", h.Create)
	router.Get("/classwork", h.List)
	router.Get("/classwork/{id}", h.Get)
	router.Put("/classwork/{id}", h.Update)
	router.Delete("/classwork/{id}", h.Delete)
	router.Post("/classwork/{id}/attachments", h.AddAttachments)
	router.Delete("/classwork/{id}/attachments/{attachmentId}", h.RemoveAttachment)
}

func (h *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/classwork/all", h.ListAllSchools)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cw, files, err := decodeForm(r)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if err := h.validate.Struct(cw); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "creating classwork", "subject", cw.Subject, "topic", cw.Topic)
	created, err := h.service.Create(r.Context(), cw, files)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	classID := r.URL.Query().Get("classId")
	from := httputil.DateParam(r, "from")
	to := httputil.DateParam(r, "to")

	items, total, err := h.service.List(r.Context(), page, limit, classID, from, to)
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
	cw, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, cw)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cw Classwork
	columns, err := httputil.DecodePartial(r.Body, &cw, updatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &cw, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	files, err := attach.FilesFromRequest(r, "attachments")
	if err != nil {
		httputil.RespondWithValidation(w, "attachments", err.Error())
		return
	}
	if len(files) == 0 {
		httputil.RespondWithValidation(w, "attachments", "no files provided")
		return
	}

	updated, err := h.service.AddAttachments(r.Context(), chi.URLParam(r, "id"), files)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	updated, err := h.service.RemoveAttachment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "attachmentId"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "deleting classwork")
	deleted, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}

func decodeForm(r *http.Request) (*Classwork, []attach.File, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var cw Classwork
		if err := json.NewDecoder(r.Body).Decode(&cw); err != nil {
			return nil, nil, err
		}
		return &cw, nil, nil
	}

	files, err := attach.FilesFromRequest(r, "attachments")
	if err != nil {
		return nil, nil, err
	}

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		return nil, nil, err
	}

	cw := &Classwork{
		ClassID:     r.FormValue("classId"),
		Subject:     r.FormValue("subject"),
		Topic:       r.FormValue("topic"),
		Date:        date,
		Description: r.FormValue("description"),
	}
	return cw, files, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
