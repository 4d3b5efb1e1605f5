package auth

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
	router.Post("/superadmin/register", h.Register)
	router.Post("/superadmin/login", h.Login)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.Info("registering admin", "email", req.Email, "school", req.SchoolID)
	admin, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.logger.Warn("registration failed", "error", err)
		httputil.RespondWithError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, admin)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondWithValidation(w, "body", "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.logger.Warn("login failed", "email", req.Email)
		httputil.RespondWithError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, resp)
}
