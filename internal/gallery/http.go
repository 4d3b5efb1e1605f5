package gallery

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
	router.Post("/albums", h.CreateAlbum)
	router.Get("/albums", h.ListAlbums)
	router.Get("/albums/{id}", h.GetAlbum)
	router.Put("/albums/{id}", h.UpdateAlbum)
	router.Delete("/albums/{id}", h.DeleteAlbum)
	router.Post("/albums/{id}/images", h.AddImages)
	router.Delete("/albums/{id}/images/{imageId}", h.RemoveImage)

	router.Post("/photos", h.CreatePhoto)
	router.Get("/photos", h.ListPhotos)
	router.Get("/photos/{id}", h.GetPhoto)
	router.Put("/photos/{id}", h.UpdatePhoto)
	router.Delete("/photos/{id}", h.DeletePhoto)
}

func (h *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/albums/all", h.ListAlbumsAllSchools)
	router.Get("/photos/all", h.ListPhotosAllSchools)
}

// CreateAlbum accepts multipart/form-data (fields + "images" files) or a
// plain JSON body for an album without images.
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	album, files, err := decodeAlbumForm(r)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if err := h.validate.Struct(album); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "creating album", "title", album.Title, "images", len(files))
	created, err := h.service.CreateAlbum(r.Context(), album, files)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	from := httputil.DateParam(r, "from")
	to := httputil.DateParam(r, "to")

	items, total, err := h.service.ListAlbums(r.Context(), page, limit, from, to)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListAlbumsAllSchools(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListAlbumsAllSchools(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.service.GetAlbum(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, album)
}

func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var album Album
	columns, err := httputil.DecodePartial(r.Body, &album, albumUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.UpdateAlbum(r.Context(), chi.URLParam(r, "id"), &album, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) AddImages(w http.ResponseWriter, r *http.Request) {
	files, err := attach.FilesFromRequest(r, "images")
	if err != nil {
		httputil.RespondWithValidation(w, "images", err.Error())
		return
	}
	if len(files) == 0 {
		httputil.RespondWithValidation(w, "images", "no files provided")
		return
	}

	updated, err := h.service.AddImages(r.Context(), chi.URLParam(r, "id"), files)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	updated, err := h.service.RemoveImage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "imageId"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "deleting album")
	deleted, err := h.service.DeleteAlbum(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}

func (h *Handler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	photo, files, err := decodePhotoForm(r)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if err := h.validate.Struct(photo); err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}

	created, err := h.service.CreatePhoto(r.Context(), photo, files)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)
	albumID := r.URL.Query().Get("albumId")

	items, total, err := h.service.ListPhotos(r.Context(), page, limit, albumID)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) ListPhotosAllSchools(w http.ResponseWriter, r *http.Request) {
	page, limit := httputil.PageParams(r)

	items, total, err := h.service.ListPhotosAllSchools(r.Context(), page, limit)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithList(w, items, total, page, limit)
}

func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	photo, err := h.service.GetPhoto(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, photo)
}

func (h *Handler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var photo Photo
	columns, err := httputil.DecodePartial(r.Body, &photo, photoUpdatableFields)
	if err != nil {
		httputil.RespondWithValidation(w, "body", err.Error())
		return
	}
	if len(columns) == 0 {
		httputil.RespondWithValidation(w, "body", "no updatable fields provided")
		return
	}

	updated, err := h.service.UpdatePhoto(r.Context(), chi.URLParam(r, "id"), &photo, columns...)
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeletePhoto(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, deleted)
}

func decodeAlbumForm(r *http.Request) (*Album, []attach.File, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var album Album
		if err := json.NewDecoder(r.Body).Decode(&album); err != nil {
			return nil, nil, err
		}
		return &album, nil, nil
	}

	files, err := attach.FilesFromRequest(r, "images")
	if err != nil {
		return nil, nil, err
	}

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		return nil, nil, err
	}

	album := &Album{
		Title:       r.FormValue("title"),
		Date:        date,
		Description: r.FormValue("description"),
	}
	return album, files, nil
}

func decodePhotoForm(r *http.Request) (*Photo, []attach.File, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var photo Photo
		if err := json.NewDecoder(r.Body).Decode(&photo); err != nil {
			return nil, nil, err
		}
		return &photo, nil, nil
	}

	files, err := attach.FilesFromRequest(r, "image")
	if err != nil {
		return nil, nil, err
	}

	photo := &Photo{
		AlbumID: r.FormValue("albumId"),
		Caption: r.FormValue("caption"),
	}
	return photo, files, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
