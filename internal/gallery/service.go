package gallery

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attach"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/blob"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

type Service struct {
	albums  store.Interface[*Album]
	photos  store.Interface[*Photo]
	manager *attach.Manager
	logger  *slog.Logger
}

func NewService(albums store.Interface[*Album], photos store.Interface[*Photo], manager *attach.Manager, logger *slog.Logger) *Service {
	return &Service{albums: albums, photos: photos, manager: manager, logger: logger}
}

func albumFolder(schoolID string) string { return path.Join("albums", schoolID) }
func photoFolder(schoolID string) string { return path.Join("photos", schoolID) }

// CreateAlbum uploads the incoming images first; if any upload fails the
// album is not persisted. The first image becomes the cover.
func (s *Service) CreateAlbum(ctx context.Context, album *Album, files []attach.File) (*Album, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	images, err := s.manager.Attach(ctx, albumFolder(schoolID), files)
	if err != nil {
		return nil, err
	}

	album.Images = images
	album.Cover = DefaultCover
	if len(images) > 0 {
		album.Cover = images[0].URL
	}

	created, err := s.albums.Create(ctx, schoolID, album)
	if err != nil {
		// The document was never saved; release the uploaded objects
		// rather than orphaning them.
		s.logger.Error("album create failed after upload, releasing objects", "error", err)
		s.manager.DetachAll(ctx, images)
		return nil, err
	}
	return created, nil
}

func (s *Service) ListAlbums(ctx context.Context, page, limit int, from, to time.Time) ([]*Album, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.albums.List(ctx, schoolID, page, limit,
		store.From("date", from),
		store.To("date", to),
	)
}

func (s *Service) ListAlbumsAllSchools(ctx context.Context, page, limit int) ([]*Album, int, error) {
	return s.albums.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetAlbum(ctx context.Context, id string) (*Album, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.albums.Get(ctx, schoolID, id)
}

func (s *Service) UpdateAlbum(ctx context.Context, id string, album *Album, columns ...string) (*Album, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.albums.Update(ctx, schoolID, id, album, columns...)
}

// AddImages appends uploads to an existing album. An album that had no
// cover yet gets the first new image as cover.
func (s *Service) AddImages(ctx context.Context, id string, files []attach.File) (*Album, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	album, err := s.albums.Get(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	images, err := s.manager.Attach(ctx, albumFolder(schoolID), files)
	if err != nil {
		return nil, err
	}

	album.Images = append(album.Images, images...)
	if album.Cover == DefaultCover && len(album.Images) > 0 {
		album.Cover = album.Images[0].URL
	}
	return s.albums.Update(ctx, schoolID, id, album, "images", "cover")
}

// RemoveImage detaches one image and re-elects the cover when the removed
// image was it: any remaining image wins, otherwise the sentinel.
func (s *Service) RemoveImage(ctx context.Context, id, imageID string) (*Album, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	album, err := s.albums.Get(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	remaining, removed, err := s.manager.DetachOne(ctx, album.Images, imageID)
	if err != nil {
		return nil, err
	}

	album.Images = remaining
	if album.Cover == removed.URL {
		album.Cover = DefaultCover
		if len(remaining) > 0 {
			album.Cover = remaining[0].URL
		}
	}
	return s.albums.Update(ctx, schoolID, id, album, "images", "cover")
}

// DeleteAlbum removes the document and cascades deletion of every backing
// object, best-effort.
func (s *Service) DeleteAlbum(ctx context.Context, id string) (*Album, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.albums.Delete(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}

	s.manager.DetachAll(ctx, deleted.Images)
	deleted.Images = nil
	deleted.Cover = DefaultCover
	return deleted, nil
}

func (s *Service) CreatePhoto(ctx context.Context, photo *Photo, files []attach.File) (*Photo, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	// The photo's album must exist within the same tenant.
	if _, err := s.albums.Get(ctx, schoolID, photo.AlbumID); err != nil {
		return nil, err
	}

	images, err := s.manager.Attach(ctx, photoFolder(schoolID), files)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		photo.Image = images[0]
	}

	created, err := s.photos.Create(ctx, schoolID, photo)
	if err != nil {
		s.logger.Error("photo create failed after upload, releasing objects", "error", err)
		s.manager.DetachAll(ctx, images)
		return nil, err
	}
	return created, nil
}

func (s *Service) ListPhotos(ctx context.Context, page, limit int, albumID string) ([]*Photo, int, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.photos.List(ctx, schoolID, page, limit, store.Eq("album_id", albumID))
}

func (s *Service) ListPhotosAllSchools(ctx context.Context, page, limit int) ([]*Photo, int, error) {
	return s.photos.ListAllSchools(ctx, page, limit)
}

func (s *Service) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.photos.Get(ctx, schoolID, id)
}

func (s *Service) UpdatePhoto(ctx context.Context, id string, photo *Photo, columns ...string) (*Photo, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	return s.photos.Update(ctx, schoolID, id, photo, columns...)
}

func (s *Service) DeletePhoto(ctx context.Context, id string) (*Photo, error) {
	schoolID, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.photos.Delete(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if deleted.Image.URL != "" {
		s.manager.DetachAll(ctx, []blob.Attachment{deleted.Image})
	}
	return deleted, nil
}
