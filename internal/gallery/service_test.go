package gallery_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attach"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/blob"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/gallery"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/logger"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store/storetest"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/tenant"
)

func newService() (*gallery.Service, *blob.MemStore) {
	albums := storetest.NewMemory[*gallery.Album](store.Config{
		Name:         "album",
		UniqueFields: []string{"title", "date", "schoolId"},
	}, "title", "date", "school_id")
	photos := storetest.NewMemory[*gallery.Photo](store.Config{Name: "photo"})

	blobs := blob.NewMemStore()
	manager := attach.NewManager(blobs, logger.New())
	return gallery.NewService(albums, photos, manager, logger.New()), blobs
}

func schoolCtx(id string) context.Context {
	return tenant.NewContext(context.Background(), id)
}

func images(n int) []attach.File {
	files := make([]attach.File, n)
	for i := range files {
		files[i] = attach.File{
			Name:        fmt.Sprintf("img-%d.jpg", i),
			ContentType: "image/jpeg",
			Data:        []byte("jpegdata"),
		}
	}
	return files
}

func TestCreateAlbum(t *testing.T) {
	ctx := schoolCtx("school-1")

	t.Run("first image becomes the cover", func(t *testing.T) {
		s, blobs := newService()

		album, err := s.CreateAlbum(ctx, &gallery.Album{
			Title: "Sports Day",
			Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		}, images(3))
		require.NoError(t, err)

		require.Len(t, album.Images, 3)
		assert.Equal(t, album.Images[0].URL, album.Cover)
		assert.Equal(t, 3, blobs.Len())
	})

	t.Run("no images means the sentinel cover", func(t *testing.T) {
		s, _ := newService()

		album, err := s.CreateAlbum(ctx, &gallery.Album{
			Title: "Empty",
			Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		}, nil)
		require.NoError(t, err)

		assert.Empty(t, album.Images)
		assert.Equal(t, gallery.DefaultCover, album.Cover)
	})

	t.Run("failed upload leaves no album and no objects", func(t *testing.T) {
		s, blobs := newService()
		blobs.FailPut = "img-1.jpg"

		_, err := s.CreateAlbum(ctx, &gallery.Album{
			Title: "Broken",
			Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		}, images(3))
		require.Error(t, err)

		assert.Zero(t, blobs.Len())
		_, total, err := s.ListAlbums(ctx, 1, 10, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("duplicate title and date conflicts and releases uploads", func(t *testing.T) {
		s, blobs := newService()
		date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

		_, err := s.CreateAlbum(ctx, &gallery.Album{Title: "Sports Day", Date: date}, images(1))
		require.NoError(t, err)

		_, err = s.CreateAlbum(ctx, &gallery.Album{Title: "Sports Day", Date: date}, images(2))
		require.Error(t, err)
		assert.True(t, apperr.IsConflict(err))
		// only the first album's object remains
		assert.Equal(t, 1, blobs.Len())
	})
}

func TestAddImages(t *testing.T) {
	ctx := schoolCtx("school-1")
	s, _ := newService()

	album, err := s.CreateAlbum(ctx, &gallery.Album{
		Title: "Empty",
		Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, gallery.DefaultCover, album.Cover)

	updated, err := s.AddImages(ctx, album.ID, images(2))
	require.NoError(t, err)
	require.Len(t, updated.Images, 2)
	assert.Equal(t, updated.Images[0].URL, updated.Cover)

	t.Run("an existing cover is kept", func(t *testing.T) {
		cover := updated.Cover
		again, err := s.AddImages(ctx, album.ID, images(1))
		require.NoError(t, err)
		assert.Len(t, again.Images, 3)
		assert.Equal(t, cover, again.Cover)
	})
}

func TestRemoveImage(t *testing.T) {
	ctx := schoolCtx("school-1")

	setup := func(t *testing.T) (*gallery.Service, *blob.MemStore, *gallery.Album) {
		t.Helper()
		s, blobs := newService()
		album, err := s.CreateAlbum(ctx, &gallery.Album{
			Title: "Sports Day",
			Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		}, images(3))
		require.NoError(t, err)
		return s, blobs, album
	}

	t.Run("removing the cover re-elects the first remaining image", func(t *testing.T) {
		s, blobs, album := setup(t)

		updated, err := s.RemoveImage(ctx, album.ID, album.Images[0].ID)
		require.NoError(t, err)

		require.Len(t, updated.Images, 2)
		assert.Equal(t, updated.Images[0].URL, updated.Cover)
		assert.NotEqual(t, album.Cover, updated.Cover)
		assert.Equal(t, 2, blobs.Len())
	})

	t.Run("removing a non-cover image keeps the cover", func(t *testing.T) {
		s, _, album := setup(t)

		updated, err := s.RemoveImage(ctx, album.ID, album.Images[2].ID)
		require.NoError(t, err)

		assert.Len(t, updated.Images, 2)
		assert.Equal(t, album.Cover, updated.Cover)
	})

	t.Run("removing the last image leaves the sentinel", func(t *testing.T) {
		s, blobs, album := setup(t)

		var updated *gallery.Album
		var err error
		for _, img := range album.Images {
			updated, err = s.RemoveImage(ctx, album.ID, img.ID)
			require.NoError(t, err)
		}

		assert.Empty(t, updated.Images)
		assert.Equal(t, gallery.DefaultCover, updated.Cover)
		assert.Zero(t, blobs.Len())
	})

	t.Run("unknown image id is not found", func(t *testing.T) {
		s, _, album := setup(t)
		_, err := s.RemoveImage(ctx, album.ID, "missing")
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestDeleteAlbum(t *testing.T) {
	ctx := schoolCtx("school-1")
	s, blobs := newService()

	album, err := s.CreateAlbum(ctx, &gallery.Album{
		Title: "Sports Day",
		Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}, images(3))
	require.NoError(t, err)
	require.Equal(t, 3, blobs.Len())

	deleted, err := s.DeleteAlbum(ctx, album.ID)
	require.NoError(t, err)

	// cascade: one delete call per image, no objects left behind
	assert.Zero(t, blobs.Len())
	assert.Len(t, blobs.Deletes(), 3)
	assert.Empty(t, deleted.Images)
	assert.Equal(t, gallery.DefaultCover, deleted.Cover)

	_, err = s.GetAlbum(ctx, album.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPhotos(t *testing.T) {
	ctx := schoolCtx("school-1")
	s, blobs := newService()

	album, err := s.CreateAlbum(ctx, &gallery.Album{
		Title: "Sports Day",
		Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)

	t.Run("photo requires an album in the same school", func(t *testing.T) {
		_, err := s.CreatePhoto(schoolCtx("school-2"), &gallery.Photo{
			AlbumID: album.ID,
			Caption: "finish line",
		}, images(1))
		assert.True(t, apperr.IsNotFound(err))
	})

	photo, err := s.CreatePhoto(ctx, &gallery.Photo{
		AlbumID: album.ID,
		Caption: "finish line",
	}, images(1))
	require.NoError(t, err)
	assert.NotEmpty(t, photo.Image.URL)

	t.Run("listing is scoped to the album", func(t *testing.T) {
		_, total, err := s.ListPhotos(ctx, 1, 10, album.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		_, total, err = s.ListPhotos(ctx, 1, 10, "other-album")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("deleting a photo releases its object", func(t *testing.T) {
		before := blobs.Len()
		_, err := s.DeletePhoto(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, before-1, blobs.Len())
	})
}
