package gallery

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/blob"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

// DefaultCover is the sentinel used when an album has no images left to
// serve as its cover.
const DefaultCover = ""

// Album is a gallery of images for a school occasion. The album
// exclusively owns its image attachments: deleting the album deletes
// every backing object.
type Album struct {
	bun.BaseModel `bun:"table:albums,alias:al"`
	store.Base

	Title       string            `bun:"title,notnull" json:"title" validate:"required"`
	Date        time.Time         `bun:"date,notnull" json:"date" validate:"required"`
	Description string            `bun:"description" json:"description"`
	Images      []blob.Attachment `bun:"images,type:jsonb" json:"images"`
	Cover       string            `bun:"cover" json:"cover"`
}

// Photo is a single captioned image inside an album.
type Photo struct {
	bun.BaseModel `bun:"table:photos,alias:ph"`
	store.Base

	AlbumID string          `bun:"album_id,notnull" json:"albumId" validate:"required"`
	Caption string          `bun:"caption" json:"caption"`
	Image   blob.Attachment `bun:"image,type:jsonb" json:"image"`
}

var Indexes = []db.UniqueIndex{{
	Table:   "albums",
	Name:    "albums_title_date_school_uq",
	Columns: []string{"title", "date", "school_id"},
}}

var albumUpdatableFields = map[string]string{
	"title":       "title",
	"date":        "date",
	"description": "description",
}

var photoUpdatableFields = map[string]string{
	"caption": "caption",
	"albumId": "album_id",
}

func NewAlbumRepo(database *bun.DB) store.Interface[*Album] {
	cfg := store.Config{
		Name:         "album",
		DefaultSort:  "date DESC",
		UniqueFields: []string{"title", "date", "schoolId"},
	}
	return store.New(database, cfg, func() *Album { return new(Album) })
}

func NewPhotoRepo(database *bun.DB) store.Interface[*Photo] {
	cfg := store.Config{
		Name:        "photo",
		DefaultSort: "created_at DESC",
	}
	return store.New(database, cfg, func() *Photo { return new(Photo) })
}
