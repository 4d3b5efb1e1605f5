package circular

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

// Circular is a school-wide notice.
type Circular struct {
	bun.BaseModel `bun:"table:circulars,alias:cr"`
	store.Base

	Title       string    `bun:"title,notnull" json:"title" validate:"required"`
	Date        time.Time `bun:"date,notnull" json:"date" validate:"required"`
	Description string    `bun:"description" json:"description"`
	Audience    string    `bun:"audience,notnull,default:'all'" json:"audience"`
}

// Indexes declares the tenant-scoped uniqueness of a circular: the same
// title may recur on different dates or in different schools.
var Indexes = []db.UniqueIndex{{
	Table:   "circulars",
	Name:    "circulars_title_date_school_uq",
	Columns: []string{"title", "date", "school_id"},
}}

var updatableFields = map[string]string{
	"title":       "title",
	"date":        "date",
	"description": "description",
	"audience":    "audience",
}

func repoConfig() store.Config {
	return store.Config{
		Name:         "circular",
		DefaultSort:  "date DESC",
		UniqueFields: []string{"title", "date", "schoolId"},
	}
}

// NewRepo builds the circular repository on the shared tenant-scoped store.
func NewRepo(database *bun.DB) store.Interface[*Circular] {
	return store.New(database, repoConfig(), func() *Circular { return new(Circular) })
}
