package event

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

// Event is a school calendar entry (sports day, annual function, PTM).
type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev"`
	store.Base

	Title       string    `bun:"title,notnull" json:"title" validate:"required"`
	Date        time.Time `bun:"date,notnull" json:"date" validate:"required"`
	Venue       string    `bun:"venue" json:"venue"`
	Description string    `bun:"description" json:"description"`
}

var Indexes = []db.UniqueIndex{{
	Table:   "events",
	Name:    "events_title_date_school_uq",
	Columns: []string{"title", "date", "school_id"},
}}

var updatableFields = map[string]string{
	"title":       "title",
	"date":        "date",
	"venue":       "venue",
	"description": "description",
}

func NewRepo(database *bun.DB) store.Interface[*Event] {
	cfg := store.Config{
		Name:         "event",
		DefaultSort:  "date DESC",
		UniqueFields: []string{"title", "date", "schoolId"},
	}
	return store.New(database, cfg, func() *Event { return new(Event) })
}
