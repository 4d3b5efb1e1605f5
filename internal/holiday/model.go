package holiday

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

const (
	TypeNational  = "National Holiday"
	TypeFestival  = "Festival"
	TypeReligious = "Religious Holiday"
)

// Holiday is one entry in a school's holiday calendar. Year is derived
// from the structured date, never parsed out of display text.
type Holiday struct {
	bun.BaseModel `bun:"table:holidays,alias:ho"`
	store.Base

	Name string    `bun:"name,notnull" json:"name" validate:"required"`
	Date time.Time `bun:"date,notnull" json:"date" validate:"required"`
	Type string    `bun:"type,notnull" json:"type" validate:"required,oneof='National Holiday' 'Festival' 'Religious Holiday'"`
	Year int       `bun:"year,notnull" json:"year"`
}

var Indexes = []db.UniqueIndex{{
	Table:   "holidays",
	Name:    "holidays_name_date_school_uq",
	Columns: []string{"name", "date", "school_id"},
}}

var updatableFields = map[string]string{
	"name": "name",
	"date": "date",
	"type": "type",
}

func NewRepo(database *bun.DB) store.Interface[*Holiday] {
	cfg := store.Config{
		Name:         "holiday",
		DefaultSort:  "date ASC",
		UniqueFields: []string{"name", "date", "schoolId"},
	}
	return store.New(database, cfg, func() *Holiday { return new(Holiday) })
}
