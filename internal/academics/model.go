package academics

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

// Class is one class-section pair ("VI", "A").
type Class struct {
	bun.BaseModel `bun:"table:classes,alias:cl"`
	store.Base

	Name    string `bun:"name,notnull" json:"name" validate:"required"`
	Section string `bun:"section,notnull" json:"section" validate:"required"`
}

// Session is an academic year ("2024-25").
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:se"`
	store.Base

	Name      string    `bun:"name,notnull" json:"name" validate:"required"`
	StartDate time.Time `bun:"start_date,notnull" json:"startDate" validate:"required"`
	EndDate   time.Time `bun:"end_date,notnull" json:"endDate" validate:"required"`
	Active    bool      `bun:"active,notnull,default:false" json:"active"`
}

// ExamType is a named examination category ("Half Yearly", "Unit Test").
type ExamType struct {
	bun.BaseModel `bun:"table:exam_types,alias:et"`
	store.Base

	Name string `bun:"name,notnull" json:"name" validate:"required"`
}

var Indexes = []db.UniqueIndex{
	{
		Table:   "classes",
		Name:    "classes_name_section_school_uq",
		Columns: []string{"name", "section", "school_id"},
	},
	{
		Table:   "sessions",
		Name:    "sessions_name_school_uq",
		Columns: []string{"name", "school_id"},
	},
	{
		Table:   "exam_types",
		Name:    "exam_types_name_school_uq",
		Columns: []string{"name", "school_id"},
	},
}

var classUpdatableFields = map[string]string{
	"name":    "name",
	"section": "section",
}

var sessionUpdatableFields = map[string]string{
	"name":      "name",
	"startDate": "start_date",
	"endDate":   "end_date",
	"active":    "active",
}

var examTypeUpdatableFields = map[string]string{
	"name": "name",
}

func NewClassRepo(database *bun.DB) store.Interface[*Class] {
	cfg := store.Config{
		Name:         "class",
		DefaultSort:  "name ASC, section ASC",
		UniqueFields: []string{"name", "section", "schoolId"},
	}
	return store.New(database, cfg, func() *Class { return new(Class) })
}

func NewSessionRepo(database *bun.DB) store.Interface[*Session] {
	cfg := store.Config{
		Name:         "session",
		DefaultSort:  "start_date DESC",
		UniqueFields: []string{"name", "schoolId"},
	}
	return store.New(database, cfg, func() *Session { return new(Session) })
}

func NewExamTypeRepo(database *bun.DB) store.Interface[*ExamType] {
	cfg := store.Config{
		Name:         "exam type",
		DefaultSort:  "name ASC",
		UniqueFields: []string{"name", "schoolId"},
	}
	return store.New(database, cfg, func() *ExamType { return new(ExamType) })
}
