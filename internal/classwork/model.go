package classwork

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/blob"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

// Classwork is the material covered by a class on a date, optionally with
// worksheet or reference file attachments owned by the record.
type Classwork struct {
	bun.BaseModel `bun:"table:classworks,alias:cw"`
	store.Base

	ClassID     string            `bun:"class_id,notnull" json:"classId" validate:"required"`
	Subject     string            `bun:"subject,notnull" json:"subject" validate:"required"`
	Topic       string            `bun:"topic,notnull" json:"topic" validate:"required"`
	Date        time.Time         `bun:"date,notnull" json:"date" validate:"required"`
	Description string            `bun:"description" json:"description"`
	Attachments []blob.Attachment `bun:"attachments,type:jsonb" json:"attachments"`
}

var Indexes = []db.UniqueIndex{{
	Table:   "classworks",
	Name:    "classworks_subject_date_topic_school_class_uq",
	Columns: []string{"subject", "date", "topic", "school_id", "class_id"},
}}

var updatableFields = map[string]string{
	"subject":     "subject",
	"topic":       "topic",
	"date":        "date",
	"description": "description",
	"classId":     "class_id",
}

func NewRepo(database *bun.DB) store.Interface[*Classwork] {
	cfg := store.Config{
		Name:         "classwork",
		DefaultSort:  "date DESC",
		UniqueFields: []string{"subject", "date", "topic", "schoolId", "classId"},
	}
	return store.New(database, cfg, func() *Classwork { return new(Classwork) })
}
