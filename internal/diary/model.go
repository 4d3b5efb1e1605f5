package diary

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

const (
	KindHomework = "homework"
	KindRemark   = "remark"
	KindNote     = "note"
)

// Diary is a dated note for a class or an individual student: homework,
// a teacher remark, or a general note.
type Diary struct {
	bun.BaseModel `bun:"table:diaries,alias:di"`
	store.Base

	ClassID   string    `bun:"class_id,notnull" json:"classId" validate:"required"`
	StudentID string    `bun:"student_id" json:"studentId"`
	Date      time.Time `bun:"date,notnull" json:"date" validate:"required"`
	Kind      string    `bun:"kind,notnull" json:"kind" validate:"required,oneof=homework remark note"`
	Subject   string    `bun:"subject" json:"subject"`
	Note      string    `bun:"note,notnull" json:"note" validate:"required"`
}

// A diary has no uniqueness constraint: several notes per class and day
// are expected.
var Indexes []db.UniqueIndex

var updatableFields = map[string]string{
	"date":      "date",
	"kind":      "kind",
	"subject":   "subject",
	"note":      "note",
	"studentId": "student_id",
	"classId":   "class_id",
}

func NewRepo(database *bun.DB) store.Interface[*Diary] {
	cfg := store.Config{
		Name:        "diary",
		DefaultSort: "date DESC",
	}
	return store.New(database, cfg, func() *Diary { return new(Diary) })
}
