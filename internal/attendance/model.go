package attendance

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// Attendance is one student's status on one date. A student has at most
// one record per date per school; the unique index is the arbiter under
// concurrent marking.
type Attendance struct {
	bun.BaseModel `bun:"table:attendances,alias:at"`
	store.Base

	StudentID string    `bun:"student_id,notnull" json:"studentId" validate:"required"`
	Date      time.Time `bun:"date,notnull" json:"date" validate:"required"`
	Status    string    `bun:"status,notnull" json:"status" validate:"required,oneof=present absent late"`
	Remark    string    `bun:"remark" json:"remark"`
}

var Indexes = []db.UniqueIndex{{
	Table:   "attendances",
	Name:    "attendances_student_date_school_uq",
	Columns: []string{"student_id", "date", "school_id"},
}}

var updatableFields = map[string]string{
	"status": "status",
	"remark": "remark",
}

func NewRepo(database *bun.DB) store.Interface[*Attendance] {
	cfg := store.Config{
		Name:         "attendance",
		DefaultSort:  "date DESC",
		UniqueFields: []string{"studentId", "date", "schoolId"},
	}
	return store.New(database, cfg, func() *Attendance { return new(Attendance) })
}
