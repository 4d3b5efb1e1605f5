package billing

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/db"
	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/store"
)

const (
	MethodCard = "card"
	MethodUPI  = "upi"

	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Package is a subscription plan a school can pay for.
type Package struct {
	bun.BaseModel `bun:"table:packages,alias:pk"`
	store.Base

	Name     string   `bun:"name,notnull" json:"name" validate:"required"`
	Price    float64  `bun:"price,notnull" json:"price" validate:"required,gt=0"`
	Duration int      `bun:"duration_months,notnull" json:"durationMonths" validate:"required,gt=0"`
	Features []string `bun:"features,type:jsonb" json:"features"`
}

// Payment records one payment of a school against a package.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:pa"`
	store.Base

	PackageID string    `bun:"package_id,notnull" json:"packageId" validate:"required"`
	Amount    float64   `bun:"amount,notnull" json:"amount" validate:"required,gt=0"`
	Method    string    `bun:"method,notnull" json:"paymentMethod" validate:"required,oneof=card upi"`
	Status    string    `bun:"status,notnull,default:'pending'" json:"status"`
	Reference string    `bun:"reference" json:"reference"`
	PaidAt    time.Time `bun:"paid_at" json:"paidAt"`
}

var Indexes = []db.UniqueIndex{{
	Table:   "packages",
	Name:    "packages_name_school_uq",
	Columns: []string{"name", "school_id"},
}}

var packageUpdatableFields = map[string]string{
	"name":           "name",
	"price":          "price",
	"durationMonths": "duration_months",
	"features":       "features",
}

var paymentUpdatableFields = map[string]string{
	"status":    "status",
	"reference": "reference",
}

func NewPackageRepo(database *bun.DB) store.Interface[*Package] {
	cfg := store.Config{
		Name:         "package",
		DefaultSort:  "created_at DESC",
		UniqueFields: []string{"name", "schoolId"},
	}
	return store.New(database, cfg, func() *Package { return new(Package) })
}

func NewPaymentRepo(database *bun.DB) store.Interface[*Payment] {
	cfg := store.Config{
		Name:        "payment",
		DefaultSort: "paid_at DESC",
	}
	return store.New(database, cfg, func() *Payment { return new(Payment) })
}
