// Package store implements the tenant-scoped repository every resource is
// built on. All reads and writes are keyed by school id: a record owned by
// another tenant is reported as not found, never as a permission error, so
// cross-tenant existence is not leaked. Cross-tenant listing exists only as
// the explicitly named ListAllSchools operation.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
)

// Base carries the fields shared by every persisted resource. Models embed
// it alongside bun.BaseModel.
type Base struct {
	ID        string    `bun:"id,pk" json:"id"`
	SchoolID  string    `bun:"school_id,notnull" json:"schoolId"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

func (b *Base) Meta() *Base { return b }

// Record is satisfied by a pointer to any model embedding Base.
type Record interface {
	Meta() *Base
}

// Config declares the per-resource parameters of a repository: the name
// used in error messages, the default sort expression, and the field set
// reported on unique constraint violations.
type Config struct {
	Name         string
	DefaultSort  string
	UniqueFields []string
}

// Interface is what services program against; tests substitute an
// in-memory implementation.
type Interface[T Record] interface {
	Create(ctx context.Context, schoolID string, rec T) (T, error)
	List(ctx context.Context, schoolID string, page, limit int, filters ...Filter) ([]T, int, error)
	ListAllSchools(ctx context.Context, page, limit int, filters ...Filter) ([]T, int, error)
	Get(ctx context.Context, schoolID, id string) (T, error)
	Update(ctx context.Context, schoolID, id string, rec T, columns ...string) (T, error)
	Delete(ctx context.Context, schoolID, id string) (T, error)
}

type Repo[T Record] struct {
	db    *bun.DB
	cfg   Config
	newFn func() T
}

func New[T Record](db *bun.DB, cfg Config, newFn func() T) *Repo[T] {
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "created_at DESC"
	}
	return &Repo[T]{db: db, cfg: cfg, newFn: newFn}
}

// Create stamps the id, tenant and timestamps, then inserts. A unique
// index violation surfaces as a conflict naming the declared field set;
// the database's own index enforcement is the sole arbiter under
// concurrent creates.
func (r *Repo[T]) Create(ctx context.Context, schoolID string, rec T) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	meta := rec.Meta()
	meta.ID = uuid.NewString()
	meta.SchoolID = schoolID
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return zero, r.mapErr("store.Create", err)
	}
	return rec, nil
}

// List returns one page of the tenant's records plus the filtered total
// irrespective of pagination.
func (r *Repo[T]) List(ctx context.Context, schoolID string, page, limit int, filters ...Filter) ([]T, int, error) {
	if schoolID == "" {
		return nil, 0, apperr.Validation("schoolId", "school id is required")
	}
	return r.list(ctx, &schoolID, page, limit, filters)
}

// ListAllSchools is the administrative cross-tenant listing. It is a
// separately named operation so tenant scoping can never be bypassed by
// accident.
func (r *Repo[T]) ListAllSchools(ctx context.Context, page, limit int, filters ...Filter) ([]T, int, error) {
	return r.list(ctx, nil, page, limit, filters)
}

func (r *Repo[T]) list(ctx context.Context, schoolID *string, page, limit int, filters []Filter) ([]T, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items := make([]T, 0)
	q := r.db.NewSelect().Model(&items)
	if schoolID != nil {
		q = q.Where("school_id = ?", *schoolID)
	}
	for _, f := range filters {
		q = f.apply(q)
	}
	q = q.OrderExpr(r.cfg.DefaultSort)

	total, err := q.Limit(limit).Offset((page - 1) * limit).ScanAndCount(ctx)
	if err != nil {
		return nil, 0, r.mapErr("store.List", err)
	}
	return items, total, nil
}

func (r *Repo[T]) Get(ctx context.Context, schoolID, id string) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	rec := r.newFn()
	err := r.db.NewSelect().
		Model(rec).
		Where("id = ?", id).
		Where("school_id = ?", schoolID).
		Scan(ctx)
	if err != nil {
		return zero, r.mapErr("store.Get", err)
	}
	return rec, nil
}

// Update writes the named columns of rec. The school id column is never
// written, so a record can not migrate between tenants. The fresh row is
// returned.
func (r *Repo[T]) Update(ctx context.Context, schoolID, id string, rec T, columns ...string) (T, error) {
	var zero T
	if schoolID == "" {
		return zero, apperr.Validation("schoolId", "school id is required")
	}

	rec.Meta().UpdatedAt = time.Now().UTC()
	columns = append(columns, "updated_at")

	result, err := r.db.NewUpdate().
		Model(rec).
		Column(columns...).
		Where("id = ?", id).
		Where("school_id = ?", schoolID).
		Exec(ctx)
	if err != nil {
		return zero, r.mapErr("store.Update", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return zero, apperr.Upstream("store.Update", err)
	}
	if rowsAffected == 0 {
		return zero, apperr.NotFound(r.cfg.Name)
	}
	return r.Get(ctx, schoolID, id)
}

// Delete removes the record and returns it so callers can cascade, e.g.
// releasing attachments.
func (r *Repo[T]) Delete(ctx context.Context, schoolID, id string) (T, error) {
	var zero T

	rec, err := r.Get(ctx, schoolID, id)
	if err != nil {
		return zero, err
	}

	result, err := r.db.NewDelete().
		Model(rec).
		Where("id = ?", id).
		Where("school_id = ?", schoolID).
		Exec(ctx)
	if err != nil {
		return zero, r.mapErr("store.Delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return zero, apperr.Upstream("store.Delete", err)
	}
	if rowsAffected == 0 {
		return zero, apperr.NotFound(r.cfg.Name)
	}
	return rec, nil
}

func (r *Repo[T]) mapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(r.cfg.Name)
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
		return apperr.Conflict(r.cfg.Name, r.cfg.UniqueFields...)
	}
	return apperr.Upstream(op, err)
}
