package auth

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

type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, admin *SuperAdmin) (*SuperAdmin, error) {
	admin.ID = uuid.NewString()
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.db.NewInsert().Model(admin).Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
			return nil, apperr.Conflict("admin", "email")
		}
		return nil, apperr.Upstream("auth.Create", err)
	}
	return admin, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*SuperAdmin, error) {
	admin := new(SuperAdmin)
	err := r.db.NewSelect().Model(admin).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("admin")
		}
		return nil, apperr.Upstream("auth.GetByEmail", err)
	}
	return admin, nil
}
