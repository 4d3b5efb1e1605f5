package auth

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	RoleAdmin      = "admin"      // school administrator, tenant-scoped
	RoleSuperAdmin = "superadmin" // platform operator, may list across tenants
)

// SuperAdmin is an administrator account. Email is the login identity and
// unique across the platform; SchoolID scopes every API call the account
// makes.
type SuperAdmin struct {
	bun.BaseModel `bun:"table:super_admins,alias:sa"`

	ID        string    `bun:"id,pk" json:"id"`
	SchoolID  string    `bun:"school_id,notnull" json:"schoolId"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull,unique" json:"email"`
	Password  string    `bun:"password,notnull" json:"-"`
	Role      string    `bun:"role,notnull,default:'admin'" json:"role"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

type RegisterRequest struct {
	SchoolID string `json:"schoolId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	Admin       *SuperAdmin `json:"admin"`
}
