package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
)

// Store is the persistence needed by the auth service; tests substitute
// an in-memory implementation.
type Store interface {
	Create(ctx context.Context, admin *SuperAdmin) (*SuperAdmin, error)
	GetByEmail(ctx context.Context, email string) (*SuperAdmin, error)
}

// Claims is the verified identity attached to every request. SchoolID is
// the tenant key; services never accept one from request input.
type Claims struct {
	SchoolID string `json:"schoolId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	store    Store
	secret   []byte
	tokenTTL time.Duration
}

func NewService(store Store, secret string, tokenTTL time.Duration) *Service {
	return &Service{store: store, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SuperAdmin, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Upstream("auth.Register", err)
	}

	admin := &SuperAdmin{
		SchoolID: req.SchoolID,
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     RoleAdmin,
	}
	return s.store.Create(ctx, admin)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		// Wrong email and wrong password are indistinguishable on purpose.
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation("email", "invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Validation("email", "invalid credentials")
	}

	token, err := s.signToken(admin)
	if err != nil {
		return nil, apperr.Upstream("auth.Login", err)
	}

	return &LoginResponse{AccessToken: token, Admin: admin}, nil
}

func (s *Service) signToken(admin *SuperAdmin) (string, error) {
	now := time.Now()
	claims := Claims{
		SchoolID: admin.SchoolID,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates an access token.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
