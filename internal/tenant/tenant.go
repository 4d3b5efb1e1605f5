// Package tenant carries the verified school id through the request
// context. The id is set exactly once, by the auth middleware after token
// verification; services never accept a school id from request input.
package tenant

import (
	"context"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/apperr"
)

type ctxKey struct{}

// NewContext returns ctx with the verified school id attached.
func NewContext(ctx context.Context, schoolID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, schoolID)
}

// FromContext returns the school id, if one was attached.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Require returns the school id or a validation error naming the claim.
func Require(ctx context.Context) (string, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return "", apperr.Validation("schoolId", "missing school id on request context")
	}
	return id, nil
}
