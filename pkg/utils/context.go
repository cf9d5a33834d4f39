package utils

import (
	"context"

	"ecommerce-api/internal/data/entity"

	"github.com/google/uuid"
)

type contextKey string

const userKey contextKey = "auth_user"

// AuthUser is the minimal identity projection attached to the request
// context after authentication.
type AuthUser struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  entity.Role
}

// SetUserContext attaches the authenticated user to the context.
func SetUserContext(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the authenticated user set by the auth middleware.
func GetUserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(userKey).(*AuthUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
