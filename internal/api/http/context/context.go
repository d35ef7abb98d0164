package context

import (
	"context"

	"github.com/dtroode/wedwisely-server/internal/model"
)

type userKey struct{}

// Manager represents an HTTP request context manager for the authenticated
// user. It provides methods to attach and retrieve the user set by the
// authentication middleware.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext stores the user in the request context.
//
// Parameters:
//   - ctx: The request context
//   - user: The authenticated user as loaded from the store
//
// Returns a new context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	user.PasswordHash = ""
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the user set by SetUserToContext.
//
// Returns the user and a boolean indicating if a user was found.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	if !ok || user.ID == "" {
		return model.User{}, false
	}
	return user, true
}
