package context

import (
	"context"

	"github.com/taskvault/taskvault-server/internal/model"
)

type userKey struct{}
type tokenKey struct{}

// Manager stores the authenticated user and their token record in the
// request context so handlers downstream of the auth middleware can read
// them back.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAuthToContext returns a context carrying the authenticated user and
// the token record that proved their identity.
func (m *Manager) SetAuthToContext(ctx context.Context, user model.User, token model.AuthToken) context.Context {
	ctx = context.WithValue(ctx, userKey{}, user)
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetUserFromContext retrieves the authenticated user, if any.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

// GetTokenFromContext retrieves the authenticating token record, if any.
func (m *Manager) GetTokenFromContext(ctx context.Context) (model.AuthToken, bool) {
	token, ok := ctx.Value(tokenKey{}).(model.AuthToken)
	return token, ok
}
