package model

import "context"

// ContextManager stores and retrieves the authenticated user and the
// token record that proved their identity for the current request.
type ContextManager interface {
	SetAuthToContext(ctx context.Context, user User, token AuthToken) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	GetTokenFromContext(ctx context.Context) (AuthToken, bool)
}
