package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PurposeAuth is the purpose label embedded in authentication tokens.
// It is the only token class issued today.
const PurposeAuth = "auth"

// AuthTokenStore persists issued tokens. A token authenticates only while
// its row is live (revoked_at IS NULL); cryptographic validity alone is
// never enough.
type AuthTokenStore interface {
	Create(ctx context.Context, token AuthToken) error
	GetByJTI(ctx context.Context, jti string) (AuthToken, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]AuthToken, error)
	RevokeByJTI(ctx context.Context, jti string) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// AuthToken is one issued credential for a user. Rows are append-only;
// revocation sets RevokedAt instead of deleting.
type AuthToken struct {
	ID        uuid.UUID
	JTI       string
	UserID    uuid.UUID
	TokenHash []byte
	Purpose   string
	IssuedAt  time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
