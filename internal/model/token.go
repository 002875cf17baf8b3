package model

import "github.com/google/uuid"

// TokenManager signs and verifies authentication tokens. Generate embeds
// the user ID and the auth purpose label; Parse verifies the signature and
// purpose and returns the embedded identity. Parse is pure: it performs
// no I/O and no store lookups.
type TokenManager interface {
	Generate(userID uuid.UUID) (token string, jti string, err error)
	Parse(token string) (userID uuid.UUID, jti string, err error)
}
