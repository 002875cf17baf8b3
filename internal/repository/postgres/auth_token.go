package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskvault/taskvault-server/internal/model"
)

var _ model.AuthTokenStore = (*AuthTokenRepository)(nil)

type AuthTokenRepository struct {
	db *Connection
}

func NewAuthTokenRepository(db *Connection) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

func (r *AuthTokenRepository) Create(ctx context.Context, token model.AuthToken) error {
	const query = `
        INSERT INTO auth_tokens (
            id, jti, user_id, token_hash, purpose, issued_at, revoked_at, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
    `

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, query,
		token.ID, token.JTI, token.UserID, token.TokenHash, token.Purpose,
		token.IssuedAt, token.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create auth token: %w", err)
	}
	return nil
}

func (r *AuthTokenRepository) GetByJTI(ctx context.Context, jti string) (model.AuthToken, error) {
	const query = `
        SELECT id, jti, user_id, token_hash, purpose, issued_at, revoked_at, created_at, updated_at
        FROM auth_tokens WHERE jti = $1
    `
	var t model.AuthToken
	err := r.db.QueryRow(ctx, query, jti).Scan(
		&t.ID, &t.JTI, &t.UserID, &t.TokenHash, &t.Purpose,
		&t.IssuedAt, &t.RevokedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AuthToken{}, model.ErrNotFound
		}
		return model.AuthToken{}, fmt.Errorf("failed to get auth token by jti: %w", err)
	}
	return t, nil
}

// ListByUser returns the user's live tokens in issuance order.
func (r *AuthTokenRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.AuthToken, error) {
	const query = `
        SELECT id, jti, user_id, token_hash, purpose, issued_at, revoked_at, created_at, updated_at
        FROM auth_tokens WHERE user_id = $1 AND revoked_at IS NULL
        ORDER BY issued_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list auth tokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.AuthToken
	for rows.Next() {
		var t model.AuthToken
		if err := rows.Scan(
			&t.ID, &t.JTI, &t.UserID, &t.TokenHash, &t.Purpose,
			&t.IssuedAt, &t.RevokedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan auth token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate auth tokens: %w", err)
	}
	return tokens, nil
}

// RevokeByJTI marks a token revoked. Revoking an absent or already
// revoked token is a no-op.
func (r *AuthTokenRepository) RevokeByJTI(ctx context.Context, jti string) error {
	const query = `
        UPDATE auth_tokens SET revoked_at = NOW(), updated_at = NOW()
        WHERE jti = $1 AND revoked_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, jti); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}

func (r *AuthTokenRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	const query = `
        UPDATE auth_tokens SET revoked_at = NOW(), updated_at = NOW()
        WHERE user_id = $1 AND revoked_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to revoke auth tokens by user: %w", err)
	}
	return nil
}
