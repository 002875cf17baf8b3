package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
)

// minPasswordLength mirrors the minimum enforced at registration.
const minPasswordLength = 6

// Auth owns the credential lifecycle: it registers users, verifies
// logins, issues tokens, and resolves presented tokens back to users.
// A token authenticates only while its persisted row is live, so
// revocation takes effect immediately regardless of signature validity.
type Auth struct {
	users  model.UserStore
	tokens model.AuthTokenStore
	hasher model.PasswordHasher
	codec  model.TokenManager
	logger *logger.Logger
}

func NewAuth(
	users model.UserStore,
	tokens model.AuthTokenStore,
	hasher model.PasswordHasher,
	codec model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		codec:  codec,
		logger: logger,
	}
}

// Register creates a user from email and password and issues their first
// token. The plaintext password is hashed and discarded.
func (a *Auth) Register(ctx context.Context, email, plaintext string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if err := validateCredentials(email, plaintext); err != nil {
		return model.User{}, "", err
	}

	existing, err := a.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, "", model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.users.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// The unique index may still fire on a concurrent registration.
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, "", model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.issueToken(ctx, user)
	if err != nil {
		return model.User{}, "", err
	}

	a.logger.Info("Auth service: user registered",
		"email", email,
		"user_id", user.ID)

	return user, tokenString, nil
}

// Login verifies credentials and issues a fresh token. Failures do not
// reveal whether the email exists. Each login appends a token; earlier
// tokens stay valid until individually revoked.
func (a *Auth) Login(ctx context.Context, email, plaintext string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(plaintext, user.PasswordHash) {
		return model.User{}, "", model.ErrInvalidCredentials
	}

	tokenString, err := a.issueToken(ctx, user)
	if err != nil {
		return model.User{}, "", err
	}

	a.logger.Info("Auth service: user logged in",
		"email", email,
		"user_id", user.ID)

	return user, tokenString, nil
}

// GetUserByToken resolves a presented token to its user and token
// record. Decode failure, a missing or revoked row, a hash mismatch, and
// an unknown user all collapse into ErrUnauthenticated.
func (a *Auth) GetUserByToken(ctx context.Context, tokenString string) (model.User, model.AuthToken, error) {
	userID, jti, err := a.codec.Parse(tokenString)
	if err != nil {
		return model.User{}, model.AuthToken{}, model.ErrUnauthenticated
	}

	rec, err := a.tokens.GetByJTI(ctx, jti)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.AuthToken{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, model.AuthToken{}, fmt.Errorf("failed to get auth token: %w", err)
	}

	if err := validateRecord(rec, userID, hashToken(tokenString)); err != nil {
		return model.User{}, model.AuthToken{}, err
	}

	user, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.AuthToken{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, model.AuthToken{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, rec, nil
}

// RevokeToken invalidates one token. Revoking a token that is already
// revoked or was never persisted is a no-op success.
func (a *Auth) RevokeToken(ctx context.Context, tokenString string) error {
	_, jti, err := a.codec.Parse(tokenString)
	if err != nil {
		return err
	}
	if err := a.tokens.RevokeByJTI(ctx, jti); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// RevokeAllTokens invalidates every live token the user holds.
func (a *Auth) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	if err := a.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// ActiveTokens lists the user's live tokens in issuance order.
func (a *Auth) ActiveTokens(ctx context.Context, userID uuid.UUID) ([]model.AuthToken, error) {
	tokens, err := a.tokens.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// issueToken signs a token for the user and appends its record to the
// store. It never disturbs previously issued tokens.
func (a *Auth) issueToken(ctx context.Context, user model.User) (string, error) {
	tokenString, jti, err := a.codec.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	rec := model.AuthToken{
		ID:        uuid.New(),
		JTI:       jti,
		UserID:    user.ID,
		TokenHash: hashToken(tokenString),
		Purpose:   model.PurposeAuth,
		IssuedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.tokens.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}

	return tokenString, nil
}

func validateCredentials(email, plaintext string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email is not valid", model.ErrValidation)
	}
	if len(plaintext) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, minPasswordLength)
	}
	return nil
}

func validateRecord(rec model.AuthToken, userID uuid.UUID, presentedHash []byte) error {
	if rec.RevokedAt != nil {
		return model.ErrUnauthenticated
	}
	if rec.UserID != userID {
		return model.ErrUnauthenticated
	}
	if !equalBytes(rec.TokenHash, presentedHash) {
		return model.ErrUnauthenticated
	}
	return nil
}

func hashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func equalBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
