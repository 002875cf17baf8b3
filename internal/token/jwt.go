package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault-server/internal/model"
)

// Claims represents JWT claims with the token purpose and user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID  uuid.UUID `json:"user_id"`
	Purpose string    `json:"purpose"`
}

// JWT implements TokenManager backed by symmetric HMAC. Tokens carry no
// expiry; they stay cryptographically valid until revoked in the store.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Generate creates a signed auth token and returns it with its JTI.
func (j *JWT) Generate(userID uuid.UUID) (string, string, error) {
	now := time.Now()
	jti := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       jti,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:  userID,
		Purpose: model.PurposeAuth,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign auth token: %w", err)
	}

	return tokenString, jti, nil
}

// Parse validates the signature and purpose and extracts the user ID and
// JTI. Any signature, shape, or purpose failure maps to ErrInvalidToken.
func (j *JWT) Parse(tokenString string) (uuid.UUID, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, "", model.ErrInvalidToken
	}
	if claims.Purpose != model.PurposeAuth {
		return uuid.Nil, "", fmt.Errorf("%w: purpose mismatch: %s", model.ErrInvalidToken, claims.Purpose)
	}
	if claims.ID == "" {
		return uuid.Nil, "", fmt.Errorf("%w: missing jti", model.ErrInvalidToken)
	}
	return claims.UserID, claims.ID, nil
}
