package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	tokenString, jti, err := j.Generate(u)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	gotUser, gotJTI, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, u, gotUser)
	require.Equal(t, jti, gotJTI)
}

func TestJWT_UniquePerIssuance(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	first, firstJTI, err := j.Generate(u)
	require.NoError(t, err)
	second, secondJTI, err := j.Generate(u)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NotEqual(t, firstJTI, secondJTI)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("different")
	u := uuid.New()

	tokenString, _, err := j.Generate(u)
	require.NoError(t, err)

	_, _, err = other.Parse(tokenString)
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvalidToken))
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	_, _, err := j.Parse("not.a.token")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvalidToken))

	_, _, err = j.Parse("")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvalidToken))
}

func TestJWT_PurposeMismatch(t *testing.T) {
	u := uuid.New()
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID:  u,
		Purpose: "password-reset",
	})
	tokenString, err := foreign.SignedString([]byte("secret"))
	require.NoError(t, err)

	j := NewJWT("secret")
	_, _, err = j.Parse(tokenString)
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvalidToken))
}

func TestJWT_MissingJTI(t *testing.T) {
	u := uuid.New()
	noJTI := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  u,
		Purpose: model.PurposeAuth,
	})
	tokenString, err := noJTI.SignedString([]byte("secret"))
	require.NoError(t, err)

	j := NewJWT("secret")
	_, _, err = j.Parse(tokenString)
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrInvalidToken))
}
