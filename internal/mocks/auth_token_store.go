package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault-server/internal/model"
)

// AuthTokenStore mocks the model.AuthTokenStore interface
type AuthTokenStore struct {
	mock.Mock
}

func (_m *AuthTokenStore) Create(ctx context.Context, token model.AuthToken) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

func (_m *AuthTokenStore) GetByJTI(ctx context.Context, jti string) (model.AuthToken, error) {
	ret := _m.Called(ctx, jti)
	return ret.Get(0).(model.AuthToken), ret.Error(1)
}

func (_m *AuthTokenStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.AuthToken, error) {
	ret := _m.Called(ctx, userID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]model.AuthToken), ret.Error(1)
}

func (_m *AuthTokenStore) RevokeByJTI(ctx context.Context, jti string) error {
	ret := _m.Called(ctx, jti)
	return ret.Error(0)
}

func (_m *AuthTokenStore) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}
