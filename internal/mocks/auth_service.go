package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault-server/internal/model"
)

// AuthService mocks the handler.AuthService interface
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, email, password string) (model.User, string, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.User), ret.String(1), ret.Error(2)
}

func (_m *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.User), ret.String(1), ret.Error(2)
}

func (_m *AuthService) RevokeToken(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

func (_m *AuthService) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

func (_m *AuthService) ActiveTokens(ctx context.Context, userID uuid.UUID) ([]model.AuthToken, error) {
	ret := _m.Called(ctx, userID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]model.AuthToken), ret.Error(1)
}
