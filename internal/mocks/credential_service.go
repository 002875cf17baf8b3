package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault-server/internal/model"
)

// CredentialService mocks the middleware.CredentialService interface
type CredentialService struct {
	mock.Mock
}

func (_m *CredentialService) GetUserByToken(ctx context.Context, token string) (model.User, model.AuthToken, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(model.User), ret.Get(1).(model.AuthToken), ret.Error(2)
}
