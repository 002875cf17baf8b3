package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault-server/internal/model"
)

// ContextManager mocks the model.ContextManager interface
type ContextManager struct {
	mock.Mock
}

func (_m *ContextManager) SetAuthToContext(ctx context.Context, user model.User, token model.AuthToken) context.Context {
	ret := _m.Called(ctx, user, token)
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.User), ret.Bool(1)
}

func (_m *ContextManager) GetTokenFromContext(ctx context.Context) (model.AuthToken, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.AuthToken), ret.Bool(1)
}
