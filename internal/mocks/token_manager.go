package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TokenManager mocks the model.TokenManager interface
type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) Generate(userID uuid.UUID) (string, string, error) {
	ret := _m.Called(userID)
	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_m *TokenManager) Parse(token string) (uuid.UUID, string, error) {
	ret := _m.Called(token)
	return ret.Get(0).(uuid.UUID), ret.String(1), ret.Error(2)
}
