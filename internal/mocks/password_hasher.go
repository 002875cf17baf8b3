package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher mocks the model.PasswordHasher interface
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(plaintext string) (string, error) {
	ret := _m.Called(plaintext)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(plaintext, hash string) bool {
	ret := _m.Called(plaintext, hash)
	return ret.Bool(0)
}
