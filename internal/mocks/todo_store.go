package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault-server/internal/model"
)

// TodoStore mocks the model.TodoStore interface
type TodoStore struct {
	mock.Mock
}

func (_m *TodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ret := _m.Called(ctx, todo)
	return ret.Get(0).(model.Todo), ret.Error(1)
}

func (_m *TodoStore) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Todo), ret.Error(1)
}

func (_m *TodoStore) List(ctx context.Context) ([]model.Todo, error) {
	ret := _m.Called(ctx)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]model.Todo), ret.Error(1)
}

func (_m *TodoStore) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ret := _m.Called(ctx, todo)
	return ret.Get(0).(model.Todo), ret.Error(1)
}

func (_m *TodoStore) Delete(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Todo), ret.Error(1)
}
