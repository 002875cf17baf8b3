package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault-server/internal/model"
)

// TodoService mocks the handler.TodoService interface
type TodoService struct {
	mock.Mock
}

func (_m *TodoService) Create(ctx context.Context, text string) (model.Todo, error) {
	ret := _m.Called(ctx, text)
	return ret.Get(0).(model.Todo), ret.Error(1)
}

func (_m *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	ret := _m.Called(ctx)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]model.Todo), ret.Error(1)
}

func (_m *TodoService) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Todo), ret.Error(1)
}

func (_m *TodoService) Update(ctx context.Context, id uuid.UUID, upd model.TodoUpdate) (model.Todo, error) {
	ret := _m.Called(ctx, id, upd)
	return ret.Get(0).(model.Todo), ret.Error(1)
}

func (_m *TodoService) Delete(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Todo), ret.Error(1)
}
