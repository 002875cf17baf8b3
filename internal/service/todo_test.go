package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-server/internal/mocks"
	"github.com/taskvault/taskvault-server/internal/model"
	"github.com/taskvault/taskvault-server/internal/testutil"
)

func TestTodo_Create(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}

	store.On("Create", mock.Anything, mock.MatchedBy(func(todo model.Todo) bool {
		return todo.Text == "walk the dog" && todo.ID != uuid.Nil
	})).Return(model.Todo{ID: uuid.New(), Text: "walk the dog"}, nil)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	todo, err := svc.Create(ctx, "walk the dog")
	require.NoError(t, err)
	assert.Equal(t, "walk the dog", todo.Text)
}

func TestTodo_Create_EmptyText(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}

	svc := NewTodo(store, testutil.MakeNoopLogger())

	_, err := svc.Create(ctx, "")
	require.ErrorIs(t, err, model.ErrValidation)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTodo_Update_MarkCompleted(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}
	id := uuid.New()

	store.On("GetByID", mock.Anything, id).Return(model.Todo{ID: id, Text: "walk the dog"}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(todo model.Todo) bool {
		return todo.Completed && todo.CompletedAt != nil
	})).Return(model.Todo{ID: id, Text: "walk the dog", Completed: true}, nil)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	completed := true
	todo, err := svc.Update(ctx, id, model.TodoUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, todo.Completed)
}

func TestTodo_Update_TextOnlyClearsCompletion(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}
	id := uuid.New()
	stamp := timeNowPtr()

	store.On("GetByID", mock.Anything, id).Return(model.Todo{
		ID: id, Text: "walk the dog", Completed: true, CompletedAt: stamp,
	}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(todo model.Todo) bool {
		return todo.Text == "feed the cat" && !todo.Completed && todo.CompletedAt == nil
	})).Return(model.Todo{ID: id, Text: "feed the cat"}, nil)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	text := "feed the cat"
	todo, err := svc.Update(ctx, id, model.TodoUpdate{Text: &text})
	require.NoError(t, err)
	assert.False(t, todo.Completed)
}

func timeNowPtr() *time.Time {
	now := time.Now()
	return &now
}

func TestTodo_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}
	id := uuid.New()

	store.On("GetByID", mock.Anything, id).Return(model.Todo{}, model.ErrNotFound)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	_, err := svc.Update(ctx, id, model.TodoUpdate{})
	require.ErrorIs(t, err, model.ErrNotFound)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTodo_Update_EmptyText(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}
	id := uuid.New()

	store.On("GetByID", mock.Anything, id).Return(model.Todo{ID: id, Text: "walk the dog"}, nil)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	empty := ""
	_, err := svc.Update(ctx, id, model.TodoUpdate{Text: &empty})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestTodo_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}
	id := uuid.New()

	store.On("Delete", mock.Anything, id).Return(model.Todo{}, model.ErrNotFound)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	_, err := svc.Delete(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTodo_List(t *testing.T) {
	ctx := context.Background()
	store := &mocks.TodoStore{}

	store.On("List", mock.Anything).Return([]model.Todo{
		{ID: uuid.New(), Text: "one"},
		{ID: uuid.New(), Text: "two"},
	}, nil)

	svc := NewTodo(store, testutil.MakeNoopLogger())

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
