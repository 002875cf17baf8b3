package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
)

// Todo provides task-list CRUD on top of the store.
type Todo struct {
	store  model.TodoStore
	logger *logger.Logger
}

func NewTodo(store model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{store: store, logger: logger}
}

func (s *Todo) Create(ctx context.Context, text string) (model.Todo, error) {
	if text == "" {
		return model.Todo{}, fmt.Errorf("%w: text is required", model.ErrValidation)
	}

	todo, err := s.store.Create(ctx, model.Todo{
		ID:   uuid.New(),
		Text: text,
	})
	if err != nil {
		s.logger.Error("Todo service: failed to create todo",
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

func (s *Todo) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *Todo) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	todo, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// Update applies a partial update. Marking a todo completed stamps
// CompletedAt; any other update clears completion entirely.
func (s *Todo) Update(ctx context.Context, id uuid.UUID, upd model.TodoUpdate) (model.Todo, error) {
	todo, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	if upd.Text != nil {
		if *upd.Text == "" {
			return model.Todo{}, fmt.Errorf("%w: text must not be empty", model.ErrValidation)
		}
		todo.Text = *upd.Text
	}

	if upd.Completed != nil && *upd.Completed {
		now := time.Now()
		todo.Completed = true
		todo.CompletedAt = &now
	} else {
		todo.Completed = false
		todo.CompletedAt = nil
	}

	saved, err := s.store.Update(ctx, todo)
	if err != nil {
		return model.Todo{}, err
	}
	return saved, nil
}

func (s *Todo) Delete(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	todo, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}
