package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoStore defines persistence operations for todo items.
type TodoStore interface {
	Create(ctx context.Context, todo Todo) (Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) (Todo, error)
	List(ctx context.Context) ([]Todo, error)
	Update(ctx context.Context, todo Todo) (Todo, error)
	Delete(ctx context.Context, id uuid.UUID) (Todo, error)
}

// TodoUpdate carries the mutable fields of a todo. Nil means the field
// was not sent.
type TodoUpdate struct {
	Text      *string
	Completed *bool
}

// Todo is a single task-list item. CompletedAt is set when the item is
// marked completed and cleared when it is reopened.
type Todo struct {
	ID          uuid.UUID
	Text        string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
