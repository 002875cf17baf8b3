package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskvault/taskvault-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	const query = `
        INSERT INTO todos (id, text, completed, completed_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING id, text, completed, completed_at, created_at, updated_at
    `

	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}

	var saved model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.ID, todo.Text, todo.Completed, todo.CompletedAt,
	).Scan(
		&saved.ID, &saved.Text, &saved.Completed, &saved.CompletedAt,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return saved, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	const query = `
        SELECT id, text, completed, completed_at, created_at, updated_at
        FROM todos WHERE id = $1
    `
	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID, &todo.Text, &todo.Completed, &todo.CompletedAt,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}
	return todo, nil
}

func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	const query = `
        SELECT id, text, completed, completed_at, created_at, updated_at
        FROM todos ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(
			&todo.ID, &todo.Text, &todo.Completed, &todo.CompletedAt,
			&todo.CreatedAt, &todo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	const query = `
        UPDATE todos SET text = $2, completed = $3, completed_at = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING id, text, completed, completed_at, created_at, updated_at
    `
	var saved model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.ID, todo.Text, todo.Completed, todo.CompletedAt,
	).Scan(
		&saved.ID, &saved.Text, &saved.Completed, &saved.CompletedAt,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}
	return saved, nil
}

// Delete removes the todo and returns the deleted row.
func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	const query = `
        DELETE FROM todos WHERE id = $1
        RETURNING id, text, completed, completed_at, created_at, updated_at
    `
	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID, &todo.Text, &todo.Completed, &todo.CompletedAt,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to delete todo: %w", err)
	}
	return todo, nil
}
