package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
)

// TodoService defines task-list operations.
type TodoService interface {
	Create(ctx context.Context, text string) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error)
	Update(ctx context.Context, id uuid.UUID, upd model.TodoUpdate) (model.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) (model.Todo, error)
}

// Todo handles the /todos endpoints.
type Todo struct {
	todoService TodoService
	logger      *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, logger *logger.Logger) *Todo {
	return &Todo{todoService: todoService, logger: logger}
}

type createTodoRequest struct {
	Text string `json:"text" binding:"required"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type todoResponse struct {
	ID          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

type todoEnvelope struct {
	Todo todoResponse `json:"todo"`
}

type todosEnvelope struct {
	Todos []todoResponse `json:"todos"`
}

func toTodoResponse(todo model.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID,
		Text:        todo.Text,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
	}
}

// Create handles POST /todos.
func (h *Todo) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), req.Text)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(todo))
}

// List handles GET /todos.
func (h *Todo) List(c *gin.Context) {
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	resp := todosEnvelope{Todos: make([]todoResponse, 0, len(todos))}
	for _, todo := range todos {
		resp.Todos = append(resp.Todos, toTodoResponse(todo))
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /todos/:id. A malformed ID is indistinguishable from a
// missing one: both are 404.
func (h *Todo) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	todo, err := h.todoService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, todoEnvelope{Todo: toTodoResponse(todo)})
}

// Update handles PATCH /todos/:id.
func (h *Todo) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, model.TodoUpdate{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, todoEnvelope{Todo: toTodoResponse(todo)})
}

// Delete handles DELETE /todos/:id.
func (h *Todo) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	todo, err := h.todoService.Delete(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, todoEnvelope{Todo: toTodoResponse(todo)})
}
