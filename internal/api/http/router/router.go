package router

import (
	"github.com/gin-gonic/gin"

	"github.com/taskvault/taskvault-server/internal/api/http/handler"
	"github.com/taskvault/taskvault-server/internal/api/http/middleware"
	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
	"github.com/taskvault/taskvault-server/internal/service"
)

// Router wires services into the HTTP engine: handlers, request logging,
// and the authentication gate on the /users/me subtree.
type Router struct {
	authService    *service.Auth
	todoService    *service.Todo
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	todoService *service.Todo,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		todoService:    todoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	todoHandler := handler.NewTodo(r.todoService, r.logger)

	users := e.Group("/users")
	users.POST("", authHandler.Register)
	users.POST("/login", authHandler.Login)

	me := users.Group("/me", authenticate.Handle)
	me.GET("", authHandler.Me)
	me.DELETE("/token", authHandler.Logout)
	me.GET("/tokens", authHandler.Sessions)
	me.DELETE("/tokens", authHandler.LogoutAll)

	todos := e.Group("/todos")
	todos.POST("", todoHandler.Create)
	todos.GET("", todoHandler.List)
	todos.GET("/:id", todoHandler.Get)
	todos.PATCH("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	return e
}
