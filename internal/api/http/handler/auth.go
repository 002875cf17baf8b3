package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault-server/internal/api/http/middleware"
	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
)

// AuthService defines registration, login and token lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, string, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllTokens(ctx context.Context, userID uuid.UUID) error
	ActiveTokens(ctx context.Context, userID uuid.UUID) ([]model.AuthToken, error)
}

// Auth handles the /users endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userResponse is the only user shape that leaves the server. The
// password hash and token values never appear in a body.
type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type sessionResponse struct {
	IssuedAt time.Time `json:"issuedAt"`
}

type sessionsResponse struct {
	Tokens []sessionResponse `json:"tokens"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{ID: user.ID, Email: user.Email}
}

// Register handles POST /users. The new token travels in the x-auth
// response header, not the body.
func (h *Auth) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.Header(middleware.AuthHeader, token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Login handles POST /users/login.
func (h *Auth) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		// A failed login is always a plain 400, whatever the cause.
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	c.Header(middleware.AuthHeader, token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Me handles GET /users/me.
func (h *Auth) Me(c *gin.Context) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles DELETE /users/me/token. It revokes the token the
// request authenticated with.
func (h *Auth) Logout(c *gin.Context) {
	tokenString := c.GetHeader(middleware.AuthHeader)

	if err := h.authService.RevokeToken(c.Request.Context(), tokenString); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	c.Status(http.StatusOK)
}

// LogoutAll handles DELETE /users/me/tokens, ending every session the
// user holds.
func (h *Auth) LogoutAll(c *gin.Context) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.authService.RevokeAllTokens(c.Request.Context(), user.ID); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	c.Status(http.StatusOK)
}

// Sessions handles GET /users/me/tokens. It reports issuance times only;
// token values are never echoed back.
func (h *Auth) Sessions(c *gin.Context) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	tokens, err := h.authService.ActiveTokens(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := sessionsResponse{Tokens: make([]sessionResponse, 0, len(tokens))}
	for _, t := range tokens {
		resp.Tokens = append(resp.Tokens, sessionResponse{IssuedAt: t.IssuedAt})
	}

	c.JSON(http.StatusOK, resp)
}
