package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskvault/taskvault-server/internal/logger"
	"github.com/taskvault/taskvault-server/internal/model"
)

// AuthHeader is the request header carrying the auth token.
const AuthHeader = "x-auth"

// CredentialService resolves presented tokens to live users.
type CredentialService interface {
	GetUserByToken(ctx context.Context, token string) (model.User, model.AuthToken, error)
}

// Authenticate validates the x-auth header and injects the resolved user
// and token record into the request context. Every failure, from a bad
// signature to a revoked token to an unknown user, rejects with the same
// empty 401.
type Authenticate struct {
	credentials    CredentialService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(credentials CredentialService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{credentials: credentials, contextManager: contextManager, logger: logger}
}

// Handle is the gin middleware entry point. It never falls through to
// the protected handler on failure.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString := c.GetHeader(AuthHeader)
	if tokenString == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, token, err := m.credentials.GetUserByToken(c.Request.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: rejected token",
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx := m.contextManager.SetAuthToContext(c.Request.Context(), user, token)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
