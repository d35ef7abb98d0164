package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// Authenticator resolves an access token to a current, active user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request
// context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	responder      *respond.Responder
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	authenticator Authenticator,
	contextManager model.ContextManager,
	responder *respond.Responder,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		authenticator:  authenticator,
		contextManager: contextManager,
		responder:      responder,
		logger:         logger,
	}
}

// Required rejects requests without a valid bearer token.
func (m *Authenticate) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			m.responder.Error(c, apierrors.NewErrMissingAuthorizationToken())
			return
		}
		m.authenticate(c, token)
	}
}

// Optional lets anonymous requests through but still rejects a bad token.
func (m *Authenticate) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		m.authenticate(c, token)
	}
}

func (m *Authenticate) authenticate(c *gin.Context, token string) {
	ctx := c.Request.Context()

	user, err := m.authenticator.Authenticate(ctx, token)
	if err != nil {
		m.logger.Debug("HTTP: authentication failed",
			"path", c.Request.URL.Path,
			"error", err.Error())
		m.responder.Error(c, err)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(ctx, user))
	c.Next()
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
