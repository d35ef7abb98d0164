package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// Guard gates routes on the user stored by Authenticate.
type Guard struct {
	contextManager model.ContextManager
	responder      *respond.Responder
}

func NewGuard(contextManager model.ContextManager, responder *respond.Responder) *Guard {
	return &Guard{contextManager: contextManager, responder: responder}
}

// Authorize admits only users holding one of roles.
func (g *Guard) Authorize(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := g.contextManager.GetUserFromContext(c.Request.Context())
		if !ok {
			g.responder.Error(c, apierrors.NewErrAuthenticationRequired())
			return
		}
		if !slices.Contains(roles, user.Role) {
			g.responder.Error(c, apierrors.NewErrRoleNotAuthorized(string(user.Role)))
			return
		}
		c.Next()
	}
}

// CanAccessUserData admits admins and the user named by the :id parameter.
func (g *Guard) CanAccessUserData() gin.HandlerFunc {
	return g.selfOrAdmin("access")
}

// CanModifyUserData is CanAccessUserData for write routes.
func (g *Guard) CanModifyUserData() gin.HandlerFunc {
	return g.selfOrAdmin("modify")
}

func (g *Guard) selfOrAdmin(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			g.responder.Error(c, apierrors.NewErrUserIDRequired())
			return
		}

		user, ok := g.contextManager.GetUserFromContext(c.Request.Context())
		if !ok {
			g.responder.Error(c, apierrors.NewErrAuthenticationRequired())
			return
		}

		if user.IsAdmin() || user.ID == id {
			c.Next()
			return
		}

		g.responder.Error(c, apierrors.NewErrAccessDenied(action))
	}
}
