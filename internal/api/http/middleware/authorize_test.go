package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	httpctx "github.com/dtroode/wedwisely-server/internal/api/http/context"
	"github.com/dtroode/wedwisely-server/internal/model"
)

const (
	selfID  = "65f0c0ffee0000000000aaaa"
	otherID = "65f0c0ffee0000000000bbbb"
)

// asUser stands in for Authenticate.
func asUser(cm *httpctx.Manager, user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Request = c.Request.WithContext(cm.SetUserToContext(c.Request.Context(), *user))
		}
		c.Next()
	}
}

func TestGuard_Authorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		user        *model.User
		roles       []model.Role
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no user",
			roles:       []model.Role{model.RoleAdmin},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
		{
			name:        "wrong role",
			user:        &model.User{ID: selfID, Role: model.RoleVendor},
			roles:       []model.Role{model.RoleAdmin},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Role 'vendor' is not authorized to access this resource",
		},
		{
			name:       "allowed role",
			user:       &model.User{ID: selfID, Role: model.RoleVendor},
			roles:      []model.Role{model.RoleAdmin, model.RoleVendor},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cm := httpctx.NewManager()
			g := NewGuard(cm, newResponder())

			rec := serve(t, http.MethodGet, "/stats", "/stats", nil, asUser(cm, tt.user), g.Authorize(tt.roles...), ok)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}

func TestGuard_SelfOrAdmin(t *testing.T) {
	t.Parallel()

	self := &model.User{ID: selfID, Role: model.RoleUser}
	vendor := &model.User{ID: selfID, Role: model.RoleVendor}
	admin := &model.User{ID: otherID, Role: model.RoleAdmin}

	tests := []struct {
		name        string
		user        *model.User
		modify      bool
		target      string
		wantStatus  int
		wantMessage string
	}{
		{name: "self may access", user: self, target: selfID, wantStatus: http.StatusOK},
		{name: "vendor self may access", user: vendor, target: selfID, wantStatus: http.StatusOK},
		{name: "admin may access others", user: admin, target: selfID, wantStatus: http.StatusOK},
		{
			name:        "other user denied",
			user:        self,
			target:      otherID,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Access denied. You can only access your own data.",
		},
		{
			name:        "other user may not modify",
			user:        vendor,
			modify:      true,
			target:      otherID,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Access denied. You can only modify your own data.",
		},
		{name: "admin may modify others", user: admin, modify: true, target: selfID, wantStatus: http.StatusOK},
		{
			name:        "no user",
			target:      selfID,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cm := httpctx.NewManager()
			g := NewGuard(cm, newResponder())

			gate := g.CanAccessUserData()
			if tt.modify {
				gate = g.CanModifyUserData()
			}

			rec := serve(t, http.MethodGet, "/users/:id", "/users/"+tt.target, nil, asUser(cm, tt.user), gate, ok)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}

func TestGuard_MissingID(t *testing.T) {
	t.Parallel()
	cm := httpctx.NewManager()
	g := NewGuard(cm, newResponder())

	rec := serve(t, http.MethodGet, "/users", "/users", nil, asUser(cm, &model.User{ID: selfID}), g.CanAccessUserData(), ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User ID is required", errorMessage(t, rec))
}
