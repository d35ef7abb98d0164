package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// UserService is the user management API behind /api/users.
type UserService interface {
	List(ctx context.Context, params model.ListUsersParams) (model.UserPage, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateByID(ctx context.Context, actor model.User, id string, update model.UserUpdate) (model.User, error)
	Deactivate(ctx context.Context, id string) error
	Stats(ctx context.Context) (model.UserStats, error)
	AvatarsEnabled() bool
	UploadAvatar(ctx context.Context, id string, reader io.Reader, size int64, contentType string) error
	GetAvatar(ctx context.Context, id string) (model.Object, error)
	DeleteAvatar(ctx context.Context, id string) error
}

// User serves the /api/users endpoints. Access gates run in middleware.
type User struct {
	service        UserService
	contextManager model.ContextManager
	responder      *respond.Responder
}

func NewUser(service UserService, contextManager model.ContextManager, responder *respond.Responder) *User {
	return &User{
		service:        service,
		contextManager: contextManager,
		responder:      responder,
	}
}

func (h *User) List(c *gin.Context) {
	var query listUsersQuery
	if err := bindQuery(c, &query); err != nil {
		h.responder.Error(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), query.params())
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "", newUserListResponse(page))
}

func (h *User) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "", newStatsResponse(stats))
}

func (h *User) Get(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "", newUserResponse(user))
}

func (h *User) Update(c *gin.Context) {
	actor, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		h.responder.Error(c, apierrors.NewErrAuthenticationRequired())
		return
	}

	var req updateUserRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, err)
		return
	}

	user, err := h.service.UpdateByID(c.Request.Context(), actor, c.Param("id"), req.update())
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "User updated successfully", newUserResponse(user))
}

// Deactivate soft-deletes the user; the record is kept.
func (h *User) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "User deactivated successfully", nil)
}
