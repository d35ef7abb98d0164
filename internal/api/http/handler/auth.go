package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// AuthService is the account-level API behind /api/auth.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams, actor *model.User) (model.AuthResult, error)
	CreateAdmin(ctx context.Context, params model.RegisterParams, actor *model.User) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (model.AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (model.User, error)
	UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) (model.User, error)
	ChangePassword(ctx context.Context, id, current, next string) error
}

// Auth serves the /api/auth endpoints.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	responder      *respond.Responder
}

func NewAuth(service AuthService, contextManager model.ContextManager, responder *respond.Responder) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		responder:      responder,
	}
}

// Register creates an account. An admin calling with a token may pick the
// role; anyone else is registered as a user.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req.params(), h.actor(c))
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.Created(c, "User registered successfully", newAuthResponse(result))
}

func (h *Auth) CreateAdmin(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, err)
		return
	}

	result, err := h.service.CreateAdmin(c.Request.Context(), req.params(), h.actor(c))
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.Created(c, "Admin user created successfully", newAuthResponse(result))
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, apierrors.NewErrValidation("Email and password are required"))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "Login successful", newAuthResponse(result))
}

func (h *Auth) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, apierrors.NewErrValidation("Refresh token is required"))
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "Token refreshed successfully", refreshResponse{
		User: refreshUser{
			ID:        result.User.ID,
			Email:     result.User.Email,
			Role:      result.User.Role,
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
		},
		Tokens: newTokensResponse(result.Tokens),
	})
}

func (h *Auth) Me(c *gin.Context) {
	actor, ok := h.mustActor(c)
	if !ok {
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "", newUserResponse(user))
}

func (h *Auth) UpdateProfile(c *gin.Context) {
	actor, ok := h.mustActor(c)
	if !ok {
		return
	}

	var req profileRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), actor.ID, model.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "Profile updated successfully", newUserResponse(user))
}

func (h *Auth) ChangePassword(c *gin.Context) {
	actor, ok := h.mustActor(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		h.responder.Error(c, apierrors.NewErrValidation("Current password and new password are required"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor.ID, req.CurrentPassword, req.NewPassword); err != nil {
		h.responder.Error(c, err)
		return
	}

	h.responder.OK(c, "Password changed successfully", nil)
}

// Logout is advisory: tokens are stateless and the client discards them.
func (h *Auth) Logout(c *gin.Context) {
	h.responder.OK(c, "Logout successful. Please remove tokens from client storage.", nil)
}

func (h *Auth) actor(c *gin.Context) *model.User {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		return nil
	}
	return &user
}

func (h *Auth) mustActor(c *gin.Context) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		h.responder.Error(c, apierrors.NewErrAuthenticationRequired())
		return model.User{}, false
	}
	return user, true
}
