package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// TokenService issues token pairs from user records and resolves presented
// tokens back to current, active users. Tokens are stateless; a password
// change is the only thing that invalidates them before expiry.
type TokenService struct {
	manager model.TokenManager
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, users: users, logger: logger}
}

// Issue signs a fresh pair from the persisted user state.
func (s *TokenService) Issue(user model.User) (model.TokenPair, error) {
	pair, err := s.manager.GenerateTokenPair(model.PayloadFor(user))
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue token pair: %w", err)
	}
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The user is
// re-read so the new tokens carry the current email and role, and a token
// issued before the last password change is refused.
func (s *TokenService) Refresh(ctx context.Context, presented string) (model.User, model.TokenPair, error) {
	claims, err := s.manager.VerifyRefreshToken(presented)
	if err != nil {
		s.logger.Debug("Token service: refresh token rejected",
			"error", err.Error())
		return model.User{}, model.TokenPair{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.TokenPair{}, apierrors.NewErrUserNotFoundOrInactive()
		}
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !user.IsActive() {
		return model.User{}, model.TokenPair{}, apierrors.NewErrUserNotFoundOrInactive()
	}
	if user.ChangedPasswordAfter(claims.IssuedAt) {
		s.logger.Info("Token service: refresh token predates password change",
			"user_id", user.ID)
		return model.User{}, model.TokenPair{}, apierrors.NewErrPasswordChanged()
	}

	pair, err := s.Issue(user)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	return user, pair, nil
}

// Authenticate resolves an access token to the user it was issued for.
func (s *TokenService) Authenticate(ctx context.Context, accessToken string) (model.User, error) {
	claims, err := s.manager.VerifyAccessToken(accessToken)
	if err != nil {
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserNoLongerExists()
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !user.IsActive() {
		return model.User{}, apierrors.NewErrUserDeactivated()
	}

	if user.ChangedPasswordAfter(claims.IssuedAt) {
		return model.User{}, apierrors.NewErrPasswordChanged()
	}

	return user, nil
}
