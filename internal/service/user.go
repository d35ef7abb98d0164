package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// MaxAvatarSize caps avatar uploads.
const MaxAvatarSize = 5 << 20

var avatarContentTypes = []string{"image/jpeg", "image/png", "image/webp"}

// User serves the admin and self-service user management endpoints.
type User struct {
	users   model.UserStore
	storage model.Storage
	logger  *logger.Logger
}

// NewUser creates the user service. storage may be nil, in which case avatar
// operations report ErrAvatarsDisabled.
func NewUser(users model.UserStore, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		users:   users,
		storage: storage,
		logger:  logger,
	}
}

// ErrAvatarsDisabled is returned when no object storage is configured.
var ErrAvatarsDisabled = errors.New("avatar storage is not configured")

func (s *User) List(ctx context.Context, params model.ListUsersParams) (model.UserPage, error) {
	params = params.Normalize()
	if params.Role != nil && !params.Role.Valid() {
		return model.UserPage{}, apierrors.NewErrValidation("Role must be one of user, vendor, admin")
	}
	if !model.SortableUserFields[params.SortBy] {
		return model.UserPage{}, apierrors.NewErrValidation(fmt.Sprintf("Cannot sort by '%s'", params.SortBy))
	}

	users, total, err := s.users.List(ctx, params)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return model.UserPage{}, fmt.Errorf("failed to list users: %w", err)
	}

	return model.UserPage{
		Users:      users,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: (total + params.Limit - 1) / params.Limit,
	}, nil
}

func (s *User) GetByID(ctx context.Context, id string) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserNotFound(id)
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateByID applies update to the user with id. Role and status changes are
// dropped unless actor is an admin.
func (s *User) UpdateByID(ctx context.Context, actor model.User, id string, update model.UserUpdate) (model.User, error) {
	if !actor.IsAdmin() {
		if update.Role != nil || update.Status != nil {
			s.logger.Info("User service: dropping privileged fields from non-admin update",
				"actor_id", actor.ID,
				"user_id", id)
		}
		update.Role = nil
		update.Status = nil
	}
	if update.Role != nil && !update.Role.Valid() {
		return model.User{}, apierrors.NewErrValidation("Role must be one of user, vendor, admin")
	}
	if update.Status != nil && !update.Status.Valid() {
		return model.User{}, apierrors.NewErrValidation("Status must be one of active, deactivated")
	}
	if err := validateNames(update.FirstName, update.LastName); err != nil {
		return model.User{}, err
	}
	update.FirstName = trimmed(update.FirstName)
	update.LastName = trimmed(update.LastName)

	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserNotFound(id)
		}
		s.logger.Error("User service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"actor_id", actor.ID,
		"user_id", id)

	return user, nil
}

// Deactivate soft-deletes a user.
func (s *User) Deactivate(ctx context.Context, id string) error {
	if err := s.users.Deactivate(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrUserNotFound(id)
		}
		s.logger.Error("User service: failed to deactivate user",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	s.logger.Info("User service: user deactivated",
		"user_id", id)

	return nil
}

func (s *User) Stats(ctx context.Context) (model.UserStats, error) {
	stats, err := s.users.Stats(ctx)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}

// AvatarsEnabled reports whether object storage is configured.
func (s *User) AvatarsEnabled() bool {
	return s.storage != nil
}

func (s *User) UploadAvatar(ctx context.Context, id string, reader io.Reader, size int64, contentType string) error {
	if s.storage == nil {
		return ErrAvatarsDisabled
	}
	if !slices.Contains(avatarContentTypes, contentType) {
		return apierrors.NewErrValidation("Avatar must be a JPEG, PNG or WebP image")
	}
	if size <= 0 || size > MaxAvatarSize {
		return apierrors.NewErrValidation(fmt.Sprintf("Avatar must be between 1 byte and %d MiB", MaxAvatarSize>>20))
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.storage.Upload(ctx, avatarKey(id), io.LimitReader(reader, size), size, contentType); err != nil {
		s.logger.Error("User service: failed to upload avatar",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to upload avatar: %w", err)
	}

	return nil
}

// GetAvatar opens the stored avatar. The caller closes Body.
func (s *User) GetAvatar(ctx context.Context, id string) (model.Object, error) {
	if s.storage == nil {
		return model.Object{}, ErrAvatarsDisabled
	}

	obj, err := s.storage.Download(ctx, avatarKey(id))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Object{}, apierrors.NewErrAvatarNotFound()
		}
		return model.Object{}, fmt.Errorf("failed to download avatar: %w", err)
	}

	return obj, nil
}

func (s *User) DeleteAvatar(ctx context.Context, id string) error {
	if s.storage == nil {
		return ErrAvatarsDisabled
	}

	exists, err := s.storage.Exists(ctx, avatarKey(id))
	if err != nil {
		return fmt.Errorf("failed to check avatar: %w", err)
	}
	if !exists {
		return apierrors.NewErrAvatarNotFound()
	}

	if err := s.storage.Delete(ctx, avatarKey(id)); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}

	return nil
}

func avatarKey(userID string) string {
	return "avatars/" + userID
}
