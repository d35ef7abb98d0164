package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/wedwisely-server/internal/apierrors"
	servermocks "github.com/dtroode/wedwisely-server/internal/mocks"
	"github.com/dtroode/wedwisely-server/internal/model"
	"github.com/dtroode/wedwisely-server/internal/testutil"
)

func TestUser_List(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes params and computes pages", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		users.On("List", ctx, model.ListUsersParams{Page: 1, Limit: 100, SortBy: "createdAt", SortOrder: model.SortDesc}).
			Return([]model.User{{ID: "a"}, {ID: "b"}}, int64(201), nil)

		page, err := NewUser(users, nil, testutil.MakeNoopLogger()).List(ctx, model.ListUsersParams{Page: -3, Limit: 500})
		require.NoError(t, err)
		assert.Len(t, page.Users, 2)
		assert.Equal(t, int64(1), page.Page)
		assert.Equal(t, int64(100), page.Limit)
		assert.Equal(t, int64(201), page.Total)
		assert.Equal(t, int64(3), page.TotalPages)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		users.On("List", ctx, mock.Anything).Return([]model.User{}, int64(0), nil)

		page, err := NewUser(users, nil, testutil.MakeNoopLogger()).List(ctx, model.ListUsersParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.TotalPages)
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		_, err := NewUser(servermocks.NewUserStore(t), nil, testutil.MakeNoopLogger()).List(ctx, model.ListUsersParams{SortBy: "password"})
		assert.True(t, apierrors.HasCode(err, apierrors.CodeValidation))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		role := model.Role("planner")
		_, err := NewUser(servermocks.NewUserStore(t), nil, testutil.MakeNoopLogger()).List(ctx, model.ListUsersParams{Role: &role})
		assert.True(t, apierrors.HasCode(err, apierrors.CodeValidation))
	})
}

func TestUser_UpdateByID(t *testing.T) {
	ctx := context.Background()
	admin := model.User{ID: "admin", Role: model.RoleAdmin, Status: model.StatusActive}
	self := model.User{ID: testUserID, Role: model.RoleUser, Status: model.StatusActive}

	vendor := model.RoleVendor
	deactivated := model.StatusDeactivated
	name := "Jane"

	t.Run("admin may change role and status", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		users.On("Update", ctx, testUserID, mock.MatchedBy(func(u model.UserUpdate) bool {
			return u.Role != nil && *u.Role == vendor && u.Status != nil && *u.Status == deactivated
		})).Return(model.User{ID: testUserID, Role: vendor}, nil)

		user, err := NewUser(users, nil, testutil.MakeNoopLogger()).UpdateByID(ctx, admin, testUserID, model.UserUpdate{Role: &vendor, Status: &deactivated})
		require.NoError(t, err)
		assert.Equal(t, vendor, user.Role)
	})

	t.Run("non-admin privileged fields are dropped", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		users.On("Update", ctx, testUserID, mock.MatchedBy(func(u model.UserUpdate) bool {
			return u.Role == nil && u.Status == nil && u.FirstName != nil && *u.FirstName == name
		})).Return(self, nil)

		_, err := NewUser(users, nil, testutil.MakeNoopLogger()).UpdateByID(ctx, self, testUserID, model.UserUpdate{FirstName: &name, Role: &vendor})
		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		users.On("Update", ctx, "missing", mock.Anything).Return(model.User{}, model.ErrNotFound)

		_, err := NewUser(users, nil, testutil.MakeNoopLogger()).UpdateByID(ctx, admin, "missing", model.UserUpdate{FirstName: &name})
		assert.True(t, apierrors.HasCode(err, apierrors.CodeNotFound))
	})

	t.Run("invalid role", func(t *testing.T) {
		bad := model.Role("planner")
		_, err := NewUser(servermocks.NewUserStore(t), nil, testutil.MakeNoopLogger()).UpdateByID(ctx, admin, testUserID, model.UserUpdate{Role: &bad})
		assert.True(t, apierrors.HasCode(err, apierrors.CodeValidation))
	})
}

func TestUser_GetDeactivateStats(t *testing.T) {
	ctx := context.Background()
	users := servermocks.NewUserStore(t)
	users.On("GetByID", ctx, "missing").Return(model.User{}, model.ErrNotFound)
	users.On("Deactivate", ctx, "missing").Return(model.ErrNotFound)
	users.On("Deactivate", ctx, testUserID).Return(nil)
	users.On("Stats", ctx).Return(model.UserStats{Total: 3, Active: 2, Inactive: 1}, nil)

	svc := NewUser(users, nil, testutil.MakeNoopLogger())

	_, err := svc.GetByID(ctx, "missing")
	assert.True(t, apierrors.HasCode(err, apierrors.CodeNotFound))

	assert.True(t, apierrors.HasCode(svc.Deactivate(ctx, "missing"), apierrors.CodeNotFound))
	assert.NoError(t, svc.Deactivate(ctx, testUserID))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
}

func TestUser_Avatars(t *testing.T) {
	ctx := context.Background()
	png := []byte("\x89PNG fake image")

	t.Run("disabled without storage", func(t *testing.T) {
		svc := NewUser(servermocks.NewUserStore(t), nil, testutil.MakeNoopLogger())
		assert.False(t, svc.AvatarsEnabled())
		assert.ErrorIs(t, svc.UploadAvatar(ctx, testUserID, bytes.NewReader(png), int64(len(png)), "image/png"), ErrAvatarsDisabled)
		_, err := svc.GetAvatar(ctx, testUserID)
		assert.ErrorIs(t, err, ErrAvatarsDisabled)
		assert.ErrorIs(t, svc.DeleteAvatar(ctx, testUserID), ErrAvatarsDisabled)
	})

	t.Run("upload", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		storage := servermocks.NewStorage(t)
		users.On("GetByID", ctx, testUserID).Return(model.User{ID: testUserID}, nil)
		storage.On("Upload", ctx, "avatars/"+testUserID, mock.Anything, int64(len(png)), "image/png").Return(nil)

		svc := NewUser(users, storage, testutil.MakeNoopLogger())
		require.NoError(t, svc.UploadAvatar(ctx, testUserID, bytes.NewReader(png), int64(len(png)), "image/png"))
	})

	t.Run("upload rejects bad input", func(t *testing.T) {
		svc := NewUser(servermocks.NewUserStore(t), servermocks.NewStorage(t), testutil.MakeNoopLogger())

		err := svc.UploadAvatar(ctx, testUserID, bytes.NewReader(png), int64(len(png)), "application/pdf")
		assert.True(t, apierrors.HasCode(err, apierrors.CodeValidation))

		err = svc.UploadAvatar(ctx, testUserID, bytes.NewReader(png), MaxAvatarSize+1, "image/png")
		assert.True(t, apierrors.HasCode(err, apierrors.CodeValidation))
	})

	t.Run("get missing avatar", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		storage.On("Download", ctx, "avatars/"+testUserID).Return(model.Object{}, model.ErrNotFound)

		_, err := NewUser(servermocks.NewUserStore(t), storage, testutil.MakeNoopLogger()).GetAvatar(ctx, testUserID)
		assert.True(t, apierrors.HasCode(err, apierrors.CodeNotFound))
	})

	t.Run("get avatar", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		storage.On("Download", ctx, "avatars/"+testUserID).
			Return(model.Object{Body: io.NopCloser(bytes.NewReader(png)), ContentType: "image/png", Size: int64(len(png))}, nil)

		obj, err := NewUser(servermocks.NewUserStore(t), storage, testutil.MakeNoopLogger()).GetAvatar(ctx, testUserID)
		require.NoError(t, err)
		defer obj.Body.Close()

		data, err := io.ReadAll(obj.Body)
		require.NoError(t, err)
		assert.Equal(t, png, data)
	})

	t.Run("delete", func(t *testing.T) {
		storage := servermocks.NewStorage(t)
		storage.On("Exists", ctx, "avatars/"+testUserID).Return(true, nil)
		storage.On("Delete", ctx, "avatars/"+testUserID).Return(nil)
		storage.On("Exists", ctx, "avatars/other").Return(false, nil)

		svc := NewUser(servermocks.NewUserStore(t), storage, testutil.MakeNoopLogger())
		require.NoError(t, svc.DeleteAvatar(ctx, testUserID))
		assert.True(t, apierrors.HasCode(svc.DeleteAvatar(ctx, "other"), apierrors.CodeNotFound))
	})
}
