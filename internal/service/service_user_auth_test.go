package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

func TestLogin_IssuesTokenForValidCredentials(t *testing.T) {
	d := newTestUserService(t)
	ctx := context.Background()
	user := storedUser(t, 9, "ana", "pw1")

	d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(user, nil)

	resp, err := d.service.Login(ctx, models.LoginRequest{Username: "ana", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "ana", resp.Username)
	require.NotEmpty(t, resp.Token)

	parsed, err := NewAuthService(testAppConfig, logger.Nop()).ParseToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.UserID)
	assert.Equal(t, "ana", parsed.Username)
	assert.Equal(t, "ana@x.com", parsed.Email)
}

func TestLogin_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		d := newTestUserService(t)
		d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(storedUser(t, 9, "ana", "pw1"), nil)

		_, err := d.service.Login(ctx, models.LoginRequest{Username: "ana", Password: "pw2"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		d := newTestUserService(t)
		d.repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := d.service.Login(ctx, models.LoginRequest{Username: "ghost", Password: "pw1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("soft-deleted user", func(t *testing.T) {
		d := newTestUserService(t)
		user := storedUser(t, 9, "ana", "pw1")
		user.IsDeleted = true
		d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(user, nil)

		_, err := d.service.Login(ctx, models.LoginRequest{Username: "ana", Password: "pw1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blank fields", func(t *testing.T) {
		d := newTestUserService(t)

		_, err := d.service.Login(ctx, models.LoginRequest{Username: "  ", Password: "pw1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("db error is not a credential error", func(t *testing.T) {
		d := newTestUserService(t)
		d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(models.User{}, errDB)

		_, err := d.service.Login(ctx, models.LoginRequest{Username: "ana", Password: "pw1"})
		assert.ErrorIs(t, err, errDB)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestChangePassword_ThenLoginWithNewPasswordOnly(t *testing.T) {
	d := newTestUserService(t)
	ctx := context.Background()
	user := storedUser(t, 9, "ana", "pw1")

	d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(user, nil)
	d.repo.EXPECT().UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, int64(9), u.ID)
			assert.Equal(t, user.Version, u.Version)
			user = u
			user.Version++
			return user, nil
		})

	changed, err := d.service.ChangePassword(ctx, models.ChangePasswordRequest{
		Username: "ana", OldPassword: "pw1", NewPassword: "pw2",
	})
	require.NoError(t, err)
	require.True(t, changed)
	assert.True(t, utils.CheckPassword(user.Password, "pw2"))

	d.repo.EXPECT().FindUserByUsername(ctx, "ana").DoAndReturn(
		func(context.Context, string) (models.User, error) { return user, nil },
	).Times(2)

	_, err = d.service.Login(ctx, models.LoginRequest{Username: "ana", Password: "pw1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.service.Login(ctx, models.LoginRequest{Username: "ana", Password: "pw2"})
	assert.NoError(t, err)
}

func TestChangePassword_NotChanged(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.ChangePasswordRequest
		setup   func(t *testing.T, d userServiceDeps)
	}{
		{
			name:    "new password equals current",
			request: models.ChangePasswordRequest{Username: "ana", OldPassword: "pw1", NewPassword: "pw1"},
			setup: func(t *testing.T, d userServiceDeps) {
				d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(storedUser(t, 9, "ana", "pw1"), nil)
			},
		},
		{
			name:    "wrong old password",
			request: models.ChangePasswordRequest{Username: "ana", OldPassword: "nope", NewPassword: "pw2"},
			setup: func(t *testing.T, d userServiceDeps) {
				d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(storedUser(t, 9, "ana", "pw1"), nil)
			},
		},
		{
			name:    "unknown user",
			request: models.ChangePasswordRequest{Username: "ghost", OldPassword: "pw1", NewPassword: "pw2"},
			setup: func(t *testing.T, d userServiceDeps) {
				d.repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)
			},
		},
		{
			name:    "soft-deleted user",
			request: models.ChangePasswordRequest{Username: "ana", OldPassword: "pw1", NewPassword: "pw2"},
			setup: func(t *testing.T, d userServiceDeps) {
				user := storedUser(t, 9, "ana", "pw1")
				user.IsDeleted = true
				d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(user, nil)
			},
		},
		{
			name:    "blank new password",
			request: models.ChangePasswordRequest{Username: "ana", OldPassword: "pw1", NewPassword: " "},
			setup:   func(*testing.T, userServiceDeps) {},
		},
		{
			name:    "concurrent modification",
			request: models.ChangePasswordRequest{Username: "ana", OldPassword: "pw1", NewPassword: "pw2"},
			setup: func(t *testing.T, d userServiceDeps) {
				d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(storedUser(t, 9, "ana", "pw1"), nil)
				d.repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrVersionConflict)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestUserService(t)
			tt.setup(t, d)

			changed, err := d.service.ChangePassword(ctx, tt.request)
			require.NoError(t, err)
			assert.False(t, changed)
		})
	}
}

func TestChangePassword_DBError(t *testing.T) {
	d := newTestUserService(t)
	ctx := context.Background()

	d.repo.EXPECT().FindUserByUsername(ctx, "ana").Return(storedUser(t, 9, "ana", "pw1"), nil)
	d.repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(models.User{}, errDB)

	changed, err := d.service.ChangePassword(ctx, models.ChangePasswordRequest{
		Username: "ana", OldPassword: "pw1", NewPassword: "pw2",
	})
	assert.ErrorIs(t, err, errDB)
	assert.False(t, changed)
}
