package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "user-keeper",
	TokenAudience:    "user-keeper-api",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

type userServiceDeps struct {
	repo    *mock.MockUserRepository
	service UserService
}

func newTestUserService(t *testing.T) userServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return userServiceDeps{
		repo: repo,
		service: NewUserService(
			repo,
			NewAuthService(testAppConfig, logger.Nop()),
			validators.NewUserValidator(),
			bcrypt.MinCost,
			logger.Nop(),
		),
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func storedUser(t *testing.T, id int64, username, password string) models.User {
	return models.User{
		ID:       id,
		Username: username,
		Email:    username + "@x.com",
		Password: mustHash(t, password),
		Version:  1,
	}
}
