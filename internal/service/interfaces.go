package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService implements the user-management operations.
//
// DeleteUser and ChangePassword report an expected "not done" outcome as
// (false, nil); a non-nil error always means an unexpected failure.
type UserService interface {
	ListUsers(ctx context.Context, pagination models.Pagination) ([]models.UserView, error)
	GetUser(ctx context.Context, id int64) (models.UserView, error)
	UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.UserView, error)
	CreateUser(ctx context.Context, request models.RegisterRequest) (models.UserView, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (bool, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuditService writes the audit trail of handled requests.
type AuditService interface {
	// Record appends one entry. Failures are logged and never returned.
	Record(ctx context.Context, level models.LogLevel, message string, err error)
}
