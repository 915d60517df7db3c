// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the user-keeper REST API.
//
// [UsersClient] wraps every /api endpoint. Non-2xx responses are mapped to
// the sentinel errors of errors.go so that callers can use [errors.Is]
// ([ErrNotFound] for 404, [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

// UsersClient talks to the user-keeper API.
type UsersClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates a user (POST /api/Users).
	Register(ctx context.Context, request models.RegisterRequest) (models.UserView, error)

	// Login authenticates (POST /api/Login) and stores the issued token.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	ListUsers(ctx context.Context, pagination models.Pagination) ([]models.UserView, error)
	GetUser(ctx context.Context, id int64) (models.UserView, error)

	// UpdateUser, DeleteUser and ChangePassword return the server's
	// confirmation message.
	UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (string, error)
	DeleteUser(ctx context.Context, id int64) (string, error)
	ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (string, error)
}
