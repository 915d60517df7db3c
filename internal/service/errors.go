package service

import (
	"errors"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
)

// ErrValidation is the parent of every rejected-input error returned by
// [UserService.CreateUser] and [UserService.UpdateUser]. Match it with
// [errors.Is] to tell expected rejections from fatal failures.
var ErrValidation = errors.New("validation error")

// Field-level validation errors. They are always returned wrapped in
// [ErrValidation].
var (
	ErrEmptyUsername = validators.ErrEmptyUsername
	ErrEmptyEmail    = validators.ErrEmptyEmail
	ErrEmptyPassword = validators.ErrEmptyPassword

	ErrUsernameAlreadyRegistered = errors.New("username is already registered")
	ErrEmailAlreadyRegistered    = errors.New("email is already registered")
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPagination  = errors.New("invalid pagination")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
