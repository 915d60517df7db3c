package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyOldPassword  = errors.New("old password is required")
	ErrEmptyNewPassword  = errors.New("new password is required")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidPageNumber = errors.New("page number must be positive")
	ErrInvalidPageSize   = errors.New("page size must be positive")
)
