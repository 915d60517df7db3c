package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
	FieldPageNumber  = "page_number"
	FieldPageSize    = "page_size"
)

// UserValidator implements [Validator] for the user-management request
// models: RegisterRequest, UpdateUserRequest, LoginRequest,
// ChangePasswordRequest and Pagination.
//
// Text fields are blank when they are empty or consist of white space only.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj. Both value and pointer forms are accepted.
//
// For RegisterRequest, LoginRequest and ChangePasswordRequest the first
// failing field is reported, in the order the fields are declared.
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUserRequest(value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUserRequest(*value)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(*value, fields...)

	case models.Pagination:
		return v.validatePagination(value, fields...)
	case *models.Pagination:
		return v.validatePagination(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateRegisterRequest(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	return checkFields(fields, map[string]func() error{
		FieldUsername: func() error { return required(r.Username, ErrEmptyUsername) },
		FieldEmail:    func() error { return required(r.Email, ErrEmptyEmail) },
		FieldPassword: func() error { return required(r.Password, ErrEmptyPassword) },
	})
}

func (v *UserValidator) validateUpdateUserRequest(r models.UpdateUserRequest) error {
	if r.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func (v *UserValidator) validateLoginRequest(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	return checkFields(fields, map[string]func() error{
		FieldUsername: func() error { return required(r.Username, ErrEmptyUsername) },
		FieldPassword: func() error { return required(r.Password, ErrEmptyPassword) },
	})
}

func (v *UserValidator) validateChangePasswordRequest(r models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldOldPassword, FieldNewPassword}
	}

	return checkFields(fields, map[string]func() error{
		FieldUsername:    func() error { return required(r.Username, ErrEmptyUsername) },
		FieldOldPassword: func() error { return required(r.OldPassword, ErrEmptyOldPassword) },
		FieldNewPassword: func() error { return required(r.NewPassword, ErrEmptyNewPassword) },
	})
}

func (v *UserValidator) validatePagination(p models.Pagination, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPageNumber, FieldPageSize}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldPageNumber:
			if p.PageNumber < 1 {
				errs = append(errs, ErrInvalidPageNumber)
			}
		case FieldPageSize:
			if p.PageSize < 1 {
				errs = append(errs, ErrInvalidPageSize)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

// checkFields runs the checks for fields in order and returns the first
// failure.
func checkFields(fields []string, checks map[string]func() error) error {
	for _, field := range fields {
		check, ok := checks[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func required(value string, err error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}
