package store

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] records in the "users" table.
type UserRepository interface {
	// ListUsers returns up to limit non-deleted users ordered by id,
	// skipping the first offset rows.
	ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error)

	// GetUserByID returns the user with the given id, deleted or not.
	// Returns [ErrNoUserWasFound] when no row matches.
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByUsername returns the user with the given username.
	// Returns [ErrNoUserWasFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUsersByUsernameOrEmail returns every user, other than excludeID,
	// whose username or email matches. excludeID 0 excludes nobody.
	FindUsersByUsernameOrEmail(ctx context.Context, username, email string, excludeID int64) ([]models.User, error)

	// CreateUser inserts a user and returns the stored row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser overwrites username, email, password and the deleted flag
	// of the row matching user.ID and user.Version, and bumps its version.
	// Returns [ErrVersionConflict] when no such row exists.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// UserExists reports whether a row with the given id is stored.
	UserExists(ctx context.Context, id int64) (bool, error)
}

// LogRepository appends [models.LogEntry] records to the "logs" table.
type LogRepository interface {
	SaveLog(ctx context.Context, entry models.LogEntry) error
}

// ErrorClassificator maps driver-specific errors to storage-agnostic
// categories.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool
}
