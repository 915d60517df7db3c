package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both PostgreSQL and SQLite; the dialect
// differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsDeleted, &u.Version)
	return u, err
}

func (r *userRepository) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.builder, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "userRepository.ListUsers", query, args)
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.singleRowError(ctx, "userRepository.GetUserByID", err)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.builder, username)
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.singleRowError(ctx, "userRepository.FindUserByUsername", err)
	}

	return user, nil
}

func (r *userRepository) FindUsersByUsernameOrEmail(ctx context.Context, username, email string, excludeID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUsersByUsernameOrEmailQuery(r.builder, username, email, excludeID)
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUsersByUsernameOrEmail").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "userRepository.FindUsersByUsernameOrEmail", query, args)
}

// CreateUser inserts a new user and returns the stored row with its
// generated id.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists];
//   - no row returned → [ErrUserNotSaved].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanUser(r.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return saved, nil
	case errors.Is(err, sql.ErrNoRows):
		log.Warn().Str("func", "userRepository.CreateUser").Msg("insert returned no rows")
		return models.User{}, ErrUserNotSaved
	case r.errorClassificator.IsUniqueViolation(err):
		log.Warn().Err(err).Str("func", "userRepository.CreateUser").Msg("username or email already taken")
		return models.User{}, ErrUserAlreadyExists
	default:
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// UpdateUser persists user under optimistic locking. The stored row is
// returned with its version bumped.
//
// Error handling:
//   - no row matched id and version → [ErrVersionConflict];
//   - unique violation on username or email → [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		log.Warn().
			Str("func", "userRepository.UpdateUser").
			Int64("user_id", user.ID).
			Int64("provided_version", user.Version).
			Msg("optimistic lock failed: version mismatch")
		return models.User{}, ErrVersionConflict
	case r.errorClassificator.IsUniqueViolation(err):
		log.Warn().Err(err).Str("func", "userRepository.UpdateUser").Msg("username or email already taken")
		return models.User{}, ErrUserAlreadyExists
	default:
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", user.ID).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *userRepository) UserExists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserExistsQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UserExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "userRepository.UserExists").Int64("user_id", id).Msg("failed to count users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) singleRowError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query user")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
