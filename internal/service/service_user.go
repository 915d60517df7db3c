package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userService is the concrete implementation of [UserService].
//
// Soft-deleted users stay readable by id but are hidden from listings,
// cannot log in, change their password or be updated.
type userService struct {
	userRepository store.UserRepository
	authService    AuthService
	validator      validators.Validator

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	authService AuthService,
	validator validators.Validator,
	passwordHashCost int,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:   userRepository,
		authService:      authService,
		validator:        validator,
		passwordHashCost: passwordHashCost,
		logger:           logger,
	}
}

// ListUsers returns one page of non-deleted users in id order. A page past
// the end is an empty list.
func (s *userService) ListUsers(ctx context.Context, pagination models.Pagination) ([]models.UserView, error) {
	if err := s.validator.Validate(ctx, pagination); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPagination, err)
	}
	if pagination.PastEnd() {
		return []models.UserView{}, nil
	}

	users, err := s.userRepository.ListUsers(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return models.ToUserViews(users), nil
}

// GetUser returns the user with the given id, including soft-deleted ones.
func (s *userService) GetUser(ctx context.Context, id int64) (models.UserView, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return models.UserView{}, err
	}

	return user.View(), nil
}

// UpdateUser overwrites the non-empty fields of request.
//
// Returns ErrUserNotFound when the user is missing or soft-deleted (also
// when it disappears concurrently), ErrNothingToUpdate when both fields
// are empty and an ErrValidation error when the new username or email
// belongs to another user.
func (s *userService) UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.UserView, error) {
	log := logger.FromContext(ctx)

	user, err := s.getUser(ctx, id)
	if err != nil {
		return models.UserView{}, err
	}
	if user.IsDeleted {
		return models.UserView{}, ErrUserNotFound
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.UserView{}, fmt.Errorf("%w: %w", ErrNothingToUpdate, err)
	}

	if request.Username != "" {
		user.Username = request.Username
	}
	if request.Email != "" {
		user.Email = request.Email
	}

	if err := s.checkUniqueness(ctx, user.Username, user.Email, user.ID); err != nil {
		return models.UserView{}, err
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	switch {
	case err == nil:
		log.Info().Int64("user_id", id).Msg("user updated")
		return updated.View(), nil
	case errors.Is(err, store.ErrVersionConflict):
		if resolveErr := s.resolveConflict(ctx, id, err); resolveErr != nil {
			return models.UserView{}, resolveErr
		}
		return models.UserView{}, ErrUserNotFound
	case errors.Is(err, store.ErrUserAlreadyExists):
		return models.UserView{}, fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return models.UserView{}, fmt.Errorf("error updating user: %w", err)
	}
}

// CreateUser registers a new user.
//
// Username is checked for duplicates before email, and only the first
// collision is reported. When the database stores nothing the returned
// view has id 0 and the error is nil.
func (s *userService) CreateUser(ctx context.Context, request models.RegisterRequest) (models.UserView, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.UserView{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.checkUniqueness(ctx, request.Username, request.Email, 0); err != nil {
		return models.UserView{}, err
	}

	hash, err := utils.HashPassword(request.Password, s.passwordHashCost)
	if err != nil {
		return models.UserView{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hash,
	})
	switch {
	case err == nil:
		log.Info().Int64("user_id", created.ID).Msg("user created")
		return created.View(), nil
	case errors.Is(err, store.ErrUserNotSaved):
		log.Warn().Str("username", request.Username).Msg("user was not saved")
		return models.UserView{}, nil
	case errors.Is(err, store.ErrUserAlreadyExists):
		// lost a race with a concurrent registration
		return models.UserView{}, fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return models.UserView{}, fmt.Errorf("error creating user: %w", err)
	}
}

// DeleteUser soft-deletes the user. It returns false without an error when
// the user is missing, already deleted, or removed concurrently.
func (s *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	user, err := s.getUser(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if user.IsDeleted {
		return false, nil
	}

	user.IsDeleted = true
	_, err = s.userRepository.UpdateUser(ctx, user)
	switch {
	case err == nil:
		log.Info().Int64("user_id", id).Msg("user soft-deleted")
		return true, nil
	case errors.Is(err, store.ErrVersionConflict):
		if resolveErr := s.resolveConflict(ctx, id, err); resolveErr != nil {
			return false, resolveErr
		}
		return false, nil
	default:
		return false, fmt.Errorf("error deleting user: %w", err)
	}
}

// Login checks the credentials and issues an access token. Unknown users,
// soft-deleted users and wrong passwords all yield ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	user, err := s.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.IsDeleted || !utils.CheckPassword(user.Password, request.Password) {
		log.Info().Int64("user_id", user.ID).Bool("deleted", user.IsDeleted).Msg("login rejected")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.authService.CreateToken(ctx, user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token.SignedString,
	}, nil
}

// ChangePassword replaces the password of request.Username.
//
// It returns false without an error for blank fields, an unknown or deleted
// user, a wrong old password, a new password equal to the current one and a
// concurrent modification of the user.
func (s *userService) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return false, nil
	}

	user, err := s.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.IsDeleted ||
		!utils.CheckPassword(user.Password, request.OldPassword) ||
		utils.CheckPassword(user.Password, request.NewPassword) {
		return false, nil
	}

	hash, err := utils.HashPassword(request.NewPassword, s.passwordHashCost)
	if err != nil {
		return false, err
	}
	user.Password = hash

	_, err = s.userRepository.UpdateUser(ctx, user)
	switch {
	case err == nil:
		log.Info().Int64("user_id", user.ID).Msg("password changed")
		return true, nil
	case errors.Is(err, store.ErrVersionConflict):
		log.Warn().Int64("user_id", user.ID).Msg("password change lost a concurrent update")
		return false, nil
	default:
		return false, fmt.Errorf("error changing password: %w", err)
	}
}

func (s *userService) getUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// checkUniqueness reports the first of username and email that is taken by a
// user other than excludeID, wrapped in ErrValidation.
func (s *userService) checkUniqueness(ctx context.Context, username, email string, excludeID int64) error {
	taken, err := s.userRepository.FindUsersByUsernameOrEmail(ctx, username, email, excludeID)
	if err != nil {
		return fmt.Errorf("error checking uniqueness: %w", err)
	}

	for _, u := range taken {
		if u.Username == username {
			return fmt.Errorf("%w: %w", ErrValidation, ErrUsernameAlreadyRegistered)
		}
	}
	for _, u := range taken {
		if u.Email == email {
			return fmt.Errorf("%w: %w", ErrValidation, ErrEmailAlreadyRegistered)
		}
	}

	return nil
}

// resolveConflict decides what a version conflict on user id means: nil if
// the row is gone, conflictErr if it still exists.
func (s *userService) resolveConflict(ctx context.Context, id int64, conflictErr error) error {
	exists, err := s.userRepository.UserExists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking user existence after conflict: %w", err)
	}
	if !exists {
		return nil
	}

	logger.FromContext(ctx).Warn().Int64("user_id", id).Msg("concurrent modification of user")
	return conflictErr
}
