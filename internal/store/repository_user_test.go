package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestListUsers_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE is_deleted = $1 ORDER BY id LIMIT 10 OFFSET 10")).
		WithArgs(false).
		WillReturnRows(userRows().
			AddRow(11, "u11", "u11@x.com", "h", false, 1).
			AddRow(12, "u12", "u12@x.com", "h", false, 3))

	users, err := repo.ListUsers(context.Background(), 10, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(11), users[0].ID)
	assert.Equal(t, "u12@x.com", users[1].Email)
	assert.Equal(t, int64(3), users[1].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_EmptyPage(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(userRows())

	users, err := repo.ListUsers(context.Background(), 10, 1000)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

		_, err := repo.ListUsers(context.Background(), 10, 0)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		_, err := repo.ListUsers(context.Background(), 10, 0)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("rows error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT").WillReturnRows(userRows().
			AddRow(1, "a", "a@x.com", "h", false, 1).
			RowError(0, errors.New("broken stream")))

		_, err := repo.ListUsers(context.Background(), 10, 0)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(userRows().AddRow(4, "ana", "ana@x.com", "h", true, 2))

		user, err := repo.GetUserByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, models.User{ID: 4, Username: "ana", Email: "ana@x.com", Password: "h", IsDeleted: true, Version: 2}, user)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT").WithArgs(int64(4)).WillReturnRows(userRows())

		_, err := repo.GetUserByID(context.Background(), 4)
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("timeout"))

		_, err := repo.GetUserByID(context.Background(), 4)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestFindUserByUsername(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("ana").
		WillReturnRows(userRows().AddRow(1, "ana", "ana@x.com", "h", false, 1))

	user, err := repo.FindUserByUsername(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	mock.ExpectQuery("SELECT").WithArgs("bob").WillReturnRows(userRows())
	_, err = repo.FindUserByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUsersByUsernameOrEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (username = $1 OR email = $2) AND id <> $3")).
		WithArgs("ana", "ana@x.com", int64(0)).
		WillReturnRows(userRows().
			AddRow(1, "ana", "other@x.com", "h", false, 1).
			AddRow(2, "other", "ana@x.com", "h", true, 1))

	users, err := repo.FindUsersByUsernameOrEmail(context.Background(), "ana", "ana@x.com", 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestCreateUser(t *testing.T) {
	input := models.User{Username: "ana", Email: "ana@x.com", Password: "hash"}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("ana", "ana@x.com", "hash").
			WillReturnRows(userRows().AddRow(1, "ana", "ana@x.com", "hash", false, 1))

		created, err := repo.CreateUser(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, int64(1), created.Version)
		assert.False(t, created.IsDeleted)
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateUser(context.Background(), input)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("no row returned", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("INSERT INTO users").WillReturnRows(userRows())

		_, err := repo.CreateUser(context.Background(), input)
		assert.ErrorIs(t, err, ErrUserNotSaved)
	})

	t.Run("unexpected error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

		_, err := repo.CreateUser(context.Background(), input)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestUpdateUser(t *testing.T) {
	input := models.User{ID: 3, Username: "ana", Email: "new@x.com", Password: "hash", Version: 4}

	t.Run("success bumps version", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
			WithArgs("ana", "new@x.com", "hash", false, int64(3), int64(4)).
			WillReturnRows(userRows().AddRow(3, "ana", "new@x.com", "hash", false, 5))

		updated, err := repo.UpdateUser(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, int64(5), updated.Version)
		assert.Equal(t, "new@x.com", updated.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").WillReturnRows(userRows())

		_, err := repo.UpdateUser(context.Background(), input)
		assert.ErrorIs(t, err, ErrVersionConflict)
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.UpdateUser(context.Background(), input)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("unexpected error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").WillReturnError(errors.New("disk full"))

		_, err := repo.UpdateUser(context.Background(), input)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestUserExists(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	exists, err := repo.UserExists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	exists, err = repo.UserExists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, exists)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))
	_, err = repo.UserExists(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
