package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/models"
)

const (
	usersTable = "users"
	logsTable  = "logs"
)

// userColumns is the scan order used by every query returning users.
var userColumns = []string{"id", "username", "email", "password", "is_deleted", "version"}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func buildListUsersQuery(b sq.StatementBuilderType, limit, offset uint64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildGetUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildFindUsersByUsernameOrEmailQuery(b sq.StatementBuilderType, username, email string, excludeID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		Where(sq.NotEq{"id": excludeID}).
		OrderBy("id").
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password").
		Values(user.Username, user.Email, user.Password).
		Suffix(returningUserColumns()).
		ToSql()
}

// buildUpdateUserQuery matches on both id and version so that a row changed
// since it was read is left untouched.
func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password", user.Password).
		Set("is_deleted", user.IsDeleted).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": user.ID, "version": user.Version}).
		Suffix(returningUserColumns()).
		ToSql()
}

func buildUserExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("COUNT(1)").
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertLogQuery(b sq.StatementBuilderType, entry models.LogEntry) (string, []any, error) {
	return b.Insert(logsTable).
		Columns("timestamp", "level", "message", "exception").
		Values(entry.Timestamp, string(entry.Level), entry.Message, entry.Exception).
		ToSql()
}
