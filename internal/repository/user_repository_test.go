package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/qpr-api/internal/models"
	appErrors "github.com/campusworks/qpr-api/pkg/errors"
)

func newUserMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "full_name", "role", "department_id", "department_name", "created_at", "updated_at",
	})
}

func TestUserRepositoryList(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := userRows().AddRow(
		"u1", "meena@example.edu", "hash", "Dr. Meena Iyer", "Faculty", "d1", "Physics", time.Now(), time.Now(),
	)
	mock.ExpectQuery(`SELECT u\.id, u\.email`).
		WithArgs("Faculty").
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("Faculty").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	role := models.RoleFaculty
	users, total, err := repo.List(context.Background(), models.UserFilter{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleFaculty, users[0].Role)
	require.NotNil(t, users[0].DepartmentName)
	assert.Equal(t, "Physics", *users[0].DepartmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := userRows().AddRow(
			"u1", "meena@example.edu", "hash", "Dr. Meena Iyer", "Faculty", "d1", "Physics", time.Now(), time.Now(),
		)
		mock.ExpectQuery(`WHERE LOWER\(u\.email\) = LOWER\(\$1\)`).
			WithArgs("Meena@Example.edu").
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "Meena@Example.edu")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`WHERE LOWER\(u\.email\) = LOWER\(\$1\)`).
			WithArgs("nobody@example.edu").
			WillReturnRows(userRows())

		_, err := repo.FindByEmail(context.Background(), "nobody@example.edu")
		assert.ErrorIs(t, err, appErrors.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "ravi@example.edu", sqlmock.AnyArg(), "Ravi Kumar", "Student", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		dept := "d1"
		user := &models.User{Email: "ravi@example.edu", PasswordHash: "hash", FullName: "Ravi Kumar", Role: models.RoleStudent, DepartmentID: &dept}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.NotEmpty(t, user.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "ravi@example.edu", sqlmock.AnyArg(), "Ravi Kumar", "Student", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), &models.User{Email: "ravi@example.edu", FullName: "Ravi Kumar", Role: models.RoleStudent})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	t.Run("user with records conflicts", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs("u1").
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(context.Background(), "u1")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	})

	t.Run("missing user not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, appErrors.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
