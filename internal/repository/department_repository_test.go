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

func newDepartmentMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestDepartmentRepositoryList(t *testing.T) {
	db, mock, cleanup := newDepartmentMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("d1", "Computer Science", time.Now()).
		AddRow("d2", "Physics", time.Now())
	mock.ExpectQuery(`SELECT id, name, created_at FROM departments ORDER BY name`).
		WillReturnRows(rows)

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Computer Science", departments[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newDepartmentMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery(`SELECT id, name, created_at FROM departments WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newDepartmentMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO departments").
			WithArgs(sqlmock.AnyArg(), "Mathematics", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		dept := &models.Department{Name: "Mathematics"}
		require.NoError(t, repo.Create(context.Background(), dept))
		assert.NotEmpty(t, dept.ID)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO departments").
			WithArgs(sqlmock.AnyArg(), "Mathematics", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), &models.Department{Name: "Mathematics"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newDepartmentMock(t)
	defer cleanup()
	repo := NewDepartmentRepository(db)

	t.Run("referenced department conflicts", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM departments WHERE id = \$1`).
			WithArgs("d1").
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(context.Background(), "d1")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	})

	t.Run("missing department not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM departments WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, appErrors.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM departments WHERE id = \$1`).
			WithArgs("d2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), "d2"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
