package postgres

import (
	"context"
	"testing"
	"time"

	"yasen/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_UpdateFields(t *testing.T) {
	t.Run("rejects update with no recognized columns", func(t *testing.T) {
		gormDB, _, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewProjectRepository(gormDB)

		err := repo.UpdateFields(context.Background(), uuid.New(), repository.UpdateFields{
			"id":            uuid.New(),
			"unknown_field": "value",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrNoFieldsToUpdate)
	})

	t.Run("drops unrecognized columns before updating", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewProjectRepository(gormDB)

		projectID := uuid.New()

		mock.ExpectExec(`UPDATE "projects" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs("in_progress", sqlmock.AnyArg(), projectID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFields(context.Background(), projectID, repository.UpdateFields{
			"status":        "in_progress",
			"unknown_field": "value",
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports missing project", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewProjectRepository(gormDB)

		projectID := uuid.New()

		mock.ExpectExec(`UPDATE "projects" SET "progress"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(60, sqlmock.AnyArg(), projectID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateFields(context.Background(), projectID, repository.UpdateFields{
			"progress": 60,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrProjectNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_FindByUser(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()

	repo := NewProjectRepository(gormDB)

	userID := uuid.New()
	newer := uuid.New()
	older := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "address", "status", "progress", "created_at", "updated_at",
	}).
		AddRow(newer, userID, "Ремонт кухни", "Москва", "in_progress", 40, now, now).
		AddRow(older, userID, "Ремонт ванной", "Москва", "completed", 100, now.Add(-time.Hour), now)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	projects, err := repo.FindByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, newer, projects[0].ID)
	assert.Equal(t, older, projects[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
