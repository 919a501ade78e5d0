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

func TestUserRepository_FindByPhone(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewUserRepository(gormDB)

		userID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "phone", "name", "email", "user_type",
			"specialization", "experience", "is_verified", "created_at", "updated_at",
		}).AddRow(
			userID, "+79991234567", "Иван", "ivan@example.com", "customer",
			"", "", true, now, now,
		)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone = \$1 ORDER BY "users"\."id" LIMIT \$2`).
			WithArgs("+79991234567", 1).
			WillReturnRows(rows)

		user, err := repo.FindByPhone(context.Background(), "+79991234567")

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "Иван", user.Name)
		assert.True(t, user.IsVerified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewUserRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone = \$1 ORDER BY "users"\."id" LIMIT \$2`).
			WithArgs("+70000000000", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByPhone(context.Background(), "+70000000000")

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
