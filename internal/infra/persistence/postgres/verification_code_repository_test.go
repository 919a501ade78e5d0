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

func TestVerificationCodeRepository_Consume(t *testing.T) {
	t.Run("marks an unused unexpired code", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewVerificationCodeRepository(gormDB)

		codeID := uuid.New()
		now := time.Now()

		mock.ExpectExec(`UPDATE "verification_codes" SET "is_used"=\$1 WHERE id = \$2 AND is_used = \$3 AND expires_at > \$4`).
			WithArgs(true, codeID, false, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Consume(context.Background(), codeID, now)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports already consumed code", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()

		repo := NewVerificationCodeRepository(gormDB)

		codeID := uuid.New()
		now := time.Now()

		mock.ExpectExec(`UPDATE "verification_codes" SET "is_used"=\$1 WHERE id = \$2 AND is_used = \$3 AND expires_at > \$4`).
			WithArgs(true, codeID, false, now).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Consume(context.Background(), codeID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrCodeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVerificationCodeRepository_FindActiveByPhone(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()

	repo := NewVerificationCodeRepository(gormDB)

	codeID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "phone", "code_hash", "expires_at", "is_used", "created_at",
	}).AddRow(
		codeID, "+79991234567", "$2a$10$hash", now.Add(10*time.Minute), false, now,
	)

	mock.ExpectQuery(`SELECT \* FROM "verification_codes" WHERE phone = \$1 AND is_used = \$2 AND expires_at > \$3 ORDER BY created_at DESC LIMIT \$4`).
		WithArgs("+79991234567", false, now, 3).
		WillReturnRows(rows)

	codes, err := repo.FindActiveByPhone(context.Background(), "+79991234567", now, 3)

	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, codeID, codes[0].ID)
	assert.False(t, codes[0].IsUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
