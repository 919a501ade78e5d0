package repository

import (
	"context"
	"errors"
	"time"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCodeNotFound is returned when a verification code cannot be found or
// cannot be consumed because it was already used or has expired.
var ErrCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository defines operations for SMS verification codes.
type VerificationCodeRepository interface {
	// Create persists a new verification code (hash only).
	Create(ctx context.Context, code *entity.VerificationCode) error

	// FindActiveByPhone retrieves the unused, unexpired codes for a phone,
	// most recent first, limited to the given count.
	FindActiveByPhone(ctx context.Context, phone string, now time.Time, limit int) ([]*entity.VerificationCode, error)

	// Consume marks the code used with a single conditional update. The
	// update only succeeds while the code is still unused and unexpired, so
	// two concurrent verifications can never both consume the same code.
	// Returns ErrCodeNotFound when no row was affected.
	Consume(ctx context.Context, id uuid.UUID, now time.Time) error
}
