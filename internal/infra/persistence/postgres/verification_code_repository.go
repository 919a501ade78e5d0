package postgres

import (
	"context"
	"time"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationCodeRepository implements repository.VerificationCodeRepository using GORM.
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{
		db: db,
	}
}

// Create persists a new verification code (hash only).
func (repo *verificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	codeM := fromVerificationCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required code information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindActiveByPhone retrieves the unused, unexpired codes for a phone, most
// recent first.
func (repo *verificationCodeRepository) FindActiveByPhone(ctx context.Context, phone string, now time.Time, limit int) ([]*entity.VerificationCode, error) {
	var codeModels []*model.VerificationCodeModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ? AND is_used = ? AND expires_at > ?", phone, false, now).
		Order("created_at DESC").
		Limit(limit).
		Find(&codeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active verification codes")
	}

	codes := make([]*entity.VerificationCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toVerificationCodeDomain(codeM))
	}

	return codes, nil
}

// Consume marks the code used with a single conditional update. Two
// concurrent verifications can never both consume the same code because
// only one update statement will match the unused row.
func (repo *verificationCodeRepository) Consume(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("id = ? AND is_used = ? AND expires_at > ?", id, false, now).
		Update("is_used", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume verification code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVerificationCodeDomain converts a GORM VerificationCodeModel to a domain entity.
func toVerificationCodeDomain(data *model.VerificationCodeModel) *entity.VerificationCode {
	if data == nil {
		return nil
	}

	return &entity.VerificationCode{
		ID:        data.ID,
		Phone:     data.Phone,
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		IsUsed:    data.IsUsed,
		CreatedAt: data.CreatedAt,
	}
}

// fromVerificationCodeDomain converts a domain entity to a GORM VerificationCodeModel.
func fromVerificationCodeDomain(data *entity.VerificationCode) *model.VerificationCodeModel {
	if data == nil {
		return nil
	}

	return &model.VerificationCodeModel{
		ID:        data.ID,
		Phone:     data.Phone,
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		IsUsed:    data.IsUsed,
		CreatedAt: data.CreatedAt,
	}
}
