package postgres

import (
	"context"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// photoRepository implements the repository.PhotoRepository interface using GORM.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

// Create persists a new photo record holding the storage URL.
func (repo *photoRepository) Create(ctx context.Context, photo *entity.ProjectPhoto) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid project reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required photo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindByProject retrieves all photos of a project, newest first.
func (repo *photoRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ProjectPhoto, error) {
	var photoModels []*model.ProjectPhotoModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find photos by project")
	}

	photos := make([]*entity.ProjectPhoto, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toPhotoDomain(photoM))
	}

	return photos, nil
}

// Delete removes a photo record by its ID.
func (repo *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectPhotoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete photo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPhotoDomain converts a GORM ProjectPhotoModel to a domain entity.
func toPhotoDomain(data *model.ProjectPhotoModel) *entity.ProjectPhoto {
	if data == nil {
		return nil
	}

	return &entity.ProjectPhoto{
		ID:          data.ID,
		ProjectID:   data.ProjectID,
		PhotoURL:    data.PhotoURL,
		RoomName:    data.RoomName,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPhotoDomain converts a domain entity to a GORM ProjectPhotoModel.
func fromPhotoDomain(data *entity.ProjectPhoto) *model.ProjectPhotoModel {
	if data == nil {
		return nil
	}

	return &model.ProjectPhotoModel{
		ID:          data.ID,
		ProjectID:   data.ProjectID,
		PhotoURL:    data.PhotoURL,
		RoomName:    data.RoomName,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
