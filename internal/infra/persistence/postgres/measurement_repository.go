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

// measurementUpdatableColumns is the recognized column set for partial
// measurement updates. Area rides along whenever a dimension changes.
var measurementUpdatableColumns = []string{
	"room_name",
	"length",
	"width",
	"height",
	"area",
	"notes",
}

// measurementRepository implements the repository.MeasurementRepository interface using GORM.
type measurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository is the constructor for measurementRepository.
func NewMeasurementRepository(db *gorm.DB) repository.MeasurementRepository {
	return &measurementRepository{
		db: db,
	}
}

// Create persists a new room measurement.
func (repo *measurementRepository) Create(ctx context.Context, measurement *entity.RoomMeasurement) error {
	measurementM := fromMeasurementDomain(measurement)

	if err := repo.db.WithContext(ctx).Create(measurementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid project reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required measurement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create measurement")
	}

	measurement.ID = measurementM.ID
	measurement.CreatedAt = measurementM.CreatedAt
	measurement.UpdatedAt = measurementM.UpdatedAt

	return nil
}

// FindByID retrieves a single measurement by its unique ID.
func (repo *measurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomMeasurement, error) {
	var measurementM model.RoomMeasurementModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&measurementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMeasurementNotFound
		}

		return nil, errors.Wrap(err, "failed to find measurement by ID")
	}

	return toMeasurementDomain(&measurementM), nil
}

// FindByProject retrieves all measurements of a project, oldest first.
func (repo *measurementRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.RoomMeasurement, error) {
	var measurementModels []*model.RoomMeasurementModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&measurementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find measurements by project")
	}

	measurements := make([]*entity.RoomMeasurement, 0, len(measurementModels))
	for _, measurementM := range measurementModels {
		measurements = append(measurements, toMeasurementDomain(measurementM))
	}

	return measurements, nil
}

// UpdateFields applies a partial update restricted to the recognized measurement columns.
func (repo *measurementRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields repository.UpdateFields) error {
	updates := filterUpdateFields(fields, measurementUpdatableColumns)
	if len(updates) == 0 {
		return repository.ErrNoFieldsToUpdate
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RoomMeasurementModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update measurement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMeasurementNotFound
	}

	return nil
}

// Delete removes a measurement by its ID.
func (repo *measurementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RoomMeasurementModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete measurement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMeasurementNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMeasurementDomain converts a GORM RoomMeasurementModel to a domain entity.
func toMeasurementDomain(data *model.RoomMeasurementModel) *entity.RoomMeasurement {
	if data == nil {
		return nil
	}

	return &entity.RoomMeasurement{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		RoomName:  data.RoomName,
		Length:    data.Length,
		Width:     data.Width,
		Height:    data.Height,
		Area:      data.Area,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMeasurementDomain converts a domain entity to a GORM RoomMeasurementModel.
func fromMeasurementDomain(data *entity.RoomMeasurement) *model.RoomMeasurementModel {
	if data == nil {
		return nil
	}

	return &model.RoomMeasurementModel{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		RoomName:  data.RoomName,
		Length:    data.Length,
		Width:     data.Width,
		Height:    data.Height,
		Area:      data.Area,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
