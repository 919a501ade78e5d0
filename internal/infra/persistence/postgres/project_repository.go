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

// projectUpdatableColumns is the recognized column set for partial project
// updates. Anything else submitted by a client is dropped before the update.
var projectUpdatableColumns = []string{
	"title",
	"address",
	"project_type",
	"area",
	"rooms",
	"budget",
	"description",
	"status",
	"progress",
	"start_date",
	"deadline",
}

// projectRepository implements the repository.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// FindByUser retrieves all projects owned by a user, newest first.
func (repo *projectRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find projects by user")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// UpdateFields applies a partial update restricted to the recognized project columns.
func (repo *projectRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields repository.UpdateFields) error {
	updates := filterUpdateFields(fields, projectUpdatableColumns)
	if len(updates) == 0 {
		return repository.ErrNoFieldsToUpdate
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid project field value")
		}

		return errors.Wrap(result.Error, "failed to update project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Address:     data.Address,
		ProjectType: data.ProjectType,
		Area:        data.Area,
		Rooms:       data.Rooms,
		Budget:      data.Budget,
		Description: data.Description,
		Status:      entity.ProjectStatus(data.Status),
		Progress:    data.Progress,
		StartDate:   data.StartDate,
		Deadline:    data.Deadline,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProjectDomain converts a domain Project entity to a GORM ProjectModel.
func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Address:     data.Address,
		ProjectType: data.ProjectType,
		Area:        data.Area,
		Rooms:       data.Rooms,
		Budget:      data.Budget,
		Description: data.Description,
		Status:      string(data.Status),
		Progress:    data.Progress,
		StartDate:   data.StartDate,
		Deadline:    data.Deadline,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
