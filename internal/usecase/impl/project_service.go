package impl

import (
	"context"
	"log/slog"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProjectServiceParams defines the dependencies of the project service.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo     repository.ProjectRepository
	MeasurementRepo repository.MeasurementRepository
	PhotoRepo       repository.PhotoRepository
	Logger          *slog.Logger
}

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo     repository.ProjectRepository
	measurementRepo repository.MeasurementRepository
	photoRepo       repository.PhotoRepository
	logger          *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo:     params.ProjectRepo,
		measurementRepo: params.MeasurementRepo,
		photoRepo:       params.PhotoRepo,
		logger:          params.Logger,
	}
}

// CreateProject creates a project for its owner. New projects always start
// pending with zero progress.
func (srv *projectService) CreateProject(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	srv.logger.Info("Creating project", "userID", input.UserID, "title", input.Title)

	project := &entity.Project{
		UserID:      input.UserID,
		Title:       input.Title,
		Address:     input.Address,
		ProjectType: input.ProjectType,
		Area:        input.Area,
		Rooms:       input.Rooms,
		Budget:      input.Budget,
		Description: input.Description,
		Status:      entity.ProjectStatusPending,
		Progress:    0,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	return project, nil
}

// GetProjectDetails fetches one project with measurements and photos.
func (srv *projectService) GetProjectDetails(ctx context.Context, id uuid.UUID) (*usecase.ProjectDetails, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	measurements, err := srv.measurementRepo.FindByProject(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load project measurements")
	}

	photos, err := srv.photoRepo.FindByProject(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load project photos")
	}

	return &usecase.ProjectDetails{
		Project:      project,
		Measurements: measurements,
		Photos:       photos,
	}, nil
}

// ListUserProjects lists all projects owned by a user, newest first.
func (srv *projectService) ListUserProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user projects")
	}

	return projects, nil
}

// UpdateProject applies a partial update to a project. Only submitted fields
// change; submitting nothing at all is a client error.
func (srv *projectService) UpdateProject(ctx context.Context, id uuid.UUID, input *usecase.UpdateProjectInput) error {
	srv.logger.Info("Updating project", "projectID", id)

	fields := repository.UpdateFields{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.ProjectType != nil {
		fields["project_type"] = *input.ProjectType
	}
	if input.Area != nil {
		fields["area"] = *input.Area
	}
	if input.Rooms != nil {
		fields["rooms"] = *input.Rooms
	}
	if input.Budget != nil {
		fields["budget"] = *input.Budget
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Progress != nil {
		fields["progress"] = *input.Progress
	}
	if input.StartDate != nil {
		fields["start_date"] = *input.StartDate
	}
	if input.Deadline != nil {
		fields["deadline"] = *input.Deadline
	}

	if err := srv.projectRepo.UpdateFields(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFieldsToUpdate):
			return domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrProjectNotFound):
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to update project")
	}

	return nil
}
