package usecase

import (
	"context"
	"time"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProjectInput is the request to create a renovation project.
type CreateProjectInput struct {
	UserID      uuid.UUID        `json:"user_id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Address     string           `json:"address" validate:"required"`
	ProjectType string           `json:"project_type"`
	Area        *float64         `json:"area"`
	Rooms       *int             `json:"rooms"`
	Budget      *decimal.Decimal `json:"budget"`
	Description string           `json:"description"`
}

// UpdateProjectInput is a partial update; nil fields are left untouched.
type UpdateProjectInput struct {
	Title       *string          `json:"title"`
	Address     *string          `json:"address"`
	ProjectType *string          `json:"project_type"`
	Area        *float64         `json:"area"`
	Rooms       *int             `json:"rooms"`
	Budget      *decimal.Decimal `json:"budget"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Progress    *int             `json:"progress"`
	StartDate   *time.Time       `json:"start_date"`
	Deadline    *time.Time       `json:"deadline"`
}

// ProjectDetails bundles a project with its dependent collections.
type ProjectDetails struct {
	Project      *entity.Project           `json:"project"`
	Measurements []*entity.RoomMeasurement `json:"measurements"`
	Photos       []*entity.ProjectPhoto    `json:"photos"`
}

// ProjectUsecase defines project management use cases.
type ProjectUsecase interface {
	// CreateProject creates a project for its owner.
	CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)

	// GetProjectDetails fetches one project with measurements and photos.
	GetProjectDetails(ctx context.Context, id uuid.UUID) (*ProjectDetails, error)

	// ListUserProjects lists all projects owned by a user, newest first.
	ListUserProjects(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)

	// UpdateProject applies a partial update to a project.
	UpdateProject(ctx context.Context, id uuid.UUID, input *UpdateProjectInput) error
}
