package repository

import (
	"context"
	"errors"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for project persistence.
type ProjectRepository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a single project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindByUser retrieves all projects owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)

	// UpdateFields applies a partial update restricted to the recognized
	// project columns. Returns ErrNoFieldsToUpdate when nothing matches and
	// ErrProjectNotFound when the id does not exist.
	UpdateFields(ctx context.Context, id uuid.UUID, fields UpdateFields) error
}
