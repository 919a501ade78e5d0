package repository

import (
	"context"
	"errors"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when a project photo is not found.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines operations for project photo persistence.
type PhotoRepository interface {
	// Create persists a new photo record holding the storage URL.
	Create(ctx context.Context, photo *entity.ProjectPhoto) error

	// FindByProject retrieves all photos of a project, newest first.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ProjectPhoto, error)

	// Delete removes a photo record by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
