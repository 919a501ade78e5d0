package repository

import (
	"context"
	"errors"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMeasurementNotFound is returned when a room measurement is not found.
var ErrMeasurementNotFound = errors.New("measurement not found")

// MeasurementRepository defines operations for room measurement persistence.
type MeasurementRepository interface {
	// Create persists a new room measurement.
	Create(ctx context.Context, measurement *entity.RoomMeasurement) error

	// FindByID retrieves a single measurement by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomMeasurement, error)

	// FindByProject retrieves all measurements of a project, oldest first.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.RoomMeasurement, error)

	// UpdateFields applies a partial update restricted to the recognized
	// measurement columns. The caller is responsible for including the
	// recomputed area whenever a dimension changes.
	UpdateFields(ctx context.Context, id uuid.UUID, fields UpdateFields) error

	// Delete removes a measurement by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
