package usecase

import (
	"context"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMeasurementInput is the request to record a room measurement.
// Area is derived server-side, never accepted from the caller.
type CreateMeasurementInput struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	RoomName  string    `json:"room_name" validate:"required"`
	Length    float64   `json:"length" validate:"required,gt=0"`
	Width     float64   `json:"width" validate:"required,gt=0"`
	Height    float64   `json:"height" validate:"required,gt=0"`
	Notes     string    `json:"notes"`
}

// UpdateMeasurementInput is a partial update; nil fields are left untouched.
type UpdateMeasurementInput struct {
	RoomName *string  `json:"room_name"`
	Length   *float64 `json:"length"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Notes    *string  `json:"notes"`
}

// MeasurementUsecase defines room measurement use cases.
type MeasurementUsecase interface {
	// CreateMeasurement records a measurement with its derived area.
	CreateMeasurement(ctx context.Context, input *CreateMeasurementInput) (*entity.RoomMeasurement, error)

	// ListProjectMeasurements lists a project's measurements, oldest first.
	ListProjectMeasurements(ctx context.Context, projectID uuid.UUID) ([]*entity.RoomMeasurement, error)

	// UpdateMeasurement applies a partial update, recomputing the area when
	// either dimension changes.
	UpdateMeasurement(ctx context.Context, id uuid.UUID, input *UpdateMeasurementInput) error

	// DeleteMeasurement removes a measurement.
	DeleteMeasurement(ctx context.Context, id uuid.UUID) error
}
