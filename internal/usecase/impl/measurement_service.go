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

// MeasurementServiceParams defines the dependencies of the measurement service.
type MeasurementServiceParams struct {
	fx.In

	MeasurementRepo repository.MeasurementRepository
	Logger          *slog.Logger
}

// measurementService implements the MeasurementUsecase interface.
type measurementService struct {
	measurementRepo repository.MeasurementRepository
	logger          *slog.Logger
}

// NewMeasurementService is the constructor for measurementService.
func NewMeasurementService(params MeasurementServiceParams) usecase.MeasurementUsecase {
	return &measurementService{
		measurementRepo: params.MeasurementRepo,
		logger:          params.Logger,
	}
}

// CreateMeasurement records a measurement. Area is always length * width,
// never taken from the caller.
func (srv *measurementService) CreateMeasurement(ctx context.Context, input *usecase.CreateMeasurementInput) (*entity.RoomMeasurement, error) {
	srv.logger.Info("Creating measurement", "projectID", input.ProjectID, "room", input.RoomName)

	measurement := &entity.RoomMeasurement{
		ProjectID: input.ProjectID,
		RoomName:  input.RoomName,
		Length:    input.Length,
		Width:     input.Width,
		Height:    input.Height,
		Area:      input.Length * input.Width,
		Notes:     input.Notes,
	}

	if err := srv.measurementRepo.Create(ctx, measurement); err != nil {
		return nil, errors.Wrap(err, "failed to create measurement")
	}

	return measurement, nil
}

// ListProjectMeasurements lists a project's measurements, oldest first.
func (srv *measurementService) ListProjectMeasurements(ctx context.Context, projectID uuid.UUID) ([]*entity.RoomMeasurement, error) {
	measurements, err := srv.measurementRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list project measurements")
	}

	return measurements, nil
}

// UpdateMeasurement applies a partial update. Whenever either dimension
// changes, the stored area is recomputed from the merged dimensions so it
// can never drift from length * width.
func (srv *measurementService) UpdateMeasurement(ctx context.Context, id uuid.UUID, input *usecase.UpdateMeasurementInput) error {
	srv.logger.Info("Updating measurement", "measurementID", id)

	current, err := srv.measurementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			return domainerrors.ErrMeasurementNotFound
		}

		return errors.Wrap(err, "failed to find measurement")
	}

	fields := repository.UpdateFields{}
	if input.RoomName != nil {
		fields["room_name"] = *input.RoomName
	}
	if input.Height != nil {
		fields["height"] = *input.Height
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if input.Length != nil || input.Width != nil {
		length := current.Length
		width := current.Width
		if input.Length != nil {
			length = *input.Length
			fields["length"] = length
		}
		if input.Width != nil {
			width = *input.Width
			fields["width"] = width
		}
		fields["area"] = length * width
	}

	if err := srv.measurementRepo.UpdateFields(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFieldsToUpdate):
			return domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrMeasurementNotFound):
			return domainerrors.ErrMeasurementNotFound
		}

		return errors.Wrap(err, "failed to update measurement")
	}

	return nil
}

// DeleteMeasurement removes a measurement.
func (srv *measurementService) DeleteMeasurement(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting measurement", "measurementID", id)

	if err := srv.measurementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			return domainerrors.ErrMeasurementNotFound
		}

		return errors.Wrap(err, "failed to delete measurement")
	}

	return nil
}
