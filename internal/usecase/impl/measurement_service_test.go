package impl

import (
	"context"
	"testing"

	"yasen/internal/domain/entity"
	"yasen/internal/domain/repository"
	mockRepo "yasen/internal/mocks/repository"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMeasurementService(t *testing.T) (usecase.MeasurementUsecase, *mockRepo.MockMeasurementRepository) {
	measurementRepo := mockRepo.NewMockMeasurementRepository(t)
	service := NewMeasurementService(MeasurementServiceParams{
		MeasurementRepo: measurementRepo,
		Logger:          testLogger(),
	})

	return service, measurementRepo
}

func TestMeasurementService_CreateMeasurement_ComputesArea(t *testing.T) {
	service, measurementRepo := createTestMeasurementService(t)

	ctx := context.Background()
	projectID := uuid.New()

	measurementRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RoomMeasurement")).
		Return(nil)

	measurement, err := service.CreateMeasurement(ctx, &usecase.CreateMeasurementInput{
		ProjectID: projectID,
		RoomName:  "Кухня",
		Length:    4,
		Width:     3,
		Height:    2.7,
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, measurement.Area, 1e-9)
	assert.Equal(t, projectID, measurement.ProjectID)
}

func TestMeasurementService_UpdateMeasurement_RecomputesAreaOnDimensionChange(t *testing.T) {
	service, measurementRepo := createTestMeasurementService(t)

	ctx := context.Background()
	id := uuid.New()

	measurementRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.RoomMeasurement{ID: id, Length: 5, Width: 2, Area: 10}, nil)

	newLength := 15.0
	measurementRepo.EXPECT().
		UpdateFields(ctx, id, mock.AnythingOfType("repository.UpdateFields")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, fields repository.UpdateFields) error {
			assert.InDelta(t, 15.0, fields["length"].(float64), 1e-9)
			assert.InDelta(t, 30.0, fields["area"].(float64), 1e-9)
			_, hasWidth := fields["width"]
			assert.False(t, hasWidth)
			return nil
		})

	err := service.UpdateMeasurement(ctx, id, &usecase.UpdateMeasurementInput{Length: &newLength})
	require.NoError(t, err)
}

func TestMeasurementService_UpdateMeasurement_LeavesAreaWithoutDimensionChange(t *testing.T) {
	service, measurementRepo := createTestMeasurementService(t)

	ctx := context.Background()
	id := uuid.New()

	measurementRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.RoomMeasurement{ID: id, Length: 5, Width: 2, Area: 10}, nil)

	notes := "штробление закончено"
	measurementRepo.EXPECT().
		UpdateFields(ctx, id, mock.AnythingOfType("repository.UpdateFields")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, fields repository.UpdateFields) error {
			assert.Equal(t, notes, fields["notes"])
			_, hasArea := fields["area"]
			assert.False(t, hasArea)
			return nil
		})

	err := service.UpdateMeasurement(ctx, id, &usecase.UpdateMeasurementInput{Notes: &notes})
	require.NoError(t, err)
}
