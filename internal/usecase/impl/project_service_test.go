package impl

import (
	"context"
	"testing"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	mockRepo "yasen/internal/mocks/repository"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// projectServiceFixtures holds all test dependencies for project service tests.
type projectServiceFixtures struct {
	service         usecase.ProjectUsecase
	projectRepo     *mockRepo.MockProjectRepository
	measurementRepo *mockRepo.MockMeasurementRepository
	photoRepo       *mockRepo.MockPhotoRepository
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	projectRepo := mockRepo.NewMockProjectRepository(t)
	measurementRepo := mockRepo.NewMockMeasurementRepository(t)
	photoRepo := mockRepo.NewMockPhotoRepository(t)
	service := NewProjectService(ProjectServiceParams{
		ProjectRepo:     projectRepo,
		MeasurementRepo: measurementRepo,
		PhotoRepo:       photoRepo,
		Logger:          testLogger(),
	})

	return projectServiceFixtures{
		service:         service,
		projectRepo:     projectRepo,
		measurementRepo: measurementRepo,
		photoRepo:       photoRepo,
	}
}

func TestProjectService_CreateProject_StartsPending(t *testing.T) {
	f := createTestProjectService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	project, err := f.service.CreateProject(ctx, &usecase.CreateProjectInput{
		UserID:  userID,
		Title:   "Ремонт двушки",
		Address: "Москва, ул. Ленина 1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusPending, project.Status)
	assert.Equal(t, 0, project.Progress)
	assert.Equal(t, userID, project.UserID)
}

func TestProjectService_GetProjectDetails_BundlesCollections(t *testing.T) {
	f := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	f.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID, Title: "Ремонт двушки"}, nil)

	f.measurementRepo.EXPECT().
		FindByProject(ctx, projectID).
		Return([]*entity.RoomMeasurement{{RoomName: "Кухня"}}, nil)

	f.photoRepo.EXPECT().
		FindByProject(ctx, projectID).
		Return([]*entity.ProjectPhoto{{ProjectID: projectID}}, nil)

	details, err := f.service.GetProjectDetails(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, projectID, details.Project.ID)
	assert.Len(t, details.Measurements, 1)
	assert.Len(t, details.Photos, 1)
}

func TestProjectService_GetProjectDetails_NotFound(t *testing.T) {
	f := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	f.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	_, err := f.service.GetProjectDetails(ctx, projectID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_UpdateProject_MapsEmptyUpdate(t *testing.T) {
	f := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	f.projectRepo.EXPECT().
		UpdateFields(ctx, projectID, mock.AnythingOfType("repository.UpdateFields")).
		Return(repository.ErrNoFieldsToUpdate)

	err := f.service.UpdateProject(ctx, projectID, &usecase.UpdateProjectInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestProjectService_UpdateProject_ForwardsOnlySetFields(t *testing.T) {
	f := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	status := "in_progress"
	progress := 40

	f.projectRepo.EXPECT().
		UpdateFields(ctx, projectID, mock.AnythingOfType("repository.UpdateFields")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, fields repository.UpdateFields) error {
			assert.Equal(t, "in_progress", fields["status"])
			assert.Equal(t, 40, fields["progress"])
			_, hasTitle := fields["title"]
			assert.False(t, hasTitle)
			return nil
		})

	err := f.service.UpdateProject(ctx, projectID, &usecase.UpdateProjectInput{
		Status:   &status,
		Progress: &progress,
	})
	require.NoError(t, err)
}
