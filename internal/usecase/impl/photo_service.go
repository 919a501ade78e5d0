package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/domain/service"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PhotoServiceParams defines the dependencies of the photo service.
type PhotoServiceParams struct {
	fx.In

	PhotoRepo   repository.PhotoRepository
	ProjectRepo repository.ProjectRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// photoService implements the PhotoUsecase interface.
type photoService struct {
	photoRepo   repository.PhotoRepository
	projectRepo repository.ProjectRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		photoRepo:   params.PhotoRepo,
		projectRepo: params.ProjectRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

// UploadPhoto decodes the base64 payload, stores it in object storage and
// persists the resulting public URL.
func (srv *photoService) UploadPhoto(ctx context.Context, input *usecase.UploadPhotoInput) (*entity.ProjectPhoto, error) {
	srv.logger.Info("Uploading photo", "projectID", input.ProjectID)

	if _, err := srv.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	data, err := decodeBase64Payload(input.Photo)
	if err != nil {
		return nil, domainerrors.ErrInvalidPhotoData
	}

	key := fmt.Sprintf("projects/%s/photos/%d.jpg", input.ProjectID, time.Now().Unix())
	photoURL, err := srv.storage.Put(ctx, key, data, "image/jpeg")
	if err != nil {
		return nil, domainerrors.NewStorageError(err.Error())
	}

	photo := &entity.ProjectPhoto{
		ProjectID:   input.ProjectID,
		PhotoURL:    photoURL,
		RoomName:    input.RoomName,
		Description: input.Description,
	}
	if err := srv.photoRepo.Create(ctx, photo); err != nil {
		return nil, errors.Wrap(err, "failed to persist photo record")
	}

	return photo, nil
}

// ListProjectPhotos lists a project's photos, newest first.
func (srv *photoService) ListProjectPhotos(ctx context.Context, projectID uuid.UUID) ([]*entity.ProjectPhoto, error) {
	photos, err := srv.photoRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list project photos")
	}

	return photos, nil
}

// DeletePhoto removes a photo record.
func (srv *photoService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting photo", "photoID", id)

	if err := srv.photoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return domainerrors.ErrPhotoNotFound
		}

		return errors.Wrap(err, "failed to delete photo")
	}

	return nil
}

// decodeBase64Payload decodes an uploaded payload, tolerating an optional
// data URL prefix like "data:image/jpeg;base64,".
func decodeBase64Payload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx != -1 && strings.Contains(payload[:idx], "base64") {
		payload = payload[idx+1:]
	}

	return base64.StdEncoding.DecodeString(payload)
}
