package usecase

import (
	"context"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPhotoInput carries a base64-encoded photo for a project.
type UploadPhotoInput struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Photo       string    `json:"photo" validate:"required"`
	RoomName    string    `json:"room_name"`
	Description string    `json:"description"`
}

// PhotoUsecase defines project photo use cases.
type PhotoUsecase interface {
	// UploadPhoto decodes the payload, stores it in object storage and
	// persists the resulting public URL.
	UploadPhoto(ctx context.Context, input *UploadPhotoInput) (*entity.ProjectPhoto, error)

	// ListProjectPhotos lists a project's photos, newest first.
	ListProjectPhotos(ctx context.Context, projectID uuid.UUID) ([]*entity.ProjectPhoto, error)

	// DeletePhoto removes a photo record.
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}
