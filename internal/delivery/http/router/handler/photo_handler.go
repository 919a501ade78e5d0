package handler

import (
	"log/slog"
	"net/http"

	"yasen/internal/delivery/http/response"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PhotoHandler holds dependencies for project photo handlers.
type PhotoHandler struct {
	uc     usecase.PhotoUsecase
	logger *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadPhoto handles a base64 photo upload.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	var input *usecase.UploadPhotoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Project ID and photo are required")
	}

	photo, err := h.uc.UploadPhoto(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"photo_id":  photo.ID,
		"photo_url": photo.PhotoURL,
	}, "Photo uploaded successfully")
}

// ListPhotos handles listing a project's photos.
func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	projectID, err := uuid.Parse(c.QueryParam("project_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing project_id query parameter")
	}

	photos, err := h.uc.ListProjectPhotos(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"photos": photos}, "Photos retrieved successfully")
}

// DeletePhoto handles removing a photo record.
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid photo ID")
	}

	if err := h.uc.DeletePhoto(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted successfully")
}
