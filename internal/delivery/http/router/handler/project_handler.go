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

// ProjectHandler holds dependencies for renovation project handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProject handles the project creation request.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var input *usecase.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "User ID, title and address are required")
	}

	project, err := h.uc.CreateProject(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"project_id": project.ID,
	}, "Project created successfully")
}

// GetProject handles fetching one project with its measurements and photos.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	details, err := h.uc.GetProjectDetails(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Project retrieved successfully")
}

// ListProjects handles listing a user's projects.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing user_id query parameter")
	}

	projects, err := h.uc.ListUserProjects(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"projects": projects}, "Projects retrieved successfully")
}

// UpdateProject handles a partial project update.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID")
	}

	// Bind into a value so an empty body becomes the empty update, which the
	// usecase rejects with a 400 instead of dereferencing a nil input.
	var input usecase.UpdateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project update input")
	}

	if err := h.uc.UpdateProject(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Project updated successfully")
}
