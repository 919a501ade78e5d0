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

// MeasurementHandler holds dependencies for room measurement handlers.
type MeasurementHandler struct {
	uc     usecase.MeasurementUsecase
	logger *slog.Logger
}

// NewMeasurementHandler is the constructor for MeasurementHandler, injected by Fx.
func NewMeasurementHandler(uc usecase.MeasurementUsecase, logger *slog.Logger) *MeasurementHandler {
	return &MeasurementHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateMeasurement handles recording a room measurement.
func (h *MeasurementHandler) CreateMeasurement(c echo.Context) error {
	var input *usecase.CreateMeasurementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid measurement input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Project ID, room name and positive dimensions are required")
	}

	measurement, err := h.uc.CreateMeasurement(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"measurement_id": measurement.ID,
		"area":           measurement.Area,
	}, "Measurement created successfully")
}

// ListMeasurements handles listing a project's measurements.
func (h *MeasurementHandler) ListMeasurements(c echo.Context) error {
	projectID, err := uuid.Parse(c.QueryParam("project_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing project_id query parameter")
	}

	measurements, err := h.uc.ListProjectMeasurements(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"measurements": measurements}, "Measurements retrieved successfully")
}

// UpdateMeasurement handles a partial measurement update.
func (h *MeasurementHandler) UpdateMeasurement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid measurement ID")
	}

	// Bind into a value so an empty body becomes the empty update, which the
	// usecase rejects with a 400 instead of dereferencing a nil input.
	var input usecase.UpdateMeasurementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid measurement update input")
	}

	if err := h.uc.UpdateMeasurement(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Measurement updated successfully")
}

// DeleteMeasurement handles removing a measurement.
func (h *MeasurementHandler) DeleteMeasurement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid measurement ID")
	}

	if err := h.uc.DeleteMeasurement(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Measurement deleted successfully")
}
