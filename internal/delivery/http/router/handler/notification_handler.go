package handler

import (
	"log/slog"
	"net/http"

	"yasen/internal/delivery/http/response"
	"yasen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification dispatch handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendNotification handles a work-order notification dispatch.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var input *usecase.WorkOrderNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Order ID and work description are required")
	}

	result, err := h.uc.SendWorkOrderNotification(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Notification dispatched")
}

// SendTestNotification handles a connectivity test dispatch.
func (h *NotificationHandler) SendTestNotification(c echo.Context) error {
	var input usecase.TestNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test notification input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid test parameters")
	}

	result, err := h.uc.SendTestNotification(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Test notification dispatched")
}
