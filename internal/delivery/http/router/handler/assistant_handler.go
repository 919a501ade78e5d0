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

// AssistantHandler holds dependencies for the renovation consultant handlers.
type AssistantHandler struct {
	uc     usecase.AssistantUsecase
	logger *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		uc:     uc,
		logger: logger,
	}
}

// Chat handles one consultant chat exchange.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var input usecase.AssistantChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "At least one message is required")
	}

	output, err := h.uc.Chat(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Chat completed successfully")
}

// GetSessionMessages handles fetching a chat session's history.
func (h *AssistantHandler) GetSessionMessages(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	messages, err := h.uc.GetSessionMessages(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"messages": messages}, "Session messages retrieved successfully")
}
