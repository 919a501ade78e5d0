package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"yasen/internal/delivery/http/response"
	"yasen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultAgentLimit = 50

// AgentHandler holds dependencies for the voice agent handlers.
type AgentHandler struct {
	uc     usecase.AgentUsecase
	logger *slog.Logger
}

// NewAgentHandler is the constructor for AgentHandler, injected by Fx.
func NewAgentHandler(uc usecase.AgentUsecase, logger *slog.Logger) *AgentHandler {
	return &AgentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Transcribe handles converting recorded audio to text.
func (h *AgentHandler) Transcribe(c echo.Context) error {
	var input *usecase.TranscribeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transcription input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Audio is required")
	}

	text, err := h.uc.Transcribe(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"text": text}, "Audio transcribed successfully")
}

// Chat handles one voice agent exchange.
func (h *AgentHandler) Chat(c echo.Context) error {
	var input *usecase.AgentChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Message is required")
	}

	output, err := h.uc.Chat(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Chat completed successfully")
}

// CreateOrder handles recording a work order agreed during a conversation.
func (h *AgentHandler) CreateOrder(c echo.Context) error {
	var input *usecase.CreateWorkOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work order input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Customer phone and work description are required")
	}

	order, err := h.uc.CreateWorkOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"order_id":   order.ID,
		"created_at": order.CreatedAt,
	}, "Work order created successfully")
}

// ListOrders handles listing work orders, newest first.
func (h *AgentHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListWorkOrders(c.Request().Context(), c.QueryParam("status"), limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders}, "Work orders retrieved successfully")
}

// SaveRecording handles archiving a conversation recording.
func (h *AgentHandler) SaveRecording(c echo.Context) error {
	var input *usecase.SaveRecordingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recording input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Audio is required")
	}

	recording, err := h.uc.SaveRecording(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"recording_id": recording.ID,
		"audio_url":    recording.AudioURL,
	}, "Recording saved successfully")
}

// ListRecordings handles listing conversation recordings, newest first.
func (h *AgentHandler) ListRecordings(c echo.Context) error {
	recordings, err := h.uc.ListRecordings(c.Request().Context(), c.QueryParam("conversation_id"), limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"recordings": recordings}, "Recordings retrieved successfully")
}

// limitParam reads the limit query parameter with the listing default.
func limitParam(c echo.Context) int {
	limit := defaultAgentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return limit
}
