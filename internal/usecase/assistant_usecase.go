package usecase

import (
	"context"

	"yasen/internal/domain/entity"
	"yasen/internal/domain/service"

	"github.com/google/uuid"
)

// AssistantChatInput is one consultant chat exchange. When SessionID is set
// the exchange is appended to that session's history.
type AssistantChatInput struct {
	Messages  []service.PromptMessage `json:"messages" validate:"required,min=1"`
	SessionID *uuid.UUID              `json:"session_id"`
}

// AssistantChatOutput is the assistant reply with usage accounting.
type AssistantChatOutput struct {
	Message   string             `json:"message"`
	Usage     service.TokenUsage `json:"usage"`
	SessionID *uuid.UUID         `json:"session_id,omitempty"`
}

// AssistantUsecase defines the renovation consultant chat use cases.
type AssistantUsecase interface {
	// Chat proxies a conversation to the chat-completion provider with the
	// consultant system prompt prepended, optionally persisting the exchange.
	Chat(ctx context.Context, input *AssistantChatInput) (*AssistantChatOutput, error)

	// GetSessionMessages retrieves a session's history, oldest first.
	GetSessionMessages(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, error)
}
