package usecase

import (
	"context"
	"time"

	"yasen/internal/domain/entity"
	"yasen/internal/domain/service"

	"github.com/shopspring/decimal"
)

// TranscribeInput carries base64-encoded audio to convert to text.
type TranscribeInput struct {
	Audio string `json:"audio" validate:"required"`
}

// AgentChatInput is one voice-agent chat exchange.
type AgentChatInput struct {
	Message  string                  `json:"message" validate:"required"`
	History  []service.PromptMessage `json:"history"`
	UserRole string                  `json:"user_role"`
}

// AgentChatOutput is the agent reply with usage accounting.
type AgentChatOutput struct {
	Message string             `json:"message"`
	Usage   service.TokenUsage `json:"usage"`
}

// CreateWorkOrderInput records a work order agreed during a conversation.
type CreateWorkOrderInput struct {
	CustomerPhone   string           `json:"customer_phone" validate:"required"`
	ContractorPhone string           `json:"contractor_phone"`
	WorkDescription string           `json:"work_description" validate:"required"`
	Price           *decimal.Decimal `json:"price"`
	Deadline        *time.Time       `json:"deadline"`
	ConversationID  string           `json:"conversation_id"`
}

// SaveRecordingInput archives a conversation's audio recording.
type SaveRecordingInput struct {
	Audio          string   `json:"audio" validate:"required"`
	ConversationID string   `json:"conversation_id"`
	Duration       int      `json:"duration"`
	Participants   []string `json:"participants"`
}

// AgentUsecase defines the voice agent use cases: transcription, chat,
// work order creation and conversation archiving.
type AgentUsecase interface {
	// Transcribe converts recorded audio to text via the provider.
	Transcribe(ctx context.Context, input *TranscribeInput) (string, error)

	// Chat proxies one exchange with the role-dependent agent prompt.
	Chat(ctx context.Context, input *AgentChatInput) (*AgentChatOutput, error)

	// CreateWorkOrder persists a pending work order.
	CreateWorkOrder(ctx context.Context, input *CreateWorkOrderInput) (*entity.WorkOrder, error)

	// ListWorkOrders lists work orders, newest first, optionally by status.
	ListWorkOrders(ctx context.Context, status string, limit int) ([]*entity.WorkOrder, error)

	// SaveRecording uploads the audio and persists the recording row.
	SaveRecording(ctx context.Context, input *SaveRecordingInput) (*entity.ConversationRecording, error)

	// ListRecordings lists recordings, newest first, optionally for one conversation.
	ListRecordings(ctx context.Context, conversationID string, limit int) ([]*entity.ConversationRecording, error)
}
