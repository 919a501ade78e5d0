package repository

import (
	"context"

	"yasen/internal/domain/entity"
)

// RecordingRepository defines operations for conversation recording persistence.
type RecordingRepository interface {
	// Create persists a new recording record holding the storage URL.
	Create(ctx context.Context, recording *entity.ConversationRecording) error

	// FindByConversation retrieves all recordings of one conversation, newest first.
	FindByConversation(ctx context.Context, conversationID string) ([]*entity.ConversationRecording, error)

	// FindRecent retrieves the most recent recordings across conversations.
	FindRecent(ctx context.Context, limit int) ([]*entity.ConversationRecording, error)
}
