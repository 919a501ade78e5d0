package repository

import (
	"context"
	"errors"
	"time"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a chat session is not found.
var ErrSessionNotFound = errors.New("chat session not found")

// ChatRepository defines operations for consultant chat persistence.
type ChatRepository interface {
	// CreateSession persists a new chat session.
	CreateSession(ctx context.Context, session *entity.ChatSession) error

	// FindSessionByID retrieves a session by its unique ID.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)

	// AppendMessage persists one message of a session.
	AppendMessage(ctx context.Context, message *entity.ChatMessage) error

	// FindMessagesBySession retrieves a session's messages, oldest first.
	FindMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, error)

	// TouchSession bumps the session's updated_at timestamp.
	TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error
}
