package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole is the author of a chat message within a session.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatSession groups an ordered sequence of consultant chat messages.
// UpdatedAt bumps on every message exchange.
type ChatSession struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is one message within a session.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
