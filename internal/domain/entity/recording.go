package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationRecording is an archived audio recording of an agent
// conversation. The audio itself lives in object storage.
type ConversationRecording struct {
	ID             uuid.UUID `json:"id"`
	ConversationID string    `json:"conversation_id"`
	AudioURL       string    `json:"audio_url"`
	Duration       int       `json:"duration"` // Seconds.
	Participants   []string  `json:"participants"`
	CreatedAt      time.Time `json:"created_at"`
}
