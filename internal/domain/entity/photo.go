package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectPhoto references an uploaded photo of a project. The binary payload
// lives in object storage; only the resulting public URL is persisted.
type ProjectPhoto struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	PhotoURL    string    `json:"photo_url"`
	RoomName    string    `json:"room_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
