package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomMeasurement captures the dimensions of a single room within a project.
// Area is derived from length and width and is never independently settable;
// every write that touches either dimension must recompute it.
type RoomMeasurement struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	RoomName  string    `json:"room_name"`
	Length    float64   `json:"length"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Area      float64   `json:"area"` // Always Length * Width on the latest values.
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
