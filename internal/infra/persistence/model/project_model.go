// Package model holds the GORM persistence models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel mirrors the 'projects' table. UserID references users.id (UUID).
type ProjectModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title       string           `gorm:"type:varchar(255);not null"`
	Address     string           `gorm:"type:text"`
	ProjectType string           `gorm:"type:varchar(50)"`
	Area        *float64         `gorm:"type:numeric(10,2)"`
	Rooms       *int
	Budget      *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Description string           `gorm:"type:text"`
	Status      string           `gorm:"type:varchar(20);not null;default:'pending'"`
	Progress    int              `gorm:"not null;default:0"`
	StartDate   *time.Time
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Measurements []*RoomMeasurementModel `gorm:"foreignKey:ProjectID"`
	Photos       []*ProjectPhotoModel    `gorm:"foreignKey:ProjectID"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// RoomMeasurementModel mirrors the 'room_measurements' table. Area is stored
// denormalized but always recomputed from length and width on writes.
type RoomMeasurementModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomName  string    `gorm:"type:varchar(100);not null"`
	Length    float64   `gorm:"type:numeric(10,2);not null"`
	Width     float64   `gorm:"type:numeric(10,2);not null"`
	Height    float64   `gorm:"type:numeric(10,2)"`
	Area      float64   `gorm:"type:numeric(10,2);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomMeasurementModel) TableName() string {
	return "room_measurements"
}

// ProjectPhotoModel mirrors the 'project_photos' table. The photo payload
// lives in object storage, only the public URL is persisted.
type ProjectPhotoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PhotoURL    string    `gorm:"type:text;not null"`
	RoomName    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectPhotoModel) TableName() string {
	return "project_photos"
}
