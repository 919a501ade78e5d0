package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderModel mirrors the 'work_orders' table.
type WorkOrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerPhone   string           `gorm:"type:varchar(32);not null"`
	ContractorPhone string           `gorm:"type:varchar(32)"`
	WorkDescription string           `gorm:"type:text;not null"`
	Price           *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Deadline        *time.Time
	ConversationID  string `gorm:"type:varchar(255);index"`
	Status          string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// ConversationRecordingModel mirrors the 'conversation_recordings' table.
// Participants is persisted as a JSONB array.
type ConversationRecordingModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID string    `gorm:"type:varchar(255);not null;index"`
	AudioURL       string    `gorm:"type:text;not null"`
	Duration       int       `gorm:"not null;default:0"`
	Participants   []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationRecordingModel) TableName() string {
	return "conversation_recordings"
}
