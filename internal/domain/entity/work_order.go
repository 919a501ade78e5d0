package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderStatus enumerates the lifecycle of a work order.
type WorkOrderStatus string

const (
	WorkOrderStatusPending WorkOrderStatus = "pending"
)

// WorkOrder records agreed-upon work, price and deadline between a customer
// and a contractor, typically produced by the voice agent from a conversation.
type WorkOrder struct {
	ID              uuid.UUID        `json:"id"`
	CustomerPhone   string           `json:"customer_phone"`
	ContractorPhone string           `json:"contractor_phone"`
	WorkDescription string           `json:"work_description"`
	Price           *decimal.Decimal `json:"price"`
	Deadline        *time.Time       `json:"deadline"`
	ConversationID  string           `json:"conversation_id"` // Reference to the originating agent conversation.
	Status          WorkOrderStatus  `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}
