package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// Notification channel names as they appear in dispatch results.
const (
	ChannelSMS      = "sms"
	ChannelTelegram = "telegram"
	ChannelBoth     = "both"
)

// WorkOrderNotificationInput describes a work-order notification dispatch.
type WorkOrderNotificationInput struct {
	Type            string           `json:"type" validate:"omitempty,oneof=sms telegram both"`
	Phone           string           `json:"phone"`
	TelegramID      string           `json:"telegram_id"`
	OrderID         string           `json:"order_id" validate:"required"`
	WorkDescription string           `json:"work_description" validate:"required"`
	Price           *decimal.Decimal `json:"price"`
	Deadline        string           `json:"deadline"`
}

// TestNotificationInput describes a connectivity test dispatch.
type TestNotificationInput struct {
	Type       string `json:"type" validate:"omitempty,oneof=sms telegram both"`
	Phone      string `json:"phone"`
	TelegramID string `json:"telegram_id"`
}

// ChannelResult reports the outcome of one channel attempt.
type ChannelResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DispatchResult aggregates per-channel outcomes keyed by channel name.
// A failure on one channel never blocks the other.
type DispatchResult struct {
	Results map[string]ChannelResult `json:"results"`
}

// NotificationUsecase defines the notification dispatch use cases.
type NotificationUsecase interface {
	// SendWorkOrderNotification formats the work-order template and sends
	// it over the selected channels independently.
	SendWorkOrderNotification(ctx context.Context, input *WorkOrderNotificationInput) (*DispatchResult, error)

	// SendTestNotification sends the fixed test message.
	SendTestNotification(ctx context.Context, input *TestNotificationInput) (*DispatchResult, error)
}
