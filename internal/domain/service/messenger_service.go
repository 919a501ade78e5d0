package service

import "context"

// MessengerService sends a text message to a chat through the messenger bot
// API. Single-shot with a fixed timeout, no retries.
type MessengerService interface {
	SendMessage(ctx context.Context, chatID, text string) error
}
