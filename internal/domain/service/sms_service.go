// Package service defines interfaces for outbound collaborators the domain
// depends on (SMS gateway, messenger bot, chat-completion API, object storage).
package service

import "context"

// SMSService sends a text message to a phone number through the SMS gateway.
// Single-shot with a fixed timeout, no retries.
type SMSService interface {
	SendMessage(ctx context.Context, phone, text string) error
}
