package service

import "context"

// PromptMessage is one message of a chat-completion conversation.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TokenUsage reports the provider's token accounting for one completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionRequest describes one chat-completion call.
type CompletionRequest struct {
	Model       string
	Messages    []PromptMessage
	Temperature float64
	MaxTokens   int
}

// CompletionResult is the assistant reply plus usage accounting.
type CompletionResult struct {
	Content string
	Usage   TokenUsage
}

// ChatCompletionService proxies to an OpenAI-compatible provider. Both calls
// are opaque pass-throughs: no retries, fixed timeout, provider failures
// surface as upstream errors.
type ChatCompletionService interface {
	// Complete sends a conversation and returns the assistant reply.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)

	// Transcribe converts recorded audio to text.
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}
