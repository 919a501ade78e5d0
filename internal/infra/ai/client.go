// Package ai provides the client for the OpenAI-compatible chat completion
// and transcription provider.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"yasen/config"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL         = "https://api.openai.com/v1"
	defaultTimeout         = 30 * time.Second
	defaultTranscribeModel = "whisper-1"
	transcribeLanguage     = "ru"
)

// client implements service.ChatCompletionService. Calls are opaque
// pass-throughs with a fixed timeout and no retries.
type client struct {
	apiKey          string
	baseURL         string
	transcribeModel string
	httpClient      *http.Client
}

// NewClient is the constructor for the chat completion client.
func NewClient(cfg *config.Config) service.ChatCompletionService {
	apiKey := ""
	baseURL := defaultBaseURL
	transcribeModel := defaultTranscribeModel
	timeout := defaultTimeout
	if cfg != nil && cfg.AI != nil {
		apiKey = cfg.AI.APIKey
		if cfg.AI.BaseURL != "" {
			baseURL = cfg.AI.BaseURL
		}
		if cfg.AI.TranscribeModel != "" {
			transcribeModel = cfg.AI.TranscribeModel
		}
		if cfg.AI.Timeout > 0 {
			timeout = cfg.AI.Timeout
		}
	}

	return &client{
		apiKey:          apiKey,
		baseURL:         strings.TrimRight(baseURL, "/"),
		transcribeModel: transcribeModel,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

// completionRequest is the provider's chat completion payload.
type completionRequest struct {
	Model       string                  `json:"model"`
	Messages    []service.PromptMessage `json:"messages"`
	Temperature float64                 `json:"temperature,omitempty"`
	MaxTokens   int                     `json:"max_tokens,omitempty"`
}

// completionResponse is the subset of the provider response we care about.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage service.TokenUsage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// transcriptionResponse is the provider's transcription response.
type transcriptionResponse struct {
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a conversation and returns the assistant reply.
func (c *client) Complete(ctx context.Context, req service.CompletionRequest) (*service.CompletionResult, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode completion request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build completion request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("AI service", err.Error())
	}
	defer resp.Body.Close()

	var body completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domainerrors.NewUpstreamError("AI service", "invalid provider response")
	}

	if resp.StatusCode != http.StatusOK {
		detail := resp.Status
		if body.Error != nil && body.Error.Message != "" {
			detail = body.Error.Message
		}

		return nil, domainerrors.NewUpstreamError("AI service", detail)
	}

	if len(body.Choices) == 0 {
		return nil, domainerrors.NewUpstreamError("AI service", "provider returned no choices")
	}

	return &service.CompletionResult{
		Content: body.Choices[0].Message.Content,
		Usage:   body.Usage,
	}, nil
}

// Transcribe converts recorded audio to text via the provider's
// multipart transcription endpoint.
func (c *client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to build transcription form")
	}
	if _, err := io.Copy(part, bytes.NewReader(audio)); err != nil {
		return "", errors.Wrap(err, "failed to write transcription audio")
	}
	if err := writer.WriteField("model", c.transcribeModel); err != nil {
		return "", errors.Wrap(err, "failed to write transcription model")
	}
	if err := writer.WriteField("language", transcribeLanguage); err != nil {
		return "", errors.Wrap(err, "failed to write transcription language")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize transcription form")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", errors.Wrap(err, "failed to build transcription request")
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", domainerrors.NewUpstreamError("AI service", err.Error())
	}
	defer resp.Body.Close()

	var body transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", domainerrors.NewUpstreamError("AI service", "invalid provider response")
	}

	if resp.StatusCode != http.StatusOK {
		detail := resp.Status
		if body.Error != nil && body.Error.Message != "" {
			detail = body.Error.Message
		}

		return "", domainerrors.NewUpstreamError("AI service", detail)
	}

	return body.Text, nil
}
