package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"yasen/config"
	"yasen/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTelegramBaseURL = "https://api.telegram.org"
	defaultTelegramTimeout = 10 * time.Second
)

// telegramService implements service.MessengerService against the Telegram Bot API.
type telegramService struct {
	botToken string
	baseURL  string
	client   *http.Client
}

// NewTelegramService is the constructor for telegramService.
func NewTelegramService(cfg *config.Config) service.MessengerService {
	botToken := ""
	baseURL := defaultTelegramBaseURL
	timeout := defaultTelegramTimeout
	if cfg != nil && cfg.Telegram != nil {
		botToken = cfg.Telegram.BotToken
		if cfg.Telegram.BaseURL != "" {
			baseURL = cfg.Telegram.BaseURL
		}
		if cfg.Telegram.Timeout > 0 {
			timeout = cfg.Telegram.Timeout
		}
	}

	return &telegramService{
		botToken: botToken,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

// telegramSendRequest is the sendMessage payload.
type telegramSendRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// telegramSendResponse is the subset of the Bot API response we care about.
type telegramSendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers one message to a chat, rendered as HTML.
func (s *telegramService) SendMessage(ctx context.Context, chatID, text string) error {
	if s.botToken == "" {
		return errors.New("telegram bot token is not configured")
	}

	payload, err := json.Marshal(telegramSendRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode telegram payload")
	}

	endpoint := s.baseURL + "/bot" + s.botToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "telegram request failed")
	}
	defer resp.Body.Close()

	var body telegramSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "failed to decode telegram response")
	}

	if !body.OK {
		return errors.Errorf("telegram rejected message: %s", body.Description)
	}

	return nil
}
