// Package notification provides concrete clients for the outbound
// notification channels (sms.ru and the Telegram Bot API).
package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yasen/config"
	"yasen/internal/domain/service"
	"yasen/internal/util"

	"github.com/pkg/errors"
)

const (
	defaultSMSRuBaseURL = "https://sms.ru"
	defaultSMSTimeout   = 10 * time.Second
)

// smsRuService implements service.SMSService against the sms.ru HTTP API.
type smsRuService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSMSRuService is the constructor for smsRuService.
func NewSMSRuService(cfg *config.Config) service.SMSService {
	apiKey := ""
	baseURL := defaultSMSRuBaseURL
	timeout := defaultSMSTimeout
	if cfg != nil && cfg.SMS != nil {
		apiKey = cfg.SMS.APIKey
		if cfg.SMS.BaseURL != "" {
			baseURL = cfg.SMS.BaseURL
		}
		if cfg.SMS.Timeout > 0 {
			timeout = cfg.SMS.Timeout
		}
	}

	return &smsRuService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// smsRuResponse is the subset of the sms.ru send response we care about.
type smsRuResponse struct {
	Status     string `json:"status"`
	StatusText string `json:"status_text"`
}

// SendMessage delivers one SMS. The gateway expects digits only, so the
// phone is normalized before sending.
func (s *smsRuService) SendMessage(ctx context.Context, phone, text string) error {
	if s.apiKey == "" {
		return errors.New("sms.ru api key is not configured")
	}

	form := url.Values{}
	form.Set("api_id", s.apiKey)
	form.Set("to", util.NormalizePhone(phone))
	form.Set("msg", text)
	form.Set("json", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/sms/send", strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to build sms.ru request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "sms.ru request failed")
	}
	defer resp.Body.Close()

	var body smsRuResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "failed to decode sms.ru response")
	}

	if body.Status != "OK" {
		return errors.Errorf("sms.ru rejected message: %s", body.StatusText)
	}

	return nil
}
