package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yasen/internal/delivery/http/validator"
	"yasen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAssistantUsecase tracks whether Chat was reached.
type stubAssistantUsecase struct {
	usecase.AssistantUsecase

	called bool
}

func (s *stubAssistantUsecase) Chat(_ context.Context, _ *usecase.AssistantChatInput) (*usecase.AssistantChatOutput, error) {
	s.called = true

	return &usecase.AssistantChatOutput{}, nil
}

func newAssistantTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/assistant/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAssistantHandler_Chat(t *testing.T) {
	t.Run("rejects empty body", func(t *testing.T) {
		uc := &stubAssistantUsecase{}
		handler := NewAssistantHandler(uc, slog.Default())

		c, rec := newAssistantTestContext(t, "")

		err := handler.Chat(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		assert.False(t, uc.called)
	})

	t.Run("rejects empty messages list", func(t *testing.T) {
		uc := &stubAssistantUsecase{}
		handler := NewAssistantHandler(uc, slog.Default())

		c, rec := newAssistantTestContext(t, `{"messages":[]}`)

		err := handler.Chat(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		assert.False(t, uc.called)
	})

	t.Run("forwards a non-empty conversation", func(t *testing.T) {
		uc := &stubAssistantUsecase{}
		handler := NewAssistantHandler(uc, slog.Default())

		c, rec := newAssistantTestContext(t, `{"messages":[{"role":"user","content":"С чего начать ремонт?"}]}`)

		err := handler.Chat(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, uc.called)
	})
}
