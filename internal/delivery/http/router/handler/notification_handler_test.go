package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yasen/internal/delivery/http/validator"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNotificationUsecase records the last test dispatch input.
type stubNotificationUsecase struct {
	usecase.NotificationUsecase

	testInput *usecase.TestNotificationInput
	testErr   error
}

func (s *stubNotificationUsecase) SendTestNotification(_ context.Context, input *usecase.TestNotificationInput) (*usecase.DispatchResult, error) {
	s.testInput = input
	if s.testErr != nil {
		return nil, s.testErr
	}

	return &usecase.DispatchResult{Results: map[string]usecase.ChannelResult{}}, nil
}

func newNotificationTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/notifications/test", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNotificationHandler_SendTestNotification(t *testing.T) {
	t.Run("empty body reaches the usecase as an empty input", func(t *testing.T) {
		uc := &stubNotificationUsecase{
			testErr: domainerrors.ErrValidationFailed.WrapMessage("Phone or telegram_id required"),
		}
		handler := NewNotificationHandler(uc, slog.Default())

		c, _ := newNotificationTestContext(t, "")

		err := handler.SendTestNotification(c)

		require.Error(t, err)
		require.NotNil(t, uc.testInput)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	})

	t.Run("rejects unknown notification type", func(t *testing.T) {
		uc := &stubNotificationUsecase{}
		handler := NewNotificationHandler(uc, slog.Default())

		c, rec := newNotificationTestContext(t, `{"type":"email","phone":"+79991234567"}`)

		err := handler.SendTestNotification(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		assert.Nil(t, uc.testInput)
	})
}
