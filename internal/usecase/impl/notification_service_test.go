package impl

import (
	"context"
	"testing"

	domainerrors "yasen/internal/domain/errors"
	mockService "yasen/internal/mocks/service"
	"yasen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service   usecase.NotificationUsecase
	sms       *mockService.MockSMSService
	messenger *mockService.MockMessengerService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	sms := mockService.NewMockSMSService(t)
	messenger := mockService.NewMockMessengerService(t)
	service := NewNotificationService(NotificationServiceParams{
		SMS:       sms,
		Messenger: messenger,
		Logger:    testLogger(),
	})

	return notificationServiceFixtures{
		service:   service,
		sms:       sms,
		messenger: messenger,
	}
}

func TestNotificationService_SendWorkOrderNotification_RendersFullTemplate(t *testing.T) {
	f := createTestNotificationService(t)

	ctx := context.Background()
	price := decimal.NewFromInt(1500000)

	var sent string
	f.messenger.EXPECT().
		SendMessage(ctx, "123456789", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ string, text string) error {
			sent = text
			return nil
		})

	result, err := f.service.SendWorkOrderNotification(ctx, &usecase.WorkOrderNotificationInput{
		Type:            usecase.ChannelTelegram,
		TelegramID:      "123456789",
		OrderID:         "42",
		WorkDescription: "Укладка плитки в ванной",
		Price:           &price,
		Deadline:        "2026-09-15",
	})
	require.NoError(t, err)

	expected := "🔔 Новый наряд-заказ #42\n\n" +
		"📋 Работы: Укладка плитки в ванной\n\n" +
		"💰 Стоимость: 1,500,000 ₽\n" +
		"📅 Срок: 2026-09-15\n" +
		"\n✅ Подтвердите получение заказа"
	assert.Equal(t, expected, sent)
	assert.True(t, result.Results[usecase.ChannelTelegram].Success)
}

func TestNotificationService_SendWorkOrderNotification_OmitsEmptyOptionalLines(t *testing.T) {
	f := createTestNotificationService(t)

	ctx := context.Background()

	var sent string
	f.sms.EXPECT().
		SendMessage(ctx, "+79991234567", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ string, text string) error {
			sent = text
			return nil
		})

	_, err := f.service.SendWorkOrderNotification(ctx, &usecase.WorkOrderNotificationInput{
		Type:            usecase.ChannelSMS,
		Phone:           "+79991234567",
		OrderID:         "7",
		WorkDescription: "Монтаж электрики",
	})
	require.NoError(t, err)
	assert.NotContains(t, sent, "💰")
	assert.NotContains(t, sent, "📅")
	assert.Contains(t, sent, "✅ Подтвердите получение заказа")
}

func TestNotificationService_SendWorkOrderNotification_ChannelsFailIndependently(t *testing.T) {
	f := createTestNotificationService(t)

	ctx := context.Background()

	f.sms.EXPECT().
		SendMessage(ctx, "+79991234567", mock.AnythingOfType("string")).
		Return(errors.New("gateway unavailable"))

	f.messenger.EXPECT().
		SendMessage(ctx, "123456789", mock.AnythingOfType("string")).
		Return(nil)

	result, err := f.service.SendWorkOrderNotification(ctx, &usecase.WorkOrderNotificationInput{
		Phone:           "+79991234567",
		TelegramID:      "123456789",
		OrderID:         "42",
		WorkDescription: "Укладка плитки",
	})
	require.NoError(t, err)

	smsResult := result.Results[usecase.ChannelSMS]
	assert.False(t, smsResult.Success)
	assert.Contains(t, smsResult.Error, "gateway unavailable")

	telegramResult := result.Results[usecase.ChannelTelegram]
	assert.True(t, telegramResult.Success)
	assert.Equal(t, "Telegram message sent successfully", telegramResult.Message)
}

func TestNotificationService_SendWorkOrderNotification_RequiresRecipient(t *testing.T) {
	f := createTestNotificationService(t)

	_, err := f.service.SendWorkOrderNotification(context.Background(), &usecase.WorkOrderNotificationInput{
		OrderID:         "42",
		WorkDescription: "Укладка плитки",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_SendWorkOrderNotification_RejectsMismatchedChannel(t *testing.T) {
	f := createTestNotificationService(t)

	_, err := f.service.SendWorkOrderNotification(context.Background(), &usecase.WorkOrderNotificationInput{
		Type:            usecase.ChannelSMS,
		TelegramID:      "123456789",
		OrderID:         "42",
		WorkDescription: "Укладка плитки",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_SendTestNotification_RejectsMismatchedChannel(t *testing.T) {
	f := createTestNotificationService(t)

	_, err := f.service.SendTestNotification(context.Background(), &usecase.TestNotificationInput{
		Type:       usecase.ChannelSMS,
		TelegramID: "123456789",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Invalid test parameters")
}

func TestNotificationService_SendTestNotification_DefaultsToTelegram(t *testing.T) {
	f := createTestNotificationService(t)

	ctx := context.Background()

	f.messenger.EXPECT().
		SendMessage(ctx, "123456789", testMessage).
		Return(nil)

	result, err := f.service.SendTestNotification(ctx, &usecase.TestNotificationInput{
		Phone:      "+79991234567",
		TelegramID: "123456789",
	})
	require.NoError(t, err)

	_, smsAttempted := result.Results[usecase.ChannelSMS]
	assert.False(t, smsAttempted)
	assert.True(t, result.Results[usecase.ChannelTelegram].Success)
}
