package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/service"
	"yasen/internal/usecase"
	"yasen/internal/util"

	"go.uber.org/fx"
)

const testMessage = "🧪 Тестовое уведомление от ЯСЕН\n\nСистема отправки работает корректно!"

// NotificationServiceParams defines the dependencies of the notification service.
type NotificationServiceParams struct {
	fx.In

	SMS       service.SMSService
	Messenger service.MessengerService
	Logger    *slog.Logger
}

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	sms       service.SMSService
	messenger service.MessengerService
	logger    *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		sms:       params.SMS,
		messenger: params.Messenger,
		logger:    params.Logger,
	}
}

// SendWorkOrderNotification formats the work-order template and sends it
// over the selected channels. Channels are independent: a failure on one is
// reported in its result and never blocks the other.
func (srv *notificationService) SendWorkOrderNotification(ctx context.Context, input *usecase.WorkOrderNotificationInput) (*usecase.DispatchResult, error) {
	notificationType := input.Type
	if notificationType == "" {
		notificationType = usecase.ChannelBoth
	}

	if input.Phone == "" && input.TelegramID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("Phone or telegram_id required")
	}
	if !recipientMatchesChannel(notificationType, input.Phone, input.TelegramID) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("No recipient for the requested notification type")
	}

	message := formatWorkOrderMessage(input)

	return srv.dispatch(ctx, notificationType, input.Phone, input.TelegramID, message), nil
}

// SendTestNotification sends the fixed test message.
func (srv *notificationService) SendTestNotification(ctx context.Context, input *usecase.TestNotificationInput) (*usecase.DispatchResult, error) {
	notificationType := input.Type
	if notificationType == "" {
		notificationType = usecase.ChannelTelegram
	}

	if input.Phone == "" && input.TelegramID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("Phone or telegram_id required")
	}
	if !recipientMatchesChannel(notificationType, input.Phone, input.TelegramID) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("Invalid test parameters")
	}

	return srv.dispatch(ctx, notificationType, input.Phone, input.TelegramID, testMessage), nil
}

// recipientMatchesChannel reports whether the requested channel has a
// recipient to deliver to. A mismatched pair would otherwise dispatch
// nothing and report an empty result as success.
func recipientMatchesChannel(notificationType, phone, telegramID string) bool {
	switch notificationType {
	case usecase.ChannelSMS:
		return phone != ""
	case usecase.ChannelTelegram:
		return telegramID != ""
	case usecase.ChannelBoth:
		return phone != "" || telegramID != ""
	}

	return false
}

// dispatch fans the message out to the requested channels, collecting a
// per-channel outcome.
func (srv *notificationService) dispatch(ctx context.Context, notificationType, phone, telegramID, message string) *usecase.DispatchResult {
	result := &usecase.DispatchResult{
		Results: make(map[string]usecase.ChannelResult),
	}

	if (notificationType == usecase.ChannelSMS || notificationType == usecase.ChannelBoth) && phone != "" {
		if err := srv.sms.SendMessage(ctx, phone, message); err != nil {
			srv.logger.Warn("SMS dispatch failed", "error", err)
			result.Results[usecase.ChannelSMS] = usecase.ChannelResult{Success: false, Error: err.Error()}
		} else {
			result.Results[usecase.ChannelSMS] = usecase.ChannelResult{Success: true, Message: "SMS sent successfully"}
		}
	}

	if (notificationType == usecase.ChannelTelegram || notificationType == usecase.ChannelBoth) && telegramID != "" {
		if err := srv.messenger.SendMessage(ctx, telegramID, message); err != nil {
			srv.logger.Warn("Telegram dispatch failed", "error", err)
			result.Results[usecase.ChannelTelegram] = usecase.ChannelResult{Success: false, Error: err.Error()}
		} else {
			result.Results[usecase.ChannelTelegram] = usecase.ChannelResult{Success: true, Message: "Telegram message sent successfully"}
		}
	}

	return result
}

// formatWorkOrderMessage renders the work-order notification template.
func formatWorkOrderMessage(input *usecase.WorkOrderNotificationInput) string {
	var message strings.Builder

	fmt.Fprintf(&message, "🔔 Новый наряд-заказ #%s\n\n", input.OrderID)
	fmt.Fprintf(&message, "📋 Работы: %s\n\n", input.WorkDescription)

	if input.Price != nil && !input.Price.IsZero() {
		fmt.Fprintf(&message, "💰 Стоимость: %s ₽\n", util.FormatGroupedAmount(*input.Price))
	}

	if input.Deadline != "" {
		fmt.Fprintf(&message, "📅 Срок: %s\n", input.Deadline)
	}

	message.WriteString("\n✅ Подтвердите получение заказа")

	return message.String()
}
