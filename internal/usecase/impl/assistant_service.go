package impl

import (
	"context"
	"log/slog"
	"time"

	"yasen/config"
	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/domain/service"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultChatModel     = "gpt-4o-mini"
	chatTemperature      = 0.7
	chatMaxTokens        = 1500
	sessionTitleMaxRunes = 80
)

// consultantPrompt frames the model as a renovation consultant. Prepended to
// every conversation sent to the provider, never stored with the session.
const consultantPrompt = `Ты профессиональный консультант по ремонту квартир и домов. Твоя задача - помогать клиентам с вопросами о ремонте, дизайне интерьера, выборе материалов и планировании работ.

Твои знания включают:
- Современные тренды в дизайне интерьеров
- Виды отделочных материалов и их характеристики
- Этапы ремонтных работ и их последовательность
- Примерные расценки на работы и материалы
- Подбор цветовых решений и стилей
- Планировка помещений и зонирование
- Электрика, сантехника, вентиляция

Стиль общения:
- Дружелюбный и профессиональный
- Давай конкретные советы и рекомендации
- Используй примеры и визуальные описания
- При необходимости задавай уточняющие вопросы
- Предупреждай о возможных проблемах и подводных камнях

Если клиент спрашивает о стоимости:
- Давай примерные диапазоны цен для Москвы/регионов
- Объясняй, от чего зависит цена
- Предлагай варианты оптимизации бюджета`

// AssistantServiceParams defines the dependencies of the assistant service.
type AssistantServiceParams struct {
	fx.In

	Config     *config.Config
	Completion service.ChatCompletionService
	ChatRepo   repository.ChatRepository
	Logger     *slog.Logger
}

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	model      string
	completion service.ChatCompletionService
	chatRepo   repository.ChatRepository
	logger     *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	model := defaultChatModel
	if params.Config.AI != nil && params.Config.AI.ChatModel != "" {
		model = params.Config.AI.ChatModel
	}

	return &assistantService{
		model:      model,
		completion: params.Completion,
		chatRepo:   params.ChatRepo,
		logger:     params.Logger,
	}
}

// Chat proxies the conversation to the provider with the consultant system
// prompt prepended. When a session is attached, the last user message and
// the assistant reply are persisted to it.
func (srv *assistantService) Chat(ctx context.Context, input *usecase.AssistantChatInput) (*usecase.AssistantChatOutput, error) {
	if len(input.Messages) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("Messages array is required")
	}

	prompt := make([]service.PromptMessage, 0, len(input.Messages)+1)
	prompt = append(prompt, service.PromptMessage{Role: "system", Content: consultantPrompt})
	prompt = append(prompt, input.Messages...)

	result, err := srv.completion.Complete(ctx, service.CompletionRequest{
		Model:       srv.model,
		Messages:    prompt,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.AssistantChatOutput{
		Message: result.Content,
		Usage:   result.Usage,
	}

	sessionID, err := srv.persistExchange(ctx, input, result.Content)
	if err != nil {
		// Session persistence is best effort. The user already paid for the
		// completion, so the reply is returned regardless.
		srv.logger.Warn("Failed to persist chat exchange", "error", err)
	} else {
		output.SessionID = sessionID
	}

	return output, nil
}

// GetSessionMessages retrieves a session's history, oldest first.
func (srv *assistantService) GetSessionMessages(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, error) {
	if _, err := srv.chatRepo.FindSessionByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat session")
	}

	messages, err := srv.chatRepo.FindMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session messages")
	}

	return messages, nil
}

// persistExchange appends the last user message and the assistant reply to
// the session, creating one when the input carries no session id.
func (srv *assistantService) persistExchange(ctx context.Context, input *usecase.AssistantChatInput, reply string) (*uuid.UUID, error) {
	lastUser := lastUserMessage(input.Messages)
	if lastUser == "" {
		return nil, nil
	}

	var sessionID uuid.UUID
	if input.SessionID != nil {
		session, err := srv.chatRepo.FindSessionByID(ctx, *input.SessionID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find chat session")
		}
		sessionID = session.ID
	} else {
		session := &entity.ChatSession{Title: sessionTitle(lastUser)}
		if err := srv.chatRepo.CreateSession(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to create chat session")
		}
		sessionID = session.ID
	}

	userMsg := &entity.ChatMessage{SessionID: sessionID, Role: entity.ChatRoleUser, Content: lastUser}
	if err := srv.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		return nil, errors.Wrap(err, "failed to append user message")
	}

	assistantMsg := &entity.ChatMessage{SessionID: sessionID, Role: entity.ChatRoleAssistant, Content: reply}
	if err := srv.chatRepo.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, errors.Wrap(err, "failed to append assistant message")
	}

	if err := srv.chatRepo.TouchSession(ctx, sessionID, time.Now()); err != nil {
		return nil, errors.Wrap(err, "failed to touch chat session")
	}

	return &sessionID, nil
}

func lastUserMessage(messages []service.PromptMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}

	return ""
}

// sessionTitle derives a session title from the opening user message.
func sessionTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= sessionTitleMaxRunes {
		return content
	}

	return string(runes[:sessionTitleMaxRunes])
}
