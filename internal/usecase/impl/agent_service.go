package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"yasen/config"
	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/domain/service"
	"yasen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAgentModel = "openai/gpt-4o"
	agentTemperature  = 0.7
	agentMaxTokens    = 1000
	agentListingLimit = 50

	transcribeFilename   = "audio.webm"
	recordingContentType = "audio/webm"
)

// agentBasePrompt frames the model as the YASEN work-order agent. A role
// suffix is appended depending on which side of the deal is speaking.
const agentBasePrompt = `Ты — ЯСЕН, умный ИИ-помощник для управления ремонтом и строительством.

Твои компетенции:
- Понимание строительных работ, материалов и технологий
- Оценка стоимости и сроков выполнения работ
- Составление технических заданий и нарядов-заказов
- Координация между заказчиками и исполнителями
- Контроль качества и соблюдения норм

Твоя задача:
1. Выслушать детали заказа от клиента
2. Задать уточняющие вопросы для полного понимания
3. Предложить оптимальные решения
4. Сформировать четкий наряд-заказ с описанием работ, сроками и ценой
5. Быть вежливым, профессиональным и конкретным

Стиль общения: дружелюбный эксперт, говорящий простым языком.
`

const (
	customerPromptSuffix   = "\n\nСейчас ты общаешься с ЗАКАЗЧИКОМ. Помоги ему четко сформулировать потребности и создать заказ."
	contractorPromptSuffix = "\n\nСейчас ты общаешься с ИСПОЛНИТЕЛЕМ. Предоставь детали заказа и согласуй условия работы."
)

// AgentServiceParams defines the dependencies of the agent service.
type AgentServiceParams struct {
	fx.In

	Config        *config.Config
	Completion    service.ChatCompletionService
	Storage       service.ObjectStorage
	WorkOrderRepo repository.WorkOrderRepository
	RecordingRepo repository.RecordingRepository
	Logger        *slog.Logger
}

// agentService implements the AgentUsecase interface.
type agentService struct {
	model         string
	completion    service.ChatCompletionService
	storage       service.ObjectStorage
	workOrderRepo repository.WorkOrderRepository
	recordingRepo repository.RecordingRepository
	logger        *slog.Logger
}

// NewAgentService is the constructor for agentService.
func NewAgentService(params AgentServiceParams) usecase.AgentUsecase {
	model := defaultAgentModel
	if params.Config.AI != nil && params.Config.AI.AgentModel != "" {
		model = params.Config.AI.AgentModel
	}

	return &agentService{
		model:         model,
		completion:    params.Completion,
		storage:       params.Storage,
		workOrderRepo: params.WorkOrderRepo,
		recordingRepo: params.RecordingRepo,
		logger:        params.Logger,
	}
}

// Transcribe decodes the uploaded audio and converts it to text via the
// provider.
func (srv *agentService) Transcribe(ctx context.Context, input *usecase.TranscribeInput) (string, error) {
	audio, err := base64.StdEncoding.DecodeString(input.Audio)
	if err != nil {
		return "", domainerrors.ErrInvalidAudioData
	}

	text, err := srv.completion.Transcribe(ctx, audio, transcribeFilename)
	if err != nil {
		return "", err
	}

	return text, nil
}

// Chat proxies one exchange with the role-dependent agent prompt prepended
// to the caller-supplied history.
func (srv *agentService) Chat(ctx context.Context, input *usecase.AgentChatInput) (*usecase.AgentChatOutput, error) {
	prompt := make([]service.PromptMessage, 0, len(input.History)+2)
	prompt = append(prompt, service.PromptMessage{Role: "system", Content: agentPrompt(input.UserRole)})
	prompt = append(prompt, input.History...)
	prompt = append(prompt, service.PromptMessage{Role: "user", Content: input.Message})

	result, err := srv.completion.Complete(ctx, service.CompletionRequest{
		Model:       srv.model,
		Messages:    prompt,
		Temperature: agentTemperature,
		MaxTokens:   agentMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.AgentChatOutput{
		Message: result.Content,
		Usage:   result.Usage,
	}, nil
}

// CreateWorkOrder persists a work order in the pending state.
func (srv *agentService) CreateWorkOrder(ctx context.Context, input *usecase.CreateWorkOrderInput) (*entity.WorkOrder, error) {
	srv.logger.Info("Creating work order", "customerPhone", input.CustomerPhone)

	order := &entity.WorkOrder{
		CustomerPhone:   input.CustomerPhone,
		ContractorPhone: input.ContractorPhone,
		WorkDescription: input.WorkDescription,
		Price:           input.Price,
		Deadline:        input.Deadline,
		ConversationID:  input.ConversationID,
		Status:          entity.WorkOrderStatusPending,
	}

	if err := srv.workOrderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create work order")
	}

	return order, nil
}

// ListWorkOrders lists work orders, newest first, optionally by status.
func (srv *agentService) ListWorkOrders(ctx context.Context, status string, limit int) ([]*entity.WorkOrder, error) {
	if limit <= 0 || limit > agentListingLimit {
		limit = agentListingLimit
	}

	orders, err := srv.workOrderRepo.Find(ctx, repository.WorkOrderFilter{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work orders")
	}

	return orders, nil
}

// SaveRecording uploads the conversation audio to object storage and
// persists the recording row pointing at the public URL.
func (srv *agentService) SaveRecording(ctx context.Context, input *usecase.SaveRecordingInput) (*entity.ConversationRecording, error) {
	srv.logger.Info("Saving conversation recording", "conversationID", input.ConversationID)

	audio, err := base64.StdEncoding.DecodeString(input.Audio)
	if err != nil {
		return nil, domainerrors.ErrInvalidAudioData
	}

	key := fmt.Sprintf("recordings/%s_%d.webm", input.ConversationID, time.Now().Unix())
	audioURL, err := srv.storage.Put(ctx, key, audio, recordingContentType)
	if err != nil {
		return nil, domainerrors.NewStorageError(err.Error())
	}

	recording := &entity.ConversationRecording{
		ConversationID: input.ConversationID,
		AudioURL:       audioURL,
		Duration:       input.Duration,
		Participants:   input.Participants,
	}
	if err := srv.recordingRepo.Create(ctx, recording); err != nil {
		return nil, errors.Wrap(err, "failed to persist recording record")
	}

	return recording, nil
}

// ListRecordings lists recordings, newest first. A conversation id narrows
// the listing to that conversation without a limit.
func (srv *agentService) ListRecordings(ctx context.Context, conversationID string, limit int) ([]*entity.ConversationRecording, error) {
	if conversationID != "" {
		recordings, err := srv.recordingRepo.FindByConversation(ctx, conversationID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list conversation recordings")
		}

		return recordings, nil
	}

	if limit <= 0 || limit > agentListingLimit {
		limit = agentListingLimit
	}

	recordings, err := srv.recordingRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent recordings")
	}

	return recordings, nil
}

// agentPrompt returns the system prompt for the given speaker role.
func agentPrompt(userRole string) string {
	switch userRole {
	case "customer":
		return agentBasePrompt + customerPromptSuffix
	case "contractor":
		return agentBasePrompt + contractorPromptSuffix
	}

	return agentBasePrompt
}
