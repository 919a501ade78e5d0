package impl

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"yasen/config"
	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/domain/service"
	mockRepo "yasen/internal/mocks/repository"
	mockService "yasen/internal/mocks/service"
	"yasen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// agentServiceFixtures holds all test dependencies for agent service tests.
type agentServiceFixtures struct {
	service       usecase.AgentUsecase
	completion    *mockService.MockChatCompletionService
	storage       *mockService.MockObjectStorage
	workOrderRepo *mockRepo.MockWorkOrderRepository
	recordingRepo *mockRepo.MockRecordingRepository
}

func createTestAgentService(t *testing.T) agentServiceFixtures {
	completion := mockService.NewMockChatCompletionService(t)
	storage := mockService.NewMockObjectStorage(t)
	workOrderRepo := mockRepo.NewMockWorkOrderRepository(t)
	recordingRepo := mockRepo.NewMockRecordingRepository(t)
	service := NewAgentService(AgentServiceParams{
		Config:        &config.Config{},
		Completion:    completion,
		Storage:       storage,
		WorkOrderRepo: workOrderRepo,
		RecordingRepo: recordingRepo,
		Logger:        testLogger(),
	})

	return agentServiceFixtures{
		service:       service,
		completion:    completion,
		storage:       storage,
		workOrderRepo: workOrderRepo,
		recordingRepo: recordingRepo,
	}
}

func TestAgentService_Chat_AddsCustomerRoleSuffix(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()

	f.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("service.CompletionRequest")).
		RunAndReturn(func(_ context.Context, req service.CompletionRequest) (*service.CompletionResult, error) {
			require.Len(t, req.Messages, 3)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "ЗАКАЗЧИКОМ")
			assert.Equal(t, "assistant", req.Messages[1].Role)
			assert.Equal(t, "Нужна укладка плитки", req.Messages[2].Content)
			assert.Equal(t, "openai/gpt-4o", req.Model)
			assert.Equal(t, 1000, req.MaxTokens)
			return &service.CompletionResult{Content: "Какая площадь?"}, nil
		})

	output, err := f.service.Chat(ctx, &usecase.AgentChatInput{
		Message:  "Нужна укладка плитки",
		History:  []service.PromptMessage{{Role: "assistant", Content: "Здравствуйте!"}},
		UserRole: "customer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Какая площадь?", output.Message)
}

func TestAgentService_Chat_UnknownRoleGetsBarePrompt(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()

	f.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("service.CompletionRequest")).
		RunAndReturn(func(_ context.Context, req service.CompletionRequest) (*service.CompletionResult, error) {
			assert.NotContains(t, req.Messages[0].Content, "ЗАКАЗЧИКОМ")
			assert.NotContains(t, req.Messages[0].Content, "ИСПОЛНИТЕЛЕМ")
			return &service.CompletionResult{Content: "ok"}, nil
		})

	_, err := f.service.Chat(ctx, &usecase.AgentChatInput{Message: "Привет"})
	require.NoError(t, err)
}

func TestAgentService_Transcribe_RejectsBadBase64(t *testing.T) {
	f := createTestAgentService(t)

	_, err := f.service.Transcribe(context.Background(), &usecase.TranscribeInput{Audio: "%%%not-base64%%%"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAudioData)
}

func TestAgentService_Transcribe_ForwardsDecodedAudio(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()
	audio := []byte("webm-bytes")

	f.completion.EXPECT().
		Transcribe(ctx, audio, "audio.webm").
		Return("нужен ремонт кухни", nil)

	text, err := f.service.Transcribe(ctx, &usecase.TranscribeInput{
		Audio: base64.StdEncoding.EncodeToString(audio),
	})
	require.NoError(t, err)
	assert.Equal(t, "нужен ремонт кухни", text)
}

func TestAgentService_CreateWorkOrder_StartsPending(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()

	f.workOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WorkOrder")).
		Return(nil)

	order, err := f.service.CreateWorkOrder(ctx, &usecase.CreateWorkOrderInput{
		CustomerPhone:   "+79991234567",
		WorkDescription: "Укладка плитки в ванной",
		ConversationID:  "conv-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderStatusPending, order.Status)
	assert.Equal(t, "conv-1", order.ConversationID)
}

func TestAgentService_SaveRecording_UploadsWebmUnderConversationKey(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()
	audio := []byte("webm-bytes")

	f.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), audio, "audio/webm").
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
			assert.True(t, strings.HasPrefix(key, "recordings/conv-1_"))
			assert.True(t, strings.HasSuffix(key, ".webm"))
			return "https://cdn.example.com/" + key, nil
		})

	f.recordingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ConversationRecording")).
		RunAndReturn(func(_ context.Context, recording *entity.ConversationRecording) error {
			assert.True(t, strings.HasPrefix(recording.AudioURL, "https://cdn.example.com/recordings/conv-1_"))
			assert.Equal(t, 95, recording.Duration)
			assert.Equal(t, []string{"+79991234567", "+79997654321"}, recording.Participants)
			return nil
		})

	recording, err := f.service.SaveRecording(ctx, &usecase.SaveRecordingInput{
		Audio:          base64.StdEncoding.EncodeToString(audio),
		ConversationID: "conv-1",
		Duration:       95,
		Participants:   []string{"+79991234567", "+79997654321"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, recording.AudioURL)
}

func TestAgentService_ListRecordings_NarrowsByConversation(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()

	f.recordingRepo.EXPECT().
		FindByConversation(ctx, "conv-1").
		Return([]*entity.ConversationRecording{{ConversationID: "conv-1"}}, nil)

	recordings, err := f.service.ListRecordings(ctx, "conv-1", 10)
	require.NoError(t, err)
	assert.Len(t, recordings, 1)
}

func TestAgentService_ListWorkOrders_ClampsLimit(t *testing.T) {
	f := createTestAgentService(t)

	ctx := context.Background()

	f.workOrderRepo.EXPECT().
		Find(ctx, repository.WorkOrderFilter{Status: "pending", Limit: 50}).
		Return([]*entity.WorkOrder{}, nil)

	_, err := f.service.ListWorkOrders(ctx, "pending", 500)
	require.NoError(t, err)
}
