package impl

import (
	"context"
	"testing"

	"yasen/config"
	"yasen/internal/domain/entity"
	"yasen/internal/domain/service"
	mockRepo "yasen/internal/mocks/repository"
	mockService "yasen/internal/mocks/service"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assistantServiceFixtures holds all test dependencies for assistant service tests.
type assistantServiceFixtures struct {
	service    usecase.AssistantUsecase
	completion *mockService.MockChatCompletionService
	chatRepo   *mockRepo.MockChatRepository
}

func createTestAssistantService(t *testing.T) assistantServiceFixtures {
	completion := mockService.NewMockChatCompletionService(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	service := NewAssistantService(AssistantServiceParams{
		Config:     &config.Config{},
		Completion: completion,
		ChatRepo:   chatRepo,
		Logger:     testLogger(),
	})

	return assistantServiceFixtures{
		service:    service,
		completion: completion,
		chatRepo:   chatRepo,
	}
}

func TestAssistantService_Chat_PrependsConsultantPrompt(t *testing.T) {
	f := createTestAssistantService(t)

	ctx := context.Background()

	f.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("service.CompletionRequest")).
		RunAndReturn(func(_ context.Context, req service.CompletionRequest) (*service.CompletionResult, error) {
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "консультант по ремонту")
			assert.Equal(t, "user", req.Messages[1].Role)
			assert.Equal(t, "gpt-4o-mini", req.Model)
			assert.InDelta(t, 0.7, req.Temperature, 1e-9)
			assert.Equal(t, 1500, req.MaxTokens)
			return &service.CompletionResult{
				Content: "Начните с демонтажа.",
				Usage:   service.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			}, nil
		})

	f.chatRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.ChatSession")).
		RunAndReturn(func(_ context.Context, session *entity.ChatSession) error {
			session.ID = uuid.New()
			return nil
		})
	f.chatRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil).
		Times(2)
	f.chatRepo.EXPECT().
		TouchSession(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := f.service.Chat(ctx, &usecase.AssistantChatInput{
		Messages: []service.PromptMessage{{Role: "user", Content: "С чего начать ремонт?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Начните с демонтажа.", output.Message)
	assert.Equal(t, 15, output.Usage.TotalTokens)
	require.NotNil(t, output.SessionID)
}

func TestAssistantService_Chat_ReturnsReplyWhenPersistenceFails(t *testing.T) {
	f := createTestAssistantService(t)

	ctx := context.Background()

	f.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("service.CompletionRequest")).
		Return(&service.CompletionResult{Content: "Ответ"}, nil)

	f.chatRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.ChatSession")).
		Return(errors.New("db down"))

	output, err := f.service.Chat(ctx, &usecase.AssistantChatInput{
		Messages: []service.PromptMessage{{Role: "user", Content: "Вопрос"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ответ", output.Message)
	assert.Nil(t, output.SessionID)
}

func TestAssistantService_Chat_PropagatesProviderError(t *testing.T) {
	f := createTestAssistantService(t)

	ctx := context.Background()

	f.completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("service.CompletionRequest")).
		Return(nil, errors.New("upstream timeout"))

	_, err := f.service.Chat(ctx, &usecase.AssistantChatInput{
		Messages: []service.PromptMessage{{Role: "user", Content: "Вопрос"}},
	})
	require.Error(t, err)
}
