package postgres

import (
	"context"
	"time"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface using GORM.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateSession persists a new chat session.
func (repo *chatRepository) CreateSession(ctx context.Context, session *entity.ChatSession) error {
	sessionM := fromChatSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindSessionByID retrieves a session by its unique ID.
func (repo *chatRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	var sessionM model.ChatSessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat session by ID")
	}

	return toChatSessionDomain(&sessionM), nil
}

// AppendMessage persists one message of a session.
func (repo *chatRepository) AppendMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSessionNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindMessagesBySession retrieves a session's messages, oldest first.
func (repo *chatRepository) FindMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chat messages by session")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, nil
}

// TouchSession bumps the session's updated_at timestamp.
func (repo *chatRepository) TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatSessionModel{}).
		Where("id = ?", id).
		Update("updated_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch chat session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toChatSessionDomain converts a GORM ChatSessionModel to a domain entity.
func toChatSessionDomain(data *model.ChatSessionModel) *entity.ChatSession {
	if data == nil {
		return nil
	}

	return &entity.ChatSession{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromChatSessionDomain converts a domain entity to a GORM ChatSessionModel.
func fromChatSessionDomain(data *entity.ChatSession) *model.ChatSessionModel {
	if data == nil {
		return nil
	}

	return &model.ChatSessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toChatMessageDomain converts a GORM ChatMessageModel to a domain entity.
func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:        data.ID,
		SessionID: data.SessionID,
		Role:      entity.ChatRole(data.Role),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

// fromChatMessageDomain converts a domain entity to a GORM ChatMessageModel.
func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		Role:      string(data.Role),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
