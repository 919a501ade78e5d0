package postgres

import (
	"context"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recordingRepository implements the repository.RecordingRepository interface using GORM.
type recordingRepository struct {
	db *gorm.DB
}

// NewRecordingRepository is the constructor for recordingRepository.
func NewRecordingRepository(db *gorm.DB) repository.RecordingRepository {
	return &recordingRepository{
		db: db,
	}
}

// Create persists a new recording record holding the storage URL.
func (repo *recordingRepository) Create(ctx context.Context, recording *entity.ConversationRecording) error {
	recordingM := fromRecordingDomain(recording)

	if err := repo.db.WithContext(ctx).Create(recordingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recording information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recording")
	}

	recording.ID = recordingM.ID
	recording.CreatedAt = recordingM.CreatedAt

	return nil
}

// FindByConversation retrieves all recordings of one conversation, newest first.
func (repo *recordingRepository) FindByConversation(ctx context.Context, conversationID string) ([]*entity.ConversationRecording, error) {
	var recordingModels []*model.ConversationRecordingModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Find(&recordingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recordings by conversation")
	}

	return toRecordingDomainList(recordingModels), nil
}

// FindRecent retrieves the most recent recordings across conversations.
func (repo *recordingRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ConversationRecording, error) {
	query := repo.db.WithContext(ctx).Model(&model.ConversationRecordingModel{})
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recordingModels []*model.ConversationRecordingModel
	if err := query.Order("created_at DESC").Find(&recordingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent recordings")
	}

	return toRecordingDomainList(recordingModels), nil
}

// --- Mapper Functions ---

func toRecordingDomainList(models []*model.ConversationRecordingModel) []*entity.ConversationRecording {
	recordings := make([]*entity.ConversationRecording, 0, len(models))
	for _, recordingM := range models {
		recordings = append(recordings, toRecordingDomain(recordingM))
	}

	return recordings
}

// toRecordingDomain converts a GORM ConversationRecordingModel to a domain entity.
func toRecordingDomain(data *model.ConversationRecordingModel) *entity.ConversationRecording {
	if data == nil {
		return nil
	}

	return &entity.ConversationRecording{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		AudioURL:       data.AudioURL,
		Duration:       data.Duration,
		Participants:   data.Participants,
		CreatedAt:      data.CreatedAt,
	}
}

// fromRecordingDomain converts a domain entity to a GORM ConversationRecordingModel.
func fromRecordingDomain(data *entity.ConversationRecording) *model.ConversationRecordingModel {
	if data == nil {
		return nil
	}

	return &model.ConversationRecordingModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		AudioURL:       data.AudioURL,
		Duration:       data.Duration,
		Participants:   data.Participants,
		CreatedAt:      data.CreatedAt,
	}
}
