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

// workOrderRepository implements the repository.WorkOrderRepository interface using GORM.
type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository is the constructor for workOrderRepository.
func NewWorkOrderRepository(db *gorm.DB) repository.WorkOrderRepository {
	return &workOrderRepository{
		db: db,
	}
}

// Create persists a new work order.
func (repo *workOrderRepository) Create(ctx context.Context, order *entity.WorkOrder) error {
	orderM := fromWorkOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required work order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create work order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// Find retrieves work orders matching the filter, newest first.
func (repo *workOrderRepository) Find(ctx context.Context, filter repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	query := repo.db.WithContext(ctx).Model(&model.WorkOrderModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orderModels []*model.WorkOrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find work orders")
	}

	orders := make([]*entity.WorkOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toWorkOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toWorkOrderDomain converts a GORM WorkOrderModel to a domain entity.
func toWorkOrderDomain(data *model.WorkOrderModel) *entity.WorkOrder {
	if data == nil {
		return nil
	}

	return &entity.WorkOrder{
		ID:              data.ID,
		CustomerPhone:   data.CustomerPhone,
		ContractorPhone: data.ContractorPhone,
		WorkDescription: data.WorkDescription,
		Price:           data.Price,
		Deadline:        data.Deadline,
		ConversationID:  data.ConversationID,
		Status:          entity.WorkOrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
	}
}

// fromWorkOrderDomain converts a domain entity to a GORM WorkOrderModel.
func fromWorkOrderDomain(data *entity.WorkOrder) *model.WorkOrderModel {
	if data == nil {
		return nil
	}

	return &model.WorkOrderModel{
		ID:              data.ID,
		CustomerPhone:   data.CustomerPhone,
		ContractorPhone: data.ContractorPhone,
		WorkDescription: data.WorkDescription,
		Price:           data.Price,
		Deadline:        data.Deadline,
		ConversationID:  data.ConversationID,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
	}
}
