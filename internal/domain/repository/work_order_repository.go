package repository

import (
	"context"

	"yasen/internal/domain/entity"
)

// WorkOrderFilter narrows the work order listing.
type WorkOrderFilter struct {
	Status string // Optional status filter.
	Limit  int
}

// WorkOrderRepository defines operations for work order persistence.
type WorkOrderRepository interface {
	// Create persists a new work order.
	Create(ctx context.Context, order *entity.WorkOrder) error

	// Find retrieves work orders matching the filter, newest first.
	Find(ctx context.Context, filter WorkOrderFilter) ([]*entity.WorkOrder, error)
}
