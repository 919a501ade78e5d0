package repository

import (
	"context"
	"errors"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a supplier product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows the catalog listing. All filters are optional and
// combined with AND; values are always bound as query parameters.
type ProductFilter struct {
	Category   string
	SupplierID *uuid.UUID
	Search     string // Substring match on name or description.
	InStock    bool   // When true, only products currently in stock.
	Limit      int
}

// CatalogRepository defines operations for the supplier product catalog and
// the project line items built from it.
type CatalogRepository interface {
	// FindProducts lists catalog products matching the filter with their
	// supplier attached, newest first.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*entity.SupplierProduct, error)

	// ListCategories returns the distinct product categories in order.
	ListCategories(ctx context.Context) ([]string, error)

	// AddLineItem attaches a product to a project.
	AddLineItem(ctx context.Context, item *entity.ProjectProductLineItem) error

	// FindLineItemsByProject retrieves a project's line items with product
	// and supplier data attached for cost aggregation.
	FindLineItemsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ProjectProductLineItem, error)
}
