package usecase

import (
	"context"

	"yasen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogQuery narrows the product listing.
type CatalogQuery struct {
	Category   string
	SupplierID *uuid.UUID
	Search     string
	InStock    bool
}

// CatalogListing is the product listing with the known categories.
type CatalogListing struct {
	Products   []*entity.SupplierProduct `json:"products"`
	Categories []string                  `json:"categories"`
	Total      int                       `json:"total"`
}

// AddLineItemInput attaches a product to a project.
type AddLineItemInput struct {
	ProjectID uuid.UUID        `json:"project_id" validate:"required"`
	ProductID uuid.UUID        `json:"product_id" validate:"required"`
	Quantity  *decimal.Decimal `json:"quantity"`
	RoomName  string           `json:"room_name"`
}

// CostLineItem is one project line item with its computed total.
type CostLineItem struct {
	ID               uuid.UUID       `json:"id"`
	Quantity         decimal.Decimal `json:"quantity"`
	RoomName         string          `json:"room_name"`
	ProductName      string          `json:"product_name"`
	Price            decimal.Decimal `json:"price"`
	Unit             string          `json:"unit"`
	DeliveryCost     decimal.Decimal `json:"delivery_cost"`
	FloorLiftingCost decimal.Decimal `json:"floor_lifting_cost"`
	SupplierName     string          `json:"supplier_name"`
	Total            decimal.Decimal `json:"total"`
}

// CostSummary aggregates a project's material costs.
// GrandTotal = ProductsTotal + DeliveryTotal + LiftingTotal.
type CostSummary struct {
	ProductsTotal decimal.Decimal `json:"products_total"`
	DeliveryTotal decimal.Decimal `json:"delivery_total"`
	LiftingTotal  decimal.Decimal `json:"lifting_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ProjectProducts is the cost breakdown of a project's line items.
type ProjectProducts struct {
	Items   []*CostLineItem `json:"items"`
	Summary CostSummary     `json:"summary"`
}

// CatalogUsecase defines supplier catalog use cases.
type CatalogUsecase interface {
	// ListProducts lists catalog products matching the query together with
	// the distinct categories.
	ListProducts(ctx context.Context, query *CatalogQuery) (*CatalogListing, error)

	// AddProductToProject attaches a product to a project and returns the
	// new line item id.
	AddProductToProject(ctx context.Context, input *AddLineItemInput) (uuid.UUID, error)

	// GetProjectProducts computes the project's material cost breakdown.
	GetProjectProducts(ctx context.Context, projectID uuid.UUID) (*ProjectProducts, error)
}
