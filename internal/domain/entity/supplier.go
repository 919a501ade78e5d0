package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a company offering building materials through the catalog.
type Supplier struct {
	ID          uuid.UUID       `json:"id"`
	CompanyName string          `json:"company_name"`
	Rating      decimal.Decimal `json:"rating"`
	Verified    bool            `json:"verified"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SupplierProduct is one catalog entry belonging to a supplier.
type SupplierProduct struct {
	ID                uuid.UUID       `json:"id"`
	SupplierID        uuid.UUID       `json:"supplier_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Subcategory       string          `json:"subcategory"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit"` // Sales unit, e.g. "шт", "м²", "упак".
	ImageURL          string          `json:"image_url"`
	InStock           bool            `json:"in_stock"`
	MinOrderQuantity  decimal.Decimal `json:"min_order_quantity"`
	DeliveryAvailable bool            `json:"delivery_available"`
	DeliveryCost      decimal.Decimal `json:"delivery_cost"`
	DeliveryDays      int             `json:"delivery_days"`
	FloorLiftingCost  decimal.Decimal `json:"floor_lifting_cost"` // Surcharge for carrying goods upstairs.
	Specifications    string          `json:"specifications"`     // Free-form specification payload (JSON).
	CreatedAt         time.Time       `json:"created_at"`

	Supplier *Supplier `json:"supplier,omitempty"` // Populated on catalog reads.
}
