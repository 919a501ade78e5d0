package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectProductLineItem links a project to a supplier product with a
// quantity and an optional room label. Its monetary total is always
// quantity * product price, never stored independently.
type ProjectProductLineItem struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	RoomName  string
	CreatedAt time.Time

	Product *SupplierProduct // Populated on aggregation reads.
}

// Total returns quantity * unit price for the attached product.
// Returns zero when the product is not loaded.
func (li *ProjectProductLineItem) Total() decimal.Decimal {
	if li.Product == nil {
		return decimal.Zero
	}

	return li.Quantity.Mul(li.Product.Price)
}
