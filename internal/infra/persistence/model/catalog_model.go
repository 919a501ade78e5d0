package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierModel mirrors the 'suppliers' table.
type SupplierModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName string          `gorm:"type:varchar(255);not null"`
	Rating      decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0"`
	Verified    bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time

	Products []*SupplierProductModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// SupplierProductModel mirrors the 'supplier_products' table.
type SupplierProductModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:text"`
	Category          string          `gorm:"type:varchar(100);not null;index"`
	Subcategory       string          `gorm:"type:varchar(100)"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Unit              string          `gorm:"type:varchar(20)"`
	ImageURL          string          `gorm:"type:text"`
	InStock           bool            `gorm:"not null;default:true"`
	MinOrderQuantity  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1"`
	DeliveryAvailable bool            `gorm:"not null;default:false"`
	DeliveryCost      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryDays      int             `gorm:"not null;default:0"`
	FloorLiftingCost  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Specifications    string          `gorm:"type:jsonb"`
	CreatedAt         time.Time

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierProductModel) TableName() string {
	return "supplier_products"
}

// ProjectProductModel mirrors the 'project_products' table linking projects
// to catalog products.
type ProjectProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1"`
	RoomName  string          `gorm:"type:varchar(100)"`
	CreatedAt time.Time

	Product *SupplierProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectProductModel) TableName() string {
	return "project_products"
}
