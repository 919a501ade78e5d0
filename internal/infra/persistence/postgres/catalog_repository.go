package postgres

import (
	"context"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProducts lists catalog products matching the filter with their supplier
// attached. Every filter value is bound as a query parameter.
func (repo *catalogRepository) FindProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.SupplierProduct, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SupplierProductModel{}).
		Preload("Supplier")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.InStock {
		query = query.Where("in_stock = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productModels []*model.SupplierProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find catalog products")
	}

	products := make([]*entity.SupplierProduct, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toSupplierProductDomain(productM))
	}

	return products, nil
}

// ListCategories returns the distinct product categories in order.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.SupplierProductModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product categories")
	}

	return categories, nil
}

// AddLineItem attaches a product to a project.
func (repo *catalogRepository) AddLineItem(ctx context.Context, item *entity.ProjectProductLineItem) error {
	itemM := fromLineItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid project or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required line item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product to project")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// FindLineItemsByProject retrieves a project's line items with product and
// supplier data attached for cost aggregation.
func (repo *catalogRepository) FindLineItemsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.ProjectProductLineItem, error) {
	var itemModels []*model.ProjectProductModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Preload("Product").
		Preload("Product.Supplier").
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find project line items")
	}

	items := make([]*entity.ProjectProductLineItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toLineItemDomain(itemM))
	}

	return items, nil
}

// --- Mapper Functions ---

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		Rating:      data.Rating,
		Verified:    data.Verified,
		CreatedAt:   data.CreatedAt,
	}
}

// toSupplierProductDomain converts a GORM SupplierProductModel to a domain entity.
func toSupplierProductDomain(data *model.SupplierProductModel) *entity.SupplierProduct {
	if data == nil {
		return nil
	}

	return &entity.SupplierProduct{
		ID:                data.ID,
		SupplierID:        data.SupplierID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          data.Category,
		Subcategory:       data.Subcategory,
		Price:             data.Price,
		Unit:              data.Unit,
		ImageURL:          data.ImageURL,
		InStock:           data.InStock,
		MinOrderQuantity:  data.MinOrderQuantity,
		DeliveryAvailable: data.DeliveryAvailable,
		DeliveryCost:      data.DeliveryCost,
		DeliveryDays:      data.DeliveryDays,
		FloorLiftingCost:  data.FloorLiftingCost,
		Specifications:    data.Specifications,
		CreatedAt:         data.CreatedAt,
		Supplier:          toSupplierDomain(data.Supplier),
	}
}

// toLineItemDomain converts a GORM ProjectProductModel to a domain entity.
func toLineItemDomain(data *model.ProjectProductModel) *entity.ProjectProductLineItem {
	if data == nil {
		return nil
	}

	return &entity.ProjectProductLineItem{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		RoomName:  data.RoomName,
		CreatedAt: data.CreatedAt,
		Product:   toSupplierProductDomain(data.Product),
	}
}

// fromLineItemDomain converts a domain entity to a GORM ProjectProductModel.
func fromLineItemDomain(data *entity.ProjectProductLineItem) *model.ProjectProductModel {
	if data == nil {
		return nil
	}

	return &model.ProjectProductModel{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		RoomName:  data.RoomName,
		CreatedAt: data.CreatedAt,
	}
}
