package impl

import (
	"context"
	"log/slog"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Catalog listings are capped to keep response sizes predictable.
const catalogListingLimit = 100

// CatalogServiceParams defines the dependencies of the catalog service.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

// ListProducts lists catalog products matching the query together with the
// distinct categories.
func (srv *catalogService) ListProducts(ctx context.Context, query *usecase.CatalogQuery) (*usecase.CatalogListing, error) {
	products, err := srv.catalogRepo.FindProducts(ctx, repository.ProductFilter{
		Category:   query.Category,
		SupplierID: query.SupplierID,
		Search:     query.Search,
		InStock:    query.InStock,
		Limit:      catalogListingLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog products")
	}

	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.CatalogListing{
		Products:   products,
		Categories: categories,
		Total:      len(products),
	}, nil
}

// AddProductToProject attaches a product to a project and returns the new
// line item id.
func (srv *catalogService) AddProductToProject(ctx context.Context, input *usecase.AddLineItemInput) (uuid.UUID, error) {
	srv.logger.Info("Adding product to project", "projectID", input.ProjectID, "productID", input.ProductID)

	if _, err := srv.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return uuid.Nil, domainerrors.ErrProjectNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find project")
	}

	quantity := decimal.NewFromInt(1)
	if input.Quantity != nil && input.Quantity.IsPositive() {
		quantity = *input.Quantity
	}

	item := &entity.ProjectProductLineItem{
		ProjectID: input.ProjectID,
		ProductID: input.ProductID,
		Quantity:  quantity,
		RoomName:  input.RoomName,
	}
	if err := srv.catalogRepo.AddLineItem(ctx, item); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to add line item")
	}

	return item.ID, nil
}

// GetProjectProducts computes the project's material cost breakdown. The
// grand total is always products + delivery + lifting on the same values
// presented in the summary.
func (srv *catalogService) GetProjectProducts(ctx context.Context, projectID uuid.UUID) (*usecase.ProjectProducts, error) {
	items, err := srv.catalogRepo.FindLineItemsByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load project line items")
	}

	result := &usecase.ProjectProducts{
		Items: make([]*usecase.CostLineItem, 0, len(items)),
	}

	productsTotal := decimal.Zero
	deliveryTotal := decimal.Zero
	liftingTotal := decimal.Zero

	for _, item := range items {
		if item.Product == nil {
			// Line item referencing a product that disappeared; skip it
			// rather than failing the whole aggregation.
			continue
		}

		lineTotal := item.Total()
		productsTotal = productsTotal.Add(lineTotal)
		deliveryTotal = deliveryTotal.Add(item.Product.DeliveryCost)
		liftingTotal = liftingTotal.Add(item.Product.FloorLiftingCost)

		supplierName := ""
		if item.Product.Supplier != nil {
			supplierName = item.Product.Supplier.CompanyName
		}

		result.Items = append(result.Items, &usecase.CostLineItem{
			ID:               item.ID,
			Quantity:         item.Quantity,
			RoomName:         item.RoomName,
			ProductName:      item.Product.Name,
			Price:            item.Product.Price,
			Unit:             item.Product.Unit,
			DeliveryCost:     item.Product.DeliveryCost,
			FloorLiftingCost: item.Product.FloorLiftingCost,
			SupplierName:     supplierName,
			Total:            lineTotal,
		})
	}

	result.Summary = usecase.CostSummary{
		ProductsTotal: productsTotal,
		DeliveryTotal: deliveryTotal,
		LiftingTotal:  liftingTotal,
		GrandTotal:    productsTotal.Add(deliveryTotal).Add(liftingTotal),
	}

	return result, nil
}
