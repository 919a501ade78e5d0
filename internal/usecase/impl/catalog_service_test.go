package impl

import (
	"context"
	"testing"

	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	mockRepo "yasen/internal/mocks/repository"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	projectRepo *mockRepo.MockProjectRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		ProjectRepo: projectRepo,
		Logger:      testLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		catalogRepo: catalogRepo,
		projectRepo: projectRepo,
	}
}

func TestCatalogService_AddProductToProject_DefaultsQuantityToOne(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	projectID := uuid.New()
	productID := uuid.New()

	f.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)

	f.catalogRepo.EXPECT().
		AddLineItem(ctx, mock.AnythingOfType("*entity.ProjectProductLineItem")).
		RunAndReturn(func(_ context.Context, item *entity.ProjectProductLineItem) error {
			item.ID = uuid.New()
			assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)))
			return nil
		})

	id, err := f.service.AddProductToProject(ctx, &usecase.AddLineItemInput{
		ProjectID: projectID,
		ProductID: productID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestCatalogService_AddProductToProject_ProjectMissing(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	projectID := uuid.New()

	f.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	_, err := f.service.AddProductToProject(ctx, &usecase.AddLineItemInput{
		ProjectID: projectID,
		ProductID: uuid.New(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestCatalogService_GetProjectProducts_AggregatesTotals(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	projectID := uuid.New()

	tiles := &entity.SupplierProduct{
		Name:             "Плитка керамическая",
		Price:            decimal.NewFromInt(1200),
		Unit:             "м²",
		DeliveryCost:     decimal.NewFromInt(500),
		FloorLiftingCost: decimal.NewFromInt(300),
		Supplier:         &entity.Supplier{CompanyName: "СтройМаркет"},
	}
	paint := &entity.SupplierProduct{
		Name:             "Краска интерьерная",
		Price:            decimal.NewFromFloat(750.50),
		Unit:             "л",
		DeliveryCost:     decimal.NewFromInt(200),
		FloorLiftingCost: decimal.Zero,
	}

	f.catalogRepo.EXPECT().
		FindLineItemsByProject(ctx, projectID).
		Return([]*entity.ProjectProductLineItem{
			{ID: uuid.New(), Quantity: decimal.NewFromInt(10), RoomName: "Ванная", Product: tiles},
			{ID: uuid.New(), Quantity: decimal.NewFromInt(4), Product: paint},
		}, nil)

	result, err := f.service.GetProjectProducts(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	// 10 * 1200 + 4 * 750.50 = 15002
	assert.True(t, result.Summary.ProductsTotal.Equal(decimal.NewFromInt(15002)))
	assert.True(t, result.Summary.DeliveryTotal.Equal(decimal.NewFromInt(700)))
	assert.True(t, result.Summary.LiftingTotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, result.Summary.GrandTotal.Equal(
		result.Summary.ProductsTotal.Add(result.Summary.DeliveryTotal).Add(result.Summary.LiftingTotal)))

	assert.Equal(t, "СтройМаркет", result.Items[0].SupplierName)
	assert.True(t, result.Items[0].Total.Equal(decimal.NewFromInt(12000)))
}

func TestCatalogService_GetProjectProducts_SkipsOrphanedItems(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()
	projectID := uuid.New()

	f.catalogRepo.EXPECT().
		FindLineItemsByProject(ctx, projectID).
		Return([]*entity.ProjectProductLineItem{
			{ID: uuid.New(), Quantity: decimal.NewFromInt(2), Product: nil},
		}, nil)

	result, err := f.service.GetProjectProducts(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.True(t, result.Summary.GrandTotal.IsZero())
}

func TestCatalogService_ListProducts_ForwardsFilter(t *testing.T) {
	f := createTestCatalogService(t)

	ctx := context.Background()

	f.catalogRepo.EXPECT().
		FindProducts(ctx, mock.AnythingOfType("repository.ProductFilter")).
		RunAndReturn(func(_ context.Context, filter repository.ProductFilter) ([]*entity.SupplierProduct, error) {
			assert.Equal(t, "плитка", filter.Search)
			assert.True(t, filter.InStock)
			assert.Equal(t, 100, filter.Limit)
			return []*entity.SupplierProduct{{Name: "Плитка керамическая"}}, nil
		})

	f.catalogRepo.EXPECT().
		ListCategories(ctx).
		Return([]string{"Отделка", "Сантехника"}, nil)

	listing, err := f.service.ListProducts(ctx, &usecase.CatalogQuery{Search: "плитка", InStock: true})
	require.NoError(t, err)
	assert.Equal(t, 1, listing.Total)
	assert.Equal(t, []string{"Отделка", "Сантехника"}, listing.Categories)
}
