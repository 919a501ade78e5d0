package handler

import (
	"log/slog"
	"net/http"

	"yasen/internal/delivery/http/response"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for supplier catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the filtered product listing.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query := &usecase.CatalogQuery{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		InStock:  c.QueryParam("in_stock") == "true",
	}

	if raw := c.QueryParam("supplier_id"); raw != "" {
		supplierID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid supplier_id query parameter")
		}
		query.SupplierID = &supplierID
	}

	listing, err := h.uc.ListProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Products retrieved successfully")
}

// AddProjectItem handles attaching a product to a project.
func (h *CatalogHandler) AddProjectItem(c echo.Context) error {
	var input *usecase.AddLineItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project item input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Project ID and product ID are required")
	}

	itemID, err := h.uc.AddProductToProject(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"item_id": itemID,
	}, "Product added to project successfully")
}

// GetProjectItems handles the project cost breakdown.
func (h *CatalogHandler) GetProjectItems(c echo.Context) error {
	projectID, err := uuid.Parse(c.QueryParam("project_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing project_id query parameter")
	}

	breakdown, err := h.uc.GetProjectProducts(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown, "Project products retrieved successfully")
}
