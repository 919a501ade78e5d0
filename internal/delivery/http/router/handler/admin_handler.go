package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"yasen/internal/delivery/http/response"
	"yasen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultAdminLimit  = 50
	defaultAdminOffset = 0
)

// AdminHandler holds dependencies for the admin reporting handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStats handles the platform statistics snapshot.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"stats": stats}, "Stats retrieved successfully")
}

// ListProjects handles the paginated admin project listing.
func (h *AdminHandler) ListProjects(c echo.Context) error {
	limit, offset := paginationParams(c)

	list, err := h.uc.ListProjects(c.Request().Context(), c.QueryParam("status"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"projects": list.Projects,
		"total":    list.Total,
	}, "Projects retrieved successfully")
}

// ListUsers handles the paginated admin user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset := paginationParams(c)

	list, err := h.uc.ListUsers(c.Request().Context(), c.QueryParam("user_type"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": list.Users,
		"total": list.Total,
	}, "Users retrieved successfully")
}

// paginationParams reads limit and offset with the listing defaults.
func paginationParams(c echo.Context) (limit, offset int) {
	limit = defaultAdminLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	offset = defaultAdminOffset
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
