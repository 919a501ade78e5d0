package impl

import (
	"context"
	"log/slog"

	"yasen/internal/domain/repository"
	"yasen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Admin listings are capped to keep response sizes predictable.
const adminListingLimit = 50

// AdminServiceParams defines the dependencies of the admin service.
type AdminServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// GetStats computes the platform statistics snapshot.
func (srv *adminService) GetStats(ctx context.Context) (*repository.StatsSummary, error) {
	summary, err := srv.statsRepo.CollectStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect platform stats")
	}

	return summary, nil
}

// ListProjects lists projects with owner info and an optional status filter.
func (srv *adminService) ListProjects(ctx context.Context, status string, limit, offset int) (*usecase.AdminProjectList, error) {
	if limit <= 0 || limit > adminListingLimit {
		limit = adminListingLimit
	}
	if offset < 0 {
		offset = 0
	}

	projects, total, err := srv.statsRepo.FindProjectsWithOwners(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin projects")
	}

	return &usecase.AdminProjectList{
		Projects: projects,
		Total:    total,
	}, nil
}

// ListUsers lists users with an optional user type filter.
func (srv *adminService) ListUsers(ctx context.Context, userType string, limit, offset int) (*usecase.AdminUserList, error) {
	if limit <= 0 || limit > adminListingLimit {
		limit = adminListingLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := srv.statsRepo.FindUsers(ctx, userType, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin users")
	}

	return &usecase.AdminUserList{
		Users: users,
		Total: total,
	}, nil
}
