package usecase

import (
	"context"

	"yasen/internal/domain/entity"
	"yasen/internal/domain/repository"
)

// AdminProjectList is the paginated admin project listing.
type AdminProjectList struct {
	Projects []*repository.AdminProject
	Total    int64
}

// AdminUserList is the paginated admin user listing.
type AdminUserList struct {
	Users []*entity.User
	Total int64
}

// AdminUsecase defines the read-only admin reporting use cases. Access
// control happens in the delivery layer via the admin token middleware.
type AdminUsecase interface {
	// GetStats computes the platform statistics snapshot.
	GetStats(ctx context.Context) (*repository.StatsSummary, error)

	// ListProjects lists projects with owner info and an optional status filter.
	ListProjects(ctx context.Context, status string, limit, offset int) (*AdminProjectList, error)

	// ListUsers lists users with an optional user type filter.
	ListUsers(ctx context.Context, userType string, limit, offset int) (*AdminUserList, error)
}
