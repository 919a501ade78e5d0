package repository

import (
	"context"

	"yasen/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// UserStats holds aggregate user counts.
type UserStats struct {
	Total       int64 `json:"total"`
	Customers   int64 `json:"customers"`
	Contractors int64 `json:"contractors"`
}

// ProjectStats holds aggregate project counts and the average budget.
type ProjectStats struct {
	Total      int64            `json:"total"`
	InProgress int64            `json:"in_progress"`
	Completed  int64            `json:"completed"`
	ByType     map[string]int64 `json:"by_type"`
	AvgBudget  *decimal.Decimal `json:"avg_budget"`
}

// ContentStats holds counts of project content rows.
type ContentStats struct {
	Measurements int64 `json:"measurements"`
	Photos       int64 `json:"photos"`
}

// StatsSummary is the full platform statistics snapshot.
type StatsSummary struct {
	Users    UserStats    `json:"users"`
	Projects ProjectStats `json:"projects"`
	Content  ContentStats `json:"content"`
}

// AdminProject is a project row joined with its owner for the admin listing.
type AdminProject struct {
	Project       *entity.Project `json:"project"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
}

// StatsRepository exposes the read-only aggregation queries backing the admin
// endpoints. All aggregation happens in SQL (COUNT/AVG/GROUP BY), never
// row-by-row in process.
type StatsRepository interface {
	// CollectStats computes the platform statistics snapshot.
	CollectStats(ctx context.Context) (*StatsSummary, error)

	// FindProjectsWithOwners lists projects joined with owner info, plus the
	// total count matching the optional status filter.
	FindProjectsWithOwners(ctx context.Context, status string, limit, offset int) ([]*AdminProject, int64, error)

	// FindUsers lists users with an optional user type filter, plus the
	// total matching count.
	FindUsers(ctx context.Context, userType string, limit, offset int) ([]*entity.User, int64, error)
}
