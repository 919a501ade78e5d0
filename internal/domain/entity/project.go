package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus enumerates the lifecycle of a renovation project.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project is a renovation project owned by exactly one user. Measurements,
// photos and product line items hang off it as dependent collections.
type Project struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	Title       string           `json:"title"`
	Address     string           `json:"address"`
	ProjectType string           `json:"project_type"` // e.g. "apartment", "house", "office".
	Area        *float64         `json:"area"`
	Rooms       *int             `json:"rooms"`
	Budget      *decimal.Decimal `json:"budget"`
	Description string           `json:"description"`
	Status      ProjectStatus    `json:"status"`
	Progress    int              `json:"progress"` // Percentage, 0-100.
	StartDate   *time.Time       `json:"start_date"`
	Deadline    *time.Time       `json:"deadline"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
