package postgres

import (
	"context"

	"yasen/internal/domain/entity"
	"yasen/internal/domain/repository"
	"yasen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// statsRepository implements the repository.StatsRepository interface using GORM.
// Every aggregate is computed in SQL, never row-by-row in process.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// CollectStats computes the platform statistics snapshot.
func (repo *statsRepository) CollectStats(ctx context.Context) (*repository.StatsSummary, error) {
	summary := &repository.StatsSummary{
		Projects: repository.ProjectStats{
			ByType: make(map[string]int64),
		},
	}

	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.UserModel{}).Count(&summary.Users.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if err := db.Model(&model.UserModel{}).
		Where("user_type = ?", string(entity.UserTypeCustomer)).
		Count(&summary.Users.Customers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}
	if err := db.Model(&model.UserModel{}).
		Where("user_type = ?", string(entity.UserTypeContractor)).
		Count(&summary.Users.Contractors).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count contractors")
	}

	if err := db.Model(&model.ProjectModel{}).Count(&summary.Projects.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count projects")
	}
	if err := db.Model(&model.ProjectModel{}).
		Where("status = ?", string(entity.ProjectStatusInProgress)).
		Count(&summary.Projects.InProgress).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count in-progress projects")
	}
	if err := db.Model(&model.ProjectModel{}).
		Where("status = ?", string(entity.ProjectStatusCompleted)).
		Count(&summary.Projects.Completed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count completed projects")
	}

	byType, err := repo.countProjectsByType(ctx)
	if err != nil {
		return nil, err
	}
	summary.Projects.ByType = byType

	avgBudget, err := repo.averageProjectBudget(ctx)
	if err != nil {
		return nil, err
	}
	summary.Projects.AvgBudget = avgBudget

	if err := db.Model(&model.RoomMeasurementModel{}).Count(&summary.Content.Measurements).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count measurements")
	}
	if err := db.Model(&model.ProjectPhotoModel{}).Count(&summary.Content.Photos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count photos")
	}

	return summary, nil
}

// countProjectsByType groups project counts by project type in SQL.
func (repo *statsRepository) countProjectsByType(ctx context.Context) (map[string]int64, error) {
	type typeCount struct {
		ProjectType string
		Count       int64
	}

	var rows []typeCount
	if err := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Select("project_type, COUNT(*) AS count").
		Where("project_type <> ''").
		Group("project_type").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to group projects by type")
	}

	byType := make(map[string]int64, len(rows))
	for _, row := range rows {
		byType[row.ProjectType] = row.Count
	}

	return byType, nil
}

// averageProjectBudget computes AVG(budget) over projects that have one.
func (repo *statsRepository) averageProjectBudget(ctx context.Context) (*decimal.Decimal, error) {
	var avg decimal.NullDecimal

	if err := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Select("AVG(budget)").
		Where("budget IS NOT NULL").
		Scan(&avg).Error; err != nil {
		return nil, errors.Wrap(err, "failed to average project budgets")
	}

	if !avg.Valid {
		return nil, nil
	}

	return &avg.Decimal, nil
}

// FindProjectsWithOwners lists projects joined with owner info plus the total
// count matching the optional status filter.
func (repo *statsRepository) FindProjectsWithOwners(ctx context.Context, status string, limit, offset int) ([]*repository.AdminProject, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.ProjectModel{})
	if status != "" {
		base = base.Where("projects.status = ?", status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count admin projects")
	}

	type projectRow struct {
		model.ProjectModel
		CustomerName  string
		CustomerPhone string
	}

	var rows []projectRow
	query := base.
		Select("projects.*, users.name AS customer_name, users.phone AS customer_phone").
		Joins("JOIN users ON users.id = projects.user_id").
		Order("projects.created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list admin projects")
	}

	projects := make([]*repository.AdminProject, 0, len(rows))
	for i := range rows {
		projects = append(projects, &repository.AdminProject{
			Project:       toProjectDomain(&rows[i].ProjectModel),
			CustomerName:  rows[i].CustomerName,
			CustomerPhone: rows[i].CustomerPhone,
		})
	}

	return projects, total, nil
}

// FindUsers lists users with an optional user type filter plus the total
// matching count.
func (repo *statsRepository) FindUsers(ctx context.Context, userType string, limit, offset int) ([]*entity.User, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if userType != "" {
		base = base.Where("user_type = ?", userType)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count admin users")
	}

	var userModels []*model.UserModel
	query := base.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list admin users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}
