package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/database"
	"github.com/isipark/siteapi/pkg/metrics"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Get returns the singleton company row.
func (r *CompanyRepository) Get(ctx context.Context) (*models.CompanyInfo, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.CompanyInfo
	err := r.db.WithContext(ctx).
		Where("singleton_key = ?", models.SingletonCompanyKey).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Company info not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load company info", err)
	}
	return &row, nil
}

// Upsert writes the singleton atomically. The unique singleton_key plus
// ON CONFLICT makes two concurrent PUTs converge on one row instead of
// racing a check-then-insert.
func (r *CompanyRepository) Upsert(ctx context.Context, info *models.CompanyInfo) (*models.CompanyInfo, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	info.SingletonKey = models.SingletonCompanyKey

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "singleton_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"about", "mission", "vision", "address", "phone", "email",
			"working_hours", "social_links", "values", "certifications",
			"updated_at",
		}),
	}).Create(info).Error
	if err != nil {
		return nil, apperr.Query("Could not save company info", err)
	}

	return r.Get(ctx)
}
