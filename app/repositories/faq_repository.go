package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/database"
	"github.com/isipark/siteapi/pkg/metrics"
	"github.com/isipark/siteapi/pkg/pagination"
)

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

type FAQListOptions struct {
	pagination.Params
	Search   string
	Category string
}

func (r *FAQRepository) List(ctx context.Context, opts FAQListOptions) ([]models.FAQ, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.FAQ{}).Where("is_active = ?", true)
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(question) LIKE ? OR LOWER(answer) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list FAQ entries", err)
	}

	var rows []models.FAQ
	err := q.Order("sort_order ASC, created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list FAQ entries", err)
	}
	return rows, total, nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id uint) (*models.FAQ, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.FAQ
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("FAQ not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load FAQ", err)
	}
	return &row, nil
}

func (r *FAQRepository) Create(ctx context.Context, f *models.FAQ) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	f.IsActive = true
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return apperr.Query("Could not create FAQ", err)
	}
	return nil
}

func (r *FAQRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.FAQ, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.FAQ{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update FAQ", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("FAQ not found")
	}

	var row models.FAQ
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load FAQ", err)
	}
	return &row, nil
}

func (r *FAQRepository) Deactivate(ctx context.Context, id uint) (*models.FAQ, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.FAQ{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, apperr.Query("Could not delete FAQ", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("FAQ not found")
	}

	var row models.FAQ
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load FAQ", err)
	}
	return &row, nil
}
