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
	"github.com/isipark/siteapi/pkg/slug"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ServiceListOptions filters the public services listing.
type ServiceListOptions struct {
	pagination.Params
	Search   string
	Featured *bool
}

func (r *ServiceRepository) List(ctx context.Context, opts ServiceListOptions) ([]models.Service, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.Service{}).Where("is_active = ?", true)
	if opts.Featured != nil {
		q = q.Where("is_featured = ?", *opts.Featured)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list services", err)
	}

	var rows []models.Service
	err := q.Order("sort_order ASC, created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list services", err)
	}
	return rows, total, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Service not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load service", err)
	}
	return &row, nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *models.Service) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	// Service titles are Turkish, so the slug uses the folding table.
	base := slug.OrFallback(slug.MakeFolded(svc.Title), "service")
	unique, err := uniqueSlug(ctx, r.db, models.Service{}.TableName(), base)
	if err != nil {
		return apperr.Query("Could not create service", err)
	}
	svc.Slug = unique
	svc.IsActive = true

	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return apperr.Query("Could not create service", err)
	}
	return nil
}

// Update applies a partial column map. Fields absent from the map keep
// their stored values.
func (r *ServiceRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Service, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update service", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Service not found")
	}

	var row models.Service
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load service", err)
	}
	return &row, nil
}

// Deactivate soft-deletes the service and returns the affected row.
func (r *ServiceRepository) Deactivate(ctx context.Context, id uint) (*models.Service, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, apperr.Query("Could not delete service", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Service not found")
	}

	var row models.Service
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load service", err)
	}
	return &row, nil
}
