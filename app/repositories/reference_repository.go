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

type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

type ReferenceListOptions struct {
	pagination.Params
	Search string
	Year   *int
}

func (r *ReferenceRepository) List(ctx context.Context, opts ReferenceListOptions) ([]models.Reference, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.Reference{}).Where("is_active = ?", true)
	if opts.Year != nil {
		q = q.Where("year = ?", *opts.Year)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(client) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list references", err)
	}

	var rows []models.Reference
	err := q.Order("sort_order ASC, created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list references", err)
	}
	return rows, total, nil
}

func (r *ReferenceRepository) FindByID(ctx context.Context, id uint) (*models.Reference, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.Reference
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Reference not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load reference", err)
	}
	return &row, nil
}

func (r *ReferenceRepository) Create(ctx context.Context, ref *models.Reference) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	ref.IsActive = true
	if err := r.db.WithContext(ctx).Create(ref).Error; err != nil {
		return apperr.Query("Could not create reference", err)
	}
	return nil
}

func (r *ReferenceRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Reference, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Reference{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update reference", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Reference not found")
	}

	var row models.Reference
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load reference", err)
	}
	return &row, nil
}

func (r *ReferenceRepository) Deactivate(ctx context.Context, id uint) (*models.Reference, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Reference{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, apperr.Query("Could not delete reference", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Reference not found")
	}

	var row models.Reference
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load reference", err)
	}
	return &row, nil
}
