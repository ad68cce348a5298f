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

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type ProductListOptions struct {
	pagination.Params
	Search     string
	CategoryID *uint
	InStock    *bool
}

func (r *ProductRepository) List(ctx context.Context, opts ProductListOptions) ([]models.Product, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)
	if opts.CategoryID != nil {
		q = q.Where("category_id = ?", *opts.CategoryID)
	}
	if opts.InStock != nil {
		q = q.Where("in_stock = ?", *opts.InStock)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list products", err)
	}

	var rows []models.Product
	err := q.Preload("Category").
		Order("sort_order ASC, created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list products", err)
	}
	return rows, total, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.Product
	err := r.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load product", err)
	}
	return &row, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	base := slug.OrFallback(slug.Make(p.Name), "product")
	unique, err := uniqueSlug(ctx, r.db, models.Product{}.TableName(), base)
	if err != nil {
		return apperr.Query("Could not create product", err)
	}
	p.Slug = unique
	p.IsActive = true

	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperr.Query("Could not create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Product, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Product not found")
	}

	var row models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load product", err)
	}
	return &row, nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id uint) (*models.Product, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, apperr.Query("Could not delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Product not found")
	}

	var row models.Product
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load product", err)
	}
	return &row, nil
}
