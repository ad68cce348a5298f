package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/database"
	"github.com/isipark/siteapi/pkg/metrics"
	"github.com/isipark/siteapi/pkg/slug"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all active categories. The set is small, so no
// pagination here.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var rows []models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Query("Could not list categories", err)
	}
	return rows, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Category not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load category", err)
	}
	return &row, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	// Category names are Turkish ("Isı Pompası"), same as service titles.
	base := slug.OrFallback(slug.MakeFolded(c.Name), "category")
	unique, err := uniqueSlug(ctx, r.db, models.Category{}.TableName(), base)
	if err != nil {
		return apperr.Query("Could not create category", err)
	}
	c.Slug = unique
	c.IsActive = true

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return apperr.Query("Could not create category", err)
	}
	return nil
}
