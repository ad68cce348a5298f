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

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// BlogListOptions filters posts. PublishedOnly is set for the public
// listing; the admin view includes drafts.
type BlogListOptions struct {
	pagination.Params
	Search        string
	PublishedOnly bool
}

func (r *BlogRepository) List(ctx context.Context, opts BlogListOptions) ([]models.BlogPost, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("is_active = ?", true)
	if opts.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list blog posts", err)
	}

	// Blog posts carry no sort_order; newest first.
	var rows []models.BlogPost
	err := q.Order("created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list blog posts", err)
	}
	return rows, total, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.BlogPost
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Blog post not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load blog post", err)
	}
	return &row, nil
}

func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	base := slug.OrFallback(slug.Make(post.Title), "post")
	unique, err := uniqueSlug(ctx, r.db, models.BlogPost{}.TableName(), base)
	if err != nil {
		return apperr.Query("Could not create blog post", err)
	}
	post.Slug = unique
	post.IsActive = true

	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return apperr.Query("Could not create blog post", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.BlogPost, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	// First publish stamps published_at.
	if published, ok := fields["is_published"].(bool); ok && published {
		var current models.BlogPost
		err := r.db.WithContext(ctx).
			Where("id = ? AND is_active = ?", id, true).
			First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Blog post not found")
		}
		if err != nil {
			return nil, apperr.Query("Could not load blog post", err)
		}
		if current.PublishedAt == nil {
			fields["published_at"] = time.Now()
		}
	}

	res := r.db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update blog post", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Blog post not found")
	}

	var row models.BlogPost
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load blog post", err)
	}
	return &row, nil
}

func (r *BlogRepository) Deactivate(ctx context.Context, id uint) (*models.BlogPost, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, apperr.Query("Could not delete blog post", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Blog post not found")
	}

	var row models.BlogPost
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load blog post", err)
	}
	return &row, nil
}
