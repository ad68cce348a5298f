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

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// TestimonialListOptions filters testimonials. ApprovedOnly is set for
// the public listing; admins see unapproved submissions too.
type TestimonialListOptions struct {
	pagination.Params
	Search       string
	Featured     *bool
	Category     string
	ApprovedOnly bool
}

func (r *TestimonialRepository) List(ctx context.Context, opts TestimonialListOptions) ([]models.Testimonial, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.Testimonial{}).Where("is_active = ?", true)
	if opts.ApprovedOnly {
		q = q.Where("is_approved = ?", true)
	}
	if opts.Featured != nil {
		q = q.Where("is_featured = ?", *opts.Featured)
	}
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(comment) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list testimonials", err)
	}

	var rows []models.Testimonial
	err := q.Order("sort_order ASC, created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list testimonials", err)
	}
	return rows, total, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.Testimonial
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Testimonial not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load testimonial", err)
	}
	return &row, nil
}

// Create inserts a public submission. Rows start unapproved and only
// appear in public listings after an admin flips is_approved.
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	t.IsActive = true
	t.IsApproved = false
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}

	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return apperr.Query("Could not create testimonial", err)
	}
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Testimonial, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update testimonial", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Testimonial not found")
	}

	var row models.Testimonial
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load testimonial", err)
	}
	return &row, nil
}

func (r *TestimonialRepository) Deactivate(ctx context.Context, id uint) (*models.Testimonial, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return nil, apperr.Query("Could not delete testimonial", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Testimonial not found")
	}

	var row models.Testimonial
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load testimonial", err)
	}
	return &row, nil
}
