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

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// ContactListOptions filters the admin inbox. Messages have no
// is_active flag; the list is unconditional apart from these filters.
type ContactListOptions struct {
	pagination.Params
	Search  string
	Status  string
	Urgency string
}

func (r *ContactRepository) List(ctx context.Context, opts ContactListOptions) ([]models.ContactMessage, int64, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if opts.Status != "" {
		q = q.Where("status = ?", opts.Status)
	}
	if opts.Urgency != "" {
		q = q.Where("urgency = ?", opts.Urgency)
	}
	if strings.TrimSpace(opts.Search) != "" {
		like := likePattern(opts.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(message) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Query("Could not list contact messages", err)
	}

	// No sort_order column; newest submissions first.
	var rows []models.ContactMessage
	err := q.Order("created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperr.Query("Could not list contact messages", err)
	}
	return rows, total, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.ContactMessage
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Contact message not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load contact message", err)
	}
	return &row, nil
}

func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	if msg.Urgency == "" {
		msg.Urgency = models.ContactUrgencyNormal
	}
	msg.Status = models.ContactStatusNew

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return apperr.Query("Could not save contact message", err)
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.ContactMessage, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, apperr.Query("Could not update contact message", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Contact message not found")
	}

	var row models.ContactMessage
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperr.Query("Could not load contact message", err)
	}
	return &row, nil
}

// Delete removes the message physically.
func (r *ContactRepository) Delete(ctx context.Context, id uint) (*models.ContactMessage, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("delete", time.Now())

	row, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id).Error; err != nil {
		return nil, apperr.Query("Could not delete contact message", err)
	}
	return row, nil
}
