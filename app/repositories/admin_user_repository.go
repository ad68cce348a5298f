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
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("select", time.Now())

	var row models.AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Admin user not found")
	}
	if err != nil {
		return nil, apperr.Query("Could not load admin user", err)
	}
	return &row, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, u *models.AdminUser) error {
	ctx, cancel := database.StatementContext(ctx)
	defer cancel()
	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return apperr.Query("Could not create admin user", err)
	}
	return nil
}
