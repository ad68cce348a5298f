// Package seeders loads initial content: the first admin account and a
// small set of demo rows so a fresh install renders a complete site.
package seeders

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/auth"
	"github.com/isipark/siteapi/pkg/logger"
)

// Run executes every seeder. Safe to call repeatedly: seeders skip rows
// that already exist.
func Run(db *gorm.DB) error {
	ctx := context.Background()

	if err := seedAdmin(ctx, db); err != nil {
		return err
	}
	if err := seedCategories(ctx, db); err != nil {
		return err
	}
	if err := seedServices(ctx, db); err != nil {
		return err
	}
	if err := seedFAQ(ctx, db); err != nil {
		return err
	}
	if err := seedCompany(ctx, db); err != nil {
		return err
	}
	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := config.Get("ADMIN_EMAIL", "admin@example.com")
	password := config.Get("ADMIN_PASSWORD", "change-me")

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	repo := repositories.NewAdminUserRepository(db)
	if err := repo.Create(ctx, &models.AdminUser{
		Name:         "Site Admin",
		Email:        email,
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	logger.Info("seeded admin user", "email", email)
	return nil
}

func seedCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	repo := repositories.NewCategoryRepository(db)
	names := []string{"Kombi", "Klima", "Isı Pompası", "Radyatör"}
	for i, name := range names {
		if err := repo.Create(ctx, &models.Category{Name: name, SortOrder: i + 1}); err != nil {
			return err
		}
	}

	logger.Info("seeded categories", "count", len(names))
	return nil
}

func seedServices(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if count > 0 {
		return nil
	}

	repo := repositories.NewServiceRepository(db)
	services := []models.Service{
		{
			Title:            "Kombi Montajı",
			Description:      "Her marka kombinin garantili montajı ve devreye alınması.",
			ShortDescription: "Garantili kombi montaj hizmeti",
			PriceRange:       "1500-3000 TL",
			Duration:         "2-4 saat",
			Warranty:         "2 yıl işçilik garantisi",
			IsFeatured:       true,
			SortOrder:        1,
		},
		{
			Title:            "Kombi Bakımı",
			Description:      "Yıllık periyodik kombi bakımı ve performans kontrolü.",
			ShortDescription: "Periyodik bakım",
			PriceRange:       "500-900 TL",
			Duration:         "1-2 saat",
			SortOrder:        2,
		},
		{
			Title:            "Klima Montajı",
			Description:      "Split ve VRF klima sistemlerinin montajı.",
			ShortDescription: "Klima montaj hizmeti",
			PriceRange:       "1000-2500 TL",
			Duration:         "2-3 saat",
			IsFeatured:       true,
			SortOrder:        3,
		},
	}
	for i := range services {
		if err := repo.Create(ctx, &services[i]); err != nil {
			return err
		}
	}

	logger.Info("seeded services", "count", len(services))
	return nil
}

func seedFAQ(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FAQ{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed faq: %w", err)
	}
	if count > 0 {
		return nil
	}

	repo := repositories.NewFAQRepository(db)
	faqs := []models.FAQ{
		{
			Question:  "Kombi bakımı ne sıklıkla yapılmalı?",
			Answer:    "Yılda bir kez, tercihen kış sezonu öncesinde yaptırmanızı öneririz.",
			Category:  "bakım",
			SortOrder: 1,
		},
		{
			Question:  "Montaj sonrası garanti veriyor musunuz?",
			Answer:    "Tüm montaj işlerimizde 2 yıl işçilik garantisi sunuyoruz.",
			Category:  "garanti",
			SortOrder: 2,
		},
	}
	for i := range faqs {
		if err := repo.Create(ctx, &faqs[i]); err != nil {
			return err
		}
	}

	logger.Info("seeded faq", "count", len(faqs))
	return nil
}

func seedCompany(ctx context.Context, db *gorm.DB) error {
	repo := repositories.NewCompanyRepository(db)
	if _, err := repo.Get(ctx); err == nil {
		return nil
	}

	_, err := repo.Upsert(ctx, &models.CompanyInfo{
		About:        "Isıtma ve iklimlendirme sistemlerinde 20 yılı aşkın tecrübe.",
		Mission:      "Müşterilerimize güvenilir ve verimli ısıtma çözümleri sunmak.",
		Vision:       "Bölgenin en çok tercih edilen iklimlendirme firması olmak.",
		Phone:        "+90 212 000 00 00",
		Email:        "info@example.com",
		WorkingHours: "Pazartesi-Cumartesi 08:30-18:30",
	})
	if err != nil {
		return err
	}

	logger.Info("seeded company info")
	return nil
}
