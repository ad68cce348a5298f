package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0002_create_categories",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.Category{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.Category{})
		},
	})
}
