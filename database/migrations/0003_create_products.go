package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0003_create_products",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.Product{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.Product{})
		},
	})
}
