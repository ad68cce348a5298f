package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0006_create_faqs",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.FAQ{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.FAQ{})
		},
	})
}
