package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0004_create_services",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.Service{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.Service{})
		},
	})
}
