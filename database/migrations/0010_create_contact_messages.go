package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0010_create_contact_messages",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.ContactMessage{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.ContactMessage{})
		},
	})
}
