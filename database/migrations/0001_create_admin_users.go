// Package migrations registers the schema migrations. Each file adds one
// migration from init(); the runner applies them in name order.
package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0001_create_admin_users",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.AdminUser{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.AdminUser{})
		},
	})
}
