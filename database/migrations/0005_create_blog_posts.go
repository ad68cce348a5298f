package migrations

import (
	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0005_create_blog_posts",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.BlogPost{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.BlogPost{})
		},
	})
}
