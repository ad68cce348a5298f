// Package repositories holds the data-access layer. Every method derives
// a statement-timeout context, runs parameterized gorm queries, and maps
// database failures to typed application errors.
package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// likePattern builds a case-insensitive substring pattern. Search uses
// LOWER(col) LIKE so it behaves the same on postgres, mysql and sqlite.
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}

// uniqueSlug returns base if unused, otherwise base-2, base-3, ...
// The probe runs against the full table (inactive rows included) so a
// soft-deleted row never collides with a new one.
func uniqueSlug(ctx context.Context, db *gorm.DB, table, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		err := db.WithContext(ctx).Table(table).Where("slug = ?", slug).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
