// Package migration runs versioned schema migrations tracked in the
// site_migrations table. Migrations register themselves from init()
// functions in database/migrations and run in name order.
package migration

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/isipark/siteapi/pkg/logger"
)

// Migration is one reversible schema change.
type Migration struct {
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

// record tracks an applied migration.
type record struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255"`
	Batch     int
	AppliedAt time.Time
}

func (record) TableName() string { return "site_migrations" }

var registry []Migration

// Register adds a migration to the run list. Called from init().
func Register(m Migration) {
	registry = append(registry, m)
}

func sorted() []Migration {
	out := make([]Migration, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func ensureTable(db *gorm.DB) error {
	return db.AutoMigrate(&record{})
}

func appliedSet(db *gorm.DB) (map[string]bool, int, error) {
	var records []record
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	applied := make(map[string]bool, len(records))
	lastBatch := 0
	for _, r := range records {
		applied[r.Name] = true
		if r.Batch > lastBatch {
			lastBatch = r.Batch
		}
	}
	return applied, lastBatch, nil
}

// Run applies every pending migration in one batch.
func Run(db *gorm.DB) error {
	if err := ensureTable(db); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	applied, lastBatch, err := appliedSet(db)
	if err != nil {
		return fmt.Errorf("migration: load state: %w", err)
	}

	batch := lastBatch + 1
	ran := 0
	for _, m := range sorted() {
		if applied[m.Name] {
			continue
		}

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}

		rec := record{Name: m.Name, Batch: batch, AppliedAt: time.Now()}
		if err := db.Create(&rec).Error; err != nil {
			return fmt.Errorf("migration %s: record: %w", m.Name, err)
		}

		logger.Info("migrated", "name", m.Name, "batch", batch)
		ran++
	}

	if ran == 0 {
		logger.Info("nothing to migrate")
	}
	return nil
}

// Rollback reverts the most recent batch.
func Rollback(db *gorm.DB) error {
	if err := ensureTable(db); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	_, lastBatch, err := appliedSet(db)
	if err != nil {
		return fmt.Errorf("migration: load state: %w", err)
	}
	if lastBatch == 0 {
		logger.Info("nothing to rollback")
		return nil
	}

	var records []record
	if err := db.Where("batch = ?", lastBatch).Order("id DESC").Find(&records).Error; err != nil {
		return fmt.Errorf("migration: load batch %d: %w", lastBatch, err)
	}

	byName := make(map[string]Migration, len(registry))
	for _, m := range registry {
		byName[m.Name] = m
	}

	for _, r := range records {
		m, ok := byName[r.Name]
		if !ok {
			return fmt.Errorf("migration: %s applied but not registered", r.Name)
		}
		if m.Down == nil {
			return fmt.Errorf("migration: %s has no down step", r.Name)
		}

		if err := m.Down(db); err != nil {
			return fmt.Errorf("migration %s down: %w", r.Name, err)
		}
		if err := db.Delete(&record{}, r.ID).Error; err != nil {
			return fmt.Errorf("migration %s: unrecord: %w", r.Name, err)
		}

		logger.Info("rolled back", "name", r.Name)
	}
	return nil
}

// StatusEntry is one row of `siteapi migrate:status`.
type StatusEntry struct {
	Name    string
	Applied bool
	Batch   int
}

// Status lists every registered migration and whether it has run.
func Status(db *gorm.DB) ([]StatusEntry, error) {
	if err := ensureTable(db); err != nil {
		return nil, fmt.Errorf("migration: ensure table: %w", err)
	}

	var records []record
	if err := db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("migration: load state: %w", err)
	}

	batches := make(map[string]int, len(records))
	for _, r := range records {
		batches[r.Name] = r.Batch
	}

	entries := make([]StatusEntry, 0, len(registry))
	for _, m := range sorted() {
		batch, ok := batches[m.Name]
		entries = append(entries, StatusEntry{Name: m.Name, Applied: ok, Batch: batch})
	}
	return entries, nil
}
