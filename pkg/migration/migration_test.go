package migration

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestRunRollbackStatus(t *testing.T) {
	registry = nil // isolate from other registrations in the test binary
	Register(Migration{
		Name: "0001_create_widgets",
		Up:   func(db *gorm.DB) error { return db.AutoMigrate(&widget{}) },
		Down: func(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) },
	})

	db := testDB(t)

	if err := Run(db); err != nil {
		t.Fatal(err)
	}
	if !db.Migrator().HasTable(&widget{}) {
		t.Fatal("widgets table missing after Run")
	}

	// Second run is a no-op.
	if err := Run(db); err != nil {
		t.Fatal(err)
	}

	entries, err := Status(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].Applied || entries[0].Batch != 1 {
		t.Fatalf("unexpected status: %+v", entries)
	}

	if err := Rollback(db); err != nil {
		t.Fatal(err)
	}
	if db.Migrator().HasTable(&widget{}) {
		t.Fatal("widgets table still present after Rollback")
	}

	entries, err = Status(db)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Applied {
		t.Fatalf("migration still marked applied: %+v", entries)
	}
}

func TestRollbackWithNothingApplied(t *testing.T) {
	registry = nil

	db := testDB(t)
	if err := Rollback(db); err != nil {
		t.Fatal(err)
	}
}
