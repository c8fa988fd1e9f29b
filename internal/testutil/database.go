// Package testutil sets up throwaway SQLite databases and seed rows for tests.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"brokerfolio/internal/models"
)

// schema lists the tables created in every test database, parents first.
var schema = []interface{}{
	&models.AssetType{},
	&models.Asset{},
	&models.Broker{},
	&models.Transaction{},
}

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// Shared cache lets concurrent goroutines in one test see the same data,
// while the per-call name keeps tests isolated from each other.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:brokerfolio_test_%d?mode=memory&cache=shared", nextID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(schema...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// TeardownTestDB closes db. The in-memory database is dropped with its last connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("close test database: %v", err)
	}
}
