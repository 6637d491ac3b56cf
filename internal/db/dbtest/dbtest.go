// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/hotel-services/internal/db"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open("sqlite", dsn, gormLogger.Discard)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// one connection keeps the shared in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}
