package db

import (
	"testing"

	gormLogger "gorm.io/gorm/logger"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn", gormLogger.Discard); err == nil {
		t.Error("Expected error for an unsupported driver")
	}
}

func TestOpen_SQLiteAndMigrate(t *testing.T) {
	gdb, err := Open("sqlite", "file::memory:", gormLogger.Discard)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"accounts", "providers", "services", "bookings", "audit_logs"} {
		if !gdb.Migrator().HasTable(table) {
			t.Errorf("Expected table %s", table)
		}
	}
}
