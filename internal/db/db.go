package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/hotel-services/internal/config"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBDriver, cfg.DBUrl, newLogger(gormLogger.Warn))
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open connects with the dialector named by driver.
func Open(driver, dsn string, lg gormLogger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         lg,
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Provider{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	)
}

func newLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return gormLogger.New(
		logrus.StandardLogger(),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
