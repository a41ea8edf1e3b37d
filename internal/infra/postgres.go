package infra

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse/internal/config"
	"pulse/internal/models/db_models"
)

// InitDatabase opens a connection pool for the configured DSN. SQLite DSNs
// (file: prefix) get the sqlite driver, anything else goes to Postgres.
// TranslateError makes unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver, which the services rely on
// to resolve duplicate signups racing past the application-level checks.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if cfg.Debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var db *gorm.DB
	var err error
	if strings.HasPrefix(cfg.DatabaseURL, "file:") {
		db, err = gorm.Open(sqlite.Open(cfg.DatabaseURL), gormCfg)
	} else {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	}
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&db_models.User{}, &db_models.Feedback{})
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
