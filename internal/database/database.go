package database

import (
	"fmt"
	"log"
	"time"

	"reviewhub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schemaModels lists every table in dependency order.
var schemaModels = []interface{}{
	&models.User{},
	&models.Item{},
	&models.Review{},
	&models.Comment{},
}

// Open connects to the configured store. Driver errors are translated to
// gorm's generic kinds (ErrDuplicatedKey, ErrForeignKeyViolated) so the
// repositories do not depend on a specific database.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		// One connection, so the pragma below and in-memory databases
		// apply to every query.
		sqlDB.SetMaxOpenConns(1)
		// SQLite ships with foreign keys disabled per connection.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	return db, nil
}

// newLogger reports slow and failed statements without their bound values,
// so password hashes and usernames never reach the log. Misses are expected
// and not logged.
func newLogger() logger.Interface {
	return logger.New(log.Default(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		ParameterizedQueries:      true,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate creates missing tables, columns, indexes and constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Reset drops all four tables and recreates them. Calling it repeatedly is
// safe.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(schemaModels...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	log.Println("Dropped tables comments, reviews, items, users")
	return Migrate(db)
}
