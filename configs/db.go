package configs

import (
	"fmt"
	"strings"

	"orderboard/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database named by DB_DRIVER: sqlite for single-node
// installs, postgres when the board runs behind a shared server.
func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		// Timestamps must parse back into the location they were written in,
		// or the updated_at equality guard on archive never matches.
		source := cfg.DBSource
		if !strings.Contains(source, "_loc=") {
			if strings.Contains(source, "?") {
				source += "&_loc=auto"
			} else {
				source += "?_loc=auto"
			}
		}
		dialector = sqlite.Open(source)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := database.DB()
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		// sqlite has one writer. A capped pool queues concurrent
		// transactions instead of surfacing SQLITE_BUSY, which none of the
		// service error paths handle.
		sqlDB.SetMaxOpenConns(1)
	}

	db = database
	return nil
}

func SetupDatabase() error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderCounter{},
		&entity.Report{}, &entity.ReportItem{},
		&entity.Setting{},
	); err != nil {
		return err
	}

	// The ORD-NNNNN sequence row must exist before the first create.
	return db.FirstOrCreate(&entity.OrderCounter{}, entity.OrderCounter{ID: 1}).Error
}
