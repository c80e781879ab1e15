package db

import (
	"fmt"

	"github.com/ikkim/cinestream-backend/config"
	appLogger "github.com/ikkim/cinestream-backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing: review writes serialize per movie in the service layer, so
// the pool mostly serves catalog and analytics reads.
const (
	maxIdleConns = 10
	maxOpenConns = 50
)

var DB *gorm.DB

// Initialize opens the PostgreSQL connection and configures the pool
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"sslmode":  cfg.SSLMode,
	})

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// SQL logging stays off; requests are logged by the zerolog middleware
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)

	appLogger.Info("Database connection established", map[string]interface{}{
		"max_idle_conns": maxIdleConns,
		"max_open_conns": maxOpenConns,
	})
	return nil
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
