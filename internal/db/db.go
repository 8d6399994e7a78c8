package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prepwise-backend-V1.0/internal/config"
)

var gormDB *gorm.DB

// InitDBFromConfig opens the relational database (user accounts) using the
// loaded XML configuration.
func InitDBFromConfig(cfg *config.APIConfig) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.Username, cfg.DB.Password.Value, cfg.DB.Name, cfg.DB.SSLMode)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatalf("failed to access underlying sql.DB: %v", err)
	}
	if cfg.DB.Pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	}
	if cfg.DB.Pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	}
	if cfg.DB.Pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)
	}

	gormDB = database
}

// GetDB returns the relational database handle.
func GetDB() *gorm.DB {
	return gormDB
}
