// internal/db/db.go
package db

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nakarin/storefront-backend/internal/config"
	"github.com/nakarin/storefront-backend/internal/model"
)

// Connect opens the PostgreSQL connection via GORM, verifies connectivity
// and migrates the schema. The returned cleanup closes the underlying pool.
func Connect(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, func(), error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	if err := gdb.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.User{},
		&model.Session{},
	); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	logger.Info("✅ connected to database",
		zap.String("host", cfg.Host),
		zap.String("name", cfg.Name),
	)
	return gdb, func() { _ = sqlDB.Close() }, nil
}
