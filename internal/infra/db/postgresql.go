// Package db owns the PostgreSQL connection lifecycle.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AminataF33/budgetappback/config"
)

const pingTimeout = 5 * time.Second

// Database holds the gorm handle and the pool settings it was opened with.
type Database struct {
	conn *gorm.DB
}

// NewPostgresConnection opens a pooled connection from the configured URL and
// verifies it with a ping before returning.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	slog.Info("connected to postgres",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return &Database{conn: conn}, nil
}

// DB exposes the gorm handle for repository construction.
func (d *Database) DB() *gorm.DB {
	return d.conn
}

// AutoMigrate creates or updates the schema for the given models.
func (d *Database) AutoMigrate(models ...any) error {
	if err := d.conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (d *Database) Close() error {
	pool, err := d.conn.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	slog.Info("postgres connection closed")
	return nil
}
