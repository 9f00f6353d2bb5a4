package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/srgjo27/airline_inventory/internal/platform/config"
)

const retryDelay = 2 * time.Second

func ConnString(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// NewPostgresDB opens and pings the database, retrying while it comes up.
func NewPostgresDB(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var err error

	for i := 1; i <= maxRetries; i++ {
		logger.Info("connecting to database", "host", cfg.Host, "attempt", i, "max_attempts", maxRetries)

		var db *sql.DB
		db, err = sql.Open("postgres", ConnString(cfg))
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				db.SetMaxOpenConns(25)
				db.SetMaxIdleConns(25)
				db.SetConnMaxLifetime(5 * time.Minute)

				logger.Info("database connected")
				return db, nil
			}
			db.Close()
		}

		if i == maxRetries {
			break
		}

		logger.Warn("database not ready", "error", err, "retry_in", retryDelay)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
