package database

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DSN returns the PostgreSQL connection string.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

const (
	connectAttempts     = 3
	connectBaseWait     = 1 * time.Second
	retryJitterFraction = 0.25
)

// retryBackoff returns the backoff for the given attempt (0-indexed) with
// ±25% jitter. Base delays: 1s, 2s, 4s.
func retryBackoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	base := connectBaseWait << attempt
	jitter := time.Duration(float64(base) * retryJitterFraction * (2*rand.Float64() - 1)) // #nosec G404 -- non-cryptographic jitter
	return base + jitter
}

// NewPostgresPool creates a connection pool with startup retry (3 attempts,
// exponential backoff). A nil logger silences the retry warnings.
func NewPostgresPool(ctx context.Context, cfg *PostgresConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	var lastErr error
	for attempt := 0; attempt < connectAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		if attempt == connectAttempts-1 {
			break
		}

		wait := retryBackoff(attempt)
		if logger != nil {
			logger.Warn("postgres connection failed, retrying",
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", connectAttempts),
				slog.Duration("backoff", wait),
				slog.String("error", err.Error()),
			)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to postgres: context canceled during retry: %w", ctx.Err())
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("connect to postgres after %d attempts: %w", connectAttempts, lastErr)
}
