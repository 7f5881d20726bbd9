package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frbhusen/EPay-Store/pkg/database"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the catalog schema migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	return database.RunMigrations(ctx, pool, sub, logger)
}
