package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/alpereneser/connectlist-sub003/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// Migrations are embedded so the binary carries its own schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// versionTable stores the applied migration version.
const versionTable = "schema_version"

// Migrate runs database migrations up to the latest version using jackc/tern.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	return MigrateTo(ctx, logger, cfg, -1)
}

// MigrateTo migrates to target. A negative target means the latest version,
// zero rolls everything back.
func MigrateTo(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, target int32) error {
	conn, err := pgx.Connect(ctx, DSN(cfg))
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	latest := int32(len(m.Migrations))
	if target < 0 || target > latest {
		target = latest
	}

	if from == target {
		logger.Info().Msgf("database schema up to date, version %d", target)
		return nil
	}

	if err := m.MigrateTo(ctx, target); err != nil {
		return fmt.Errorf("migrating database from %d to %d: %w", from, target, err)
	}

	logger.Info().Msgf("migrated database schema, from %d to %d", from, target)
	return nil
}
