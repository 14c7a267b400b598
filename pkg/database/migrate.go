package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/creditapp/creditapp-api/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const initSchemaFile = "000001_init_schema.up.sql"

// RunMigrations applies all pending migrations at startup. When the
// migration history cannot be used (first run against an ad-hoc database,
// dirty state), it falls back to creating the schema directly from the
// embedded DDL. A failure of the fallback is fatal to startup and is
// returned to the caller.
func RunMigrations(ctx context.Context, databaseURL string, logger *slog.Logger) error {
	// A separate database/sql connection, compatible with the main pgx pool.
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	if err := migrateUp(db); err != nil {
		logger.Warn("Migration failed, falling back to direct schema creation", slog.String("error", err.Error()))
		return createSchemaDirect(ctx, db)
	}
	logger.Info("Database migrations applied.")
	return nil
}

func migrateUp(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance: %w", err)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("could not load embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}
	return nil
}

// createSchemaDirect executes the embedded initial DDL. The statements are
// idempotent (CREATE ... IF NOT EXISTS), so running them against a
// partially created database is safe.
func createSchemaDirect(ctx context.Context, db *sql.DB) error {
	ddl, err := migrations.FS.ReadFile(initSchemaFile)
	if err != nil {
		return fmt.Errorf("could not read embedded schema DDL: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
		return fmt.Errorf("direct schema creation failed: %w", err)
	}
	return nil
}
