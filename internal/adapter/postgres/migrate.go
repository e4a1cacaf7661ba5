package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/griederer/ai-visualization-gallery/migrations"
)

// Migrate applies all pending goose migrations. goose needs a *sql.DB, so a
// short-lived stdlib connection is opened next to the pgx pool.
//
// goose.NewProvider handles the $$-delimited PL/pgSQL in the notify trigger
// migration; the legacy goose.Up path splits statements on semicolons and
// would break it.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
