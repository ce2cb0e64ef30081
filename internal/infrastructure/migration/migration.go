package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations brings the analytics schema up to date on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists every migration in the order it is applied.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_resume_analytics", Up: createResumeAnalytics},
		{Name: "add_created_at_to_resume_analytics", Up: addCreatedAt},
		{Name: "index_resume_analytics_usage", Up: indexUsage},
	}
}

func createResumeAnalytics(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_analytics (
			id           BIGSERIAL PRIMARY KEY,
			user_id      BIGINT NOT NULL,
			title        TEXT NOT NULL,
			template     TEXT NOT NULL,
			color_scheme TEXT NOT NULL,
			data         JSONB NOT NULL
		);
	`)
	return err
}

// addCreatedAt adds the created_at column if it doesn't exist
func addCreatedAt(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE resume_analytics
		ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT now();
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		// the column may already exist
		slog.Warn("Error adding created_at column (may already exist)", "error", err)
		return nil
	}
	return nil
}

func indexUsage(ctx context.Context, pool *pgxpool.Pool) error {
	for _, q := range []string{
		`CREATE INDEX IF NOT EXISTS resume_analytics_template_idx ON resume_analytics (template);`,
		`CREATE INDEX IF NOT EXISTS resume_analytics_color_idx ON resume_analytics (color_scheme);`,
	} {
		if _, err := pool.Exec(ctx, q); err != nil {
			slog.Warn("Error creating usage index", "error", err)
		}
	}
	return nil
}
