package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

// Migrate creates the schema at startup if it does not exist yet. The
// uniqueness constraints and the cascading foreign key live here; they back
// the duplicate and one-mark-per-day rules under concurrent writers.
func Migrate(ctx context.Context, db *database.DB) error {
	slog.Info("running database migrations")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id BIGSERIAL PRIMARY KEY,
			employee_id VARCHAR(50) NOT NULL UNIQUE,
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			department VARCHAR(50) NOT NULL,
			hire_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			employee_id BIGINT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT attendance_employee_date_key UNIQUE (employee_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
