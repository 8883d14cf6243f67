package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"employee-profile-backend/pkg/logger"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection opens (creating if needed) a local database file.
func NewSQLiteConnection(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// single writer; keeps "database is locked" out of the request path
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Info("Database connection established", "driver", "sqlite", "path", path)
	return db, nil
}

func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range ReferenceTables {
		stmt := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, table)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}

	if _, err := db.ExecContext(ctx, sqliteEmployeesTable); err != nil {
		return fmt.Errorf("failed to create table employees: %w", err)
	}
	return nil
}

// Reference id lists are stored as JSON arrays of uuid strings.
const sqliteEmployeesTable = `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		industry_id TEXT NOT NULL REFERENCES industries(id),
		designation_id TEXT NOT NULL REFERENCES designations(id),
		address_id TEXT NOT NULL REFERENCES locations(id),
		contact TEXT NOT NULL,
		current_salary REAL NOT NULL DEFAULT 0,
		min_expected_salary REAL NOT NULL DEFAULT 0,
		max_expected_salary REAL NOT NULL DEFAULT 0,
		about TEXT NOT NULL DEFAULT '',
		salary_type TEXT NOT NULL DEFAULT '',
		date_of_birth DATETIME,
		salary_currency TEXT NOT NULL DEFAULT '',
		seeking_job_type TEXT NOT NULL DEFAULT '',
		seeking_range INTEGER NOT NULL DEFAULT 0,
		is_radar INTEGER NOT NULL DEFAULT 0,
		gender TEXT NOT NULL DEFAULT '',
		slogan TEXT NOT NULL DEFAULT '',
		joining_timeframe TEXT NOT NULL DEFAULT '',
		required_skills TEXT NOT NULL DEFAULT '[]',
		verified_skills TEXT NOT NULL DEFAULT '[]',
		certifications TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`
