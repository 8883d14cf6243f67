package database

import (
	"context"
	"fmt"
	"time"

	"employee-profile-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPostgresConnection(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	// Keeps pgbouncer in transaction mode from failing on "prepared statement already exists"
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Log.Info("Database connection established", "driver", "postgres")
	return pool, nil
}

// EnsurePostgresSchema creates the reference and employee tables when missing.
// Every reference table carries a UNIQUE name, which is what makes get-or-create atomic.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range ReferenceTables {
		stmt := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name TEXT NOT NULL UNIQUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, table)
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}

	if _, err := pool.Exec(ctx, postgresEmployeesTable); err != nil {
		return fmt.Errorf("failed to create table employees: %w", err)
	}
	return nil
}

const postgresEmployeesTable = `
	CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		industry_id UUID NOT NULL REFERENCES industries(id),
		designation_id UUID NOT NULL REFERENCES designations(id),
		address_id UUID NOT NULL REFERENCES locations(id),
		contact TEXT NOT NULL,
		current_salary DOUBLE PRECISION NOT NULL DEFAULT 0,
		min_expected_salary DOUBLE PRECISION NOT NULL DEFAULT 0,
		max_expected_salary DOUBLE PRECISION NOT NULL DEFAULT 0,
		about TEXT NOT NULL DEFAULT '',
		salary_type TEXT NOT NULL DEFAULT '',
		date_of_birth TIMESTAMPTZ,
		salary_currency TEXT NOT NULL DEFAULT '',
		seeking_job_type TEXT NOT NULL DEFAULT '',
		seeking_range INTEGER NOT NULL DEFAULT 0,
		is_radar BOOLEAN NOT NULL DEFAULT FALSE,
		gender TEXT NOT NULL DEFAULT '',
		slogan TEXT NOT NULL DEFAULT '',
		joining_timeframe TEXT NOT NULL DEFAULT '',
		required_skills UUID[] NOT NULL DEFAULT '{}',
		verified_skills UUID[] NOT NULL DEFAULT '{}',
		certifications UUID[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
