// Package app wires configuration, storage and usecases together so the API
// server and the CLI share one explicit open/close lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"employee-profile-backend/config"
	"employee-profile-backend/internal/domain"
	"employee-profile-backend/internal/repository/cache"
	"employee-profile-backend/internal/repository/postgres"
	"employee-profile-backend/internal/repository/sqlite"
	"employee-profile-backend/internal/usecase"
	"employee-profile-backend/pkg/audit"
	"employee-profile-backend/pkg/database"
	"employee-profile-backend/pkg/logger"
	pkgredis "employee-profile-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type App struct {
	Config      *config.Config
	FormOptions domain.FormOptions

	References  domain.ReferenceUsecase
	Submissions domain.SubmissionUsecase
	Imports     domain.ImportUsecase
	Health      usecase.HealthUsecase

	Redis *goredis.Client // nil when not configured

	auditor *audit.Logger
	closers []func()
}

// Open connects storage and builds every usecase. Close must be called on exit.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	options, err := config.LoadFormOptions(cfg.FormOptionsPath)
	if err != nil {
		return nil, err
	}
	a.FormOptions = options

	pingers := map[string]usecase.Pinger{}

	var (
		referenceRepo domain.ReferenceRepository
		employeeRepo  domain.EmployeeRepository
	)
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := database.EnsurePostgresSchema(ctx, pool); err != nil {
			a.Close()
			return nil, err
		}
		referenceRepo = postgres.NewReferenceRepository(pool)
		employeeRepo = postgres.NewEmployeeRepository(pool)
		pingers["database"] = usecase.PingFunc(pool.Ping)

	case config.DriverSQLite:
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		if err := database.EnsureSQLiteSchema(ctx, db); err != nil {
			a.Close()
			return nil, err
		}
		referenceRepo = sqlite.NewReferenceRepository(db)
		employeeRepo = sqlite.NewEmployeeRepository(db)
		pingers["database"] = usecase.PingFunc(db.PingContext)

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	rdb, err := pkgredis.NewClient(ctx, pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case err == nil:
		a.Redis = rdb
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		pingers["redis"] = usecase.PingFunc(func(ctx context.Context) error {
			return pkgredis.HealthCheck(ctx, rdb)
		})
	case errors.Is(err, pkgredis.ErrNotConfigured):
		logger.Log.Info("Redis not configured, reference cache is in-memory only")
	default:
		logger.Log.Warn("Redis unavailable, reference cache is in-memory only", "error", err)
	}

	if cfg.AuditLogEnabled {
		a.auditor = audit.NewProduction("employee-profile-backend", getEnvironment())
		a.closers = append(a.closers, func() { _ = a.auditor.Sync() })
	} else {
		a.auditor = audit.Nop()
	}

	refCache := cache.NewReferenceCache(a.Redis, time.Duration(cfg.ReferenceCacheTTLSeconds)*time.Second)
	a.References = usecase.NewReferenceUsecase(referenceRepo, refCache, a.auditor)

	validator := usecase.NewProfileValidator(newValidator(), options)
	assembler := usecase.NewProfileAssembler(a.References, options, time.Now)
	a.Submissions = usecase.NewSubmissionUsecase(validator, assembler, employeeRepo, a.auditor, options)
	a.Imports = usecase.NewImportUsecase(a.Submissions)
	a.Health = usecase.NewHealthUsecase(pingers)

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
