package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employee-profile-backend/config"
	"employee-profile-backend/internal/app"
	v1 "employee-profile-backend/internal/delivery/http/v1"
	"employee-profile-backend/pkg/logger"
)

// @title           Employee Profile API
// @version         1.0
// @description     Collects employee profiles and normalizes reference values.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting employee profile backend", "port", cfg.Port, "driver", cfg.DBDriver)

	// 3. Open storage, cache and usecases
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	application, err := app.Open(startCtx, cfg)
	cancelStart()
	if err != nil {
		logger.Log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	// 4. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ReferenceUC:  application.References,
		SubmissionUC: application.Submissions,
		ImportUC:     application.Imports,
		HealthUC:     application.Health,
		Redis:        application.Redis,
		Config:       cfg,
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
