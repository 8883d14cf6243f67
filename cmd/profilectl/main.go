// Package main provides profilectl, a command line front end for the profile intake core.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"employee-profile-backend/config"
	"employee-profile-backend/internal/app"
	"employee-profile-backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDriver string
	flagSQLite string
)

var rootCmd = &cobra.Command{
	Use:           "profilectl",
	Short:         "Employee profile intake from the command line",
	Long:          "profilectl submits employee profiles, resolves reference values and imports workbooks using the same storage as the API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "storage driver override (postgres|sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagSQLite, "sqlite", "", "sqlite file override")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openApp loads config, applies flag overrides and opens the application.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flagDriver != "" {
		cfg.DBDriver = flagDriver
	}
	if flagSQLite != "" {
		cfg.SQLitePath = flagSQLite
	}
	logger.Init(cfg.LogLevel)

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return app.Open(openCtx, cfg)
}
