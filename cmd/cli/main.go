package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akeren/waitlist-api/config"
	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/pkg/migrations"
	"github.com/akeren/waitlist-api/pkg/utils"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		runMigrations(logger)
		return

	case "provision-admin":
		ProvisionAdmin(logger, args[1:])
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func runMigrations(logger *log.Logger) {
	db, err := config.NewDatabase(logger, nil)
	if err != nil {
		logger.Error("Failed to connect to database for migration", "error", err.Error())
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance for migration", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	migrationsDir := utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", "migrations")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := migrations.Config{
		Dir:     migrationsDir,
		Dialect: migrationDialect(),
		Logger:  logger,
	}

	if err := migrations.Up(ctx, sqlDB, cfg); err != nil {
		logger.Error("Database migration failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Database migrations completed")
}

func migrationDialect() string {
	url := strings.TrimSpace(os.Getenv("APP_DATABASE_URL"))

	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") || strings.Contains(url, "host=") {
		return migrations.DialectPostgres
	}

	return migrations.DialectSQLite
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate                                    Run database migrations and exit")
	fmt.Println("  provision-admin --email <e> --password <p> Create an admin account (refuses placeholder credentials)")
}
