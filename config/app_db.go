package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/akeren/waitlist-api/internal/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// NewDatabase opens the store named by APP_DATABASE_URL. Postgres URLs and
// key=value DSNs use the postgres driver; sqlite paths and hosted-sqlite
// URLs (sqlite://, libsql://, file:) use the sqlite driver, with
// APP_DATABASE_AUTH_TOKEN appended as the authToken query parameter.
func NewDatabase(logger *log.Logger, cfg *DBConfig) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &DBConfig{
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Minute,
		}
	}

	appDatabaseURL := sanitizeEnv(GetValueFromEnvironmentVariable("APP_DATABASE_URL", ""))
	if appDatabaseURL == "" {
		logger.Error("APP_DATABASE_URL is not set")
		return nil, fmt.Errorf("APP_DATABASE_URL is required")
	}

	dialector, err := openDialector(appDatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("Failed to get database instance", "error", err)
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("Database ping failed", "error", err)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("Database connection established successfully")
	return gdb, nil
}

func openDialector(rawURL string, logger *log.Logger) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(rawURL, "postgres://"),
		strings.HasPrefix(rawURL, "postgresql://"),
		strings.Contains(rawURL, "host="):
		logger.Info("Using postgres driver for APP_DATABASE_URL")
		return postgres.Open(rawURL), nil

	case strings.HasPrefix(rawURL, "sqlite://"),
		strings.HasPrefix(rawURL, "libsql://"),
		strings.HasPrefix(rawURL, "file:"),
		strings.HasSuffix(rawURL, ".db"),
		rawURL == ":memory:":
		dsn, err := sqliteDSN(rawURL)
		if err != nil {
			logger.Error("Invalid sqlite database URL", "error", err)
			return nil, err
		}
		logger.Info("Using sqlite driver for APP_DATABASE_URL")
		return sqlite.Open(dsn), nil

	default:
		logger.Error("Unrecognized database URL scheme")
		return nil, fmt.Errorf("unrecognized APP_DATABASE_URL scheme")
	}
}

func sqliteDSN(rawURL string) (string, error) {
	dsn := rawURL

	dsn = strings.TrimPrefix(dsn, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "libsql://")

	token := sanitizeEnv(GetValueFromEnvironmentVariable("APP_DATABASE_AUTH_TOKEN", ""))
	if token == "" {
		return dsn, nil
	}

	// Hosted sqlite services authenticate via an authToken query parameter.
	if strings.Contains(dsn, "?") {
		return dsn + "&authToken=" + url.QueryEscape(token), nil
	}
	return dsn + "?authToken=" + url.QueryEscape(token), nil
}

func sanitizeEnv(v string) string {
	s := strings.TrimSpace(v)

	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	return s
}

func AutoMigrate(logger *log.Logger, db *gorm.DB, models ...interface{}) error {
	if db == nil {
		logger.Error("Cannot migrate: db is empty")
		return fmt.Errorf("cannot migrate: db is empty")
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Database migration failed", "error", err)
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Info("Database migration completed successfully")

	return nil
}

func CloseDatabase(db *gorm.DB, logger *log.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	} else {
		logger.Info("Database closed successfully")
	}
}
