package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/akeren/waitlist-api/internal/log"
	"github.com/joho/godotenv"
)

const AppEnvKey = "APP_ENV"

func InitializeEnvFile(logger *log.Logger) {
	logger.Info("Initializing environment variables from .env file if present")

	// Use explicit environment variable instead of fragile binary name detection
	if os.Getenv("SKIP_DOTENV") == "true" {
		logger.Info("Skipping .env file load (SKIP_DOTENV=true)")
		return
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found or failed to load it", "error", err.Error())
		return
	}

	logger.Info("Environment variables loaded from .env file successfully")
}

func GetValueFromEnvironmentVariable(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func GetAppEnv() string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(AppEnvKey)))
}

func ValidateAutoMigrateAllowed(appEnv string) error {
	env := strings.ToLower(strings.TrimSpace(appEnv))

	switch env {
	case "", "dev", "development", "local", "test", "testing":
		return nil
	default:
		return fmt.Errorf("--auto-migrate is not allowed when %s=%q (allowed: \"\", dev, development, local, test, testing)", AppEnvKey, env)
	}
}

const AdminAPIKeyEnv = "ADMIN_API_KEY"

// placeholderSecrets are credentials known to ship in setup scripts and
// examples. Refusing them at startup keeps a default key out of production.
var placeholderSecrets = map[string]bool{
	"admin123":  true,
	"changeme":  true,
	"change-me": true,
	"password":  true,
	"secret":    true,
	"test":      true,
}

// LoadAdminAPIKeyDigest reads ADMIN_API_KEY and returns its SHA-256
// digest. Startup must fail when the key is absent, too short, or a known
// placeholder; the plaintext key is not retained.
func LoadAdminAPIKeyDigest() ([sha256.Size]byte, error) {
	key := strings.TrimSpace(os.Getenv(AdminAPIKeyEnv))

	if key == "" {
		return [sha256.Size]byte{}, fmt.Errorf("%s is required", AdminAPIKeyEnv)
	}

	if placeholderSecrets[strings.ToLower(key)] {
		return [sha256.Size]byte{}, fmt.Errorf("%s is set to a placeholder value; provision a real key", AdminAPIKeyEnv)
	}

	if len(key) < 16 {
		return [sha256.Size]byte{}, fmt.Errorf("%s must be at least 16 characters", AdminAPIKeyEnv)
	}

	return sha256.Sum256([]byte(key)), nil
}
