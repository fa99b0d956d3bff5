package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/akeren/waitlist-api/config"
	"github.com/akeren/waitlist-api/domain/admin"
	"github.com/akeren/waitlist-api/internal/log"
	"github.com/akeren/waitlist-api/internal/models"
)

// ProvisionAdmin creates an admin account and records the digest of the
// configured admin API key. There is deliberately no default credential:
// omitting --email or --password, or supplying a placeholder password,
// fails provisioning.
func ProvisionAdmin(logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("provision-admin", flag.ExitOnError)
	email := fs.String("email", "", "admin account email (required)")
	password := fs.String("password", "", "admin account password (required, no default)")
	keyLabel := fs.String("key-label", "initial", "label recorded with the admin API key digest")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "provision-admin requires --email and --password; defaults are not provided on purpose")
		os.Exit(1)
	}

	keyDigest, err := config.LoadAdminAPIKeyDigest()
	if err != nil {
		logger.Error("Admin API key validation failed", "error", err.Error())
		os.Exit(1)
	}

	db, err := config.NewDatabase(logger, nil)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer config.CloseDatabase(db, logger)

	if err := config.AutoMigrate(logger, db, &models.AdminUser{}, &models.AdminKey{}); err != nil {
		os.Exit(1)
	}

	service := admin.NewAdminService(logger, admin.NewAdminRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := service.ProvisionAdmin(ctx, *email, *password); err != nil {
		logger.Error("Admin provisioning failed", "error", err.Error())
		os.Exit(1)
	}

	if err := service.RecordKeyDigest(ctx, hex.EncodeToString(keyDigest[:]), *keyLabel); err != nil {
		logger.Error("Failed to record admin key digest", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Admin account provisioned successfully", "email", *email)
}
