package config

import "testing"

func TestValidateAutoMigrateAllowed_AllowsDevLikeEnvs(t *testing.T) {
	allowed := []string{"", "dev", "development", "local", "test", "testing", "DEV", "  Local  "}

	for _, env := range allowed {
		env := env
		t.Run(env, func(t *testing.T) {
			if err := ValidateAutoMigrateAllowed(env); err != nil {
				t.Fatalf("expected no error for env %q, got %v", env, err)
			}
		})
	}
}

func TestValidateAutoMigrateAllowed_RejectsProdAndOtherEnvs(t *testing.T) {
	rejected := []string{"prod", "production", "staging", "preprod", " Production ", "qa"}

	for _, env := range rejected {
		env := env
		t.Run(env, func(t *testing.T) {
			if err := ValidateAutoMigrateAllowed(env); err == nil {
				t.Fatalf("expected error for env %q, got nil", env)
			}
		})
	}
}

func TestLoadAdminAPIKeyDigest_RequiresKey(t *testing.T) {
	t.Setenv(AdminAPIKeyEnv, "")

	if _, err := LoadAdminAPIKeyDigest(); err == nil {
		t.Fatal("expected error for missing admin API key, got nil")
	}
}

func TestLoadAdminAPIKeyDigest_RejectsPlaceholders(t *testing.T) {
	placeholders := []string{"admin123", "changeme", "Change-Me", "SECRET"}

	for _, key := range placeholders {
		key := key
		t.Run(key, func(t *testing.T) {
			t.Setenv(AdminAPIKeyEnv, key)

			if _, err := LoadAdminAPIKeyDigest(); err == nil {
				t.Fatalf("expected error for placeholder key %q, got nil", key)
			}
		})
	}
}

func TestLoadAdminAPIKeyDigest_RejectsShortKeys(t *testing.T) {
	t.Setenv(AdminAPIKeyEnv, "short-key-123")

	if _, err := LoadAdminAPIKeyDigest(); err == nil {
		t.Fatal("expected error for short admin API key, got nil")
	}
}

func TestLoadAdminAPIKeyDigest_AcceptsRealKeys(t *testing.T) {
	t.Setenv(AdminAPIKeyEnv, "a-real-admin-key-7f3c91d2")

	digest, err := LoadAdminAPIKeyDigest()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var zero [32]byte
	if digest == zero {
		t.Fatal("expected a non-zero digest")
	}
}
