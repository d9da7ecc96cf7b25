package config

import (
	"testing"
	"time"

	"github.com/templui/studytracker/internal/store"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"APP_ENV", "STORE_DRIVER", "STORE_TIMEOUT", "REDIS_DB", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Fatalf("expected development by default, got %q", cfg.AppEnv)
	}
	if cfg.StoreDriver != string(store.DriverFile) {
		t.Fatalf("expected file store by default, got %q", cfg.StoreDriver)
	}
	if cfg.StoreTimeout != 10*time.Second || cfg.Port != "8090" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORE_TIMEOUT", "bogus")
	t.Setenv("RESEND_API_KEY", "re_secret")

	cfg := Load()
	opts := cfg.StoreOptions()
	if opts.Driver != store.DriverRedis || opts.Redis.DB != 3 {
		t.Fatalf("unexpected store options %+v", opts)
	}
	if cfg.StoreTimeout != 10*time.Second {
		t.Fatalf("invalid durations fall back to the default, got %v", cfg.StoreTimeout)
	}

	safe := cfg.Sanitized()
	if safe.ResendAPIKey != "" || safe.S3SecretKey != "" {
		t.Fatalf("sanitized config leaks secrets")
	}
	if safe.StoreDriver != "redis" {
		t.Fatalf("sanitized config should keep public fields")
	}
}
