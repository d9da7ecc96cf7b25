package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/templui/studytracker/internal/store"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	ContentPath string // Optional: overrides the embedded help pages

	// Store (memory, file, sqlite, pgx, redis or s3; default: file)
	StoreDriver  string
	StorePath    string
	StoreTimeout time.Duration
	DBConnection string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// S3 (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services

	// Email (goal completion notifications, optional)
	EmailFrom    string
	ResendAPIKey string
	NotifyEmail  string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Study Tracker"),
		AppEnv:      envString("APP_ENV", "development"),
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", ""),

		// Store
		StoreDriver:  envString("STORE_DRIVER", string(store.DriverFile)),
		StorePath:    envString("STORE_PATH", "./data"),
		StoreTimeout: envDuration("STORE_TIMEOUT", 10*time.Second),
		DBConnection: envString("DB_CONNECTION", "./data/studytracker.db?_pragma=journal_mode(WAL)"),

		// Redis
		RedisAddr:     envString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: envString("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		// S3
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		NotifyEmail:  envString("NOTIFY_EMAIL", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction checks the settings that only have development
// fallbacks. Development logs emails instead of sending them.
func validateProduction(cfg *Config) {
	cfg.AppURL = envRequired("APP_URL")

	if cfg.NotifyEmail != "" && cfg.ResendAPIKey == "" {
		slog.Error("NOTIFY_EMAIL requires RESEND_API_KEY in production",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}

	if cfg.StoreDriver == string(store.DriverS3) && cfg.S3Bucket == "" {
		slog.Error("STORE_DRIVER=s3 requires S3_BUCKET")
		os.Exit(1)
	}
}

// StoreOptions maps the config onto the store factory.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Driver:       store.Driver(c.StoreDriver),
		Path:         c.StorePath,
		DBConnection: c.DBConnection,
		Redis: store.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
		S3: store.S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
			Timeout:   c.StoreTimeout,
		},
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:     c.AppName,
		AppEnv:      c.AppEnv,
		AppURL:      c.AppURL,
		Port:        c.Port,
		StoreDriver: c.StoreDriver,
	}
}
