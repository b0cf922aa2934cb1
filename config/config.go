package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins []string

	Wallets       []WalletSeed
	SeedDemoEvent bool

	LedgerArchiveURL string
	Redis            RedisConfig
	SinkTimeout      time.Duration

	Email EmailConfig
}

// RedisConfig configures the optional ledger feed. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	MaxLen   int64
}

// EmailConfig configures purchase receipts.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

const defaultWalletSeed = "organizer:admin:0:organizer,alice:user:200:alice,bob:user:150:bob"

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LedgerArchiveURL: os.Getenv("LEDGER_ARCHIVE_URL"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			Key:      os.Getenv("LEDGER_FEED_KEY"),
		},
		Email: EmailConfig{
			Provider:           getEnv("EMAIL_PROVIDER", "noop"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           getEnv("EMAIL_FROM_NAME", "FairTix"),
			AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.JWTSecret == "" {
		if env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}

	var err error
	if cfg.JWTExpiry, err = getDuration("JWT_EXPIRY", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SinkTimeout, err = getDuration("LEDGER_SINK_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.SeedDemoEvent, err = getBool("SEED_DEMO_EVENT", env != "production"); err != nil {
		return nil, err
	}
	if cfg.Email.InsecureSkipVerify, err = getBool("EMAIL_SES_INSECURE_SKIP_VERIFY", false); err != nil {
		return nil, err
	}
	if s := os.Getenv("REDIS_DB"); s != "" {
		if cfg.Redis.DB, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("REDIS_DB: %w", err)
		}
	}
	if s := os.Getenv("LEDGER_FEED_MAXLEN"); s != "" {
		if cfg.Redis.MaxLen, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, fmt.Errorf("LEDGER_FEED_MAXLEN: %w", err)
		}
	}
	if cfg.Wallets, err = ParseWalletSeed(getEnv("WALLET_SEED", defaultWalletSeed)); err != nil {
		return nil, fmt.Errorf("WALLET_SEED: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
