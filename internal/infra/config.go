package infra

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const developmentJWTSecret = "campusfund-development-secret"

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
	Port               string        `env:"PORT" envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	DBAutoMigrate      bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	DBMaxConns         int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns         int32         `env:"DB_MIN_CONNS" envDefault:"1"`
	DBConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	JWTSecret          string        `env:"JWT_SECRET"`
	TokenTTL           time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	DemoPassword       string        `env:"DEMO_PASSWORD" envDefault:"password"`
	StorageDir         string        `env:"STORAGE_DIR" envDefault:"./data/uploads"`
	StorageBaseURL     string        `env:"STORAGE_BASE_URL"`
	GeoIPDBPath        string        `env:"GEOIP_DB_PATH"`
	DefaultLocale      string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	PaymentDelay       time.Duration `env:"PAYMENT_DELAY" envDefault:"2s"`
	HTTPReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	RateLimitPerMin    int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)
	if strings.TrimSpace(cfg.StorageBaseURL) == "" {
		cfg.StorageBaseURL = fmt.Sprintf("http://localhost:%s/static", cfg.Port)
	}
	if _, err := url.Parse(cfg.StorageBaseURL); err != nil {
		return nil, fmt.Errorf("STORAGE_BASE_URL is invalid: %w", err)
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("JWT_SECRET is required")
		}
		cfg.JWTSecret = developmentJWTSecret
	}
	if cfg.PaymentDelay < 0 {
		return nil, errors.New("PAYMENT_DELAY must not be negative")
	}
	if cfg.DBMaxConns <= 0 || cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return nil, errors.New("DB_MIN_CONNS and DB_MAX_CONNS must satisfy 0 <= min <= max, max > 0")
	}
	if cfg.SweepInterval <= 0 {
		return nil, errors.New("SWEEP_INTERVAL must be positive")
	}
	if cfg.RateLimitPerMin <= 0 {
		return nil, errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// UsesPostgres reports whether a database is configured; otherwise the
// in-memory store is used.
func (c *Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
