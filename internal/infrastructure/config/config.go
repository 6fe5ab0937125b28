package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTLHours bounds the lifetime of issued bearer tokens. Expiry is
	// the only invalidation mechanism; rotating JWT_SECRET invalidates all
	// outstanding tokens at once.
	TokenTTLHours int `env:"TOKEN_TTL_HOURS, default=24"`

	// MinPasswordLen is a policy knob, not a hard rule. The portal has
	// historically accepted very short passwords.
	MinPasswordLen int `env:"MIN_PASSWORD_LEN, default=2"`

	// DocumentRoot is where application documents (CVs) are stored.
	DocumentRoot string `env:"DOCUMENT_ROOT, default=./uploads"`

	// Admin bootstrap credentials. Development falls back to fixed
	// defaults; production refuses to start without explicit values.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=job_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

const (
	devAdminEmail    = "admin@jobportal.local"
	devAdminPassword = "admin-dev-only"
)

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// validate enforces the settings that must not fall back to defaults.
// Admin credentials have development-only fallbacks; in production both
// they and the JWT secret are required, and startup fails loudly otherwise.
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}

	if c.AdminEmail == "" || c.AdminPassword == "" {
		if c.IsProduction() {
			return fmt.Errorf("config: ADMIN_EMAIL and ADMIN_PASSWORD are required in production")
		}
		if c.AdminEmail == "" {
			c.AdminEmail = devAdminEmail
		}
		if c.AdminPassword == "" {
			c.AdminPassword = devAdminPassword
		}
	}
	return nil
}
