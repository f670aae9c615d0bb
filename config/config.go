package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, populated from the environment.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	DevMode bool   `envconfig:"DEV_MODE" default:"false"`

	// DatabaseURL takes precedence over the individual DB_* settings when
	// set (hosted platforms usually provide a single connection string).
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	DBSSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`

	JWTSecret           string `envconfig:"JWT_SECRET_KEY" required:"true"`
	JWTAccessExpirySec  int    `envconfig:"JWT_ACCESS_TOKEN_EXPIRES" default:"3600"`
	JWTRefreshExpirySec int    `envconfig:"JWT_REFRESH_TOKEN_EXPIRES" default:"2592000"`

	// AdminUsername/AdminPassword/AdminEmail create a bootstrap admin
	// account on startup when all three are set.
	AdminUsername string `envconfig:"ADMIN_USERNAME"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`

	// GoogleCredentials is the path to a Service Account JSON file; only
	// needed for the Drive PDF import endpoint.
	GoogleCredentials string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// ConnString builds the Postgres connection string.
func (c *Config) ConnString() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		return "", fmt.Errorf("database connection variables not set: set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode), nil
}
