package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is the development signing secret. Running with it is
// allowed but logged as a deployment warning.
const DefaultJWTSecret = "shhh"

// Config holds the process-wide settings. It is read once at startup and
// never mutated afterwards.
type Config struct {
	AppPort     string
	DBDriver    string
	DatabaseDSN string
	DBReset     bool
	SeedData    bool
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	RabbitMQURL string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "postgres://localhost/reviewhub?sslmode=disable")
	v.SetDefault("DB_RESET", true)
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("TOKEN_TTL", "0s") // no expiry
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("RABBITMQ_URL", "")
}

// Load reads an optional .env file, then the environment, and validates the
// result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:     v.GetString("APP_PORT"),
		DBDriver:    v.GetString("DB_DRIVER"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		DBReset:     v.GetBool("DB_RESET"),
		SeedData:    v.GetBool("SEED_DATA"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		TokenTTL:    v.GetDuration("TOKEN_TTL"),
		BcryptCost:  v.GetInt("BCRYPT_COST"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("TOKEN_TTL must not be negative, got %s", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with the development
// secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// WarnInsecureDefaults logs deployment warnings for settings that must be
// operator-supplied in production.
func (c *Config) WarnInsecureDefaults() {
	if c.UsesDefaultSecret() {
		log.Printf("Warning: JWT_SECRET is the default %q. If deployed, set JWT_SECRET to something else.", DefaultJWTSecret)
	}
}
