package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultConfigPath = "config/config.yaml"
	defaultAddress    = ":4001"
	defaultDriver     = "sqlite3"
	defaultURL        = "file:compatron.db?_foreign_keys=on"
	defaultPrecision  = 4
	defaultTokenTTL   = 7 * 24 * time.Hour
	defaultCurrency   = "USD"
	defaultChannel    = "compatron:events"
)

type Config struct {
	Server struct {
		Address     string   `yaml:"address"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Database struct {
		// Driver is mysql, pgx or sqlite3. MySQL URLs need parseTime=true.
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		TokenTTLHours int    `yaml:"token_ttl_hours"`
	} `yaml:"auth"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Channel  string `yaml:"channel"`
	} `yaml:"redis"`
	Pricing struct {
		UnitPricePrecision *int   `yaml:"unit_price_precision"`
		Currency           string `yaml:"currency"`
	} `yaml:"pricing"`
}

// TokenTTL is the session token lifetime.
func (c Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLHours <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}

// Precision is the number of decimals kept for stored unit prices.
func (c Config) Precision() int32 {
	if c.Pricing.UnitPricePrecision == nil {
		return defaultPrecision
	}
	return int32(*c.Pricing.UnitPricePrecision)
}

// LoadConfig reads the YAML file named by CONFIG_PATH, applies environment
// overrides and defaults, and validates the result. A missing file is not an error.
func LoadConfig() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Address = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		cfg.Pricing.Currency = v
	}

	if v, err := readIntEnv("TOKEN_TTL_HOURS"); err != nil {
		return fmt.Errorf("parse TOKEN_TTL_HOURS: %w", err)
	} else if v != nil {
		cfg.Auth.TokenTTLHours = *v
	}

	if v, err := readIntEnv("UNIT_PRICE_PRECISION"); err != nil {
		return fmt.Errorf("parse UNIT_PRICE_PRECISION: %w", err)
	} else if v != nil {
		cfg.Pricing.UnitPricePrecision = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaultAddress
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = defaultDriver
	}
	if cfg.Database.URL == "" && cfg.Database.Driver == defaultDriver {
		cfg.Database.URL = defaultURL
	}
	if cfg.Pricing.Currency == "" {
		cfg.Pricing.Currency = defaultCurrency
	}
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = defaultChannel
	}
}

func (c Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database url is required for driver %s", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if p := c.Precision(); p < 0 || p > 10 {
		return fmt.Errorf("unit price precision must be between 0 and 10, got %d", p)
	}
	if c.Auth.TokenTTLHours < 0 {
		return errors.New("token ttl must not be negative")
	}
	return nil
}

func readIntEnv(name string) (*int, error) {
	val := os.Getenv(name)
	if val == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
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
