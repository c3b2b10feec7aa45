package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Ephemeris EphemerisConfig `yaml:"ephemeris"`
	Users     UsersConfig     `yaml:"users"`
	Daily     DailyConfig     `yaml:"daily"`
	Content   ContentConfig   `yaml:"content"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// EphemerisConfig contains the upstream ephemeris API settings.
type EphemerisConfig struct {
	AppID   string `yaml:"appId"`
	Secret  string `yaml:"secret"`
	BaseURL string `yaml:"baseUrl"`
}

// UsersConfig contains DSN and pooling settings for the user store.
type UsersConfig struct {
	PostgresDSN string `yaml:"postgresDsn"`
	MaxConns    int32  `yaml:"maxConns"`
	MinConns    int32  `yaml:"minConns"`
}

// DailyConfig controls the daily-result cache store.
type DailyConfig struct {
	ValkeyEnabled bool          `yaml:"valkeyEnabled"`
	ValkeyAddr    string        `yaml:"valkeyAddr"`
	KeyPrefix     string        `yaml:"keyPrefix"`
	TTL           time.Duration `yaml:"ttl"`
}

// ContentConfig locates the content list files.
type ContentConfig struct {
	ListDir string `yaml:"listDir"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("EPHEMERIS_APP_ID"); v != "" {
		cfg.Ephemeris.AppID = v
	}
	if v := os.Getenv("EPHEMERIS_SECRET"); v != "" {
		cfg.Ephemeris.Secret = v
	}
	if v := os.Getenv("EPHEMERIS_BASE_URL"); v != "" {
		cfg.Ephemeris.BaseURL = v
	}
	if v := os.Getenv("USERS_POSTGRES_DSN"); v != "" {
		cfg.Users.PostgresDSN = v
	}
	if v := os.Getenv("USERS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Users.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("USERS_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Users.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("DAILY_VALKEY_ENABLED"); v != "" {
		cfg.Daily.ValkeyEnabled = isTruthy(v)
	}
	if v := os.Getenv("DAILY_VALKEY_ADDR"); v != "" {
		cfg.Daily.ValkeyAddr = v
	}
	if v := os.Getenv("DAILY_KEY_PREFIX"); v != "" {
		cfg.Daily.KeyPrefix = v
	}
	if v := os.Getenv("DAILY_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Daily.TTL = parsed
		}
	}
	if v := os.Getenv("CONTENT_LIST_DIR"); v != "" {
		cfg.Content.ListDir = v
	}
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Ephemeris: EphemerisConfig{
			BaseURL: "https://api.astronomyapi.com/api/v2",
		},
		Users: UsersConfig{
			MaxConns: 4,
			MinConns: 0,
		},
		Daily: DailyConfig{
			KeyPrefix: "daily",
		},
		Content: ContentConfig{
			ListDir: "configs/lists",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Ephemeris.BaseURL == "" {
		return errors.New("ephemeris.baseUrl cannot be empty")
	}
	if c.Daily.ValkeyEnabled && c.Daily.ValkeyAddr == "" {
		return errors.New("daily.valkeyAddr required when valkey is enabled")
	}
	return nil
}
