package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/Simplici0/netpay/internal/logging"
)

const (
	defaultPort           = "8080"
	defaultEnvironment    = "development"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultCurrencySymbol = "Php"
)

var log = logrus.WithField("module", "config")

// Config holds application configuration sourced from an optional YAML file
// and environment variables.
type Config struct {
	Port           string   `yaml:"port"`
	Environment    string   `yaml:"environment"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	CurrencySymbol string   `yaml:"currency_symbol"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads .env, the file named by CONFIG_FILE if any, and environment
// variables, in increasing order of precedence.
func Load() (Config, error) {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		log.Warnf("ignoring .env: %v", err)
	}

	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		var err error
		if cfg, err = readFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port, defaultPort)
	cfg.Environment = getEnv("APP_ENV", cfg.Environment, defaultEnvironment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel, defaultLogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat, defaultLogFormat)
	cfg.CurrencySymbol = getEnv("CURRENCY_SYMBOL", cfg.CurrencySymbol, defaultCurrencySymbol)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	if len(cfg.AllowedOrigins) == 0 && cfg.IsDev() {
		cfg.AllowedOrigins = []string{"http://localhost:" + cfg.Port}
	}

	return cfg, nil
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// IsDev reports whether the application runs in development mode.
func (c Config) IsDev() bool {
	return c.Environment == defaultEnvironment
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Validate checks the values Load could not default.
func (c Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Port)
	}
	if !lo.HasKey(logging.Levels, c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of %v, got %q", lo.Keys(logging.Levels), c.LogLevel)
	}
	if !lo.HasKey(logging.Formatters, c.LogFormat) {
		return fmt.Errorf("LOG_FORMAT must be one of %v, got %q", lo.Keys(logging.Formatters), c.LogFormat)
	}
	if strings.TrimSpace(c.CurrencySymbol) == "" {
		return fmt.Errorf("CURRENCY_SYMBOL must not be empty")
	}
	return nil
}

func getEnv(key, current, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if current != "" {
		return current
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
