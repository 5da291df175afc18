// Package config loads application configuration from an optional YAML file
// with an environment variable overlay. Environment variables use the
// PORTFOLIO prefix and take precedence over file values.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables (PORTFOLIO_SERVER_PORT, ...).
const envPrefix = "PORTFOLIO"

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Source   SourceConfig   `yaml:"source" envconfig:"SOURCE"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// SecurityConfig contains CORS and rate limiting configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"min=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=0"`
}

// Source modes
const (
	SourceModeGoogle   = "google"
	SourceModeWorkbook = "workbook"
)

// SourceConfig selects and parameterizes the sheet source. Mode "google"
// reads the live spreadsheet, "workbook" reads a local .xlsx snapshot.
type SourceConfig struct {
	Mode          string        `yaml:"mode" envconfig:"MODE" validate:"oneof=google workbook"`
	SpreadsheetID string        `yaml:"spreadsheet_id" envconfig:"SPREADSHEET_ID" validate:"required_if=Mode google"`
	APIKey        string        `yaml:"api_key" envconfig:"API_KEY" validate:"required_if=Mode google"`
	WorkbookPath  string        `yaml:"workbook_path" envconfig:"WORKBOOK_PATH" validate:"required_if=Mode workbook"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT"`
	FetchRPS      float64       `yaml:"fetch_rps" envconfig:"FETCH_RPS" validate:"min=1"`
	KeyColumn     string        `yaml:"key_column" envconfig:"KEY_COLUMN" validate:"required"`
	RecentTests   int           `yaml:"recent_tests" envconfig:"RECENT_TESTS" validate:"min=1"`
}

// Load loads configuration from an optional config.yaml in the working
// directory plus the environment.
func Load() (*Config, error) {
	return LoadFrom("config.yaml")
}

// LoadFrom loads configuration with an explicit config file path. A missing
// file is not an error; environment variables still apply. Precedence is
// environment > file > built-in defaults.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills any field neither the file nor the environment set.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/portfolio.log"
	}
	if len(c.Security.AllowedOrigins) == 0 {
		c.Security.AllowedOrigins = []string{"*"}
	}
	if c.Security.RateLimit.RPS == 0 {
		c.Security.RateLimit.RPS = 50
	}
	if c.Security.RateLimit.Burst == 0 {
		c.Security.RateLimit.Burst = 25
	}
	if c.Source.Mode == "" {
		c.Source.Mode = SourceModeGoogle
	}
	if c.Source.FetchTimeout == 0 {
		c.Source.FetchTimeout = 10 * time.Second
	}
	if c.Source.FetchRPS == 0 {
		c.Source.FetchRPS = 5
	}
	if c.Source.KeyColumn == "" {
		c.Source.KeyColumn = "admission_no"
	}
	if c.Source.RecentTests == 0 {
		c.Source.RecentTests = 5
	}
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
