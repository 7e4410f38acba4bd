package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSourceURL is the spreadsheet export of the shared rank sheet
const DefaultSourceURL = "https://docs.google.com/spreadsheets/d/1SGlbyY0QXOT0HxOel4KKnRyI6bTgp73B/export?format=xlsx"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Source struct {
		URL     string `yaml:"url" env:"SOURCE_URL"`
		Timeout string `yaml:"timeout" env:"SOURCE_TIMEOUT"`
	} `yaml:"source"`

	Results struct {
		TTL        string `yaml:"ttl" env:"RESULTS_TTL"`
		MaxEntries int    `yaml:"max_entries" env:"RESULTS_MAX_ENTRIES"`
	} `yaml:"results"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// EnvOverrides lists the environment variables applied on top of the file
	EnvOverrides []string `yaml:"-"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and env vars still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applied, err := processStructFields(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	config.EnvOverrides = applied

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Source.URL = DefaultSourceURL
	config.Source.Timeout = "30s"

	config.Results.TTL = "30m"
	config.Results.MaxEntries = 256

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	u, err := url.Parse(config.Source.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("source url %q is not an absolute URL", config.Source.URL)
	}

	if _, err := time.ParseDuration(config.Source.Timeout); err != nil {
		return fmt.Errorf("invalid source timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Results.TTL); err != nil {
		return fmt.Errorf("invalid results ttl format: %w", err)
	}

	if config.Results.MaxEntries < 0 {
		return fmt.Errorf("results max_entries must not be negative")
	}

	return nil
}

// SourceTimeout returns the download timeout for the rank sheet
func (c *Config) SourceTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Source.Timeout)
	return d
}

// ResultTTL returns how long filter results stay downloadable
func (c *Config) ResultTTL() time.Duration {
	d, _ := time.ParseDuration(c.Results.TTL)
	return d
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
