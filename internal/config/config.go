// Package config provides configuration management for the gcp-project-cleanup CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config structs.
// Configuration sources are resolved in this order: flags > env > config file > defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/gcp-project-cleanup/internal/logging"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "GCP_PROJECT_CLEANUP"

// Config is the explicit configuration struct
// This is what the rest of the codebase sees
type Config struct {
	ShowInactive bool
	Snapshot     string
	LogLevel     string
	LogFormat    string
	Credentials  CredentialsConfig
	Endpoints    EndpointConfig
}

// CredentialsConfig overrides Application Default Credentials
type CredentialsConfig struct {
	File         string
	AccessToken  string
	QuotaProject string
}

// EndpointConfig overrides the API endpoints, e.g. to target an emulator
type EndpointConfig struct {
	Asset       string
	Recommender string
}

// Init initializes viper with defaults and config file paths
func Init() error {
	// Set config file name and type
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config file search paths
	viper.AddConfigPath("$HOME/.gcp-project-cleanup")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("show-inactive", false)
	viper.SetDefault("snapshot", "")
	viper.SetDefault("log-level", string(logging.LevelWarn))
	viper.SetDefault("log-format", string(logging.FormatConsole))
	viper.SetDefault("credentials-file", "")
	viper.SetDefault("access-token", "")
	viper.SetDefault("quota-project", "")
	viper.SetDefault("asset-endpoint", "")
	viper.SetDefault("recommender-endpoint", "")

	// Bind environment variables with prefix, e.g. GCP_PROJECT_CLEANUP_LOG_LEVEL
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// UseFile reads an explicitly requested config file. Unlike the search paths,
// a missing explicit file is an error.
func UseFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load reads from all sources and returns explicit Config
func Load() (*Config, error) {
	cfg := &Config{
		ShowInactive: viper.GetBool("show-inactive"),
		Snapshot:     viper.GetString("snapshot"),
		LogLevel:     viper.GetString("log-level"),
		LogFormat:    viper.GetString("log-format"),
		Credentials: CredentialsConfig{
			File:         viper.GetString("credentials-file"),
			AccessToken:  viper.GetString("access-token"),
			QuotaProject: viper.GetString("quota-project"),
		},
		Endpoints: EndpointConfig{
			Asset:       viper.GetString("asset-endpoint"),
			Recommender: viper.GetString("recommender-endpoint"),
		},
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log-level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("invalid log-format: %s (must be console or structured)", c.LogFormat)
	}

	if c.Credentials.File != "" && c.Credentials.AccessToken != "" {
		return fmt.Errorf("credentials-file and access-token are mutually exclusive")
	}

	return nil
}

// Display shows current config (for gcp-project-cleanup config)
func Display() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = "(not found)"
	}

	return fmt.Sprintf(`Configuration:
  show-inactive:        %t
  snapshot:             %s
  log-level:            %s
  log-format:           %s

Credentials:
  credentials-file:     %s
  access-token:         %s
  quota-project:        %s

Endpoints:
  asset:                %s
  recommender:          %s

Sources:
  Config file:          %s
  Environment:          %s_*
  Flags:                (per command)
`,
		cfg.ShowInactive,
		orDefault(cfg.Snapshot, "(live APIs)"),
		cfg.LogLevel,
		cfg.LogFormat,
		orDefault(cfg.Credentials.File, "(application default)"),
		mask(cfg.Credentials.AccessToken),
		orDefault(cfg.Credentials.QuotaProject, "(none)"),
		orDefault(cfg.Endpoints.Asset, "(default)"),
		orDefault(cfg.Endpoints.Recommender, "(default)"),
		configFile,
		EnvPrefix,
	), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func mask(secret string) string {
	if secret == "" {
		return "(none)"
	}
	return "********"
}
