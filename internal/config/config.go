package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL     = "http://localhost:8000"
	defaultPollInterval   = 5 * time.Second
	defaultRequestTimeout = 2 * time.Minute
	configFileName        = "config.yaml"
	appDirName            = "legalproc"
)

// Config holds application configuration
type Config struct {
	APIBaseURL            string `yaml:"api_base_url"`            // Processing service base URL
	PollIntervalSeconds   int    `yaml:"poll_interval_seconds"`   // Status poll cadence
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"` // Per-request HTTP timeout
	LogLevel              string `yaml:"log_level"`
	LogFormat             string `yaml:"log_format"` // "text" or "json"
	LogFile               string `yaml:"log_file"`   // Empty logs to stderr (discarded in TUI mode)
}

// BaseURL returns the processing service URL, preferring the environment
// override over the config file
func (c *Config) BaseURL() string {
	if url := os.Getenv("LEGALPROC_API_URL"); url != "" {
		return url
	}
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return defaultAPIBaseURL
}

// PollInterval returns the status polling interval
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds > 0 {
		return time.Duration(c.PollIntervalSeconds) * time.Second
	}
	return defaultPollInterval
}

// RequestTimeout returns the per-request HTTP timeout. Uploads of large
// documents need headroom, so the default is generous.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds > 0 {
		return time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
	return defaultRequestTimeout
}

// DefaultLogPath returns the fallback log file used in TUI mode, where
// stderr belongs to the terminal renderer
func DefaultLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, "legalproc.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appDirName, "legalproc.log")
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads config from the default location. A missing file is not
// an error; the client runs fine on defaults plus environment overrides.
func LoadDefault() (*Config, error) {
	for _, path := range defaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return &Config{}, nil
}

func defaultPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appDirName, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appDirName, configFileName))
	}
	return paths
}
