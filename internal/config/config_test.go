package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api_base_url: https://processor.example.test
poll_interval_seconds: 10
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.BaseURL(); got != "https://processor.example.test" {
		t.Errorf("BaseURL() = %q, want %q", got, "https://processor.example.test")
	}
	if got := cfg.PollInterval(); got != 10*time.Second {
		t.Errorf("PollInterval() = %v, want 10s", got)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file returned nil error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.BaseURL(); got != "http://localhost:8000" {
		t.Errorf("BaseURL() = %q, want default", got)
	}
	if got := cfg.PollInterval(); got != 5*time.Second {
		t.Errorf("PollInterval() = %v, want 5s", got)
	}
	if got := cfg.RequestTimeout(); got != 2*time.Minute {
		t.Errorf("RequestTimeout() = %v, want 2m", got)
	}
}

func TestBaseURL_EnvOverride(t *testing.T) {
	t.Setenv("LEGALPROC_API_URL", "https://env.example.test")

	cfg := &Config{APIBaseURL: "https://file.example.test"}
	if got := cfg.BaseURL(); got != "https://env.example.test" {
		t.Errorf("BaseURL() = %q, want env override", got)
	}
}
