package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine != "chromium" {
		t.Errorf("Engine = %q, want chromium", cfg.Engine)
	}
	if !cfg.Headless {
		t.Error("Headless = false, want true")
	}
	if cfg.DefaultTimeoutMs != 10000 {
		t.Errorf("DefaultTimeoutMs = %v, want 10000", cfg.DefaultTimeoutMs)
	}
	if !cfg.ReusePage {
		t.Error("ReusePage = false, want true")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pilot.yaml")
	content := `
engine: firefox
headless: false
base_url: http://localhost:8080/
viewport:
  policy: explicit
  width: 1920
  height: 1080
logging:
  level: info
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine != "firefox" {
		t.Errorf("Engine = %q, want firefox", cfg.Engine)
	}
	if cfg.Headless {
		t.Error("Headless = true, want false")
	}
	if cfg.BaseURL != "http://localhost:8080/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Viewport.Width != 1920 || cfg.Viewport.Height != 1080 {
		t.Errorf("Viewport = %dx%d, want 1920x1080", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	// Untouched fields keep their defaults.
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", cfg.ScreenshotDir)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("PILOT_ENGINE", "webkit")
	t.Setenv("PILOT_HEADLESS", "false")
	t.Setenv("PILOT_TIMEOUT_MS", "5000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine != "webkit" {
		t.Errorf("Engine = %q, want webkit", cfg.Engine)
	}
	if cfg.Headless {
		t.Error("Headless = true, want false")
	}
	if cfg.DefaultTimeoutMs != 5000 {
		t.Errorf("DefaultTimeoutMs = %v, want 5000", cfg.DefaultTimeoutMs)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown engine", func(c *Config) { c.Engine = "netscape" }},
		{"unknown viewport policy", func(c *Config) { c.Viewport.Policy = "quarterscreen" }},
		{"explicit viewport without size", func(c *Config) {
			c.Viewport.Policy = "explicit"
			c.Viewport.Width = 0
		}},
		{"non-positive timeout", func(c *Config) { c.DefaultTimeoutMs = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pilot.yaml")
	if err := os.WriteFile(path, []byte("engine: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for invalid YAML")
	}
}
