// Package config loads the harness configuration from a YAML file with
// environment-variable overrides. A missing file is not an error; every
// field has a usable default so the harness runs out of the box.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface consumed from the test runner.
type Config struct {
	// Engine selects the browser: chromium, firefox or webkit.
	Engine string `yaml:"engine"`

	// Headless controls whether the browser runs without a window.
	Headless bool `yaml:"headless"`

	// BaseURL is the application under test.
	BaseURL string `yaml:"base_url"`

	// DefaultTimeoutMs bounds every page and element operation.
	DefaultTimeoutMs float64 `yaml:"default_timeout_ms"`

	// ReusePage keeps one tab across tests in a suite.
	ReusePage bool `yaml:"reuse_page"`

	Viewport ViewportConfig `yaml:"viewport"`
	Logging  LoggingConfig  `yaml:"logging"`

	// ScreenshotDir receives failure and on-demand captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// ViewportConfig is the window sizing policy.
type ViewportConfig struct {
	// Policy is one of fullscreen, halfscreen or explicit.
	Policy string `yaml:"policy"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig configures the diagnostic logger.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Engine:           "chromium",
		Headless:         true,
		BaseURL:          "https://opensource-demo.orangehrmlive.com/",
		DefaultTimeoutMs: 10000,
		ReusePage:        true,
		Viewport: ViewportConfig{
			Policy: "explicit",
			Width:  1280,
			Height: 720,
		},
		Logging: LoggingConfig{
			Dir:   "logs",
			Level: "debug",
		},
		ScreenshotDir: "screenshots",
	}
}

// Load reads the config file at path, merges it over the defaults and then
// applies environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets CI override the file without editing it.
func (c *Config) applyEnv() {
	if v := os.Getenv("PILOT_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("PILOT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PILOT_HEADLESS"); v != "" {
		if headless, err := strconv.ParseBool(v); err == nil {
			c.Headless = headless
		}
	}
	if v := os.Getenv("PILOT_TIMEOUT_MS"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil && t > 0 {
			c.DefaultTimeoutMs = t
		}
	}
}

// Validate rejects values the harness cannot act on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Engine) {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("unsupported engine %q: must be chromium, firefox or webkit", c.Engine)
	}

	switch strings.ToLower(c.Viewport.Policy) {
	case "", "fullscreen", "halfscreen", "explicit":
	default:
		return fmt.Errorf("unsupported viewport policy %q: must be fullscreen, halfscreen or explicit", c.Viewport.Policy)
	}

	if c.Viewport.Policy == "explicit" && (c.Viewport.Width <= 0 || c.Viewport.Height <= 0) {
		return fmt.Errorf("explicit viewport requires positive width and height, got %dx%d",
			c.Viewport.Width, c.Viewport.Height)
	}

	if c.DefaultTimeoutMs <= 0 {
		return fmt.Errorf("default_timeout_ms must be positive, got %v", c.DefaultTimeoutMs)
	}
	return nil
}
