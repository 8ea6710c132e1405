// Package main provides the pilot smoke runner: it drives the OrangeHRM
// demo login flow end to end through the harness and reports every
// collected soft-assertion failure, leaving screenshots and framework.log
// behind for anything that went wrong.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"

	"github.com/entrhq/pilot/pkg/config"
	"github.com/entrhq/pilot/pkg/harness"
	"github.com/entrhq/pilot/pkg/logging"
	"github.com/entrhq/pilot/pkg/pages"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "pilot.yaml", "path to the harness config file")
	engine := flag.String("engine", "", "browser engine: chromium, firefox or webkit (overrides config)")
	headless := flag.Bool("headless", true, "run the browser headless")
	baseURL := flag.String("base-url", "", "application under test (overrides config)")
	username := flag.String("username", "Admin", "login username")
	password := flag.String("password", "admin123", "login password")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pilot v%s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}
	applyFlagOverrides(cfg, flag.CommandLine, *engine, *baseURL, *headless)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(logging.Options{
		Dir:   cfg.Logging.Dir,
		Level: cfg.Logging.Level,
	})
	logger.Info().
		Str("run_id", logging.RunID()).
		Str("engine", cfg.Engine).
		Str("base_url", cfg.BaseURL).
		Msg("Starting pilot smoke run")

	if err := run(cfg, logger, *username, *password); err != nil {
		logger.Error().Err(err).Msg("Smoke run failed")
		fmt.Fprintf(os.Stderr, "smoke run failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("smoke run passed")
}

// applyFlagOverrides layers explicitly-set flags over the loaded config.
// String flags use the empty-string sentinel; the boolean headless flag has
// no unset value, so it only wins when it was actually passed on the
// command line.
func applyFlagOverrides(cfg *config.Config, fs *flag.FlagSet, engine, baseURL string, headless bool) {
	if engine != "" {
		cfg.Engine = engine
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "headless" {
			cfg.Headless = headless
		}
	})
}

func run(cfg *config.Config, logger arbor.ILogger, username, password string) error {
	manager := harness.NewManager(harness.ManagerOptions{
		Engine:         harness.Engine(cfg.Engine),
		Headless:       cfg.Headless,
		Logger:         logger,
		ScreenshotDir:  cfg.ScreenshotDir,
		DefaultTimeout: cfg.DefaultTimeoutMs,
		ReusePage:      cfg.ReusePage,
	})

	if err := manager.Start(); err != nil {
		return err
	}
	defer func() {
		if err := manager.Stop(); err != nil {
			logger.Warn().Err(err).Msg("Session teardown reported errors")
		}
	}()

	page, err := manager.NewPage()
	if err != nil {
		return err
	}
	harness.ApplyViewportPolicy(page, harness.ContextOptions{
		Policy: harness.ViewportPolicy(cfg.Viewport.Policy),
		Viewport: harness.Size{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
		},
	})

	site := pages.New(page, logger)
	if err := site.Open(cfg.BaseURL); err != nil {
		return err
	}
	if err := site.Login(username, password); err != nil {
		return err
	}
	if err := site.AssertLoginSuccess(); err != nil {
		return err
	}

	if failures := page.Checks().Failures(); len(failures) > 0 {
		for _, failure := range failures {
			logger.Error().Str("assertion", failure).Msg("Soft assertion failed")
			fmt.Fprintf(os.Stderr, "soft assertion failed: %s\n", failure)
		}
		return fmt.Errorf("%d soft assertion(s) failed", len(failures))
	}
	return nil
}
