package harness

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/playwright-community/playwright-go"
	"github.com/ternarybob/arbor"

	"github.com/entrhq/pilot/pkg/softassert"
)

// ManagerOptions configures a session manager.
type ManagerOptions struct {
	// Engine selects the browser engine. Empty defaults to chromium.
	Engine Engine

	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// Logger receives all diagnostic output. Required.
	Logger arbor.ILogger

	// ScreenshotDir receives failure captures. Empty defaults to
	// DefaultScreenshotDir.
	ScreenshotDir string

	// DefaultTimeout applies to every page operation in milliseconds.
	// Zero defaults to DefaultTimeout.
	DefaultTimeout float64

	// ReusePage makes NewPage hand back the already-tracked page instead
	// of opening a new tab, keeping window size and focus consistent
	// across tests in a suite. Enabled by default through NewManager.
	ReusePage bool

	// SkipInstall skips the browser download check on Start. Useful when
	// the environment pre-installs browsers.
	SkipInstall bool
}

// Manager owns the lifecycle of one browser process, at most one browsing
// context and at most one page. One Manager per concurrent session; no
// state is shared across managers. State machine:
//
//	Unstarted -> Started -> (context/page created) -> Stopped
type Manager struct {
	opts    ManagerOptions
	logger  arbor.ILogger
	checks  *softassert.Checker
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    *Page
}

// NewManager builds an unstarted session manager. Page reuse is on by
// default; pass explicit ManagerOptions to opt out.
func NewManager(opts ManagerOptions) *Manager {
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = DefaultTimeout
	}
	return &Manager{
		opts:   opts,
		logger: opts.Logger,
		checks: softassert.New(),
	}
}

// Checks returns the soft-assertion collector shared by every page this
// session produces.
func (m *Manager) Checks() *softassert.Checker {
	return m.checks
}

// Start launches the driver and the configured browser engine. Calling
// Start on an already-started manager re-launches and leaks the prior
// browser handle; stopping first is the caller's responsibility.
func (m *Manager) Start() error {
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if !m.opts.SkipInstall {
		if err := playwright.Install(runOpts); err != nil {
			return navigationError("browser install", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return navigationError("driver start", err)
	}

	browser, err := m.opts.Engine.browserType(pw).Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(m.opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return navigationError("browser launch", err)
	}

	m.pw = pw
	m.browser = browser
	m.logger.Info().
		Str("engine", string(m.opts.Engine)).
		Bool("headless", m.opts.Headless).
		Msg("Started browser")
	return nil
}

// NewContext creates a browsing context sized per the given options and
// tracks it as the session's context. A previously tracked context is
// replaced but not closed; callers that rotate contexts close the old one
// themselves.
func (m *Manager) NewContext(opts ContextOptions) (playwright.BrowserContext, error) {
	if m.browser == nil {
		return nil, navigationError("context creation", errNotStarted)
	}

	size := opts.Viewport
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultViewport
	}

	context, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: size.Width, Height: size.Height},
	})
	if err != nil {
		return nil, navigationError("context creation", err)
	}

	m.context = context
	m.page = nil
	m.logger.Info().
		Int("width", size.Width).
		Int("height", size.Height).
		Msg("Created browser context")
	return context, nil
}

// NewPage creates a page in the current context, creating a default context
// first when none exists. With page reuse enabled the already-tracked page
// is returned instead of opening a new tab.
func (m *Manager) NewPage() (*Page, error) {
	if m.opts.ReusePage && m.page != nil {
		return m.page, nil
	}

	if m.context == nil {
		if _, err := m.NewContext(ContextOptions{}); err != nil {
			return nil, err
		}
	}

	page, err := m.context.NewPage()
	if err != nil {
		return nil, navigationError("page creation", err)
	}
	page.SetDefaultTimeout(m.opts.DefaultTimeout)

	m.page = NewPage(page, m.logger, m.opts.ScreenshotDir, m.checks)
	m.logger.Info().Msg("Created page")

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o750); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to create screenshot directory")
	}
	return m.page, nil
}

// Page returns the tracked page, or nil before NewPage has been called.
func (m *Manager) Page() *Page {
	return m.page
}

// Stop tears the session down: page, context, browser and driver are each
// closed best-effort and independently, so one failing step never prevents
// the next. Returns a navigation error naming every step that failed, after
// all reachable steps have been attempted.
func (m *Manager) Stop() error {
	var failures []string

	if m.page != nil {
		if err := m.page.Raw().Close(); err != nil {
			failures = append(failures, fmt.Sprintf("page close: %v", err))
		}
		m.page = nil
	}
	if m.context != nil {
		if err := m.context.Close(); err != nil {
			failures = append(failures, fmt.Sprintf("context close: %v", err))
		}
		m.context = nil
	}
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			failures = append(failures, fmt.Sprintf("browser close: %v", err))
		}
		m.browser = nil
	}
	if m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			failures = append(failures, fmt.Sprintf("driver stop: %v", err))
		}
		m.pw = nil
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: session teardown: %v", ErrNavigation, failures)
	}
	m.logger.Info().Msg("Stopped browser and cleaned up resources")
	return nil
}

// errNotStarted reports lifecycle operations attempted before Start.
var errNotStarted = errors.New("session not started")
