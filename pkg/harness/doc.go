// Package harness wraps Playwright with resilient element interaction and
// fail-safe diagnostics for browser test suites.
//
// The package is built around four pieces:
//
//  1. Manager: owns one browser process, one context and one page per
//     test session, with explicit Start/Stop lifecycle.
//  2. Page: wraps a Playwright page with element lookup, bounded waits,
//     screenshots and soft text assertions.
//  3. Element: wraps a locator with a fixed operation set, a shared default
//     timeout and uniform error mapping.
//  4. diagnostics: the failure interceptor every operation runs under. On
//     any failure it attempts exactly one screenshot and writes a log pair
//     before the original error propagates.
//
// # Error taxonomy
//
// Every failure wraps one of three sentinels: ErrElementNotFound (a
// selector could not be resolved or reach a state in time), ErrActionFailed
// (a resolved element or page rejected or timed out on an action) and
// ErrNavigation (navigation or lifecycle failure). Timeouts keep a
// distinguishable message shape. Nothing is ever swallowed except
// screenshot capture errors during diagnostics.
//
// # Concurrency
//
// All operations are synchronous and bounded by an explicit timeout; a
// timeout expiring is the only cancellation mechanism. One Manager per
// concurrent session; the logger and screenshot directory are safe for
// concurrent append from multiple sessions.
//
// # Example
//
//	logger := logging.New(logging.Options{})
//	manager := harness.NewManager(harness.ManagerOptions{
//	    Engine:   harness.EngineChromium,
//	    Headless: true,
//	    Logger:   logger,
//	    ReusePage: true,
//	})
//	if err := manager.Start(); err != nil { ... }
//	defer manager.Stop()
//
//	page, err := manager.NewPage()
//	el, err := page.Find("input[name='username']")
//	err = el.Fill("Admin")
package harness
