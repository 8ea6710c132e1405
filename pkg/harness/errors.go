package harness

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// The harness surfaces exactly three error kinds to callers. Everything a
// page or element operation can fail with wraps one of these sentinels, so
// consumers branch with errors.Is instead of string matching.
var (
	// ErrElementNotFound reports that a locator or selector could not be
	// resolved, or did not reach the required state within the timeout.
	ErrElementNotFound = errors.New("element not found")

	// ErrActionFailed reports that a resolved element or page rejected or
	// timed out on a requested action.
	ErrActionFailed = errors.New("action failed")

	// ErrNavigation reports a failed page navigation or a browser/context
	// lifecycle operation.
	ErrNavigation = errors.New("navigation failed")
)

// actionError maps an engine failure on an element action to ErrActionFailed,
// preserving the distinction between a timeout and any other cause. verb is
// the imperative form ("click"), doing the progressive form ("clicking"); the
// message shapes match what operators grep for in framework.log.
func actionError(verb, doing, selector string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: timeout %s element %q", ErrActionFailed, doing, selector)
	}
	return fmt.Errorf("%w: failed to %s element %q: %v", ErrActionFailed, verb, selector, err)
}

// errNilLocator only occurs if the engine hands back a nil locator, which
// playwright-go does not do in practice; kept for the construction check in
// Page.Find.
var errNilLocator = errors.New("engine returned nil locator")

// notFoundError maps a selector resolution failure to ErrElementNotFound.
func notFoundError(selector string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: timeout waiting for selector %q", ErrElementNotFound, selector)
	}
	return fmt.Errorf("%w: selector %q: %v", ErrElementNotFound, selector, err)
}

// navigationError maps a navigation or lifecycle failure to ErrNavigation.
func navigationError(what string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: timeout during %s", ErrNavigation, what)
	}
	return fmt.Errorf("%w: %s: %v", ErrNavigation, what, err)
}
