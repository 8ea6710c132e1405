package harness

import (
	"github.com/playwright-community/playwright-go"
)

// Engine selects the browser engine a session launches.
type Engine string

const (
	EngineChromium Engine = "chromium"
	EngineFirefox  Engine = "firefox"
	EngineWebKit   Engine = "webkit"
)

// browserType resolves the engine to its Playwright launcher. Unknown values
// fall back to Chromium, matching the launcher the demo site is tested on.
func (e Engine) browserType(pw *playwright.Playwright) playwright.BrowserType {
	switch e {
	case EngineFirefox:
		return pw.Firefox
	case EngineWebKit:
		return pw.WebKit
	default:
		return pw.Chromium
	}
}

// ElementState is a lifecycle state a selector or element can be waited on.
type ElementState string

const (
	StateVisible  ElementState = "visible"
	StateHidden   ElementState = "hidden"
	StateAttached ElementState = "attached"
	StateDetached ElementState = "detached"
)

// selectorState maps an ElementState to the Playwright wait constant.
// Unknown states default to visible, the overwhelmingly common wait.
func (s ElementState) selectorState() *playwright.WaitForSelectorState {
	switch s {
	case StateHidden:
		return playwright.WaitForSelectorStateHidden
	case StateAttached:
		return playwright.WaitForSelectorStateAttached
	case StateDetached:
		return playwright.WaitForSelectorStateDetached
	default:
		return playwright.WaitForSelectorStateVisible
	}
}

// Size is a viewport size in CSS pixels.
type Size struct {
	Width  int
	Height int
}

// ViewportPolicy decides how the session sizes its browser window.
type ViewportPolicy string

const (
	// ViewportFullScreen sizes the viewport to the detected screen size and
	// attempts to maximize the native window.
	ViewportFullScreen ViewportPolicy = "fullscreen"

	// ViewportHalfScreen sizes the viewport to half the detected screen width.
	ViewportHalfScreen ViewportPolicy = "halfscreen"

	// ViewportExplicit uses the width and height supplied in ContextOptions.
	ViewportExplicit ViewportPolicy = "explicit"
)

// ActionOptions tunes a single element or page operation. The zero value
// means "use the default timeout".
type ActionOptions struct {
	// Timeout in milliseconds. Zero applies DefaultTimeout.
	Timeout float64
}

// WaitOptions tunes a wait operation.
type WaitOptions struct {
	// State to wait for. Empty defaults to visible.
	State ElementState

	// Timeout in milliseconds. Zero applies DefaultTimeout.
	Timeout float64
}

// ScreenshotOptions tunes a screenshot capture.
type ScreenshotOptions struct {
	// Path for the PNG. Empty auto-generates a unique timestamped path
	// under the configured screenshot directory.
	Path string

	// FullPage captures beyond the viewport for page screenshots.
	// Nil defaults to true.
	FullPage *bool
}

// ContextOptions configures a new browsing context.
type ContextOptions struct {
	// Policy decides how the viewport is sized. Empty means explicit.
	Policy ViewportPolicy

	// Viewport is the explicit size used when Policy is ViewportExplicit
	// (or empty). Zero falls back to DefaultViewport.
	Viewport Size
}

// Defaults shared across the harness.
const (
	// DefaultTimeout is the per-operation timeout in milliseconds.
	DefaultTimeout = 10000.0

	// DefaultScreenshotDir receives failure and on-demand captures.
	DefaultScreenshotDir = "screenshots"
)

// DefaultViewport is used when detection fails and no explicit size is given.
var DefaultViewport = Size{Width: 1280, Height: 720}

// timeoutMillis resolves the effective timeout for an operation.
func timeoutMillis(opts []ActionOptions) *float64 {
	t := DefaultTimeout
	if len(opts) > 0 && opts[0].Timeout > 0 {
		t = opts[0].Timeout
	}
	return playwright.Float(t)
}

// waitParams resolves the effective state and timeout for a wait operation.
func waitParams(opts []WaitOptions) (ElementState, *float64) {
	state := StateVisible
	t := DefaultTimeout
	if len(opts) > 0 {
		if opts[0].State != "" {
			state = opts[0].State
		}
		if opts[0].Timeout > 0 {
			t = opts[0].Timeout
		}
	}
	return state, playwright.Float(t)
}
