package harness

import (
	"github.com/playwright-community/playwright-go"
	"github.com/ternarybob/arbor"

	"github.com/entrhq/pilot/pkg/softassert"
)

// Page wraps a Playwright page with element lookup, bounded waits,
// screenshots and soft text assertions. Every failing operation leaves a
// screenshot and a log line behind before the error reaches the caller.
type Page struct {
	page    playwright.Page
	context playwright.BrowserContext
	logger  arbor.ILogger
	checks  *softassert.Checker
	diag    *diagnostics
}

// NewPage wraps an existing Playwright page. checks may be nil, in which
// case a fresh collector is created.
func NewPage(page playwright.Page, logger arbor.ILogger, screenshotDir string, checks *softassert.Checker) *Page {
	if checks == nil {
		checks = softassert.New()
	}
	if screenshotDir == "" {
		screenshotDir = DefaultScreenshotDir
	}
	return &Page{
		page:    page,
		context: page.Context(),
		logger:  logger,
		checks:  checks,
		diag:    &diagnostics{logger: logger, page: page, dir: screenshotDir},
	}
}

// Raw exposes the underlying Playwright page for operations the wrapper
// does not cover.
func (p *Page) Raw() playwright.Page {
	return p.page
}

// Checks returns the soft-assertion collector attached to this page.
func (p *Page) Checks() *softassert.Checker {
	return p.checks
}

// Find resolves a locator for the selector and wraps it. Construction, not
// presence, is checked here; an element that never appears surfaces later
// as an action failure from whichever operation consumes it.
func (p *Page) Find(selector string) (*Element, error) {
	locator := p.page.Locator(selector)
	if locator == nil {
		err := notFoundError(selector, errNilLocator)
		p.logger.Error().Str("selector", selector).Msg("Element not found")
		return nil, err
	}
	p.logger.Info().Str("selector", selector).Msg("Found element")
	return &Element{
		selector: selector,
		locator:  locator,
		logger:   p.logger,
		diag:     p.diag,
	}, nil
}

// Goto navigates the page to the given URL and waits for the load event.
func (p *Page) Goto(url string, opts ...ActionOptions) error {
	return p.diag.run("goto", func() error {
		if _, err := p.page.Goto(url, playwright.PageGotoOptions{Timeout: timeoutMillis(opts)}); err != nil {
			return navigationError("navigation to "+url, err)
		}
		p.logger.Info().Str("url", url).Msg("Navigated to URL")
		return nil
	})
}

// WaitForURL blocks until the page URL matches the glob pattern.
func (p *Page) WaitForURL(pattern string, opts ...ActionOptions) error {
	return p.diag.run("wait_for_url", func() error {
		err := p.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{Timeout: timeoutMillis(opts)})
		if err != nil {
			return navigationError("wait for URL "+pattern, err)
		}
		p.logger.Info().Str("url", pattern).Msg("Waited for URL")
		return nil
	})
}

// WaitForSelector blocks until the selector reaches the requested state,
// visible by default.
func (p *Page) WaitForSelector(selector string, opts ...WaitOptions) error {
	state, timeout := waitParams(opts)
	return p.diag.run("wait_for_selector", func() error {
		_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
			State:   state.selectorState(),
			Timeout: timeout,
		})
		if err != nil {
			return notFoundError(selector, err)
		}
		p.logger.Info().Str("selector", selector).Str("state", string(state)).Msg("Waited for selector")
		return nil
	})
}

// Screenshot captures the page, full-page by default. When no path is given
// a unique timestamped one is generated under the screenshot directory.
func (p *Page) Screenshot(opts ...ScreenshotOptions) (string, error) {
	var requested string
	fullPage := true
	if len(opts) > 0 {
		requested = opts[0].Path
		if opts[0].FullPage != nil {
			fullPage = *opts[0].FullPage
		}
	}
	var saved string
	err := p.diag.run("take_screenshot", func() error {
		path, err := ensureShotPath(p.diag.dir, "page", requested)
		if err != nil {
			return actionError("screenshot", "screenshotting", "page", err)
		}
		if _, err := p.page.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(path),
			FullPage: playwright.Bool(fullPage),
		}); err != nil {
			return actionError("screenshot", "screenshotting", "page", err)
		}
		saved = path
		p.logger.Info().Str("path", path).Msg("Screenshot of page saved")
		return nil
	})
	return saved, err
}

// AssertText compares the selector's text against expected as a soft
// assertion: a mismatch is recorded in the collector and reported at the
// caller's checkpoint instead of failing immediately. Failing to resolve
// the selector at all is a hard failure.
func (p *Page) AssertText(selector, expected string, opts ...ActionOptions) error {
	return p.diag.run("assert_text", func() error {
		actual, err := p.page.Locator(selector).TextContent(playwright.LocatorTextContentOptions{Timeout: timeoutMillis(opts)})
		if err != nil {
			return actionError("assert text of", "asserting text of", selector, err)
		}
		passed := p.checks.Equal(expected, actual, "text of "+selector)
		p.logger.Info().
			Str("selector", selector).
			Str("expected", expected).
			Str("actual", actual).
			Bool("passed", passed).
			Msg("Asserted text")
		return nil
	})
}
