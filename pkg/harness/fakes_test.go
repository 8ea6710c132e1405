package harness

import (
	"os"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pilot/pkg/logging"
	"github.com/entrhq/pilot/pkg/softassert"
)

// Embedding the interfaces through aliases keeps the embedded field names
// from shadowing the interfaces' own Locator and Page chaining methods,
// which a direct anonymous embed would.
type (
	locatorIface = playwright.Locator
	pageIface    = playwright.Page
)

var (
	_ playwright.Locator = (*fakeLocator)(nil)
	_ playwright.Page    = (*fakePage)(nil)
)

// fakeLocator stubs the locator operations the harness drives. Embedding
// the interface keeps the fake small; calling an unstubbed method panics,
// which is exactly what a test touching unexpected engine surface deserves.
type fakeLocator struct {
	locatorIface

	err   error // returned by every action
	text  string
	attr  string
	state bool

	calls int // total engine round-trips observed
}

func (f *fakeLocator) Click(options ...playwright.LocatorClickOptions) error {
	f.calls++
	return f.err
}

func (f *fakeLocator) Hover(options ...playwright.LocatorHoverOptions) error {
	f.calls++
	return f.err
}

func (f *fakeLocator) Fill(value string, options ...playwright.LocatorFillOptions) error {
	f.calls++
	return f.err
}

func (f *fakeLocator) PressSequentially(value string, options ...playwright.LocatorPressSequentiallyOptions) error {
	f.calls++
	return f.err
}

func (f *fakeLocator) Press(key string, options ...playwright.LocatorPressOptions) error {
	f.calls++
	return f.err
}

func (f *fakeLocator) SelectOption(values playwright.SelectOptionValues, options ...playwright.LocatorSelectOptionOptions) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return *values.Values, nil
}

func (f *fakeLocator) TextContent(options ...playwright.LocatorTextContentOptions) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeLocator) GetAttribute(name string, options ...playwright.LocatorGetAttributeOptions) (string, error) {
	f.calls++
	return f.attr, f.err
}

func (f *fakeLocator) WaitFor(options ...playwright.LocatorWaitForOptions) error {
	f.calls++
	return f.err
}

func (f *fakeLocator) IsVisible(options ...playwright.LocatorIsVisibleOptions) (bool, error) {
	f.calls++
	return f.state, f.err
}

func (f *fakeLocator) IsHidden(options ...playwright.LocatorIsHiddenOptions) (bool, error) {
	f.calls++
	return f.state, f.err
}

func (f *fakeLocator) IsEnabled(options ...playwright.LocatorIsEnabledOptions) (bool, error) {
	f.calls++
	return f.state, f.err
}

func (f *fakeLocator) Screenshot(options ...playwright.LocatorScreenshotOptions) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(options) > 0 && options[0].Path != nil {
		if err := os.WriteFile(*options[0].Path, []byte("png"), 0o600); err != nil {
			return nil, err
		}
	}
	return []byte("png"), nil
}

// fakePage stubs the page operations the harness drives.
type fakePage struct {
	pageIface

	locator playwright.Locator
	err     error
	shotErr error // forces screenshot capture to fail

	screenshots int // capture attempts observed
	closed      bool
}

func (f *fakePage) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return f.locator
}

func (f *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	return nil, f.err
}

func (f *fakePage) WaitForURL(url interface{}, options ...playwright.PageWaitForURLOptions) error {
	return f.err
}

func (f *fakePage) WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error) {
	return nil, f.err
}

func (f *fakePage) Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error) {
	f.screenshots++
	if f.shotErr != nil {
		return nil, f.shotErr
	}
	if len(options) > 0 && options[0].Path != nil {
		if err := os.WriteFile(*options[0].Path, []byte("png"), 0o600); err != nil {
			return nil, err
		}
	}
	return []byte("png"), nil
}

func (f *fakePage) Context() playwright.BrowserContext {
	return nil
}

func (f *fakePage) Close(options ...playwright.PageCloseOptions) error {
	f.closed = true
	return nil
}

// testElement builds an Element over the fake with diagnostics writing to
// dir. page may be nil when a test does not care about capture.
func testElement(selector string, locator playwright.Locator, page playwright.Page, dir string) *Element {
	logger := logging.New(logging.Options{ConsoleOnly: true})
	return &Element{
		selector: selector,
		locator:  locator,
		logger:   logger,
		diag:     &diagnostics{logger: logger, page: page, dir: dir},
	}
}

// testPage builds a Page over the fake.
func testPage(page playwright.Page, dir string) *Page {
	logger := logging.New(logging.Options{ConsoleOnly: true})
	return &Page{
		page:   page,
		logger: logger,
		checks: softassert.New(),
		diag:   &diagnostics{logger: logger, page: page, dir: dir},
	}
}
