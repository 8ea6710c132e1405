package harness

import (
	"github.com/playwright-community/playwright-go"
	"github.com/ternarybob/arbor"
)

// Element wraps a Playwright locator with consistent timeouts, error mapping
// and failure diagnostics. Locators re-resolve on every operation, so an
// Element is cheap to create and carries no node identity; page objects
// build one per interaction and discard it.
type Element struct {
	selector string
	locator  playwright.Locator
	logger   arbor.ILogger
	diag     *diagnostics
}

// Click clicks the element.
func (e *Element) Click(opts ...ActionOptions) error {
	return e.diag.run("click", func() error {
		if err := e.locator.Click(playwright.LocatorClickOptions{Timeout: timeoutMillis(opts)}); err != nil {
			return actionError("click", "clicking", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Msg("Clicked element")
		return nil
	})
}

// Hover hovers over the element.
func (e *Element) Hover(opts ...ActionOptions) error {
	return e.diag.run("hover", func() error {
		if err := e.locator.Hover(playwright.LocatorHoverOptions{Timeout: timeoutMillis(opts)}); err != nil {
			return actionError("hover", "hovering", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Msg("Hovered over element")
		return nil
	})
}

// Fill sets the element's value, replacing any existing content.
func (e *Element) Fill(value string, opts ...ActionOptions) error {
	return e.diag.run("fill", func() error {
		if err := e.locator.Fill(value, playwright.LocatorFillOptions{Timeout: timeoutMillis(opts)}); err != nil {
			return actionError("fill", "filling", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Str("value", value).Msg("Filled element")
		return nil
	})
}

// Type types text into the element character by character.
func (e *Element) Type(text string, opts ...ActionOptions) error {
	return e.diag.run("type", func() error {
		if err := e.locator.PressSequentially(text, playwright.LocatorPressSequentiallyOptions{Timeout: timeoutMillis(opts)}); err != nil {
			return actionError("type into", "typing into", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Str("text", text).Msg("Typed into element")
		return nil
	})
}

// Press dispatches a single key event to the element.
func (e *Element) Press(key string, opts ...ActionOptions) error {
	return e.diag.run("press", func() error {
		if err := e.locator.Press(key, playwright.LocatorPressOptions{Timeout: timeoutMillis(opts)}); err != nil {
			return actionError("press key on", "pressing key on", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Str("key", key).Msg("Pressed key on element")
		return nil
	})
}

// SelectOption selects the option with the given value in a choice control.
func (e *Element) SelectOption(value string, opts ...ActionOptions) error {
	return e.diag.run("select_option", func() error {
		_, err := e.locator.SelectOption(playwright.SelectOptionValues{
			Values: &[]string{value},
		}, playwright.LocatorSelectOptionOptions{Timeout: timeoutMillis(opts)})
		if err != nil {
			return actionError("select option in", "selecting option in", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Str("value", value).Msg("Selected option in element")
		return nil
	})
}

// Text returns the element's text content.
func (e *Element) Text(opts ...ActionOptions) (string, error) {
	var text string
	err := e.diag.run("get_text", func() error {
		t, err := e.locator.TextContent(playwright.LocatorTextContentOptions{Timeout: timeoutMillis(opts)})
		if err != nil {
			return actionError("get text from", "getting text from", e.selector, err)
		}
		text = t
		e.logger.Info().Str("selector", e.selector).Str("text", t).Msg("Got text from element")
		return nil
	})
	return text, err
}

// Attribute returns the value of the named attribute. An absent attribute
// yields an empty string, the convention the underlying engine uses.
func (e *Element) Attribute(name string, opts ...ActionOptions) (string, error) {
	var value string
	err := e.diag.run("get_attribute", func() error {
		v, err := e.locator.GetAttribute(name, playwright.LocatorGetAttributeOptions{Timeout: timeoutMillis(opts)})
		if err != nil {
			return actionError("get attribute from", "getting attribute from", e.selector, err)
		}
		value = v
		e.logger.Info().Str("selector", e.selector).Str("attribute", name).Str("value", v).Msg("Got attribute from element")
		return nil
	})
	return value, err
}

// WaitFor blocks until the element reaches the requested state, visible by
// default.
func (e *Element) WaitFor(opts ...WaitOptions) error {
	state, timeout := waitParams(opts)
	return e.diag.run("wait_for", func() error {
		err := e.locator.WaitFor(playwright.LocatorWaitForOptions{
			State:   state.selectorState(),
			Timeout: timeout,
		})
		if err != nil {
			return actionError("wait for", "waiting for", e.selector, err)
		}
		e.logger.Info().Str("selector", e.selector).Str("state", string(state)).Msg("Waited for element state")
		return nil
	})
}

// IsVisible reports whether the element is visible. A timeout is an error,
// not a false.
func (e *Element) IsVisible(opts ...ActionOptions) (bool, error) {
	return e.stateProbe("is_visible", "check visibility of", "checking visibility of", opts, func() (bool, error) {
		return e.locator.IsVisible()
	})
}

// IsHidden reports whether the element is hidden or absent.
func (e *Element) IsHidden(opts ...ActionOptions) (bool, error) {
	return e.stateProbe("is_hidden", "check hidden state of", "checking hidden state of", opts, func() (bool, error) {
		return e.locator.IsHidden()
	})
}

// IsEnabled reports whether the element is enabled.
func (e *Element) IsEnabled(opts ...ActionOptions) (bool, error) {
	return e.stateProbe("is_enabled", "check enabled state of", "checking enabled state of", opts, func() (bool, error) {
		return e.locator.IsEnabled(playwright.LocatorIsEnabledOptions{Timeout: timeoutMillis(opts)})
	})
}

// stateProbe shares the capture-and-map plumbing of the boolean probes.
func (e *Element) stateProbe(op, verb, doing string, opts []ActionOptions, probe func() (bool, error)) (bool, error) {
	var result bool
	err := e.diag.run(op, func() error {
		v, err := probe()
		if err != nil {
			return actionError(verb, doing, e.selector, err)
		}
		result = v
		e.logger.Info().Str("selector", e.selector).Bool("result", v).Msg("Probed element state")
		return nil
	})
	return result, err
}

// Screenshot captures an image of the element alone. When no path is given a
// unique timestamped one is generated under the screenshot directory.
func (e *Element) Screenshot(opts ...ScreenshotOptions) (string, error) {
	var requested string
	if len(opts) > 0 {
		requested = opts[0].Path
	}
	var saved string
	err := e.diag.run("screenshot", func() error {
		path, err := ensureShotPath(e.diag.dir, "element", requested)
		if err != nil {
			return actionError("screenshot", "screenshotting", e.selector, err)
		}
		if _, err := e.locator.Screenshot(playwright.LocatorScreenshotOptions{
			Path: playwright.String(path),
		}); err != nil {
			return actionError("screenshot", "screenshotting", e.selector, err)
		}
		saved = path
		e.logger.Info().Str("selector", e.selector).Str("path", path).Msg("Screenshot of element saved")
		return nil
	})
	return saved, err
}
