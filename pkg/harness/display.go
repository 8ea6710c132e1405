package harness

// Best-effort window sizing. Every step here may silently do nothing on
// engines or platforms that refuse it; sizing never fails a test run.

// ApplyViewportPolicy sizes the page viewport per the policy and, for
// full-screen, attempts to maximize the native window. Detection failures
// fall back to the explicit size, then to DefaultViewport. Returns the
// concrete size that was applied.
func ApplyViewportPolicy(p *Page, opts ContextOptions) Size {
	size := opts.Viewport
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultViewport
	}

	switch opts.Policy {
	case ViewportFullScreen:
		if detected, ok := detectScreenSize(p); ok {
			size = detected
		}
	case ViewportHalfScreen:
		if detected, ok := detectScreenSize(p); ok {
			size = Size{Width: detected.Width / 2, Height: detected.Height}
		}
	}

	if err := p.page.SetViewportSize(size.Width, size.Height); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to set viewport size")
	}

	if opts.Policy == ViewportFullScreen {
		maximizeWindow(p)
	}

	p.logger.Info().
		Int("width", size.Width).
		Int("height", size.Height).
		Str("policy", string(opts.Policy)).
		Msg("Applied viewport policy")
	return size
}

// detectScreenSize asks the page for the host's available screen size.
func detectScreenSize(p *Page) (Size, bool) {
	result, err := p.page.Evaluate("() => ({ width: window.screen.availWidth, height: window.screen.availHeight })")
	if err != nil {
		return Size{}, false
	}
	dims, ok := result.(map[string]interface{})
	if !ok {
		return Size{}, false
	}
	width, wok := toInt(dims["width"])
	height, hok := toInt(dims["height"])
	if !wok || !hok || width <= 0 || height <= 0 {
		return Size{}, false
	}
	return Size{Width: width, Height: height}, true
}

// maximizeWindow tries a JS resize, then the CDP window-state route that
// only chromium honors. Both attempts are fire-and-forget.
func maximizeWindow(p *Page) {
	_, _ = p.page.Evaluate("() => { window.moveTo(0, 0); window.resizeTo(screen.availWidth, screen.availHeight); }")

	session, err := p.context.NewCDPSession(p.page)
	if err != nil {
		return
	}
	result, err := session.Send("Browser.getWindowForTarget", nil)
	if err != nil {
		return
	}
	info, ok := result.(map[string]interface{})
	if !ok {
		return
	}
	windowID, ok := toInt(info["windowId"])
	if !ok {
		return
	}
	_, _ = session.Send("Browser.setWindowBounds", map[string]interface{}{
		"windowId": windowID,
		"bounds":   map[string]interface{}{"windowState": "maximized"},
	})
}

// toInt normalizes the numeric types Evaluate and CDP hand back.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
