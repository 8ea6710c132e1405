package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/ternarybob/arbor"
)

// diagnostics is the failure interceptor every element and page operation
// runs under. On failure it attempts exactly one full-page screenshot and
// logs the failing operation, then hands back the original error untouched.
// Capture problems are logged and swallowed so diagnostics can never mask
// the primary failure.
type diagnostics struct {
	logger arbor.ILogger
	page   playwright.Page
	dir    string
}

// run executes op's body and intercepts its failure. fn is expected to
// return an error already mapped to the harness taxonomy; run does not
// rewrap it.
func (d *diagnostics) run(op string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	d.capture(op, err)
	return err
}

// capture takes the single best-effort failure screenshot and writes the
// diagnostic log pair for a failed operation.
func (d *diagnostics) capture(op string, cause error) {
	if d.page != nil {
		path := shotPath(d.dir, "error")
		if err := os.MkdirAll(d.dir, 0o750); err != nil {
			d.logger.Warn().Err(err).Msg("Failed to create screenshot directory")
		} else if _, err := d.page.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(path),
			FullPage: playwright.Bool(true),
		}); err != nil {
			d.logger.Warn().Err(err).Str("op", op).Msg("Failed to capture failure screenshot")
		} else {
			d.logger.Error().Str("screenshot", path).Msg("Screenshot captured")
		}
	}
	d.logger.Error().Str("op", op).Err(cause).Msg("Operation failed")
}

// shotPath builds a unique screenshot path. The microsecond component keeps
// concurrent writers and rapid successive failures from colliding without
// any locking.
func shotPath(dir, prefix string) string {
	now := time.Now()
	stamp := fmt.Sprintf("%s_%06d", now.Format("20060102_150405"), now.Nanosecond()/1000)
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, stamp))
}

// ensureShotPath resolves an optional caller-supplied path, generating a
// unique one under dir when empty, and makes sure the parent directory
// exists.
func ensureShotPath(dir, prefix, path string) (string, error) {
	if path == "" {
		path = shotPath(dir, prefix)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}
	return path, nil
}
