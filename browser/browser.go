// Package browser opens validated URLs in the user's web browser.
//
// The actual launch is delegated to github.com/pkg/browser, which handles
// the platform differences (cmd /c start on Windows, open on macOS,
// xdg-open on Linux). URLs are validated before launching so that only
// http:// and https:// destinations ever reach a shell command.
package browser

import (
	"fmt"

	pkgbrowser "github.com/pkg/browser"
	"github.com/rmja/nourl/logutil"
	"github.com/rmja/nourl/urlutil"
)

// Open validates rawURL and opens it in the system default browser.
// Only http:// and https:// URLs are accepted.
func Open(rawURL string) error {
	if err := urlutil.Validate(rawURL); err != nil {
		return fmt.Errorf("refusing to open browser: %w", err)
	}

	if err := pkgbrowser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// OpenSkippable opens rawURL unless skip is set. Validation failures are
// returned, but launch failures are only logged: opening a browser is a
// convenience, and the caller's work has already succeeded by the time it
// happens.
func OpenSkippable(rawURL string, skip bool) error {
	if skip {
		return nil
	}

	if err := urlutil.Validate(rawURL); err != nil {
		return fmt.Errorf("refusing to open browser: %w", err)
	}

	go func() {
		if err := pkgbrowser.OpenURL(rawURL); err != nil {
			logutil.Warn("could not open browser automatically", "url", rawURL, "error", err)
		}
	}()

	return nil
}
