package urlutil

import (
	"fmt"
	"strings"

	"github.com/rmja/nourl"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// Validate performs web URL validation on top of nourl.Parse.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Does not exceed MaxURLLength (2048 characters)
//   - Parses under the strict scheme://host[:port][/path][?query] grammar
//   - Uses http:// or https:// (mqtt and mqtts are valid to the parser but
//     are not web URLs, so they are rejected here)
//
// Returns an error with context if validation fails. Parse failures wrap
// the nourl sentinel, so callers can still discriminate with errors.Is.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	u, err := parseChecked(rawURL)
	if err != nil {
		return err
	}

	// Validate protocol (http or https only)
	if u.Scheme() != nourl.SchemeHTTP && u.Scheme() != nourl.SchemeHTTPS {
		return fmt.Errorf("url must use http:// or https://, got: %s", u.Scheme())
	}

	return nil
}

// ValidateSecure enforces secure schemes for production use.
// It allows insecure schemes (http, mqtt) for localhost hosts for local
// development, but rejects them everywhere else. Secure schemes (https,
// mqtts) always pass.
//
// Example:
//
//	if err := urlutil.ValidateSecure(endpoint); err != nil {
//		return fmt.Errorf("production endpoint must be secure: %w", err)
//	}
func ValidateSecure(rawURL string) error {
	u, err := parseChecked(rawURL)
	if err != nil {
		return err
	}

	if u.Scheme().IsSecure() {
		return nil
	}

	// Allow insecure schemes for localhost
	if IsLocalhost(u.Host()) {
		return nil
	}

	return fmt.Errorf("url must use a secure scheme (%s:// only allowed for localhost)", u.Scheme())
}

// parseChecked trims and bounds-checks rawURL, then parses it.
func parseChecked(rawURL string) (nourl.URL, error) {
	// Trim whitespace
	rawURL = strings.TrimSpace(rawURL)

	// Check for empty URL
	if rawURL == "" {
		return nourl.URL{}, fmt.Errorf("url cannot be empty")
	}

	// Check length limit
	if len(rawURL) > MaxURLLength {
		return nourl.URL{}, fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	u, err := nourl.Parse(rawURL)
	if err != nil {
		return nourl.URL{}, fmt.Errorf("invalid URL format: %w", err)
	}
	return u, nil
}

// NormalizeScheme ensures a URL has a supported scheme prefix.
// If the URL already carries a scheme the parser knows (http, https, mqtt,
// mqtts), it is returned unchanged. Otherwise the defaultScheme is
// prepended.
//
// The defaultScheme should be a bare scheme name (without "://").
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
//	normalized = urlutil.NormalizeScheme("http://example.com", "https")
//	// Returns: "http://example.com" (already has valid scheme)
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	if i := strings.Index(rawURL, "://"); i >= 0 {
		if _, ok := nourl.ParseScheme(rawURL[:i]); ok {
			return rawURL
		}
	}

	return defaultScheme + "://" + rawURL
}

// IsLocalhost checks if the host is a localhost address.
func IsLocalhost(host string) bool {
	// Normalize to lowercase for comparison
	host = strings.ToLower(host)

	// Check common localhost names and IPs
	return host == "localhost" ||
		host == "127.0.0.1" ||
		host == "::1" ||
		host == "[::1]"
}
