// Package urlutil provides URL validation helpers built on the nourl parser.
//
// The core parser accepts any URL in the supported scheme set. This package
// layers policy on top of it: web-only validation, secure-scheme
// enforcement, length limits, and whitespace trimming for user-supplied
// input. Unlike the core, which never modifies its input, these helpers
// trim surrounding whitespace before parsing.
//
// # Usage
//
// Use Validate for web (http/https) URL validation:
//
//	import "github.com/rmja/nourl/urlutil"
//
//	if err := urlutil.Validate(customURL); err != nil {
//		return fmt.Errorf("invalid custom URL: %w", err)
//	}
//
// Use ValidateSecure for production environments requiring encrypted
// transports (allows localhost exceptions for development):
//
//	if err := urlutil.ValidateSecure(endpoint); err != nil {
//		return fmt.Errorf("endpoint must be secure: %w", err)
//	}
//
// Use NormalizeScheme to ensure URLs have a scheme before parsing:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
// # Validation Rules
//
// The validation functions enforce the following rules:
//   - URL must not be empty or only whitespace
//   - URL must not exceed 2048 characters (RFC 2616 practical limit)
//   - URL must parse under the strict scheme://host[:port][/path][?query] grammar
//   - Validate additionally restricts the scheme to http or https
//   - ValidateSecure additionally requires https/mqtts outside localhost
//
// Parse failures wrap the nourl sentinels, so errors.Is works through the
// returned errors.
package urlutil
