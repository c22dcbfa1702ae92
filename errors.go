package nourl

import "errors"

// Parse errors - package-level sentinels so the failure path of Parse
// allocates nothing. Match them with errors.Is.
var (
	// ErrInvalidScheme indicates the input has no "://" delimiter,
	// so no scheme could be extracted. Empty input fails the same way.
	ErrInvalidScheme = errors.New("nourl: missing scheme delimiter")

	// ErrUnsupportedScheme indicates the scheme name is not in the
	// closed set of supported schemes (http, https, mqtt, mqtts).
	ErrUnsupportedScheme = errors.New("nourl: unsupported scheme")

	// ErrInvalidHost indicates an empty host, or a bracketed IPv6
	// literal, which this parser does not support.
	ErrInvalidHost = errors.New("nourl: invalid host")

	// ErrInvalidPort indicates a port segment is present but is not a
	// valid 16-bit unsigned integer.
	ErrInvalidPort = errors.New("nourl: invalid port")

	// ErrInvalidFormat indicates a structural violation not covered by
	// the other errors: a control character or space byte in the input.
	ErrInvalidFormat = errors.New("nourl: invalid format")
)
