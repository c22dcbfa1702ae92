package nourl

import (
	"log/slog"
	"strconv"
	"strings"
)

// URL is a parsed URL. It is immutable: values are produced only by Parse
// or MustParse, and every component accessor is read-only. The component
// fields are sub-slices of the original input, so a URL never copies any
// part of the string it was parsed from and may be shared freely across
// goroutines.
type URL struct {
	raw    string
	scheme Scheme

	// Component slices alias raw's backing array. Go string slicing
	// copies nothing, so these are offset pairs in all but name.
	host  string
	path  string
	query string

	port     uint16
	hasPort  bool
	hasQuery bool
}

// Parse parses rawURL into a URL in a single left-to-right scan with no
// heap allocation on either the success or the failure path.
//
// The accepted shape is:
//
//	scheme://host[:port][/path][?query]
//
// Validation rules:
//   - The scheme name before "://" is matched case-insensitively against
//     the closed set (http, https, mqtt, mqtts). A missing "://" fails
//     with ErrInvalidScheme; an unknown name with ErrUnsupportedScheme.
//   - The host must be non-empty. Bracketed IPv6 literals are not
//     supported: a "[" or "]" anywhere in the authority fails with
//     ErrInvalidHost.
//   - The first ":" in the authority ends the host; everything after it
//     up to the authority boundary must be a decimal integer in
//     [0, 65535], otherwise ErrInvalidPort. This means a second colon
//     (as in "host:1:2") also fails with ErrInvalidPort.
//   - Control characters and spaces anywhere in the input fail with
//     ErrInvalidFormat. Bytes >= 0x80 pass through untouched, and since
//     every delimiter is ASCII the stored components always fall on
//     UTF-8 boundaries.
//
// Parsing is all-or-nothing: on failure the zero URL and the error are
// returned, never a partial result.
func Parse(rawURL string) (URL, error) {
	// Scheme: scan for the "://" delimiter.
	schemeEnd := -1
	for i := 0; i < len(rawURL); i++ {
		c := rawURL[i]
		if isCtlOrSpace(c) {
			return URL{}, ErrInvalidFormat
		}
		if c == ':' && i+2 < len(rawURL) && rawURL[i+1] == '/' && rawURL[i+2] == '/' {
			schemeEnd = i
			break
		}
	}
	if schemeEnd < 0 {
		return URL{}, ErrInvalidScheme
	}
	scheme, ok := ParseScheme(rawURL[:schemeEnd])
	if !ok {
		return URL{}, ErrUnsupportedScheme
	}

	// Authority: host[:port], ending at the first "/", "?" or end of
	// input.
	hostStart := schemeEnd + 3
	authEnd := hostStart
	colon := -1
	for authEnd < len(rawURL) {
		c := rawURL[authEnd]
		if isCtlOrSpace(c) {
			return URL{}, ErrInvalidFormat
		}
		if c == '/' || c == '?' {
			break
		}
		if c == '[' || c == ']' {
			return URL{}, ErrInvalidHost
		}
		if c == ':' && colon < 0 {
			colon = authEnd
		}
		authEnd++
	}
	hostEnd := authEnd
	if colon >= 0 {
		hostEnd = colon
	}
	if hostEnd == hostStart {
		return URL{}, ErrInvalidHost
	}
	var port uint16
	hasPort := false
	if colon >= 0 {
		p, ok := parsePort(rawURL[colon+1 : authEnd])
		if !ok {
			return URL{}, ErrInvalidPort
		}
		port, hasPort = p, true
	}

	// Path: present only when the authority is followed by "/". The
	// stored range includes the leading slash and runs to the first "?"
	// or end of input. When absent, nothing is stored and Path
	// synthesizes "/" instead of fabricating bytes not in the input.
	pathStart := authEnd
	pathEnd := pathStart
	if pathStart < len(rawURL) && rawURL[pathStart] == '/' {
		for pathEnd < len(rawURL) {
			c := rawURL[pathEnd]
			if isCtlOrSpace(c) {
				return URL{}, ErrInvalidFormat
			}
			if c == '?' {
				break
			}
			pathEnd++
		}
	}

	// Query: everything after "?" to end of input, possibly empty.
	query := ""
	hasQuery := false
	if pathEnd < len(rawURL) && rawURL[pathEnd] == '?' {
		for i := pathEnd + 1; i < len(rawURL); i++ {
			if isCtlOrSpace(rawURL[i]) {
				return URL{}, ErrInvalidFormat
			}
		}
		query = rawURL[pathEnd+1:]
		hasQuery = true
	}

	return URL{
		raw:      rawURL,
		scheme:   scheme,
		host:     rawURL[hostStart:hostEnd],
		path:     rawURL[pathStart:pathEnd],
		query:    query,
		port:     port,
		hasPort:  hasPort,
		hasQuery: hasQuery,
	}, nil
}

// MustParse is like Parse but panics on error. It simplifies
// initialization of package-level variables and tests with URLs known to
// be valid.
func MustParse(rawURL string) URL {
	u, err := Parse(rawURL)
	if err != nil {
		panic("nourl: MustParse(" + strconv.Quote(rawURL) + "): " + err.Error())
	}
	return u
}

// Raw returns the original input string the URL was parsed from.
func (u URL) Raw() string {
	return u.raw
}

// Scheme returns the URL scheme.
func (u URL) Scheme() Scheme {
	return u.scheme
}

// Host returns the host component. It is never empty for a URL produced
// by Parse.
func (u URL) Host() string {
	return u.host
}

// Port returns the explicit port and true when the input contained a
// ":port", and 0 and false otherwise.
func (u URL) Port() (uint16, bool) {
	return u.port, u.hasPort
}

// PortOrDefault returns the explicit port when present, and the scheme's
// default port otherwise.
func (u URL) PortOrDefault() uint16 {
	if u.hasPort {
		return u.port
	}
	return u.scheme.DefaultPort()
}

// Path returns the path component including its leading slash, or the
// literal "/" when the input had no path.
func (u URL) Path() string {
	if u.path == "" {
		return "/"
	}
	return u.path
}

// Query returns the query component (the part after "?", which may be
// empty) and true when the input contained a "?", and "" and false
// otherwise.
func (u URL) Query() (string, bool) {
	return u.query, u.hasQuery
}

// String reassembles the URL as scheme://host[:port]path[?query], with
// the synthesized "/" when the path was absent. Unlike the accessors it
// allocates a new string.
func (u URL) String() string {
	var b strings.Builder
	b.Grow(len(u.raw) + 1)
	b.WriteString(u.scheme.String())
	b.WriteString("://")
	b.WriteString(u.host)
	if u.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(u.port)))
	}
	b.WriteString(u.Path())
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	return b.String()
}

// LogValue renders the URL for log/slog output as its String form.
func (u URL) LogValue() slog.Value {
	return slog.StringValue(u.String())
}

// parsePort converts a decimal port segment to a uint16 by hand: the
// strconv error path allocates, which would break the allocation-free
// failure guarantee of Parse.
func parsePort(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > 0xFFFF {
			return 0, false
		}
	}
	return uint16(n), true
}

// isCtlOrSpace reports whether c is an ASCII control character or space,
// none of which can appear anywhere in a URL.
func isCtlOrSpace(c byte) bool {
	return c <= ' ' || c == 0x7F
}
