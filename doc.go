// Package nourl provides minimal, allocation-free URL parsing.
//
// The parser targets constrained and hot-path code: a single left-to-right
// scan validates the input and produces a URL value whose components are
// sub-slices of the original string. Nothing is copied, nothing is heap
// allocated - not even on the failure path, which returns pre-allocated
// sentinel errors.
//
// # Usage
//
//	u, err := nourl.Parse("http://localhost:8088/foo/bar")
//	if err != nil {
//		return err
//	}
//	u.Scheme()        // nourl.SchemeHTTP
//	u.Host()          // "localhost"
//	u.PortOrDefault() // 8088
//	u.Path()          // "/foo/bar"
//
// Absent components resolve to scheme-aware defaults:
//
//	u = nourl.MustParse("https://example.com")
//	u.Path()          // "/"
//	u.PortOrDefault() // 443
//
// # Supported schemes
//
// The scheme set is closed and small: http, https, mqtt and mqtts, each
// mapped to its well-known default port (80, 443, 1883, 8883). Scheme
// names are matched case-insensitively. Extending the set is a two-point
// change: a Scheme constant and a table entry.
//
// # What is not parsed
//
// Percent-encoding, userinfo (credentials), bracketed IPv6 literals,
// fragments and query key/value splitting are out of scope. The query is
// exposed as the raw string after "?"; inputs with bracketed hosts are
// rejected with ErrInvalidHost.
//
// # Errors
//
// Parse reports exactly one of ErrInvalidScheme, ErrUnsupportedScheme,
// ErrInvalidHost, ErrInvalidPort or ErrInvalidFormat. All are sentinel
// values to be matched with errors.Is; parsing is all-or-nothing and a
// failure never yields a partial URL.
//
// The companion packages (urlutil, urlcheck, endpoints, urlcmd) build
// validation, reachability checking and CLI tooling on top of this core;
// the core itself does no I/O and depends only on the standard library.
package nourl
