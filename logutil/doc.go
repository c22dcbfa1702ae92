// Package logutil provides a structured logging abstraction built on top of slog.
//
// This package provides a simple, consistent logging interface for the nourl
// toolkit commands and checkers. It wraps the standard library's slog package
// with convenience functions and environment-aware configuration.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("parsed url", "host", u.Host(), "port", u.PortOrDefault())
//	logutil.Info("endpoint reachable", "url", u)
//	logutil.Warn("insecure scheme", "scheme", u.Scheme())
//	logutil.Error("check failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set NOURL_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"endpoint reachable","url":"http://localhost:8088/"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="endpoint reachable" url=http://localhost:8088/
//
// # URL Context
//
// nourl.URL implements slog.LogValuer, so a URL passed as a log attribute is
// rendered in its reassembled form. ComponentLogger.WithURL pins that context
// for every record a logger emits:
//
//	log := logutil.NewLogger("urlcheck").WithURL(u)
//	log.Info("probe succeeded", "status", code)
package logutil
