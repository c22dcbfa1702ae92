// Package urlcheck probes parsed URLs for reachability.
package urlcheck

import (
	"time"
)

const (
	// maxResponseBodySize limits how much of a probe response body is read to prevent memory issues
	maxResponseBodySize = 1024 * 1024 // 1MB

	// defaultTCPDialTimeout is the timeout for raw TCP probes
	defaultTCPDialTimeout = 2 * time.Second
)

// HTTP transport timeout constants shared by all checkers.
const (
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPDialTimeout           = 5 * time.Second
	HTTPKeepAliveTimeout      = 30 * time.Second
	HTTPTLSHandshakeTimeout   = 5 * time.Second
	HTTPExpectContinueTimeout = 1 * time.Second
)

// Config defaults applied by NewChecker when fields are left zero.
const (
	DefaultTimeout         = 10 * time.Second
	DefaultBreakerFailures = 5
	DefaultBreakerTimeout  = 30 * time.Second
)

// Status represents the reachability state of a URL.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusInvalid   Status = "invalid"
	StatusUnknown   Status = "unknown"
)

// CheckType indicates the method used to probe a URL.
type CheckType string

const (
	CheckTypeHTTP CheckType = "http"
	CheckTypeTCP  CheckType = "tcp"
)

// Config controls checker behavior.
type Config struct {
	// Timeout bounds each individual probe. Zero means DefaultTimeout.
	Timeout time.Duration

	// EnableCircuitBreaker enables per-authority circuit breakers.
	EnableCircuitBreaker bool

	// BreakerFailures is the minimum number of requests before a breaker
	// may trip. Zero means DefaultBreakerFailures; negative disables
	// tripping entirely.
	BreakerFailures int

	// BreakerTimeout is how long a tripped breaker stays open before
	// allowing trial requests. Zero means DefaultBreakerTimeout.
	BreakerTimeout time.Duration

	// RateLimit caps probes per second per authority. Zero or negative
	// means unlimited.
	RateLimit int

	// EnableMetrics enables Prometheus metric recording.
	EnableMetrics bool
}

// Result represents the outcome of a single URL check.
type Result struct {
	URL          string        `json:"url" yaml:"url"`
	Host         string        `json:"host,omitempty" yaml:"host,omitempty"`
	Port         uint16        `json:"port,omitempty" yaml:"port,omitempty"`
	Scheme       string        `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Status       Status        `json:"status" yaml:"status"`
	CheckType    CheckType     `json:"checkType,omitempty" yaml:"checkType,omitempty"`
	StatusCode   int           `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	ResponseTime time.Duration `json:"responseTime" yaml:"responseTime"`
	Error        string        `json:"error,omitempty" yaml:"error,omitempty"`
	Timestamp    time.Time     `json:"timestamp" yaml:"timestamp"`
}

// Summary aggregates the results of checking multiple URLs.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Healthy   int `json:"healthy" yaml:"healthy"`
	Unhealthy int `json:"unhealthy" yaml:"unhealthy"`
	Invalid   int `json:"invalid" yaml:"invalid"`
	Unknown   int `json:"unknown" yaml:"unknown"`
}

// Summarize tallies results by status.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusHealthy:
			summary.Healthy++
		case StatusUnhealthy:
			summary.Unhealthy++
		case StatusInvalid:
			summary.Invalid++
		default:
			summary.Unknown++
		}
	}
	return summary
}
