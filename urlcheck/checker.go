package urlcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rmja/nourl"
	"github.com/rmja/nourl/logutil"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var (
	// metricsEnabled controls whether Prometheus metrics are recorded.
	metricsEnabled atomic.Bool

	// sharedHTTPTransport is a shared HTTP transport for all checkers
	sharedHTTPTransport = &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     HTTPIdleConnTimeout,
		DisableKeepAlives:   false,
		DialContext: (&net.Dialer{
			Timeout:   HTTPDialTimeout,
			KeepAlive: HTTPKeepAliveTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPTLSHandshakeTimeout,
		ExpectContinueTimeout: HTTPExpectContinueTimeout,
	}
)

// Checker probes URLs with circuit breaking and rate limiting per authority.
type Checker struct {
	timeout         time.Duration
	httpClient      *http.Client
	breakers        map[string]*gobreaker.CircuitBreaker
	rateLimiters    map[string]*rate.Limiter
	mu              sync.RWMutex
	enableBreaker   bool
	breakerFailures int
	breakerTimeout  time.Duration
	rateLimit       int
	log             *logutil.ComponentLogger
}

// NewChecker creates a new Checker from the given config.
func NewChecker(config Config) *Checker {
	metricsEnabled.Store(config.EnableMetrics)

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	breakerFailures := config.BreakerFailures
	if breakerFailures == 0 {
		breakerFailures = DefaultBreakerFailures
	}
	breakerTimeout := config.BreakerTimeout
	if breakerTimeout == 0 {
		breakerTimeout = DefaultBreakerTimeout
	}

	return &Checker{
		timeout:         timeout,
		breakers:        make(map[string]*gobreaker.CircuitBreaker),
		rateLimiters:    make(map[string]*rate.Limiter),
		enableBreaker:   config.EnableCircuitBreaker,
		breakerFailures: breakerFailures,
		breakerTimeout:  breakerTimeout,
		rateLimit:       config.RateLimit,
		log:             logutil.NewLogger("urlcheck"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: sharedHTTPTransport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// authorityKey identifies the endpoint a breaker or limiter guards.
func authorityKey(u nourl.URL) string {
	return fmt.Sprintf("%s:%d", u.Host(), u.PortOrDefault())
}

// getOrCreateCircuitBreaker gets or creates a circuit breaker for an authority.
func (c *Checker) getOrCreateCircuitBreaker(authority string) *gobreaker.CircuitBreaker {
	if !c.enableBreaker {
		return nil
	}

	c.mu.RLock()
	breaker, exists := c.breakers[authority]
	c.mu.RUnlock()

	if exists {
		return breaker
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if breaker, exists := c.breakers[authority]; exists {
		return breaker
	}

	settings := gobreaker.Settings{
		Name:        authority,
		MaxRequests: 3,
		Interval:    c.breakerTimeout,
		Timeout:     c.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if c.breakerFailures < 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(c.breakerFailures) && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.log.Warn("circuit breaker state changed",
				"authority", name,
				"from", from.String(),
				"to", to.String())
			if metricsEnabled.Load() {
				recordCircuitBreakerState(name, to)
			}
		},
	}

	breaker = gobreaker.NewCircuitBreaker(settings)
	c.breakers[authority] = breaker

	return breaker
}

// getOrCreateRateLimiter gets or creates a rate limiter for an authority.
// Returns nil if rate limiting is not configured.
func (c *Checker) getOrCreateRateLimiter(authority string) *rate.Limiter {
	if c.rateLimit <= 0 {
		return nil
	}

	c.mu.RLock()
	limiter, exists := c.rateLimiters[authority]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists := c.rateLimiters[authority]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.rateLimit), c.rateLimit*2)
	c.rateLimiters[authority] = limiter

	return limiter
}

// Check parses rawURL and probes it. Parse failures produce a Result with
// StatusInvalid rather than an error so that batch callers can report
// malformed and unreachable URLs uniformly.
func (c *Checker) Check(ctx context.Context, rawURL string) Result {
	u, err := nourl.Parse(rawURL)
	if err != nil {
		result := Result{
			URL:       rawURL,
			Timestamp: time.Now(),
			Status:    StatusInvalid,
			Error:     err.Error(),
		}
		if metricsEnabled.Load() {
			recordCheck(result)
		}
		return result
	}
	return c.CheckURL(ctx, u)
}

// CheckURL probes a parsed URL. HTTP and HTTPS URLs are probed with a GET
// request, falling back to a raw TCP dial when the transport fails. MQTT
// and MQTTS URLs are probed with a TCP dial only.
func (c *Checker) CheckURL(ctx context.Context, u nourl.URL) Result {
	startTime := time.Now()
	authority := authorityKey(u)

	c.log.WithURL(u).Debug("checking url", "authority", authority)

	limiter := c.getOrCreateRateLimiter(authority)
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return c.finishCheck(Result{
				URL:       u.String(),
				Host:      u.Host(),
				Port:      u.PortOrDefault(),
				Scheme:    u.Scheme().String(),
				Timestamp: time.Now(),
				Status:    StatusUnhealthy,
				Error:     "rate limit exceeded",
			}, startTime)
		}
	}

	breaker := c.getOrCreateCircuitBreaker(authority)

	var result Result

	if breaker != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					result = Result{
						URL:       u.String(),
						Host:      u.Host(),
						Port:      u.PortOrDefault(),
						Scheme:    u.Scheme().String(),
						Timestamp: time.Now(),
						Status:    StatusUnknown,
						Error:     fmt.Sprintf("internal error: panic during url check: %v", r),
					}
				}
			}()

			output, err := breaker.Execute(func() (interface{}, error) {
				res := c.performCheck(ctx, u)
				if res.Status == StatusUnhealthy {
					return res, fmt.Errorf("url check failed: %s", res.Error)
				}
				return res, nil
			})

			if err != nil {
				if errors.Is(err, gobreaker.ErrOpenState) {
					result = Result{
						URL:       u.String(),
						Host:      u.Host(),
						Port:      u.PortOrDefault(),
						Scheme:    u.Scheme().String(),
						Timestamp: time.Now(),
						Status:    StatusUnhealthy,
						Error:     "circuit breaker open - endpoint unavailable",
					}
				} else if res, ok := output.(Result); ok {
					result = res
				} else {
					result = Result{
						URL:       u.String(),
						Host:      u.Host(),
						Port:      u.PortOrDefault(),
						Scheme:    u.Scheme().String(),
						Timestamp: time.Now(),
						Status:    StatusUnhealthy,
						Error:     err.Error(),
					}
				}
			} else {
				if typedResult, ok := output.(Result); ok {
					result = typedResult
				} else {
					result = Result{
						URL:       u.String(),
						Host:      u.Host(),
						Port:      u.PortOrDefault(),
						Scheme:    u.Scheme().String(),
						Timestamp: time.Now(),
						Status:    StatusUnknown,
						Error:     "internal error: unexpected url check result type",
					}
				}
			}
		}()
	} else {
		result = c.performCheck(ctx, u)
	}

	return c.finishCheck(result, startTime)
}

// finishCheck stamps the response time and records metrics.
func (c *Checker) finishCheck(result Result, startTime time.Time) Result {
	result.ResponseTime = time.Since(startTime)

	if metricsEnabled.Load() {
		recordCheck(result)
	}

	return result
}

// performCheck executes the actual probe logic without circuit breaker.
func (c *Checker) performCheck(ctx context.Context, u nourl.URL) Result {
	result := Result{
		URL:       u.String(),
		Host:      u.Host(),
		Port:      u.PortOrDefault(),
		Scheme:    u.Scheme().String(),
		Timestamp: time.Now(),
	}

	switch u.Scheme() {
	case nourl.SchemeHTTP, nourl.SchemeHTTPS:
		if httpResult, ok := c.performHTTPProbe(ctx, u.String()); ok {
			result.CheckType = CheckTypeHTTP
			result.StatusCode = httpResult.statusCode
			result.Status = statusFromHTTPCode(httpResult.statusCode)
			if result.Status == StatusUnhealthy {
				result.Error = fmt.Sprintf("endpoint returned HTTP %d", httpResult.statusCode)
			}
			return result
		}
		// HTTP transport failed, fall back to a raw TCP probe so that
		// servers that listen but do not speak HTTP still count as up.
		return c.performTCPProbe(ctx, u, result)

	case nourl.SchemeMQTT, nourl.SchemeMQTTS:
		// No protocol handshake is attempted. A successful dial means a
		// broker (or at least something) is listening on the port.
		return c.performTCPProbe(ctx, u, result)

	default:
		result.Status = StatusUnknown
		result.Error = fmt.Sprintf("no probe available for scheme %s", u.Scheme())
		return result
	}
}

// httpProbeResult carries the raw outcome of a single HTTP GET probe.
type httpProbeResult struct {
	statusCode int
}

// performHTTPProbe issues a GET request against the URL. The second return
// value is false when the transport failed before a response was received.
func (c *Checker) performHTTPProbe(ctx context.Context, urlStr string) (httpProbeResult, bool) {
	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		c.log.Debug("failed to create probe request", "url", urlStr, "error", err)
		return httpProbeResult{}, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("http probe failed", "url", urlStr, "error", err)
		return httpProbeResult{}, false
	}

	// Drain a bounded amount of the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
	_ = resp.Body.Close()

	return httpProbeResult{statusCode: resp.StatusCode}, true
}

// performTCPProbe dials the URL's host and port.
func (c *Checker) performTCPProbe(ctx context.Context, u nourl.URL, result Result) Result {
	result.CheckType = CheckTypeTCP

	portCtx, cancel := context.WithTimeout(ctx, defaultTCPDialTimeout)
	defer cancel()

	address := fmt.Sprintf("%s:%d", u.Host(), u.PortOrDefault())
	dialer := net.Dialer{Timeout: defaultTCPDialTimeout}
	conn, err := dialer.DialContext(portCtx, "tcp", address)

	if err == nil {
		_ = conn.Close()
		result.Status = StatusHealthy
	} else {
		result.Status = StatusUnhealthy
		result.Error = fmt.Sprintf("port %d not listening on %s", u.PortOrDefault(), u.Host())
	}
	return result
}

// statusFromHTTPCode maps an HTTP status code to a reachability status.
// Any response at all proves the endpoint is up, so client errors such as
// 404 still count as healthy. Server errors indicate a broken backend.
func statusFromHTTPCode(statusCode int) Status {
	if statusCode >= 500 {
		return StatusUnhealthy
	}
	return StatusHealthy
}
