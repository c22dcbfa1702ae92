package urlcheck

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

var (
	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nourl_check_duration_seconds",
			Help:    "Duration of URL checks in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"host", "status", "check_type"},
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourl_check_total",
			Help: "Total number of URL checks performed",
		},
		[]string{"host", "status", "check_type"},
	)

	checkErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourl_check_errors_total",
			Help: "Total number of URL check errors",
		},
		[]string{"host", "error_type"},
	)

	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nourl_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"authority"},
	)

	checkResponseCode = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nourl_check_http_status_total",
			Help: "HTTP status codes from URL checks",
		},
		[]string{"host", "status_code"},
	)
)

// recordCheck records metrics for a check result.
func recordCheck(result Result) {
	labels := prometheus.Labels{
		"host":       result.Host,
		"status":     string(result.Status),
		"check_type": string(result.CheckType),
	}

	checkDuration.With(labels).Observe(result.ResponseTime.Seconds())
	checkTotal.With(labels).Inc()

	if result.Error != "" {
		errorType := getErrorType(result.Error)
		checkErrors.With(prometheus.Labels{
			"host":       result.Host,
			"error_type": errorType,
		}).Inc()
	}

	if result.StatusCode > 0 {
		checkResponseCode.With(prometheus.Labels{
			"host":        result.Host,
			"status_code": http.StatusText(result.StatusCode),
		}).Inc()
	}
}

// recordCircuitBreakerState records the circuit breaker state.
func recordCircuitBreakerState(authority string, state gobreaker.State) {
	var stateValue float64
	switch state {
	case gobreaker.StateClosed:
		stateValue = 0
	case gobreaker.StateHalfOpen:
		stateValue = 1
	case gobreaker.StateOpen:
		stateValue = 2
	}

	circuitBreakerState.With(prometheus.Labels{
		"authority": authority,
	}).Set(stateValue)
}

// getErrorType categorizes error messages for better metrics.
func getErrorType(errMsg string) string {
	switch {
	case containsAny(errMsg, "nourl:"):
		return "invalid_url"
	case containsAny(errMsg, "timeout", "deadline", "timed out"):
		return "timeout"
	case containsAny(errMsg, "connection refused", "no connection", "unreachable"):
		return "connection_refused"
	case containsAny(errMsg, "circuit breaker", "circuit open", "too many failures"):
		return "circuit_breaker"
	case containsAny(errMsg, "context canceled", "canceled"):
		return "canceled"
	case containsAny(errMsg, "500", "503", "502", "504"):
		return "server_error"
	case containsAny(errMsg, "401", "403"):
		return "auth_error"
	case containsAny(errMsg, "404"):
		return "not_found"
	case containsAny(errMsg, "rate limit"):
		return "rate_limited"
	case containsAny(errMsg, "port"):
		return "port_error"
	default:
		return "unknown"
	}
}

// containsAny checks if a string contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// ServeMetrics starts a Prometheus metrics HTTP server.
func ServeMetrics(port int) error {
	server := CreateMetricsServer(port)
	return server.ListenAndServe()
}

// CreateMetricsServer creates a configured HTTP server for Prometheus metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
