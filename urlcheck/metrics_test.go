package urlcheck

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		errMsg string
		want   string
	}{
		{"nourl: invalid scheme", "invalid_url"},
		{"nourl: invalid port", "invalid_url"},
		{"context deadline exceeded", "timeout"},
		{"dial tcp: connection refused", "connection_refused"},
		{"circuit breaker open - endpoint unavailable", "circuit_breaker"},
		{"context canceled", "canceled"},
		{"endpoint returned HTTP 503", "server_error"},
		{"endpoint returned HTTP 401", "auth_error"},
		{"endpoint returned HTTP 404", "not_found"},
		{"rate limit exceeded", "rate_limited"},
		{"port 8080 not listening on localhost", "port_error"},
		{"something else entirely", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getErrorType(tt.errMsg), "category for %q", tt.errMsg)
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("connection refused by peer", "refused"))
	assert.True(t, containsAny("abc", "x", "y", "c"))
	assert.False(t, containsAny("abc", "x", "y"))
	assert.False(t, containsAny("abc"))
}

func TestCreateMetricsServer(t *testing.T) {
	server := CreateMetricsServer(9191)

	assert.Equal(t, ":9191", server.Addr)
	require.NotNil(t, server.Handler)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecordCheck(t *testing.T) {
	// Recording must tolerate partial results, such as parse failures
	// that have no host or check type.
	recordCheck(Result{
		URL:    "ftp://example.com/",
		Status: StatusInvalid,
		Error:  "nourl: unsupported scheme",
	})

	recordCheck(Result{
		URL:        "http://example.com/",
		Host:       "example.com",
		Port:       80,
		Scheme:     "http",
		Status:     StatusHealthy,
		CheckType:  CheckTypeHTTP,
		StatusCode: 200,
	})
}
