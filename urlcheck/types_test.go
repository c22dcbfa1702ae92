package urlcheck

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValues(t *testing.T) {
	statuses := []Status{
		StatusHealthy,
		StatusUnhealthy,
		StatusInvalid,
		StatusUnknown,
	}

	for _, status := range statuses {
		assert.NotEmpty(t, string(status))
	}
}

func TestCheckTypeValues(t *testing.T) {
	types := []CheckType{
		CheckTypeHTTP,
		CheckTypeTCP,
	}

	for _, checkType := range types {
		assert.NotEmpty(t, string(checkType))
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    Summary
	}{
		{
			name:    "empty",
			results: nil,
			want:    Summary{},
		},
		{
			name: "all healthy",
			results: []Result{
				{Status: StatusHealthy},
				{Status: StatusHealthy},
			},
			want: Summary{Total: 2, Healthy: 2},
		},
		{
			name: "mixed",
			results: []Result{
				{Status: StatusHealthy},
				{Status: StatusUnhealthy},
				{Status: StatusInvalid},
				{Status: StatusUnknown},
				{Status: Status("weird")},
			},
			want: Summary{Total: 5, Healthy: 1, Unhealthy: 1, Invalid: 1, Unknown: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.results))
		})
	}
}

func TestResultJSONShape(t *testing.T) {
	result := Result{
		URL:          "http://example.com/",
		Host:         "example.com",
		Port:         80,
		Scheme:       "http",
		Status:       StatusHealthy,
		CheckType:    CheckTypeHTTP,
		StatusCode:   200,
		ResponseTime: 5 * time.Millisecond,
		Timestamp:    time.Now(),
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"checkType":"http"`)
	assert.Contains(t, string(data), `"statusCode":200`)
	assert.NotContains(t, string(data), `"error"`, "empty error should be omitted")
}
