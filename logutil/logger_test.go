package logutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmja/nourl"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("mycomponent")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.Component() != "mycomponent" {
		t.Errorf("expected component 'mycomponent', got %q", logger.Component())
	}

	logger.Info("hello")
	output := buf.String()
	if !strings.Contains(output, "component=mycomponent") {
		t.Errorf("expected output to contain component=mycomponent, got: %s", output)
	}
}

func TestWithURLAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	u := nourl.MustParse("http://localhost:8088/foo")
	logger := NewLogger("comp").WithURL(u)
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=comp") {
		t.Errorf("expected component=comp in output, got: %s", output)
	}
	if !strings.Contains(output, "url=http://localhost:8088/foo") {
		t.Errorf("expected reassembled url in output, got: %s", output)
	}
}

func TestWithURLSynthesizesPath(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	// A URL without a path logs with the synthesized "/".
	logger := NewLogger("comp").WithURL(nourl.MustParse("https://example.com"))
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "url=https://example.com/") {
		t.Errorf("expected url with synthesized path in output, got: %s", output)
	}
}

func TestWithOperationAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("comp").WithOperation("check")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=comp") {
		t.Errorf("expected component=comp in output, got: %s", output)
	}
	if !strings.Contains(output, "operation=check") {
		t.Errorf("expected operation=check in output, got: %s", output)
	}
}

func TestWithFieldsAddsArbitraryFields(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("comp").WithFields("attempt", 3, "timeout", "2s")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "attempt=3") {
		t.Errorf("expected attempt=3 in output, got: %s", output)
	}
	if !strings.Contains(output, "timeout=2s") {
		t.Errorf("expected timeout=2s in output, got: %s", output)
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	u := nourl.MustParse("mqtt://broker:1884")
	logger := NewLogger("urlcheck").WithURL(u).WithOperation("probe")
	logger.Info("chain test")

	output := buf.String()
	if !strings.Contains(output, "component=urlcheck") {
		t.Errorf("expected component=urlcheck, got: %s", output)
	}
	if !strings.Contains(output, "url=mqtt://broker:1884/") {
		t.Errorf("expected url=mqtt://broker:1884/, got: %s", output)
	}
	if !strings.Contains(output, "operation=probe") {
		t.Errorf("expected operation=probe, got: %s", output)
	}
	// Component should still be the original
	if logger.Component() != "urlcheck" {
		t.Errorf("expected component 'urlcheck', got %q", logger.Component())
	}
}

func TestComponentReturnsCorrectName(t *testing.T) {
	SetupLogger(false, false)

	logger := NewLogger("test-component")
	if logger.Component() != "test-component" {
		t.Errorf("expected 'test-component', got %q", logger.Component())
	}

	// Chaining should preserve the component name
	chained := logger.WithOperation("op").WithFields("k", "v")
	if chained.Component() != "test-component" {
		t.Errorf("expected 'test-component' after chaining, got %q", chained.Component())
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, false) // debug=true to capture all levels

			logger := NewLogger("lvl-test")
			tt.logFunc(logger, "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "level test msg") {
				t.Errorf("expected message in output, got: %s", output)
			}
		})
	}
}

func TestLogLevelsStructured(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, true) // structured JSON

	logger := NewLogger("json-test").WithURL(nourl.MustParse("http://localhost"))
	logger.Info("structured msg", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"component":"json-test"`) {
		t.Errorf("expected component in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"url":"http://localhost/"`) {
		t.Errorf("expected url in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected count in JSON output, got: %s", output)
	}
}
