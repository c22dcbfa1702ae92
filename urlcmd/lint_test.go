package urlcmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rmja/nourl/testutil"
)

const cleanManifest = `endpoints:
  - name: api
    url: https://api.example.com/v1
  - name: broker
    url: mqtts://broker.example.com:9883
`

const brokenManifest = `endpoints:
  - name: legacy
    url: gopher://old.example.com/
  - name: api
    url: https://api.example.com/v1
`

func TestLintCommand_CleanManifest(t *testing.T) {
	resetFormat(t)

	path := testutil.WriteTempFile(t, "endpoints.yaml", cleanManifest)

	cmd := NewLintCommand(nil)
	cmd.SetArgs([]string{"--file", path})

	var execErr error
	output := testutil.CaptureOutput(t, func() error {
		execErr = cmd.Execute()
		return execErr
	})

	if execErr != nil {
		t.Fatalf("expected clean manifest to pass, got: %v", execErr)
	}
	if !strings.Contains(output, "look good") {
		t.Errorf("expected success message, got:\n%s", output)
	}
}

func TestLintCommand_Issues(t *testing.T) {
	resetFormat(t)

	path := testutil.WriteTempFile(t, "endpoints.yaml", brokenManifest)

	cmd := NewLintCommand(nil)
	cmd.SetArgs([]string{"--file", path})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	var execErr error
	output := testutil.CaptureOutput(t, func() error {
		execErr = cmd.Execute()
		return execErr
	})

	if execErr == nil {
		t.Fatal("expected error for manifest with issues")
	}
	if !strings.Contains(execErr.Error(), "1 issue(s)") {
		t.Errorf("expected issue count in error, got: %v", execErr)
	}
	if !strings.Contains(output, "legacy") {
		t.Errorf("expected offending endpoint name in output, got:\n%s", output)
	}
}

func TestLintCommand_JSONOutput(t *testing.T) {
	resetFormat(t)

	path := testutil.WriteTempFile(t, "endpoints.yaml", brokenManifest)

	format := "json"
	cmd := NewLintCommand(&format)
	cmd.SetArgs([]string{"--file", path})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	output := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})

	var issues []lintIssue
	if err := json.Unmarshal([]byte(output), &issues); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, output)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Endpoint != "legacy" {
		t.Errorf("expected issue on 'legacy', got %q", issues[0].Endpoint)
	}
	if !strings.Contains(issues[0].Error, "unsupported scheme") {
		t.Errorf("expected unsupported scheme error, got %q", issues[0].Error)
	}
}

func TestLintCommand_MissingFile(t *testing.T) {
	resetFormat(t)

	cmd := NewLintCommand(nil)
	cmd.SetArgs([]string{"--file", "does-not-exist.yaml"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	if !strings.Contains(err.Error(), "failed to read manifest") {
		t.Errorf("expected read error, got: %v", err)
	}
}
