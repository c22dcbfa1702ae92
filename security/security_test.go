package security

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "valid path",
			path:    "/tmp/test",
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
		{
			name:    "path with dots",
			path:    "../../../etc/passwd",
			wantErr: true,
		},
		{
			name:    "relative path with dots",
			path:    "configs/../secrets.yaml",
			wantErr: true,
		},
		{
			name:    "current directory",
			path:    ".",
			wantErr: false,
		},
		{
			name:    "relative file",
			path:    "endpoints.yaml",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePathSentinels(t *testing.T) {
	if err := ValidatePath(""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath for empty path, got: %v", err)
	}
	if err := ValidatePath("../escape"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("expected ErrPathTraversal, got: %v", err)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		errMatch string
	}{
		{
			name:    "valid name",
			input:   "api",
			wantErr: false,
		},
		{
			name:    "valid with hyphen",
			input:   "api-gateway",
			wantErr: false,
		},
		{
			name:    "valid with dots",
			input:   "api.internal.v2",
			wantErr: false,
		},
		{
			name:    "valid with underscore",
			input:   "msg_broker",
			wantErr: false,
		},
		{
			name:    "valid single char",
			input:   "a",
			wantErr: false,
		},
		{
			name:     "empty",
			input:    "",
			wantErr:  true,
			errMatch: "cannot be empty",
		},
		{
			name:     "too long",
			input:    strings.Repeat("a", 64),
			wantErr:  true,
			errMatch: "maximum length",
		},
		{
			name:    "max length ok",
			input:   strings.Repeat("a", 63),
			wantErr: false,
		},
		{
			name:     "starts with hyphen",
			input:    "-api",
			wantErr:  true,
			errMatch: "alphanumeric",
		},
		{
			name:     "contains slash",
			input:    "api/v1",
			wantErr:  true,
			errMatch: "alphanumeric",
		},
		{
			name:     "contains space",
			input:    "my api",
			wantErr:  true,
			errMatch: "alphanumeric",
		},
		{
			name:     "shell metacharacters",
			input:    "api;rm",
			wantErr:  true,
			errMatch: "alphanumeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("expected ErrInvalidName, got: %v", err)
				}
				if tt.errMatch != "" && !strings.Contains(err.Error(), tt.errMatch) {
					t.Errorf("expected error containing %q, got: %v", tt.errMatch, err)
				}
			}
		})
	}
}
