// Package security provides security utilities for path validation, input
// sanitization, and protection against common vulnerabilities like path
// traversal attacks.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attack attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInvalidName indicates an invalid endpoint name.
	ErrInvalidName = errors.New("invalid name")

	// namePattern validates endpoint names - alphanumeric start, then alphanumeric, underscore, hyphen, or dot.
	// Max 63 characters to align with DNS label limits.
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,62}$`)
)

// ValidatePath checks if a path is safe to use.
// It prevents path traversal attacks, symbolic link attacks, and validates the path is within allowed bounds.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	// Check for path traversal attempts before resolving
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	// Clean the path
	cleanPath := filepath.Clean(absPath)

	// After cleaning, check again for ..
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("%w: cleaned path contains parent directory reference", ErrPathTraversal)
	}

	// Resolve symbolic links to detect link-based attacks
	// This prevents attackers from using symlinks to escape allowed directories
	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		// If the path doesn't exist yet, that's okay - we're validating the path structure
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		// Path doesn't exist, use cleaned path for validation
		resolvedPath = cleanPath
	}

	// Verify resolved path doesn't contain ..
	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateName validates that an endpoint name is safe and well-formed.
// Names must:
// - Start with an alphanumeric character
// - Contain only alphanumeric characters, underscores, hyphens, or dots
// - Be at most 63 characters (DNS label limit)
// - Not contain path traversal sequences
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > 63 {
		return fmt.Errorf("%w: exceeds maximum length of 63 characters", ErrInvalidName)
	}

	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: must start with alphanumeric and contain only alphanumeric, underscore, hyphen, or dot", ErrInvalidName)
	}

	// Extra check for path traversal attempts
	if strings.Contains(name, "..") || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: contains invalid path characters", ErrInvalidName)
	}

	return nil
}
