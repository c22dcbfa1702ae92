package endpoints

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rmja/nourl"
	"github.com/rmja/nourl/security"
)

// Endpoint is a single named URL in a manifest.
type Endpoint struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Manifest is a list of endpoints loaded from a YAML file.
type Manifest struct {
	Endpoints []Endpoint `yaml:"endpoints" json:"endpoints"`
}

// Load reads and parses an endpoint manifest from path.
// The path is validated against traversal attacks before it is read.
func Load(path string) (*Manifest, error) {
	// Validate path
	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid manifest path: %w", err)
	}

	// #nosec G304 -- Path validated by security.ValidatePath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// Issue describes a single problem found in a manifest.
type Issue struct {
	// Endpoint identifies the offending entry, either by name or by its
	// position as "endpoints[i]" when the name is missing.
	Endpoint string
	Err      error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %v", i.Endpoint, i.Err)
}

// Unwrap lets errors.Is reach through an Issue to its cause.
func (i Issue) Unwrap() error {
	return i.Err
}

// Lint validates every endpoint in the manifest and returns all issues
// found. It does not stop at the first problem: names are checked for
// well-formedness and uniqueness, and URLs must parse under the strict
// grammar. An empty slice means the manifest is clean.
func Lint(m *Manifest) []Issue {
	var issues []Issue

	seen := make(map[string]bool, len(m.Endpoints))
	for i, ep := range m.Endpoints {
		label := ep.Name
		if label == "" {
			label = fmt.Sprintf("endpoints[%d]", i)
		}

		if err := security.ValidateName(ep.Name); err != nil {
			issues = append(issues, Issue{Endpoint: label, Err: err})
		} else if seen[ep.Name] {
			issues = append(issues, Issue{Endpoint: label, Err: fmt.Errorf("duplicate endpoint name %q", ep.Name)})
		} else {
			seen[ep.Name] = true
		}

		if _, err := nourl.Parse(ep.URL); err != nil {
			issues = append(issues, Issue{Endpoint: label, Err: err})
		}
	}

	return issues
}
