package urlcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	profilesDirName  = ".nourl"
	profilesFileName = "check-profiles.yaml"
)

// Profile represents a named check configuration profile.
type Profile struct {
	Name                   string        `yaml:"name"`
	Timeout                time.Duration `yaml:"timeout"`
	CircuitBreaker         bool          `yaml:"circuitBreaker"`
	CircuitBreakerFailures int           `yaml:"circuitBreakerFailures"`
	CircuitBreakerTimeout  time.Duration `yaml:"circuitBreakerTimeout"`
	RateLimit              int           `yaml:"rateLimit"`
	Metrics                bool          `yaml:"metrics"`
	MetricsPort            int           `yaml:"metricsPort"`
}

// Profiles contains multiple named profiles.
type Profiles struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadProfiles loads check profiles from dir/.nourl/check-profiles.yaml.
// A missing file yields the built-in defaults; a present file is merged
// with them so unnamed profiles remain available.
func LoadProfiles(dir string) (*Profiles, error) {
	profilePath := filepath.Join(dir, profilesDirName, profilesFileName)

	data, err := os.ReadFile(profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return getDefaultProfiles(), nil
		}
		return nil, fmt.Errorf("failed to read check profiles: %w", err)
	}

	var profiles Profiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse check profiles: %w", err)
	}
	if profiles.Profiles == nil {
		profiles.Profiles = make(map[string]Profile)
	}

	defaults := getDefaultProfiles()
	for name, profile := range defaults.Profiles {
		if _, exists := profiles.Profiles[name]; !exists {
			profiles.Profiles[name] = profile
		}
	}

	return &profiles, nil
}

// getDefaultProfiles returns the built-in check profiles.
func getDefaultProfiles() *Profiles {
	return &Profiles{
		Profiles: map[string]Profile{
			"default": {
				Name:                   "default",
				Timeout:                DefaultTimeout,
				CircuitBreaker:         false,
				CircuitBreakerFailures: DefaultBreakerFailures,
				CircuitBreakerTimeout:  DefaultBreakerTimeout,
				RateLimit:              0,
				Metrics:                false,
				MetricsPort:            9090,
			},
			"strict": {
				Name:                   "strict",
				Timeout:                5 * time.Second,
				CircuitBreaker:         true,
				CircuitBreakerFailures: DefaultBreakerFailures,
				CircuitBreakerTimeout:  60 * time.Second,
				RateLimit:              10,
				Metrics:                true,
				MetricsPort:            9090,
			},
			"ci": {
				Name:                   "ci",
				Timeout:                30 * time.Second,
				CircuitBreaker:         false,
				CircuitBreakerFailures: 10,
				CircuitBreakerTimeout:  DefaultBreakerTimeout,
				RateLimit:              0,
				Metrics:                false,
				MetricsPort:            9090,
			},
		},
	}
}

// GetProfile returns a profile by name, or an error if not found.
func (p *Profiles) GetProfile(name string) (Profile, error) {
	profile, exists := p.Profiles[name]
	if !exists {
		return Profile{}, fmt.Errorf("profile '%s' not found. Available profiles: default, strict, ci", name)
	}
	return profile, nil
}

// CheckerConfig converts a profile into a checker config.
func (p Profile) CheckerConfig() Config {
	return Config{
		Timeout:              p.Timeout,
		EnableCircuitBreaker: p.CircuitBreaker,
		BreakerFailures:      p.CircuitBreakerFailures,
		BreakerTimeout:       p.CircuitBreakerTimeout,
		RateLimit:            p.RateLimit,
		EnableMetrics:        p.Metrics,
	}
}
