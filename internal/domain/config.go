package domain

import (
	"errors"
	"fmt"
)

// ErrNoTargets is returned when a run is configured without any scoring
// endpoint. It aborts the run before any network activity.
var ErrNoTargets = errors.New("at least one target required")

const (
	// DefaultMaxWorkers bounds concurrently in-flight submissions.
	DefaultMaxWorkers = 5

	// DefaultMaxRetries is the attempt budget per submission task.
	DefaultMaxRetries = 2
)

// RunConfig is the process-wide configuration for one submission run.
// Read-only after loading.
type RunConfig struct {
	Targets []Target `yaml:"targets"`

	// MaxWorkers is the worker pool size. Default 5.
	MaxWorkers int `yaml:"max_workers,omitempty"`

	// MaxRetries is the number of attempts per (flag, target) task.
	// Default 2.
	MaxRetries int `yaml:"max_retries,omitempty"`

	// VerifySSL enables TLS certificate verification. Default false;
	// contest scoring endpoints typically run self-signed certificates.
	VerifySSL bool `yaml:"verify_ssl,omitempty"`
}

// ApplyDefaults fills unset numeric knobs. Applied once at load time.
func (c *RunConfig) ApplyDefaults() {
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
}

// Validate rejects configurations no run can be built from.
func (c *RunConfig) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid target at index %d: %w", i, err)
		}
	}
	return nil
}
