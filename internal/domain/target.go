package domain

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const defaultTargetTimeout = 3 * time.Second

// Target is one configured scoring endpoint. Immutable for the duration
// of a run; loaded once at startup from configuration.
type Target struct {
	IP       string `yaml:"ip"`
	Port     uint16 `yaml:"port"`
	Path     string `yaml:"path"`
	Protocol string `yaml:"protocol,omitempty"`

	// TimeoutSeconds is the per-request timeout in whole seconds.
	// Zero means the 3s default.
	TimeoutSeconds int `yaml:"timeout,omitempty"`

	Headers map[string]string `yaml:"headers,omitempty"`
}

// Addr returns the host:port identifier used in results and logs.
func (t Target) Addr() string {
	return net.JoinHostPort(t.IP, strconv.Itoa(int(t.Port)))
}

// Scheme returns the transport scheme, defaulting to plain HTTP.
func (t Target) Scheme() string {
	if t.Protocol == "" {
		return "http"
	}
	return t.Protocol
}

// URL composes the full submission URL.
func (t Target) URL() string {
	return fmt.Sprintf("%s://%s%s", t.Scheme(), t.Addr(), t.Path)
}

// Timeout returns the per-request timeout.
func (t Target) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return defaultTargetTimeout
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// Validate checks the fields required to compose a submission URL.
func (t Target) Validate() error {
	if t.IP == "" {
		return fmt.Errorf("target.ip is required")
	}
	if t.Port == 0 {
		return fmt.Errorf("target.port is required")
	}
	switch t.Scheme() {
	case "http", "https":
	default:
		return fmt.Errorf("target.protocol must be http or https, got %q", t.Protocol)
	}
	return nil
}
