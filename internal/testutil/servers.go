// Package testutil provides network fixtures for submission tests.
package testutil

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"bytemomo/remora/internal/domain"
)

// ScoringServer is an HTTP endpoint that answers every submission with
// a fixed status and body, counting the requests it receives.
type ScoringServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests int
	flags    []string
}

// NewScoringServer starts a scoring endpoint on a random local port.
func NewScoringServer(status int, body string) *ScoringServer {
	s := &ScoringServer{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		s.mu.Lock()
		s.requests++
		s.flags = append(s.flags, r.PostFormValue("flag"))
		s.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return s
}

// Target describes the server as a submission target.
func (s *ScoringServer) Target() domain.Target {
	u, _ := url.Parse(s.srv.URL)
	port, _ := strconv.Atoi(u.Port())
	return domain.Target{
		IP:       u.Hostname(),
		Port:     uint16(port),
		Path:     "/submit",
		Protocol: "http",
	}
}

// Requests returns how many submissions the server has seen.
func (s *ScoringServer) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Flags returns the raw flag form values received, in arrival order.
func (s *ScoringServer) Flags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.flags))
	copy(out, s.flags)
	return out
}

// Close shuts the server down.
func (s *ScoringServer) Close() {
	s.srv.Close()
}

// RefusedTarget returns a target on a local port with no listener, so
// every connection attempt is refused.
func RefusedTarget() (domain.Target, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return domain.Target{}, err
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		return domain.Target{}, err
	}
	return domain.Target{IP: "127.0.0.1", Port: uint16(port), Path: "/submit"}, nil
}
