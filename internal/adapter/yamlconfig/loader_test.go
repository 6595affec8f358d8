package yamlconfig

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func discardLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestLoad_Basic(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "targets.yaml")

	content := `
targets:
  - ip: "127.0.0.1"
    port: 8000
    path: "/flag"
    protocol: "http"
    timeout: 2
    headers:
      X-Team-Token: "tok-123"
max_workers: 10
max_retries: 3
verify_ssl: true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(discardLog(), cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(cfg.Targets))
	}
	tgt := cfg.Targets[0]
	if tgt.URL() != "http://127.0.0.1:8000/flag" {
		t.Errorf("unexpected target URL %q", tgt.URL())
	}
	if tgt.Headers["X-Team-Token"] != "tok-123" {
		t.Errorf("headers not parsed: %v", tgt.Headers)
	}
	if cfg.MaxWorkers != 10 || cfg.MaxRetries != 3 {
		t.Errorf("knobs not parsed: workers=%d retries=%d", cfg.MaxWorkers, cfg.MaxRetries)
	}
	if !cfg.VerifySSL {
		t.Error("verify_ssl not parsed")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "targets.yaml")

	content := `
targets:
  - ip: "127.0.0.1"
    port: 8000
    path: "/flag"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(discardLog(), cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MaxWorkers != 5 {
		t.Errorf("default max_workers = %d, want 5", cfg.MaxWorkers)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("default max_retries = %d, want 2", cfg.MaxRetries)
	}
	if cfg.VerifySSL {
		t.Error("verify_ssl should default to false")
	}
}

func TestLoad_MissingFileFallsBackToBuiltin(t *testing.T) {
	cfg, err := Load(discardLog(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("builtin config should carry 2 example targets, got %d", len(cfg.Targets))
	}
	if cfg.Targets[1].Scheme() != "https" {
		t.Errorf("second builtin target should be https, got %q", cfg.Targets[1].Scheme())
	}
}

func TestLoad_EmptyPathFallsBackToBuiltin(t *testing.T) {
	cfg, err := Load(discardLog(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("builtin config should carry 2 example targets, got %d", len(cfg.Targets))
	}
}

func TestLoad_MalformedYAMLIsAnError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "targets.yaml")
	if err := os.WriteFile(cfgPath, []byte("targets: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(discardLog(), cfgPath); err == nil {
		t.Fatal("expected parse error")
	}
}
