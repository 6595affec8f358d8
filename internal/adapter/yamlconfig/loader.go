package yamlconfig

import (
	"fmt"
	"os"

	"bytemomo/remora/internal/domain"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// defaultConfig is the built-in fallback used when no config file is
// given or the given one cannot be read. The two targets are examples
// and are expected to be replaced per game.
const defaultConfig = `
targets:
  - ip: "192.168.1.100"
    port: 80
    path: "/submit.php"
    protocol: "http"
    timeout: 3
    headers:
      User-Agent: "remora/1.0"

  - ip: "10.0.0.2"
    port: 8080
    path: "/api/submit"
    protocol: "https"
    timeout: 5
`

// Load reads the run configuration from path. An absent or unreadable
// file falls back to the built-in default config with a warning; a file
// that exists but does not parse is an error. Defaults are applied once
// here.
func Load(log *logrus.Entry, path string) (*domain.RunConfig, error) {
	data, source := readConfig(log, path)

	var cfg domain.RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	cfg.ApplyDefaults()

	log.WithFields(logrus.Fields{
		"source":      source,
		"targets":     len(cfg.Targets),
		"max_workers": cfg.MaxWorkers,
		"max_retries": cfg.MaxRetries,
	}).Info("Configuration loaded")
	return &cfg, nil
}

func readConfig(log *logrus.Entry, path string) ([]byte, string) {
	if path == "" {
		log.Warn("No config file given, using built-in defaults")
		return []byte(defaultConfig), "builtin"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("config_path", path).Warn("Config file unreadable, using built-in defaults")
		return []byte(defaultConfig), "builtin"
	}
	return data, path
}
