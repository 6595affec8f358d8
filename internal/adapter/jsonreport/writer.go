// Package jsonreport persists submission results as a pretty-printed
// JSON array.
package jsonreport

import (
	"encoding/json"
	"fmt"
	"os"

	"bytemomo/remora/internal/domain"
)

// Writer writes the raw result sequence to a single JSON file.
type Writer struct {
	Path string
}

var _ domain.ReportWriter = Writer{}

// New creates a writer targeting path.
func New(path string) Writer {
	return Writer{Path: path}
}

// Write serializes all results and returns the path written.
func (w Writer) Write(all []domain.SubmissionResult) (string, error) {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}
	return w.Path, nil
}
