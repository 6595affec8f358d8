// Package markdownreport renders a per-target submission summary as a
// Markdown document.
package markdownreport

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"bytemomo/remora/internal/domain"
	"bytemomo/remora/internal/reporter"
)

// Writer writes a Markdown summary of one run.
type Writer struct {
	Path string
}

var _ domain.ReportWriter = Writer{}

// New creates a writer targeting path.
func New(path string) Writer {
	return Writer{Path: path}
}

type targetStats struct {
	total     int
	succeeded int
}

// Write renders the summary tables and returns the path written.
func (w Writer) Write(all []domain.SubmissionResult) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Submission Summary\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().UTC().Format(time.RFC3339)))

	overall := reporter.Summarize(all)
	sb.WriteString(fmt.Sprintf("Total: %d | Succeeded: %d | Rate: %.1f%%\n\n", overall.Total, overall.Succeeded, overall.Rate))

	byTarget := make(map[string]targetStats)
	for _, r := range all {
		entry := byTarget[r.Target]
		entry.total++
		if r.Success {
			entry.succeeded++
		}
		byTarget[r.Target] = entry
	}

	targets := make([]string, 0, len(byTarget))
	for t := range byTarget {
		targets = append(targets, t)
	}
	sort.Strings(targets)

	sb.WriteString("## Results by Target\n\n")
	sb.WriteString("| Target | Submissions | Succeeded |\n")
	sb.WriteString("|--------|-------------|-----------|\n")
	for _, t := range targets {
		stats := byTarget[t]
		sb.WriteString(fmt.Sprintf("| %s | %d | %d |\n", t, stats.total, stats.succeeded))
	}
	sb.WriteString("\n")

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Target | Flag | Status | Attempt | Result |\n")
	sb.WriteString("|--------|------|--------|---------|--------|\n")
	for _, r := range all {
		status := "-"
		if r.StatusCode != 0 {
			status = fmt.Sprintf("%d", r.StatusCode)
		}
		outcome := "Failed"
		if r.Success {
			outcome = "Succeeded"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s |\n", r.Target, r.Flag, status, r.Attempt, outcome))
	}

	if err := os.WriteFile(w.Path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write summary markdown: %w", err)
	}
	return w.Path, nil
}
