// Package reporter aggregates submission results into run statistics.
package reporter

import (
	"fmt"

	"bytemomo/remora/internal/domain"
)

// Summary is the aggregate outcome of one run.
type Summary struct {
	Total     int
	Succeeded int
	Rate      float64
}

// Summarize computes the run statistics. An empty result sequence yields
// a zero rate rather than a division error.
func Summarize(results []domain.SubmissionResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		}
	}
	if s.Total > 0 {
		s.Rate = float64(s.Succeeded) / float64(s.Total) * 100
	}
	return s
}

// String renders the one-line human-readable summary.
func (s Summary) String() string {
	return fmt.Sprintf("[stats] success: %d/%d | rate: %.1f%%", s.Succeeded, s.Total, s.Rate)
}
