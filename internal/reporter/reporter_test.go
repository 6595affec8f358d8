package reporter

import (
	"testing"

	"bytemomo/remora/internal/domain"
)

func TestSummarizeEmptyResults(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Succeeded != 0 || s.Rate != 0 {
		t.Fatalf("Summarize(nil) = %+v, want zeroes", s)
	}
	if got := s.String(); got != "[stats] success: 0/0 | rate: 0.0%" {
		t.Errorf("String() = %q", got)
	}
}

func TestSummarizeCountsAndRate(t *testing.T) {
	results := []domain.SubmissionResult{
		{Target: "10.0.0.1:80", Success: true},
		{Target: "10.0.0.1:80", Success: false},
		{Target: "10.0.0.2:80", Success: true},
	}

	s := Summarize(results)
	if s.Total != 3 || s.Succeeded != 2 {
		t.Fatalf("Summarize = %+v", s)
	}
	if got := s.String(); got != "[stats] success: 2/3 | rate: 66.7%" {
		t.Errorf("String() = %q", got)
	}
}
