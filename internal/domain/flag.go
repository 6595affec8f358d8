package domain

import (
	"regexp"
	"strings"
)

// Flag is a validated scoring token. Values are only constructed from
// input that passed ValidFlag and are never mutated afterwards.
type Flag string

// flagPattern is the canonical token shape: a literal flag{...} wrapper
// around a hyphenated 8-4-4-4-12 hex body. The whole trimmed candidate
// must match, not merely contain it.
var flagPattern = regexp.MustCompile(`(?i)^flag\{[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}\}$`)

// ValidFlag reports whether s, after trimming surrounding whitespace,
// is exactly one canonical flag token.
func ValidFlag(s string) bool {
	return flagPattern.MatchString(strings.TrimSpace(s))
}

// Redact truncates a flag to a short non-reversible preview for logs
// and results. Full tokens must never reach a log sink.
func Redact(f Flag) string {
	s := string(f)
	if len(s) > 8 {
		s = s[:8]
	}
	return s + "..."
}
