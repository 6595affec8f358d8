// Package flagsource extracts validated flags from an input file or
// from piped standard input.
package flagsource

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"bytemomo/remora/internal/domain"

	"github.com/sirupsen/logrus"
)

// tokenSep splits piped input on runs of whitespace and/or commas.
var tokenSep = regexp.MustCompile(`[\s,]+`)

// Source loads flags for one run. Stdin is injectable so tests can feed
// pipes; when nil, the process stdin is used.
type Source struct {
	Log   *logrus.Entry
	Stdin *os.File
}

// Load returns the validated flags, preferring the input file when one
// is given. Encounter order is preserved and duplicates are kept.
// Failures are non-fatal: an unreadable file or interactive stdin both
// yield an empty sequence.
func (s Source) Load(path string) []domain.Flag {
	var flags []domain.Flag
	if path != "" && fileExists(path) {
		flags = s.fromFile(path)
		s.Log.WithFields(logrus.Fields{
			"count":  len(flags),
			"source": path,
		}).Info("Loaded flags from file")
	} else {
		flags = s.fromStdin()
		s.Log.WithField("count", len(flags)).Info("Loaded flags from stdin")
	}

	if len(flags) == 0 {
		s.Log.Warn("No valid flags found")
	}
	return flags
}

// fromFile reads one candidate flag per line. Invalid lines are skipped
// silently; a read failure is logged and yields no flags.
func (s Source) fromFile(path string) []domain.Flag {
	f, err := os.Open(path)
	if err != nil {
		s.Log.WithError(err).WithField("file", path).Error("Failed to read flag file")
		return nil
	}
	defer f.Close()

	var flags []domain.Flag
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if domain.ValidFlag(line) {
			flags = append(flags, domain.Flag(line))
		}
	}
	if err := scanner.Err(); err != nil {
		s.Log.WithError(err).WithField("file", path).Error("Failed to read flag file")
		return nil
	}
	return flags
}

// fromStdin reads the whole of standard input when it is piped or
// redirected. Interactive terminals are skipped so the process never
// blocks waiting for a human.
func (s Source) fromStdin() []domain.Flag {
	stdin := s.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	fi, err := stdin.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice != 0 {
		return nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		s.Log.WithError(err).Error("Failed to read stdin")
		return nil
	}
	return Tokens(string(data))
}

// Tokens splits raw text on whitespace/comma runs and keeps the valid
// flags, in encounter order.
func Tokens(data string) []domain.Flag {
	var flags []domain.Flag
	for _, item := range tokenSep.Split(strings.TrimSpace(data), -1) {
		if domain.ValidFlag(item) {
			flags = append(flags, domain.Flag(item))
		}
	}
	return flags
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
