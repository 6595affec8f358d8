package flagsource

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"bytemomo/remora/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	flagA = "flag{aaaaaaaa-1111-2222-3333-444444444444}"
	flagB = "flag{bbbbbbbb-1111-2222-3333-444444444444}"
	flagC = "flag{cccccccc-1111-2222-3333-444444444444}"
)

func discardLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestLoadFileKeepsValidLinesInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flags.txt")

	content := flagA + "\n" +
		"not a flag\n" +
		"  " + flagB + "  \n" +
		"flag{tooshort-1111-2222-3333-444444444444}\n" +
		flagC + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got := Source{Log: discardLog()}.Load(path)
	want := []domain.Flag{flagA, flagB, flagC}

	if len(got) != len(want) {
		t.Fatalf("got %d flags, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flag %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadFileKeepsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flags.txt")
	if err := os.WriteFile(path, []byte(flagA+"\n"+flagA+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got := Source{Log: discardLog()}.Load(path)
	if len(got) != 2 {
		t.Fatalf("expected duplicates kept, got %d flags", len(got))
	}
}

func TestLoadMissingFileFallsBackToStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.WriteString(flagA + ", " + flagB + " " + flagC); err != nil {
		t.Fatal(err)
	}
	w.Close()
	defer r.Close()

	got := Source{Log: discardLog(), Stdin: r}.Load(filepath.Join(t.TempDir(), "absent.txt"))
	if len(got) != 3 {
		t.Fatalf("expected 3 flags from piped stdin, got %d: %v", len(got), got)
	}
}

func TestTokensMixedSeparators(t *testing.T) {
	got := Tokens(flagA + ",\n " + flagB + "\t" + flagC + ", junk, flag{}")
	if len(got) != 3 {
		t.Fatalf("got %d flags, want 3: %v", len(got), got)
	}
	if got[0] != flagA || got[1] != flagB || got[2] != flagC {
		t.Errorf("order not preserved: %v", got)
	}
}

func TestTokensEmptyInput(t *testing.T) {
	if got := Tokens(""); len(got) != 0 {
		t.Errorf("Tokens(\"\") = %v, want empty", got)
	}
}
