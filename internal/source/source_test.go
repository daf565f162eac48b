package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	doc, err := File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if doc.Name != "notes.txt" || doc.Text != "one\ntwo\n" {
		t.Errorf("File = %+v", doc)
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCommand(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc, err := Command(ctx, `printf 'a\033[1mb\033[0m\nc\n'`, 80, 24)
	if err != nil {
		t.Skipf("no pseudo-terminal available: %v", err)
	}
	if doc.Text != "ab\nc\n" {
		t.Errorf("Command text = %q, want %q", doc.Text, "ab\nc\n")
	}
}

func TestEscapeSequenceStripping(t *testing.T) {
	in := "\x1b]0;title\a\x1b[31mred\x1b[0m \x1b[?25lplain"
	if got := escapeSequence.ReplaceAllString(in, ""); got != "red plain" {
		t.Errorf("stripped = %q", got)
	}
}
