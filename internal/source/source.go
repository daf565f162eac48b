// Package source loads the documents shown by the demo viewer: files,
// piped standard input and the output of commands run on a pseudo-terminal.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Document is a named piece of text.
type Document struct {
	Name string
	Text string
}

// File reads a document from disk.
func File(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Document{Name: filepath.Base(path), Text: string(data)}, nil
}

// Piped reports whether standard input is redirected from a file or pipe.
func Piped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// Stdin reads standard input to the end.
func Stdin() (Document, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return Document{Name: "stdin", Text: string(data)}, nil
}

var escapeSequence = regexp.MustCompile(`\x1b(\[[0-9;?]*[ -/]*[@-~]|\][^\a]*\a|[@-Z\\-_])`)

// Command runs command through the shell on a pseudo-terminal of the given
// size and returns what it printed, without escape sequences. Programs that
// only format their output for terminals behave as they would interactively.
func Command(ctx context.Context, command string, cols, rows int) (Document, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = append(os.Environ(),
		"TERM=dumb",
		"NO_COLOR=1",
		"COLUMNS="+strconv.Itoa(cols),
		"LINES="+strconv.Itoa(rows),
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return Document{}, fmt.Errorf("failed to start %q: %w", command, err)
	}
	defer ptmx.Close()

	out, err := io.ReadAll(ptmx)
	// Linux reports EIO once the child side of the terminal is closed.
	if err != nil && !errors.Is(err, syscall.EIO) {
		return Document{}, fmt.Errorf("failed to read output of %q: %w", command, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Document{}, fmt.Errorf("failed to run %q: %w", command, err)
		}
	}

	text := escapeSequence.ReplaceAllString(string(out), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return Document{Name: command, Text: text}, nil
}
