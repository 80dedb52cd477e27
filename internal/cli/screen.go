package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type screen interface {
	Clear()
}

// isTerminal is a test seam for terminal detection.
var isTerminal = term.IsTerminal

// terminalScreen clears with ANSI escapes, but only when attached to a tty so
// piped output stays free of control codes.
type terminalScreen struct {
	w   io.Writer
	tty bool
}

func newTerminalScreen(f *os.File) *terminalScreen {
	return &terminalScreen{w: f, tty: isTerminal(int(f.Fd()))}
}

func (s *terminalScreen) Clear() {
	if s.tty {
		fmt.Fprint(s.w, "\033[H\033[2J")
	}
}

type noopScreen struct{}

func (noopScreen) Clear() {}
