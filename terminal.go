package beeper

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is backed by a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsTerminal reports whether w writes to a terminal. Destinations that do not
// expose a file descriptor are never terminals.
func IsTerminal(w io.Writer) bool {
	return isTerminal(w)
}
