package beeper

import (
	"errors"
	"io"
	"testing"
)

// cleanRegistry clears the active beeper for the duration of a test.
func cleanRegistry(t *testing.T) {
	t.Helper()
	prev := active
	active = nil
	t.Cleanup(func() { active = prev })
}

var fixedStamp = Stamp{Year: 2024, Month: 3, Day: 5, Hour: 7, Minute: 8, Second: 9}

func fixedClock() Clock {
	return ClockFunc(func() Stamp { return fixedStamp })
}

// runeWriter accepts both narrow and wide writes and keeps them apart.
type runeWriter struct {
	narrow []byte
	wide   []rune
}

func (w *runeWriter) Write(p []byte) (int, error) {
	w.narrow = append(w.narrow, p...)
	return len(p), nil
}

func (w *runeWriter) WriteWide(p []rune) (int, error) {
	w.wide = append(w.wide, p...)
	return len(p), nil
}

type failingWriter struct {
	calls int
}

var errWriter = errors.New("error generated in writer")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errWriter
}

// sliceWriter is a destination whose dynamic type cannot be compared.
type sliceWriter []byte

func (s sliceWriter) Write(p []byte) (int, error) { return len(p), nil }

// wrapWriter has a comparable type but compares only as well as the value it
// holds.
type wrapWriter struct{ W io.Writer }

func (w wrapWriter) Write(p []byte) (int, error) { return w.W.Write(p) }
