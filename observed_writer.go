package beeper

import (
	"io"
	"sync"
	"sync/atomic"
)

// WriteFailure describes one message that did not fully reach a destination.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// ObservedWriterStats counts what an ObservedWriter has seen.
type ObservedWriterStats struct {
	Messages    uint64 // writes that completed in full
	Failures    uint64
	ShortWrites uint64
	LastErr     error
}

// ObservedWriter wraps a destination and records write failures. Emission
// drops write errors, so wrapping a recipient's destination is the way to
// notice lost messages. The wrapper is comparable by pointer and can be
// registered and removed like any other destination.
type ObservedWriter struct {
	dst        io.Writer
	onFailure  func(WriteFailure)
	messages   atomic.Uint64
	failures   atomic.Uint64
	shortWrite atomic.Uint64

	mu      sync.Mutex
	lastErr error
}

// NewObservedWriter wraps dst. onFailure, when set, is called for every
// failed write.
func NewObservedWriter(dst io.Writer, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{
		dst:       dst,
		onFailure: onFailure,
	}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	if w == nil || w.dst == nil {
		return len(p), nil
	}
	n, err := w.dst.Write(p)
	failure := checkWrite(n, len(p), err)
	if failure.Err == nil {
		w.messages.Add(1)
		return n, nil
	}
	if n != len(p) {
		w.shortWrite.Add(1)
	}
	w.failures.Add(1)
	w.mu.Lock()
	w.lastErr = failure.Err
	w.mu.Unlock()
	if w.onFailure != nil {
		w.onFailure(failure)
	}
	return n, failure.Err
}

// Unwrap returns the wrapped destination.
func (w *ObservedWriter) Unwrap() io.Writer {
	if w == nil {
		return nil
	}
	return w.dst
}

// Fd exposes the wrapped destination's descriptor so terminal detection sees
// through the wrapper. It returns an invalid descriptor when there is none.
func (w *ObservedWriter) Fd() uintptr {
	if w != nil {
		if f, ok := w.dst.(fdWriter); ok {
			return f.Fd()
		}
	}
	return ^uintptr(0)
}

// Stats returns the cumulative counters.
func (w *ObservedWriter) Stats() ObservedWriterStats {
	if w == nil {
		return ObservedWriterStats{}
	}
	w.mu.Lock()
	lastErr := w.lastErr
	w.mu.Unlock()
	return ObservedWriterStats{
		Messages:    w.messages.Load(),
		Failures:    w.failures.Load(),
		ShortWrites: w.shortWrite.Load(),
		LastErr:     lastErr,
	}
}
