package beeper

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/encoding"

	"pkt.systems/beeper/ansi"
)

// Renderer turns a format and its arguments into text. RenderNarrow serves
// byte-oriented recipients and RenderWide serves code point oriented ones.
type Renderer interface {
	RenderNarrow(format string, args ...any) string
	RenderWide(format []rune, args ...any) []rune
}

// FmtRenderer renders with fmt.Sprintf.
type FmtRenderer struct{}

func (FmtRenderer) RenderNarrow(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (FmtRenderer) RenderWide(format []rune, args ...any) []rune {
	return []rune(fmt.Sprintf(string(format), args...))
}

// WideWriter is implemented by destinations that accept code points
// directly. Wide recipients whose destination does not implement it receive
// their text transcoded with the beeper's wide encoding.
type WideWriter interface {
	WriteWide(p []rune) (int, error)
}

// line accumulates one message for one recipient and writes it in a single
// call.
type line interface {
	fragment(f ansi.Fragment, args ...any)
	body(format string, args []any)
	flush(w io.Writer) WriteFailure
	release()
}

const (
	lineDefaultCap = 256
	lineMaxCap     = 64 << 10
)

type narrowLine struct {
	renderer Renderer
	buf      []byte
}

type wideLine struct {
	renderer Renderer
	encoding encoding.Encoding
	buf      []rune
}

var narrowLinePool = sync.Pool{
	New: func() any {
		return &narrowLine{buf: make([]byte, 0, lineDefaultCap)}
	},
}

var wideLinePool = sync.Pool{
	New: func() any {
		return &wideLine{buf: make([]rune, 0, lineDefaultCap)}
	},
}

func acquireLine(r Recipient, renderer Renderer, enc encoding.Encoding) line {
	if r.Wide {
		l := wideLinePool.Get().(*wideLine)
		l.renderer = renderer
		l.encoding = enc
		l.buf = l.buf[:0]
		return l
	}
	l := narrowLinePool.Get().(*narrowLine)
	l.renderer = renderer
	l.buf = l.buf[:0]
	return l
}

func (l *narrowLine) fragment(f ansi.Fragment, args ...any) {
	l.buf = append(l.buf, l.renderer.RenderNarrow(ansi.Narrow[f], args...)...)
}

func (l *narrowLine) body(format string, args []any) {
	l.buf = append(l.buf, l.renderer.RenderNarrow(format, args...)...)
}

func (l *narrowLine) flush(w io.Writer) WriteFailure {
	n, err := w.Write(l.buf)
	return checkWrite(n, len(l.buf), err)
}

func (l *narrowLine) release() {
	l.renderer = nil
	if cap(l.buf) > lineMaxCap {
		l.buf = make([]byte, 0, lineDefaultCap)
	}
	narrowLinePool.Put(l)
}

func (l *wideLine) fragment(f ansi.Fragment, args ...any) {
	l.buf = append(l.buf, l.renderer.RenderWide(ansi.Wide[f], args...)...)
}

func (l *wideLine) body(format string, args []any) {
	l.buf = append(l.buf, l.renderer.RenderWide([]rune(format), args...)...)
}

func (l *wideLine) flush(w io.Writer) WriteFailure {
	if ww, ok := w.(WideWriter); ok {
		n, err := ww.WriteWide(l.buf)
		return checkWrite(n, len(l.buf), err)
	}
	encoded, err := encoding.ReplaceUnsupported(l.encoding.NewEncoder()).Bytes([]byte(string(l.buf)))
	if err != nil {
		return WriteFailure{Err: fmt.Errorf("encode wide text: %w", err), Attempted: len(l.buf)}
	}
	n, err := w.Write(encoded)
	return checkWrite(n, len(encoded), err)
}

func (l *wideLine) release() {
	l.renderer = nil
	l.encoding = nil
	if cap(l.buf) > lineMaxCap {
		l.buf = make([]rune, 0, lineDefaultCap)
	}
	wideLinePool.Put(l)
}

func checkWrite(n, attempted int, err error) WriteFailure {
	if err == nil && n != attempted {
		err = io.ErrShortWrite
	}
	if err == nil {
		return WriteFailure{}
	}
	return WriteFailure{Err: err, Written: n, Attempted: attempted}
}
