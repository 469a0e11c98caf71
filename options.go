package beeper

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Initial table sizes and the default growth ceiling.
const (
	RecipientSlots   = 4
	ThemeSlots       = 8
	DefaultSlotLimit = 1 << 16
)

// Option configures a Beeper at construction time.
type Option func(*options)

type options struct {
	renderer     Renderer
	clock        Clock
	wideEncoding encoding.Encoding
	slotLimit    int
	onFailure    func(Recipient, WriteFailure)
}

func defaultOptions() options {
	return options{
		renderer:     FmtRenderer{},
		clock:        SystemClock,
		wideEncoding: unicode.UTF8,
		slotLimit:    DefaultSlotLimit,
	}
}

// WithRenderer replaces the fmt-based renderer used for every fragment and
// message body.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithClock replaces the system clock used for date and time prefixes.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithWideEncoding sets the encoding wide text is transcoded into for
// destinations that do not implement WideWriter. Defaults to UTF-8.
func WithWideEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		if enc != nil {
			o.wideEncoding = enc
		}
	}
}

// WithSlotLimit caps the number of slots either table may grow to. Growth
// past the limit fails with ErrOutOfMemory. Zero or less removes the cap.
func WithSlotLimit(n int) Option {
	return func(o *options) {
		o.slotLimit = n
	}
}

// WithWriteFailureHandler registers fn to be called whenever writing a
// message to a recipient fails. Emission itself never reports write errors.
func WithWriteFailureHandler(fn func(Recipient, WriteFailure)) Option {
	return func(o *options) {
		o.onFailure = fn
	}
}
