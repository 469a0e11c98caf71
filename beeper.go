package beeper

import (
	"strings"

	"golang.org/x/text/encoding"
)

// Beeper owns an identifier, a recipient table and a theme table. Beepers are
// created with New, which also makes them the active beeper.
type Beeper struct {
	identifier string
	recipients *slotTable[Recipient]
	themes     *slotTable[Theme]

	renderer     Renderer
	clock        Clock
	wideEncoding encoding.Encoding
	onFailure    func(Recipient, WriteFailure)

	destroyed bool
}

func newBeeper(identifier string, opts ...Option) (*Beeper, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	recipients, err := newSlotTable[Recipient](RecipientSlots, o.slotLimit)
	if err != nil {
		return nil, err
	}
	themes, err := newSlotTable[Theme](ThemeSlots, o.slotLimit)
	if err != nil {
		return nil, err
	}
	return &Beeper{
		identifier:   strings.Clone(identifier),
		recipients:   recipients,
		themes:       themes,
		renderer:     o.renderer,
		clock:        o.clock,
		wideEncoding: o.wideEncoding,
		onFailure:    o.onFailure,
	}, nil
}

// Identifier returns the name printed in parentheses in front of messages.
func (b *Beeper) Identifier() string {
	if b == nil {
		return ""
	}
	return b.identifier
}

// Destroyed reports whether the beeper has been torn down by Destroy.
func (b *Beeper) Destroyed() bool {
	return b == nil || b.destroyed
}

func (b *Beeper) live() error {
	if b == nil || b.destroyed {
		return ErrInactive
	}
	return nil
}

func (b *Beeper) release() {
	b.identifier = ""
	b.recipients.release()
	b.themes.release()
	b.destroyed = true
}
