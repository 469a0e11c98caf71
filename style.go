package beeper

import (
	"fmt"

	"pkt.systems/beeper/ansi"
)

// Style describes how a message is rendered. The zero value prints the
// identifier and origin in the terminal's default colours.
type Style struct {
	Background Color
	Foreground Color

	Bold           bool
	Dim            bool
	Italic         bool
	Underline      bool
	UnderlineThick bool
	Overline       bool
	Blinking       bool
	Negative       bool
	Strikethrough  bool

	ShowDate       bool // prefix MM-DD (and the year unless HideYear)
	HideYear       bool
	ShowTime       bool // prefix hh:mm (and :ss unless HideSecond)
	HideSecond     bool
	HideIdentifier bool
	ShowStyle      bool // prefix the theme name in brackets
	HideOrigin     bool
	NoNewline      bool

	// Callback runs once after a message using this style has been written to
	// every recipient. It may not return (see the built-in "fail" theme).
	Callback func()
}

// Validate checks both colours.
func (s Style) Validate() error {
	if !s.Foreground.Valid() {
		return fmt.Errorf("%w: foreground %d", ErrInvalidColor, int(s.Foreground))
	}
	if !s.Background.Valid() {
		return fmt.Errorf("%w: background %d", ErrInvalidColor, int(s.Background))
	}
	return nil
}

// attributes returns the arguments of ansi.Attributes in table order.
func (s Style) attributes() []any {
	background := ansi.DefaultBackground
	if s.Background != ColorDefault {
		background = int(s.Background) + ansi.BackgroundOffset
	}
	foreground := ansi.DefaultForeground
	if s.Foreground != ColorDefault {
		foreground = int(s.Foreground)
	}
	return []any{
		background,
		foreground,
		ansi.Intensity(s.Bold, s.Dim),
		ansi.Toggle(s.Italic, ansi.Italic, ansi.NoItalic),
		ansi.UnderlineStyle(s.Underline, s.UnderlineThick),
		ansi.Toggle(s.Overline, ansi.Overline, ansi.NoOverline),
		ansi.Toggle(s.Blinking, ansi.Blink, ansi.NoBlink),
		ansi.Toggle(s.Negative, ansi.Negative, ansi.NoNegative),
		ansi.Toggle(s.Strikethrough, ansi.Strikethrough, ansi.NoStrikethrough),
	}
}
