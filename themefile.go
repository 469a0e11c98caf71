package beeper

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// themeDocument is the layout of a theme file:
//
//	[themes.alert]
//	foreground = "red"
//	bold = true
//	show_style = true
type themeDocument struct {
	Themes map[string]themeEntry `toml:"themes"`
}

type themeEntry struct {
	Foreground     Color `toml:"foreground,omitempty"`
	Background     Color `toml:"background,omitempty"`
	Bold           bool  `toml:"bold,omitempty"`
	Dim            bool  `toml:"dim,omitempty"`
	Italic         bool  `toml:"italic,omitempty"`
	Underline      bool  `toml:"underline,omitempty"`
	UnderlineThick bool  `toml:"underline_thick,omitempty"`
	Overline       bool  `toml:"overline,omitempty"`
	Blinking       bool  `toml:"blinking,omitempty"`
	Negative       bool  `toml:"negative,omitempty"`
	Strikethrough  bool  `toml:"strikethrough,omitempty"`
	ShowDate       bool  `toml:"show_date,omitempty"`
	HideYear       bool  `toml:"hide_year,omitempty"`
	ShowTime       bool  `toml:"show_time,omitempty"`
	HideSecond     bool  `toml:"hide_second,omitempty"`
	HideIdentifier bool  `toml:"hide_identifier,omitempty"`
	ShowStyle      bool  `toml:"show_style,omitempty"`
	HideOrigin     bool  `toml:"hide_origin,omitempty"`
	NoNewline      bool  `toml:"no_newline,omitempty"`
	Terminate      bool  `toml:"terminate,omitempty"` // exit the process after the message, like "fail"
}

func (e themeEntry) style() Style {
	s := Style{
		Foreground:     e.Foreground,
		Background:     e.Background,
		Bold:           e.Bold,
		Dim:            e.Dim,
		Italic:         e.Italic,
		Underline:      e.Underline,
		UnderlineThick: e.UnderlineThick,
		Overline:       e.Overline,
		Blinking:       e.Blinking,
		Negative:       e.Negative,
		Strikethrough:  e.Strikethrough,
		ShowDate:       e.ShowDate,
		HideYear:       e.HideYear,
		ShowTime:       e.ShowTime,
		HideSecond:     e.HideSecond,
		HideIdentifier: e.HideIdentifier,
		ShowStyle:      e.ShowStyle,
		HideOrigin:     e.HideOrigin,
		NoNewline:      e.NoNewline,
	}
	if e.Terminate {
		s.Callback = terminate
	}
	return s
}

func entryOf(s Style) themeEntry {
	return themeEntry{
		Foreground:     s.Foreground,
		Background:     s.Background,
		Bold:           s.Bold,
		Dim:            s.Dim,
		Italic:         s.Italic,
		Underline:      s.Underline,
		UnderlineThick: s.UnderlineThick,
		Overline:       s.Overline,
		Blinking:       s.Blinking,
		Negative:       s.Negative,
		Strikethrough:  s.Strikethrough,
		ShowDate:       s.ShowDate,
		HideYear:       s.HideYear,
		ShowTime:       s.ShowTime,
		HideSecond:     s.HideSecond,
		HideIdentifier: s.HideIdentifier,
		ShowStyle:      s.ShowStyle,
		HideOrigin:     s.HideOrigin,
		NoNewline:      s.NoNewline,
		Terminate:      s.Callback != nil,
	}
}

// DecodeThemes reads a TOML theme document. Themes are returned sorted by
// name; every style has been validated.
func DecodeThemes(r io.Reader) ([]Theme, error) {
	var doc themeDocument
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decode themes: %s", strict.String())
		}
		return nil, fmt.Errorf("decode themes: %w", err)
	}
	themes := make([]Theme, 0, len(doc.Themes))
	for _, name := range slices.Sorted(maps.Keys(doc.Themes)) {
		if name == "" {
			return nil, fmt.Errorf("decode themes: %w", invalidFirst("theme name is empty"))
		}
		style := doc.Themes[name].style()
		if err := style.Validate(); err != nil {
			return nil, fmt.Errorf("decode themes: theme %q: %w", name, err)
		}
		themes = append(themes, Theme{Name: name, Style: style})
	}
	return themes, nil
}

// LoadThemes reads a TOML theme file from path.
func LoadThemes(path string) ([]Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open themes %q: %w", path, err)
	}
	defer f.Close()
	themes, err := DecodeThemes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return themes, nil
}

// EncodeThemes writes themes as a TOML theme document. Callbacks are written
// as terminate = true.
func EncodeThemes(w io.Writer, themes []Theme) error {
	doc := themeDocument{Themes: make(map[string]themeEntry, len(themes))}
	for _, t := range themes {
		if err := t.Style.Validate(); err != nil {
			return fmt.Errorf("encode themes: theme %q: %w", t.Name, err)
		}
		doc.Themes[t.Name] = entryOf(t.Style)
	}
	enc := toml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode themes: %w", err)
	}
	return nil
}

// ApplyThemes binds every theme to b with SetStyle, stopping at the first
// failure.
func (b *Beeper) ApplyThemes(themes []Theme) error {
	for _, t := range themes {
		if err := b.SetStyle(t.Name, t.Style); err != nil {
			return fmt.Errorf("theme %q: %w", t.Name, err)
		}
	}
	return nil
}
