package beeper

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal colour expressed as its SGR foreground code.
// ColorDefault leaves the terminal's own colour in place.
type Color int

const (
	ColorDefault    Color = 0
	ColorBlack      Color = 30
	ColorDarkRed    Color = 31
	ColorDarkGreen  Color = 32
	ColorDarkYellow Color = 33
	ColorDarkBlue   Color = 34
	ColorDarkPurple Color = 35
	ColorDarkAqua   Color = 36
	ColorSilver     Color = 37
	ColorGray       Color = 90
	ColorRed        Color = 91
	ColorGreen      Color = 92
	ColorYellow     Color = 93
	ColorBlue       Color = 94
	ColorPurple     Color = 95
	ColorAqua       Color = 96
	ColorWhite      Color = 97
)

var colorNames = map[Color]string{
	ColorDefault:    "default",
	ColorBlack:      "black",
	ColorDarkRed:    "dark-red",
	ColorDarkGreen:  "dark-green",
	ColorDarkYellow: "dark-yellow",
	ColorDarkBlue:   "dark-blue",
	ColorDarkPurple: "dark-purple",
	ColorDarkAqua:   "dark-aqua",
	ColorSilver:     "silver",
	ColorGray:       "gray",
	ColorRed:        "red",
	ColorGreen:      "green",
	ColorYellow:     "yellow",
	ColorBlue:       "blue",
	ColorPurple:     "purple",
	ColorAqua:       "aqua",
	ColorWhite:      "white",
}

var colorAliases = map[string]string{
	"grey":       "gray",
	"dark-cyan":  "dark-aqua",
	"cyan":       "aqua",
	"magenta":    "purple",
	"light-gray": "silver",
	"none":       "default",
}

// Valid reports whether c is ColorDefault or lies in one of the two colour
// ranges.
func (c Color) Valid() bool {
	return c == ColorDefault ||
		(c >= ColorBlack && c <= ColorSilver) ||
		(c >= ColorGray && c <= ColorWhite)
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor resolves a colour by name ("dark-red", "Dark Red", "dark_red")
// or by its numeric SGR code ("31"). An empty name is ColorDefault.
func ParseColor(name string) (Color, error) {
	normalized := normalizeColorName(name)
	if normalized == "" {
		return ColorDefault, nil
	}
	if n, err := strconv.Atoi(normalized); err == nil {
		c := Color(n)
		if !c.Valid() {
			return ColorDefault, fmt.Errorf("%w: %d", ErrInvalidColor, n)
		}
		return c, nil
	}
	if canonical, ok := colorAliases[normalized]; ok {
		normalized = canonical
	}
	for c, known := range colorNames {
		if known == normalized {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, name)
}

func normalizeColorName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
