package beeper

import (
	"os"
	"strings"
)

// Names of the built-in themes.
const (
	ThemeSuccess = "success"
	ThemeInfo    = "info"
	ThemeWarn    = "warn"
	ThemeFail    = "fail"
	ThemeDebug   = "debug"
)

// Theme binds a name to a Style.
type Theme struct {
	Name  string
	Style Style
}

// exitProcess ends the process after a message under the "fail" theme.
var exitProcess = func() { os.Exit(1) }

func terminate() { exitProcess() }

// builtinThemes are available to every beeper. Custom themes with the same
// name shadow them.
var builtinThemes = [...]Theme{
	{Name: ThemeSuccess, Style: Style{Foreground: ColorGreen}},
	{Name: ThemeInfo, Style: Style{Foreground: ColorBlue}},
	{Name: ThemeWarn, Style: Style{Foreground: ColorYellow, Bold: true}},
	{Name: ThemeFail, Style: Style{Foreground: ColorRed, Bold: true, Callback: terminate}},
	{Name: ThemeDebug, Style: Style{Underline: true, Negative: true}},
}

// BuiltinThemes returns a copy of the built-in theme table.
func BuiltinThemes() []Theme {
	out := make([]Theme, len(builtinThemes))
	copy(out, builtinThemes[:])
	return out
}

// SetStyle binds style to name among the beeper's custom themes. An existing
// custom theme is overwritten in place; built-in themes are never modified,
// only shadowed.
func (b *Beeper) SetStyle(name string, style Style) error {
	if err := b.live(); err != nil {
		return err
	}
	if name == "" {
		return invalidFirst("theme name is empty")
	}
	if err := style.Validate(); err != nil {
		return err
	}
	if i := b.themes.index(themeNamed(name)); i >= 0 {
		b.themes.at(i).Style = style
		return nil
	}
	i, err := b.themes.acquire()
	if err != nil {
		return err
	}
	b.themes.put(i, Theme{Name: strings.Clone(name), Style: style})
	return nil
}

// UnsetStyle removes the custom theme called name. Built-in themes cannot be
// removed.
func (b *Beeper) UnsetStyle(name string) error {
	if err := b.live(); err != nil {
		return err
	}
	if name == "" {
		return invalidFirst("theme name is empty")
	}
	i := b.themes.index(themeNamed(name))
	if i < 0 {
		return invalidFirst("no custom theme named " + name)
	}
	b.themes.clear(i)
	return nil
}

// Resolve looks name up among the custom themes and, when includeBuiltin is
// set, the built-in themes after that. The first match wins.
func (b *Beeper) Resolve(name string, includeBuiltin bool) (Theme, bool) {
	if b.live() != nil {
		return Theme{}, false
	}
	if i := b.themes.index(themeNamed(name)); i >= 0 {
		return *b.themes.at(i), true
	}
	if includeBuiltin {
		for _, theme := range builtinThemes {
			if theme.Name == name {
				return theme, true
			}
		}
	}
	return Theme{}, false
}

// Themes returns the custom themes in slot order.
func (b *Beeper) Themes() []Theme {
	if b.live() != nil {
		return nil
	}
	return b.themes.values()
}

func themeNamed(name string) func(Theme) bool {
	return func(t Theme) bool { return t.Name == name }
}
