// Package ansi holds the escape sequences and text fragments beeper renders
// around every message. Each fragment exists twice: once as a narrow (byte)
// format string in Narrow and once as a wide (code point) format in Wide. Both
// tables are indexed by Fragment and carry identical verbs in identical order,
// so a renderer can pick either table without changing its arguments.
package ansi

// Reset clears every terminal attribute.
const Reset = "\x1b[0m"

// SGR parameters used by the attribute prelude. Each attribute has an explicit
// "off" value so a prelude always sets every field.
const (
	DefaultForeground = 39
	DefaultBackground = 49
	BackgroundOffset  = 10

	Bold            = 1
	Dim             = 2
	NormalIntensity = 22

	Italic   = 3
	NoItalic = 23

	Underline       = 4
	DoubleUnderline = 21
	NoUnderline     = 24

	Overline   = 53
	NoOverline = 55

	Blink   = 5
	NoBlink = 25

	Negative   = 7
	NoNegative = 27

	Strikethrough   = 9
	NoStrikethrough = 29
)

// Fragment indexes the Narrow and Wide tables.
type Fragment int

const (
	// Attributes resets and then sets background, foreground, intensity,
	// italic, underline, overline, blink, negative and strikethrough.
	Attributes Fragment = iota
	Year
	MonthDay
	HourMinute
	Second
	Space
	Identifier
	StyleName
	Origin
	ResetAll
	Newline

	// FragmentCount is the number of entries in each table.
	FragmentCount
)

// AttributeParams is the number of integer arguments Attributes expects.
const AttributeParams = 9

// Narrow holds the byte-oriented format of every fragment.
var Narrow = [FragmentCount]string{
	Attributes: "\x1b[0;%d;%d;%d;%d;%d;%d;%d;%d;%dm",
	Year:       "%04d-",
	MonthDay:   "%02d-%02d ",
	HourMinute: "%02d:%02d",
	Second:     ":%02d",
	Space:      " ",
	Identifier: "(%s) ",
	StyleName:  "[%s] ",
	Origin:     "%s:%d: ",
	ResetAll:   Reset,
	Newline:    "\n",
}

// Wide holds the code point oriented format of every fragment.
var Wide = [FragmentCount][]rune{
	Attributes: []rune("\x1b[0;%d;%d;%d;%d;%d;%d;%d;%d;%dm"),
	Year:       []rune("%04d-"),
	MonthDay:   []rune("%02d-%02d "),
	HourMinute: []rune("%02d:%02d"),
	Second:     []rune(":%02d"),
	Space:      []rune(" "),
	Identifier: []rune("(%s) "),
	StyleName:  []rune("[%s] "),
	Origin:     []rune("%s:%d: "),
	ResetAll:   []rune(Reset),
	Newline:    []rune("\n"),
}

// Intensity returns the SGR weight parameter. Bold wins over dim.
func Intensity(bold, dim bool) int {
	switch {
	case bold:
		return Bold
	case dim:
		return Dim
	default:
		return NormalIntensity
	}
}

// UnderlineStyle returns the SGR underline parameter. A thick underline wins
// over a plain one.
func UnderlineStyle(underline, thick bool) int {
	switch {
	case thick:
		return DoubleUnderline
	case underline:
		return Underline
	default:
		return NoUnderline
	}
}

// Toggle returns on when set is true and off otherwise.
func Toggle(set bool, on, off int) int {
	if set {
		return on
	}
	return off
}
