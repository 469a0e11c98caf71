package ansi_test

import (
	"fmt"

	"pkt.systems/beeper/ansi"
)

func ExampleIntensity() {
	fmt.Printf("%q\n", fmt.Sprintf(ansi.Narrow[ansi.Attributes],
		ansi.DefaultBackground,
		91,
		ansi.Intensity(true, false),
		ansi.NoItalic,
		ansi.UnderlineStyle(false, false),
		ansi.NoOverline,
		ansi.NoBlink,
		ansi.NoNegative,
		ansi.NoStrikethrough,
	))

	// Output: "\x1b[0;49;91;1;23;24;55;25;27;29m"
}
