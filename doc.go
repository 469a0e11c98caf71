// Package beeper writes styled, timestamped console messages to any number of
// destinations through one process-wide active logger, the beeper.
//
// # Design overview
//
//   - One active beeper: New makes the new beeper active, Select switches to
//     another one and Destroy tears the active one down. The registry is not
//     synchronised; callers that log from several goroutines serialise
//     access themselves.
//   - Slot tables: recipients and custom themes live in growable slot tables
//     (4 and 8 slots to begin with). Removing an entry leaves an empty slot
//     behind; a full table doubles.
//   - Themes: a message names a theme. Custom themes are searched first, then
//     the built-in success, info, warn, fail and debug themes. Messages under
//     "fail" terminate the process after they have been written.
//   - Three phases per recipient: a prelude (one SGR escape that sets every
//     attribute, date, time, identifier, theme name, origin), the rendered
//     message, and a postlude (reset escape, newline).
//   - Narrow and wide text: every fragment exists as a byte format and as a
//     code point format (see package ansi). Wide recipients receive runes
//     through WideWriter or, failing that, text transcoded with the beeper's
//     wide encoding.
//
// # Usage
//
//	b, err := beeper.New("svc")
//	if err != nil {
//		return err
//	}
//	defer beeper.Destroy()
//	beeper.AddTerminalRecipient(os.Stderr, false)
//	beeper.SetStyle("alert", beeper.Style{Foreground: beeper.ColorRed, Bold: true})
//	beeper.Beep("alert", "disk %s is %d%% full", "/var", 97)
//	b.Beep("info", "bye")
//
// Errors are values. Code maps any error from the core operations onto the
// closed Result set (ResultSuccess, ResultInactive, ResultInvalidFirst,
// ResultInvalidSecond, ResultInvalidColor, ResultNoMemory). The Result prefix
// keeps the codes apart from the Success, Info, Warn, Fail and Debug
// shorthands.
//
// # Configuration
//
// FromEnv builds the active beeper from BEEPER_* environment variables and a
// TOML theme file (see DecodeThemes). The beep command in cmd/beep exposes the
// same settings as flags.
package beeper
