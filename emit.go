package beeper

import "pkt.systems/beeper/ansi"

// Emit writes one message to every recipient of a beeper and then runs the
// theme's callback.
//
// The message goes to with, or to the active beeper when with is nil.
// styleName is resolved against that beeper's custom themes first and the
// built-in themes after. When the theme cannot be found nothing is written
// and the error names the style argument: the second argument when with was
// given, the first otherwise. file and line are printed as the origin.
//
// Write failures on individual recipients do not stop the message from
// reaching the others and are not returned; see WithWriteFailureHandler.
func Emit(with *Beeper, file string, line int, styleName, format string, args ...any) error {
	b := with
	if b == nil {
		b = activeBeeper()
		if b == nil {
			return ErrInactive
		}
	} else if b.destroyed {
		return invalidFirst("beeper has been destroyed")
	}
	theme, ok := b.Resolve(styleName, true)
	if !ok {
		if with != nil {
			return invalidSecond("unknown style " + styleName)
		}
		return invalidFirst("unknown style " + styleName)
	}
	b.emit(theme, file, line, format, args)
	return nil
}

// Emit writes a message through b. See the package-level Emit.
func (b *Beeper) Emit(file string, line int, styleName, format string, args ...any) error {
	if b == nil {
		return ErrInactive
	}
	return Emit(b, file, line, styleName, format, args...)
}

func (b *Beeper) emit(theme Theme, file string, lineNo int, format string, args []any) {
	stamp := b.clock.Now()
	for _, r := range b.recipients.occupied() {
		l := acquireLine(r, b.renderer, b.wideEncoding)
		b.prelude(l, r, theme, stamp, file, lineNo)
		l.body(format, args)
		postlude(l, r, theme.Style)
		if failure := l.flush(r.Destination); failure.Err != nil && b.onFailure != nil {
			b.onFailure(r, failure)
		}
		l.release()
	}
	if theme.Style.Callback != nil {
		theme.Style.Callback()
	}
}

func (b *Beeper) prelude(l line, r Recipient, theme Theme, stamp Stamp, file string, lineNo int) {
	style := theme.Style
	if r.Formatted {
		l.fragment(ansi.Attributes, style.attributes()...)
	}
	if style.ShowDate {
		if !style.HideYear {
			l.fragment(ansi.Year, stamp.Year)
		}
		l.fragment(ansi.MonthDay, stamp.Month, stamp.Day)
	}
	if style.ShowTime {
		l.fragment(ansi.HourMinute, stamp.Hour, stamp.Minute)
		if !style.HideSecond {
			l.fragment(ansi.Second, stamp.Second)
		}
		l.fragment(ansi.Space)
	}
	if !style.HideIdentifier {
		l.fragment(ansi.Identifier, b.identifier)
	}
	if style.ShowStyle {
		l.fragment(ansi.StyleName, theme.Name)
	}
	if !style.HideOrigin {
		l.fragment(ansi.Origin, file, lineNo)
	}
}

func postlude(l line, r Recipient, style Style) {
	if r.Formatted {
		l.fragment(ansi.ResetAll)
	}
	if !style.NoNewline {
		l.fragment(ansi.Newline)
	}
}

// Beep emits through the active beeper with the caller's file and line as
// origin.
func Beep(styleName, format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(nil, o.File, o.Line, styleName, format, args...)
}

// BeepWith emits through b, or the active beeper when b is nil, with the
// caller's file and line as origin.
func BeepWith(b *Beeper, styleName, format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(b, o.File, o.Line, styleName, format, args...)
}

// Beep emits through b with the caller's file and line as origin.
func (b *Beeper) Beep(styleName, format string, args ...any) error {
	if b == nil {
		return ErrInactive
	}
	o := callerOrigin(2)
	return Emit(b, o.File, o.Line, styleName, format, args...)
}

// Success emits through the active beeper using the "success" theme.
func Success(format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(nil, o.File, o.Line, ThemeSuccess, format, args...)
}

// Info emits through the active beeper using the "info" theme.
func Info(format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(nil, o.File, o.Line, ThemeInfo, format, args...)
}

// Warn emits through the active beeper using the "warn" theme.
func Warn(format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(nil, o.File, o.Line, ThemeWarn, format, args...)
}

// Fail emits through the active beeper using the "fail" theme. Unless the
// active beeper shadows "fail" with a custom theme, the process exits once the
// message has been written.
func Fail(format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(nil, o.File, o.Line, ThemeFail, format, args...)
}

// Debug emits through the active beeper using the "debug" theme.
func Debug(format string, args ...any) error {
	o := callerOrigin(2)
	return Emit(nil, o.File, o.Line, ThemeDebug, format, args...)
}
