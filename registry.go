package beeper

import "io"

// active is the process-wide active beeper. It is not synchronised: callers
// that touch it from several goroutines must serialise access themselves.
var active *Beeper

// New creates a beeper named identifier and makes it the active beeper. The
// previously active beeper, if any, is replaced but not destroyed; callers
// that keep it must Select and Destroy it themselves.
func New(identifier string, opts ...Option) (*Beeper, error) {
	b, err := newBeeper(identifier, opts...)
	if err != nil {
		return nil, err
	}
	active = b
	return b, nil
}

// Select makes b the active beeper. b is not checked beyond being non-nil.
func Select(b *Beeper) error {
	if b == nil {
		return invalidFirst("beeper is nil")
	}
	active = b
	return nil
}

// Destroy tears down the active beeper and leaves no beeper active.
func Destroy() error {
	b := activeBeeper()
	if b == nil {
		return ErrInactive
	}
	b.release()
	active = nil
	return nil
}

// Active returns the active beeper, or nil when there is none.
func Active() *Beeper {
	return activeBeeper()
}

func activeBeeper() *Beeper {
	if active == nil || active.destroyed {
		return nil
	}
	return active
}

// AddRecipient registers w with the active beeper.
func AddRecipient(w io.Writer, wide, formatted bool) error {
	b := activeBeeper()
	if b == nil {
		return ErrInactive
	}
	return b.AddRecipient(w, wide, formatted)
}

// AddTerminalRecipient registers w with the active beeper, formatted only
// when w is a terminal.
func AddTerminalRecipient(w io.Writer, wide bool) error {
	b := activeBeeper()
	if b == nil {
		return ErrInactive
	}
	return b.AddTerminalRecipient(w, wide)
}

// RemoveRecipient removes the first registration of w from the active beeper.
func RemoveRecipient(w io.Writer) error {
	b := activeBeeper()
	if b == nil {
		return ErrInactive
	}
	return b.RemoveRecipient(w)
}

// SetStyle binds style to name in the active beeper.
func SetStyle(name string, style Style) error {
	b := activeBeeper()
	if b == nil {
		return ErrInactive
	}
	return b.SetStyle(name, style)
}

// UnsetStyle removes the custom theme name from the active beeper.
func UnsetStyle(name string) error {
	b := activeBeeper()
	if b == nil {
		return ErrInactive
	}
	return b.UnsetStyle(name)
}
