package beeper

import (
	"io"
	"os"
	"reflect"
)

// Recipient is a destination registered with a beeper. The destination is
// borrowed: beeper writes to it but never closes it.
type Recipient struct {
	Destination io.Writer
	Wide        bool // write code points instead of bytes
	Formatted   bool // wrap messages in ANSI escape sequences
}

// AddRecipient registers w in the first free recipient slot, growing the
// table when every slot is taken. The same destination may be added more
// than once; each registration receives its own copy of every message.
func (b *Beeper) AddRecipient(w io.Writer, wide, formatted bool) error {
	if err := b.live(); err != nil {
		return err
	}
	if err := checkDestination(w); err != nil {
		return err
	}
	i, err := b.recipients.acquire()
	if err != nil {
		return err
	}
	b.recipients.put(i, Recipient{Destination: w, Wide: wide, Formatted: formatted})
	return nil
}

// AddTerminalRecipient registers w with formatting enabled only when w is a
// terminal and the NO_COLOR convention is not in effect.
func (b *Beeper) AddTerminalRecipient(w io.Writer, wide bool) error {
	return b.AddRecipient(w, wide, colorAllowed(w))
}

// RemoveRecipient empties the first slot holding w. Later registrations of the
// same destination stay in place.
func (b *Beeper) RemoveRecipient(w io.Writer) error {
	if err := b.live(); err != nil {
		return err
	}
	if err := checkDestination(w); err != nil {
		return err
	}
	i := b.recipients.index(func(r Recipient) bool { return r.Destination == w })
	if i < 0 {
		return invalidFirst("recipient not registered")
	}
	b.recipients.clear(i)
	return nil
}

// Recipients returns the registered recipients in slot order.
func (b *Beeper) Recipients() []Recipient {
	if b.live() != nil {
		return nil
	}
	return b.recipients.values()
}

// checkDestination rejects nil destinations and destinations that cannot be
// compared by identity.
func checkDestination(w io.Writer) error {
	if w == nil {
		return invalidFirst("destination is nil")
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return invalidFirst("destination is nil")
		}
	}
	if !v.Comparable() {
		return invalidFirst("destination type " + v.Type().String() + " is not comparable")
	}
	return nil
}

func colorAllowed(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}
