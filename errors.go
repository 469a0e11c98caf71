package beeper

import (
	"errors"
	"fmt"
)

// Errors returned by beeper operations. Positional argument failures are
// reported as *ArgumentError, which matches ErrInvalidArgument.
var (
	ErrInactive        = errors.New("beeper: no active beeper")
	ErrInvalidArgument = errors.New("beeper: invalid argument")
	ErrInvalidColor    = errors.New("beeper: invalid color")
	ErrOutOfMemory     = errors.New("beeper: out of memory")
)

// ArgumentError reports which positional argument of an operation was
// rejected.
type ArgumentError struct {
	Position int
	Reason   string
}

func (e *ArgumentError) Error() string {
	ordinal := "first"
	if e.Position == 2 {
		ordinal = "second"
	}
	if e.Reason == "" {
		return fmt.Sprintf("beeper: invalid %s argument", ordinal)
	}
	return fmt.Sprintf("beeper: invalid %s argument: %s", ordinal, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidFirst(reason string) error {
	return &ArgumentError{Position: 1, Reason: reason}
}

func invalidSecond(reason string) error {
	return &ArgumentError{Position: 2, Reason: reason}
}

// Result is the closed set of status codes an operation can end with.
type Result int

const (
	ResultSuccess       Result = 0
	ResultInactive      Result = 1
	ResultInvalidFirst  Result = -2
	ResultInvalidSecond Result = -3
	ResultInvalidColor  Result = -4
	ResultNoMemory      Result = -5
)

// Code maps an error returned by this package to its Result. Errors that did
// not originate here are reported as ResultInvalidFirst.
func Code(err error) Result {
	if err == nil {
		return ResultSuccess
	}
	var argErr *ArgumentError
	switch {
	case errors.Is(err, ErrInactive):
		return ResultInactive
	case errors.Is(err, ErrInvalidColor):
		return ResultInvalidColor
	case errors.Is(err, ErrOutOfMemory):
		return ResultNoMemory
	case errors.As(err, &argErr) && argErr.Position == 2:
		return ResultInvalidSecond
	default:
		return ResultInvalidFirst
	}
}

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultInactive:
		return "inactive"
	case ResultInvalidFirst:
		return "invalid first argument"
	case ResultInvalidSecond:
		return "invalid second argument"
	case ResultInvalidColor:
		return "invalid color"
	case ResultNoMemory:
		return "out of memory"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}
