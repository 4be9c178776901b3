package linked_number

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind. Errors returned by this package wrap
// exactly one of them, so callers can use errors.Is.
var (
	ErrInvalidInput  = errors.New("no digits given")
	ErrInvalidSymbol = errors.New("invalid digit symbol")
	ErrInvalidNumber = errors.New("cannot convert invalid number")
	ErrOutOfRange    = errors.New("invalid position")
	ErrInvalidBase   = errors.New("unsupported base")
	ErrOverflow      = errors.New("value overflows uint64")
)

type Kind string

const (
	KindInvalidInput  Kind = "invalid_input"
	KindInvalidSymbol Kind = "invalid_symbol"
	KindInvalidNumber Kind = "invalid_number"
	KindOutOfRange    Kind = "out_of_range"
	KindInvalidBase   Kind = "invalid_base"
	KindOverflow      Kind = "overflow"
)

var sentinels = map[Kind]error{
	KindInvalidInput:  ErrInvalidInput,
	KindInvalidSymbol: ErrInvalidSymbol,
	KindInvalidNumber: ErrInvalidNumber,
	KindOutOfRange:    ErrOutOfRange,
	KindInvalidBase:   ErrInvalidBase,
	KindOverflow:      ErrOverflow,
}

// Error records the operation that failed and why.
type Error struct {
	Op     string
	Kind   Kind
	Detail string // Optional: offending value
}

func newError(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %v", e.Op, sentinels[e.Kind])
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return sentinels[e.Kind]
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
