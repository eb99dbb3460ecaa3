package circuit

import (
	"errors"
	"fmt"
)

// ErrorKind classifies solver failures so callers can branch on the
// failure category instead of matching message text.
type ErrorKind int

const (
	ErrValidation ErrorKind = iota
	ErrInsufficientParameters
	ErrInconsistency
	ErrCalculation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrValidation:
		return "validation"
	case ErrInsufficientParameters:
		return "insufficient parameters"
	case ErrInconsistency:
		return "inconsistency"
	case ErrCalculation:
		return "calculation"
	}
	return "unknown"
}

// Error is the single error type raised by the solvers.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// KindOf reports the kind of a solver error. ok is false when err did
// not originate from this package.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

func newErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...any) *Error {
	return newErrorf(ErrValidation, format, args...)
}

func insufficientf(format string, args ...any) *Error {
	return newErrorf(ErrInsufficientParameters, format, args...)
}

func inconsistencyf(format string, args ...any) *Error {
	return newErrorf(ErrInconsistency, format, args...)
}

func calculationf(format string, args ...any) *Error {
	return newErrorf(ErrCalculation, format, args...)
}

// wrapf prefixes err with context while preserving its kind.
func wrapf(err error, format string, args ...any) *Error {
	kind := ErrCalculation
	var ce *Error
	if errors.As(err, &ce) {
		kind = ce.Kind
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...) + ": " + err.Error()}
}
