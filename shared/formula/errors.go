package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrTranslation matches every *TranslationError.
	ErrTranslation = errors.New("formula: translation failed")

	// ErrDivisionByZero is returned by Eval when a divisor is effectively zero.
	ErrDivisionByZero = errors.New("formula: division by zero")

	// ErrArgumentOutOfRange matches every *ArgumentOutOfRangeError.
	ErrArgumentOutOfRange = errors.New("formula: argument out of range")
)

// TranslationError reports formula text that cannot be compiled.
// Pos is the byte offset in the source where the problem was found.
type TranslationError struct {
	Pos int
	Msg string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("formula: %s at offset %d", e.Msg, e.Pos)
}

func (e *TranslationError) Is(target error) bool {
	return target == ErrTranslation
}

func translationErrorf(pos int, format string, args ...any) *TranslationError {
	return &TranslationError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ArgumentOutOfRangeError reports a function or operator evaluated outside
// its domain, or a value that left the [-MaxMagnitude, MaxMagnitude] bound.
type ArgumentOutOfRangeError struct {
	Func string
	Arg  float64
}

func (e *ArgumentOutOfRangeError) Error() string {
	return fmt.Sprintf("formula: argument %g out of range for %s", e.Arg, e.Func)
}

func (e *ArgumentOutOfRangeError) Is(target error) bool {
	return target == ErrArgumentOutOfRange
}

// ErrorKind classifies evaluation failures for outcome reporting.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindDivisionByZero
	KindArgumentOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindDivisionByZero:
		return "division by zero"
	case KindArgumentOutOfRange:
		return "argument out of range"
	default:
		return "unknown"
	}
}

// KindOf maps an Eval error to its ErrorKind.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrArgumentOutOfRange):
		return KindArgumentOutOfRange
	default:
		return KindUnknown
	}
}
