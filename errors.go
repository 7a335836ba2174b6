package datefmt

import (
	"errors"
	"fmt"
)

// ErrInvalidFormatType indicates a precision token outside none|short|medium|long|full.
var ErrInvalidFormatType = errors.New("datefmt: invalid format type")

// ErrInvalidArgument reports an unusable value, time zone or precision combination.
var ErrInvalidArgument = errors.New("datefmt: invalid argument")

// ErrLibrary marks failures of the pattern source, e.g. an ill-formed locale.
var ErrLibrary = errors.New("datefmt: locale library error")

// ErrFormat marks a value the renderer could not format.
var ErrFormat = errors.New("datefmt: format error")

// ErrUnsupportedPatternLetter is returned by the renderer for unknown pattern letters.
var ErrUnsupportedPatternLetter = errors.New("datefmt: unsupported pattern letter")

// FormatError describes a value that could not be rendered.
type FormatError struct {
	Value any
	Type  string
	Err   error
}

func newFormatError(value any, err error) *FormatError {
	return &FormatError{Value: value, Type: valueType(value), Err: err}
}

func (e *FormatError) Error() string {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("datefmt: the value %q of type %s cannot be formatted. Error: %q", fmt.Sprint(e.Value), e.Type, msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) hold for every FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func valueType(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
