package colorconv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInputFormat is returned when the input format isn't one of Formats.
	ErrUnsupportedInputFormat = errors.New("unsupported input format")
	// ErrMalformedInput is returned when the text can't be parsed in the declared input format.
	ErrMalformedInput = errors.New("malformed input color")
	// ErrUnsupportedOutputFormat is returned when the output format isn't one of Formats.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

// OutOfRangeError is wrapped in ErrMalformedInput errors by strict parsing
// when a component is outside [Min, Max].
type OutOfRangeError struct {
	Component string
	Value     int
	Min, Max  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d,%d]", e.Component, e.Value, e.Min, e.Max)
}

// Message returns the short user facing message for errors returned by this package,
// or the error's own text for other errors (and "" for nil).
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedInputFormat):
		return "Invalid input format."
	case errors.Is(err, ErrMalformedInput):
		return "Invalid input color."
	case errors.Is(err, ErrUnsupportedOutputFormat):
		return "Invalid output format."
	default:
		return err.Error()
	}
}
