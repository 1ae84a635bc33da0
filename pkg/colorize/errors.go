package colorize

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateRange is returned when every tag of a mapped group is equal,
	// so the tags cannot be normalized.
	ErrDegenerateRange = errors.New("degenerate tag range")

	// ErrConflictingHighlight is returned when both highlight modes are requested
	ErrConflictingHighlight = errors.New("primary and secondary highlighting are mutually exclusive")

	// ErrHueOutOfRange is wrapped by HueRangeError
	ErrHueOutOfRange = errors.New("hue out of range")

	// ErrLengthMismatch is returned when tags and species differ in length
	ErrLengthMismatch = errors.New("tags and species lengths differ")
)

// HueRangeError reports a hue outside [0, 360)
type HueRangeError struct {
	Hue float64
}

func (e *HueRangeError) Error() string {
	return fmt.Sprintf("hue %.4f must be in [0, 360)", e.Hue)
}

func (e *HueRangeError) Unwrap() error {
	return ErrHueOutOfRange
}
