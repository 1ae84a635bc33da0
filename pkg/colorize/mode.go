package colorize

import (
	"fmt"
	"strings"
)

// Mode selects which atoms the mapper colors
type Mode int

const (
	// All colors every atom by its tag
	All Mode = iota
	// HighlightPrimary colors atoms whose species differs from the sentinel
	HighlightPrimary
	// HighlightSecondary colors atoms of the sentinel species
	HighlightSecondary
)

var modeNames = map[Mode]string{
	All:                "all",
	HighlightPrimary:   "primary",
	HighlightSecondary: "secondary",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "all", "primary" or "secondary"
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return All, fmt.Errorf("invalid mode %q (expected all, primary or secondary)", s)
}

// ModeFromFlags turns the two highlight switches into a Mode.
// Setting both is ErrConflictingHighlight.
func ModeFromFlags(primary, secondary bool) (Mode, error) {
	switch {
	case primary && secondary:
		return All, ErrConflictingHighlight
	case primary:
		return HighlightPrimary, nil
	case secondary:
		return HighlightSecondary, nil
	default:
		return All, nil
	}
}
