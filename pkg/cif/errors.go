package cif

import (
	"errors"
	"strconv"
)

const maxTextLen = 70

// ErrNoAtoms is returned when a file has no usable atom sites
var ErrNoAtoms = errors.New("no atom sites found")

// ParseError records the line that could not be read
type ParseError struct {
	Line int    // line number, 0 when unknown
	Msg  string // description of the problem
	Text string // the offending line, if saved
}

func firstPart(s string) string {
	if len(s) > maxTextLen {
		return s[:maxTextLen]
	}
	return s
}

func (e *ParseError) Error() string {
	var msg string
	if e.Line != 0 {
		msg = "line " + strconv.Itoa(e.Line) + ": "
	}
	msg += e.Msg
	if e.Text != "" {
		msg += " (" + firstPart(e.Text) + ")"
	}
	return msg
}
