package amath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidUTF8      = errors.New("input is not valid UTF-8")
	ErrInputTooLong     = errors.New("input exceeds size limit")
	ErrNestingTooDeep   = errors.New("nesting exceeds depth limit")
	ErrIllegalCharacter = errors.New("illegal character")
)

// ConversionError reports that a converter produced no result for Input.
type ConversionError struct {
	Input string
}

func (e *ConversionError) Error() string {
	return `conversion failed for input: "` + e.Input + `"`
}

// ArgumentError reports a call whose argument is missing or of the wrong
// type. It is raised before any converter runs.
type ArgumentError struct {
	Function string
	Position int
	Expected string
	Got      string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: bad argument #%d (%s expected, got %s)", e.Function, e.Position, e.Expected, e.Got)
}

// ParseError describes why the pure-Go translator rejected its input. Err
// is one of the sentinel errors above, possibly wrapped with detail.
type ParseError struct {
	Pos    Position
	Err    error
	Source string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Pos.Line > 0 {
		fmt.Fprintf(&b, "parse error at %d:%d: %v", e.Pos.Line, e.Pos.Column, e.Err)
	} else {
		fmt.Fprintf(&b, "parse error: %v", e.Err)
	}
	if frame := formatCodeFrame(e.Source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
