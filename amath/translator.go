package amath

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMaxInputBytes = 4096
	DefaultMaxDepth      = 64
)

// Options controls translator output and input bounds.
type Options struct {
	// Display renders block-level math (display="block") instead of inline.
	Display       bool
	MaxInputBytes int
	MaxDepth      int
}

// Translator is the pure-Go AsciiMath to MathML converter. It holds no
// mutable state and is safe for concurrent use.
type Translator struct {
	opts Options
}

// New constructs a Translator, filling unset limits with defaults.
func New(opts Options) *Translator {
	if opts.MaxInputBytes <= 0 {
		opts.MaxInputBytes = DefaultMaxInputBytes
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Translator{opts: opts}
}

// Options returns the effective options, defaults applied.
func (t *Translator) Options() Options {
	return t.opts
}

// Translate converts src into a MathML document, returning a *ParseError
// when the input is rejected.
func (t *Translator) Translate(src string) (string, error) {
	if len(src) > t.opts.MaxInputBytes {
		return "", &ParseError{Err: fmt.Errorf("%w (%d > %d bytes)", ErrInputTooLong, len(src), t.opts.MaxInputBytes)}
	}
	if !utf8.ValidString(src) {
		return "", &ParseError{Err: ErrInvalidUTF8}
	}
	if strings.TrimSpace(src) == "" {
		return "", &ParseError{Err: ErrEmptyInput}
	}

	p, err := newParser(src, t.opts.MaxDepth)
	if err != nil {
		return "", err
	}
	children, err := p.parse()
	if err != nil {
		return "", err
	}
	return renderDocument(children, t.opts.Display), nil
}

// ToMathML implements Converter.
func (t *Translator) ToMathML(src string) (string, bool) {
	out, err := t.Translate(src)
	if err != nil {
		return "", false
	}
	return out, true
}
