package amath

import (
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) atEOF() bool {
	return l.width == 0
}

// advance consumes n bytes starting at the current rune.
func (l *lexer) advance(n int) {
	end := l.currentOffset() + n
	for !l.atEOF() && l.currentOffset() < end {
		l.readRune()
	}
}

func (l *lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	if l.atEOF() {
		tok.Type = tokenEOF
		return tok
	}

	switch {
	case l.ch == '"':
		tok.Type = tokenText
		tok.Literal = l.readQuoted()
		return tok
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekRune())):
		tok.Type = tokenNumber
		tok.Literal = l.readNumber()
		return tok
	case isIllegal(l.ch):
		tok.Type = tokenIllegal
		tok.Literal = string(l.ch)
		l.readRune()
		return tok
	}

	if sym := lookupSymbol(l.input[l.currentOffset():]); sym != nil {
		l.advance(len(sym.input))
		if sym.kind == kindText {
			if text, ok := l.readBracketedText(); ok {
				tok.Type = tokenText
				tok.Literal = text
				return tok
			}
		}
		tok.Type = tokenSymbol
		tok.Literal = sym.input
		tok.sym = sym
		return tok
	}

	tok.Literal = string(l.ch)
	if unicode.IsLetter(l.ch) {
		tok.Type = tokenIdent
	} else {
		tok.Type = tokenOther
	}
	l.readRune()
	return tok
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) skipWhitespace() {
	for !l.atEOF() && unicode.IsSpace(l.ch) {
		l.readRune()
	}
}

func (l *lexer) readNumber() string {
	start := l.currentOffset()
	for isDigit(l.ch) {
		l.readRune()
	}
	if l.ch == '.' && isDigit(l.peekRune()) {
		l.readRune()
		for isDigit(l.ch) {
			l.readRune()
		}
	}
	return l.input[start:l.currentOffset()]
}

// readQuoted reads a double-quoted run of text. An unterminated quote runs to
// the end of the input.
func (l *lexer) readQuoted() string {
	l.readRune()
	start := l.currentOffset()
	for !l.atEOF() && l.ch != '"' {
		l.readRune()
	}
	end := l.currentOffset()
	if !l.atEOF() {
		l.readRune()
	}
	return l.input[start:end]
}

// readBracketedText reads the raw argument of text(...) and mbox(...),
// honouring nested brackets of the same kind.
func (l *lexer) readBracketedText() (string, bool) {
	var closer rune
	switch l.ch {
	case '(':
		closer = ')'
	case '[':
		closer = ']'
	case '{':
		closer = '}'
	default:
		return "", false
	}
	opener := l.ch
	l.readRune()
	start := l.currentOffset()
	depth := 1
	for !l.atEOF() {
		switch l.ch {
		case opener:
			depth++
		case closer:
			depth--
		}
		if depth == 0 {
			break
		}
		l.readRune()
	}
	text := l.input[start:l.currentOffset()]
	if !l.atEOF() {
		l.readRune()
	}
	return text, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIllegal(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}
