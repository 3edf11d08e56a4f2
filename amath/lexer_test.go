package amath

import "testing"

func TestLexerLongestMatch(t *testing.T) {
	l := newLexer(`x->>oo "a b" 12.5 sube`)
	expected := []struct {
		typ     TokenType
		literal string
	}{
		{tokenIdent, "x"},
		{tokenSymbol, "->>"},
		{tokenSymbol, "oo"},
		{tokenText, "a b"},
		{tokenNumber, "12.5"},
		{tokenSymbol, "sube"},
		{tokenEOF, ""},
	}

	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ || tok.Literal != exp.literal {
			t.Fatalf("token %d: expected %s %q, got %s %q", i, exp.typ, exp.literal, tok.Type, tok.Literal)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	l := newLexer("a\n  b")
	first := l.NextToken()
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Fatalf("unexpected first position: %+v", first.Pos)
	}
	second := l.NextToken()
	if second.Pos.Line != 2 || second.Pos.Column != 3 {
		t.Fatalf("unexpected second position: %+v", second.Pos)
	}
}

func TestLexerTextCommandNesting(t *testing.T) {
	l := newLexer("text(f(x) here) y")
	tok := l.NextToken()
	if tok.Type != tokenText || tok.Literal != "f(x) here" {
		t.Fatalf("unexpected text token: %s %q", tok.Type, tok.Literal)
	}
	if next := l.NextToken(); next.Type != tokenIdent || next.Literal != "y" {
		t.Fatalf("unexpected trailing token: %s %q", next.Type, next.Literal)
	}
}

func TestLexerUnterminatedQuote(t *testing.T) {
	l := newLexer(`"open`)
	tok := l.NextToken()
	if tok.Type != tokenText || tok.Literal != "open" {
		t.Fatalf("unexpected token: %s %q", tok.Type, tok.Literal)
	}
	if eof := l.NextToken(); eof.Type != tokenEOF {
		t.Fatalf("expected EOF, got %s", eof.Type)
	}
}
