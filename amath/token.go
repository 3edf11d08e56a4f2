package amath

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenNumber TokenType = "NUMBER"
	tokenIdent  TokenType = "IDENT"
	tokenText   TokenType = "TEXT"
	tokenSymbol TokenType = "SYMBOL"
	tokenOther  TokenType = "OTHER"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
	sym     *symbol
}

// Position identifies a rune offset in the source.
type Position struct {
	Line   int
	Column int
}

func (t Token) is(kind symbolKind) bool {
	return t.Type == tokenSymbol && t.sym.kind == kind
}

func (t Token) isInput(input string) bool {
	return t.Type == tokenSymbol && t.sym.input == input
}
