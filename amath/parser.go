package amath

import "fmt"

type parser struct {
	tokens []Token
	pos    int
	source string

	depth    int
	maxDepth int
	nesting  int

	err error
}

func newParser(source string, maxDepth int) (*parser, error) {
	l := newLexer(source)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == tokenIllegal {
			return nil, &ParseError{
				Pos:    tok.Pos,
				Err:    fmt.Errorf("%w %U", ErrIllegalCharacter, []rune(tok.Literal)[0]),
				Source: source,
			}
		}
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			break
		}
	}
	return &parser{tokens: tokens, source: source, maxDepth: maxDepth}, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) enter(tok Token) bool {
	p.depth++
	if p.depth > p.maxDepth {
		if p.err == nil {
			p.err = &ParseError{
				Pos:    tok.Pos,
				Err:    fmt.Errorf("%w (%d)", ErrNestingTooDeep, p.maxDepth),
				Source: p.source,
			}
		}
		return false
	}
	return true
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parse() ([]*element, error) {
	children, _ := p.parseExpr(false)
	if p.err != nil {
		return nil, p.err
	}
	return children, nil
}

// parseExpr reads intermediates, folding `a/b` into fractions, until the end
// of input or, when closing is set, a right bracket. The consumed bracket is
// returned so the caller can render it.
func (p *parser) parseExpr(closing bool) ([]*element, *Token) {
	var children []*element
	for p.err == nil {
		tok := p.peek()
		if tok.Type == tokenEOF {
			return children, nil
		}
		if closing && tok.is(kindRightBracket) {
			p.next()
			return children, &tok
		}

		start := p.pos
		el := p.parseIntermediate()
		if el == nil {
			if p.pos == start {
				return children, nil
			}
			continue
		}
		if p.peek().is(kindInfix) {
			p.next()
			den := p.parseIntermediate()
			el = node("mfrac", removeBrackets(el), orEmpty(removeBrackets(den)))
		}
		children = append(children, el)
	}
	return children, nil
}

func (p *parser) parseIntermediate() *element {
	base, sym := p.parseSimple()
	if base == nil {
		return nil
	}
	underOver := sym != nil && sym.kind == kindUnderOver

	switch {
	case p.peek().isInput("_"):
		p.next()
		sub := orEmpty(removeBrackets(p.parseOperand()))
		if p.peek().isInput("^") {
			p.next()
			sup := orEmpty(removeBrackets(p.parseOperand()))
			if underOver {
				return node("munderover", base, sub, sup)
			}
			return node("msubsup", base, sub, sup)
		}
		if underOver {
			return node("munder", base, sub)
		}
		return node("msub", base, sub)
	case p.peek().isInput("^"):
		p.next()
		sup := orEmpty(removeBrackets(p.parseOperand()))
		if underOver {
			return node("mover", base, sup)
		}
		return node("msup", base, sup)
	}
	return base
}

func (p *parser) parseOperand() *element {
	el, _ := p.parseSimple()
	return el
}

// parseSimple reads one simple expression. The symbol is returned for
// constants so the caller can place scripts under and over operators such as
// sum and lim.
func (p *parser) parseSimple() (*element, *symbol) {
	tok := p.peek()
	if tok.Type == tokenEOF || p.err != nil {
		return nil, nil
	}
	if tok.is(kindRightBracket) && p.nesting > 0 {
		return nil, nil
	}
	if !p.enter(tok) {
		p.leave()
		return nil, nil
	}
	defer p.leave()
	p.next()

	switch tok.Type {
	case tokenNumber:
		return leaf("mn", tok.Literal), nil
	case tokenIdent:
		return leaf("mi", tok.Literal), nil
	case tokenText:
		return leaf("mtext", tok.Literal), nil
	case tokenOther:
		return leaf("mo", tok.Literal), nil
	}

	sym := tok.sym
	switch sym.kind {
	case kindLeftBracket:
		return p.parseGroup(sym), nil
	case kindRightBracket:
		if sym.invisible {
			return node("mrow"), nil
		}
		return leaf("mo", sym.output), nil
	case kindUnary:
		return p.parseUnary(sym), nil
	case kindBinary:
		return p.parseBinary(sym), nil
	case kindSpace:
		return leaf(sym.tag, "").with("width", sym.output), nil
	case kindInfix, kindScript:
		return leaf("mo", sym.output), nil
	case kindText:
		return leaf("mi", sym.input), nil
	default:
		return leaf(sym.tag, sym.output), sym
	}
}

func (p *parser) parseGroup(open *symbol) *element {
	p.nesting++
	content, closeTok := p.parseExpr(true)
	p.nesting--

	var children []*element
	if !open.invisible {
		children = append(children, leaf("mo", open.output))
	}
	if table := buildMatrix(content); table != nil {
		children = append(children, table)
	} else {
		children = append(children, content...)
	}
	if closeTok != nil && !closeTok.sym.invisible {
		children = append(children, leaf("mo", closeTok.sym.output))
	}

	el := node("mrow", children...)
	el.group = true
	el.open = open.input
	el.inner = content
	return el
}

func (p *parser) parseUnary(sym *symbol) *element {
	if sym.function && (p.peek().isInput("_") || p.peek().isInput("^")) {
		return leaf("mi", sym.output)
	}
	arg := p.parseOperand()
	if arg == nil {
		if sym.function {
			return leaf("mi", sym.output)
		}
		return leaf("mo", sym.input)
	}

	switch {
	case sym.function:
		return node("mrow", leaf("mi", sym.output), arg)
	case sym.accent:
		return node("mover", removeBrackets(arg), leaf("mo", sym.output)).with("accent", "true")
	case sym.under:
		return node("munder", removeBrackets(arg), leaf("mo", sym.output)).with("accentunder", "true")
	case sym.fence[0] != "":
		return node("mrow", leaf("mo", sym.fence[0]), removeBrackets(arg), leaf("mo", sym.fence[1]))
	case sym.variant != "":
		return node("mstyle", removeBrackets(arg)).with("mathvariant", sym.variant)
	default:
		return node(sym.tag, removeBrackets(arg))
	}
}

func (p *parser) parseBinary(sym *symbol) *element {
	first := p.parseOperand()
	if first == nil {
		return leaf("mo", sym.input)
	}
	second := orEmpty(p.parseOperand())
	a, b := removeBrackets(first), removeBrackets(second)

	switch sym.input {
	case "frac":
		return node("mfrac", a, b)
	case "root":
		return node("mroot", b, a)
	default:
		return node(sym.tag, b, a)
	}
}

// buildMatrix recognises `(a,b),(c,d)`: two or more bracketed rows separated
// by commas, each row holding the same number of cells.
func buildMatrix(content []*element) *element {
	if len(content) < 3 || len(content)%2 == 0 {
		return nil
	}

	var rows [][][]*element
	columns := -1
	for i, el := range content {
		if i%2 == 1 {
			if !isComma(el) {
				return nil
			}
			continue
		}
		if !el.group || (el.open != "(" && el.open != "[") {
			return nil
		}
		cells := splitCells(el.inner)
		if columns == -1 {
			columns = len(cells)
		} else if len(cells) != columns {
			return nil
		}
		rows = append(rows, cells)
	}

	table := node("mtable")
	for _, cells := range rows {
		tr := node("mtr")
		for _, cell := range cells {
			tr.children = append(tr.children, node("mtd", cell...))
		}
		table.children = append(table.children, tr)
	}
	return table
}

func splitCells(content []*element) [][]*element {
	cells := [][]*element{nil}
	for _, el := range content {
		if isComma(el) {
			cells = append(cells, nil)
			continue
		}
		cells[len(cells)-1] = append(cells[len(cells)-1], el)
	}
	return cells
}

func isComma(el *element) bool {
	return el != nil && el.tag == "mo" && el.text == "," && !el.group
}
