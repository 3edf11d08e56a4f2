package amath

import "sort"

type symbolKind int

const (
	kindConst symbolKind = iota
	kindUnderOver
	kindUnary
	kindBinary
	kindInfix
	kindScript
	kindLeftBracket
	kindRightBracket
	kindSpace
	kindText
)

type symbol struct {
	input  string
	tag    string
	output string
	kind   symbolKind

	// unary variants
	function  bool
	accent    bool
	under     bool
	fence     [2]string
	variant   string
	invisible bool
}

func constant(input, tag, output string) symbol {
	return symbol{input: input, tag: tag, output: output, kind: kindConst}
}

func operator(input, output string) symbol {
	return constant(input, "mo", output)
}

func ident(input, output string) symbol {
	return constant(input, "mi", output)
}

func function(input string) symbol {
	return symbol{input: input, tag: "mi", output: input, kind: kindUnary, function: true}
}

func underOver(input, output string) symbol {
	return symbol{input: input, tag: "mo", output: output, kind: kindUnderOver}
}

func accent(input, output string) symbol {
	return symbol{input: input, tag: "mover", output: output, kind: kindUnary, accent: true}
}

func fenced(input, left, right string) symbol {
	return symbol{input: input, tag: "mrow", output: input, kind: kindUnary, fence: [2]string{left, right}}
}

func font(input, variant string) symbol {
	return symbol{input: input, tag: "mstyle", output: input, kind: kindUnary, variant: variant}
}

func left(input, output string) symbol {
	return symbol{input: input, tag: "mo", output: output, kind: kindLeftBracket}
}

func right(input, output string) symbol {
	return symbol{input: input, tag: "mo", output: output, kind: kindRightBracket}
}

var symbolTable = []symbol{
	// greek
	ident("alpha", "α"),
	ident("beta", "β"),
	ident("chi", "χ"),
	ident("delta", "δ"),
	operator("Delta", "Δ"),
	ident("epsi", "ε"),
	ident("epsilon", "ε"),
	ident("varepsilon", "ɛ"),
	ident("eta", "η"),
	ident("gamma", "γ"),
	operator("Gamma", "Γ"),
	ident("iota", "ι"),
	ident("kappa", "κ"),
	ident("lambda", "λ"),
	operator("Lambda", "Λ"),
	ident("lamda", "λ"),
	operator("Lamda", "Λ"),
	ident("mu", "μ"),
	ident("nu", "ν"),
	ident("omega", "ω"),
	operator("Omega", "Ω"),
	ident("phi", "ϕ"),
	ident("varphi", "φ"),
	operator("Phi", "Φ"),
	ident("pi", "π"),
	operator("Pi", "Π"),
	ident("psi", "ψ"),
	ident("Psi", "Ψ"),
	ident("rho", "ρ"),
	ident("sigma", "σ"),
	operator("Sigma", "Σ"),
	ident("tau", "τ"),
	ident("theta", "θ"),
	ident("vartheta", "ϑ"),
	operator("Theta", "Θ"),
	ident("upsilon", "υ"),
	ident("xi", "ξ"),
	operator("Xi", "Ξ"),
	ident("zeta", "ζ"),

	// binary operators
	operator("*", "⋅"),
	operator("**", "∗"),
	operator("***", "⋆"),
	operator("//", "/"),
	operator("\\\\", "\\"),
	operator("setminus", "\\"),
	operator("xx", "×"),
	operator("|><", "⋉"),
	operator("><|", "⋊"),
	operator("|><|", "⋈"),
	operator("-:", "÷"),
	operator("divide", "÷"),
	operator("@", "∘"),
	operator("o+", "⊕"),
	operator("ox", "⊗"),
	operator("o.", "⊙"),
	underOver("sum", "∑"),
	underOver("prod", "∏"),
	operator("^^", "∧"),
	underOver("^^^", "⋀"),
	operator("vv", "∨"),
	underOver("vvv", "⋁"),
	operator("nn", "∩"),
	underOver("nnn", "⋂"),
	operator("uu", "∪"),
	underOver("uuu", "⋃"),

	// relations
	operator("!=", "≠"),
	operator(":=", ":="),
	operator("lt", "<"),
	operator("<=", "≤"),
	operator("lt=", "≤"),
	operator("gt", ">"),
	operator(">=", "≥"),
	operator("gt=", "≥"),
	operator("-<", "≺"),
	operator(">-", "≻"),
	operator("-<=", "⪯"),
	operator(">-=", "⪰"),
	operator("in", "∈"),
	operator("!in", "∉"),
	operator("sub", "⊂"),
	operator("sup", "⊃"),
	operator("sube", "⊆"),
	operator("supe", "⊇"),
	operator("-=", "≡"),
	operator("~=", "≅"),
	operator("~~", "≈"),
	operator("prop", "∝"),

	// logical
	constant("and", "mtext", "and"),
	constant("or", "mtext", "or"),
	operator("not", "¬"),
	operator("=>", "⇒"),
	constant("if", "mo", "if"),
	operator("<=>", "⇔"),
	operator("AA", "∀"),
	operator("EE", "∃"),
	operator("_|_", "⊥"),
	operator("TT", "⊤"),
	operator("|--", "⊢"),
	operator("|==", "⊨"),

	// brackets
	left("(", "("),
	right(")", ")"),
	left("[", "["),
	right("]", "]"),
	left("{", "{"),
	right("}", "}"),
	left("(:", "〈"),
	right(":)", "〉"),
	left("<<", "〈"),
	right(">>", "〉"),
	{input: "{:", tag: "mo", output: "{:", kind: kindLeftBracket, invisible: true},
	{input: ":}", tag: "mo", output: ":}", kind: kindRightBracket, invisible: true},

	// miscellaneous
	operator("int", "∫"),
	operator("oint", "∮"),
	operator("del", "∂"),
	operator("grad", "∇"),
	operator("+-", "±"),
	operator("O/", "∅"),
	operator("oo", "∞"),
	operator("aleph", "ℵ"),
	operator("...", "..."),
	operator(":.", "∴"),
	operator("/_", "∠"),
	operator("/_\\", "△"),
	operator("'", "′"),
	operator("\\ ", " "),
	operator("frown", "⌢"),
	{input: "quad", tag: "mspace", output: "1em", kind: kindSpace},
	{input: "qquad", tag: "mspace", output: "2em", kind: kindSpace},
	operator("cdots", "⋯"),
	operator("vdots", "⋮"),
	operator("ddots", "⋱"),
	operator("diamond", "⋄"),
	operator("square", "□"),
	operator("|__", "⌊"),
	operator("__|", "⌋"),
	operator("|~", "⌈"),
	operator("~|", "⌉"),
	ident("CC", "ℂ"),
	ident("NN", "ℕ"),
	ident("QQ", "ℚ"),
	ident("RR", "ℝ"),
	ident("ZZ", "ℤ"),

	// standard functions
	underOver("lim", "lim"),
	underOver("Lim", "Lim"),
	function("sin"),
	function("cos"),
	function("tan"),
	function("sinh"),
	function("cosh"),
	function("tanh"),
	function("cot"),
	function("sec"),
	function("csc"),
	function("arcsin"),
	function("arccos"),
	function("arctan"),
	function("coth"),
	function("sech"),
	function("csch"),
	function("exp"),
	function("log"),
	function("ln"),
	function("det"),
	function("dim"),
	function("mod"),
	function("gcd"),
	function("lcm"),
	function("lub"),
	function("glb"),
	underOver("min", "min"),
	underOver("max", "max"),
	function("f"),
	function("g"),

	// arrows
	operator("uarr", "↑"),
	operator("darr", "↓"),
	operator("rarr", "→"),
	operator("->", "→"),
	operator(">->", "↣"),
	operator("->>", "↠"),
	operator(">->>", "⤖"),
	operator("|->", "↦"),
	operator("larr", "←"),
	operator("harr", "↔"),
	operator("rArr", "⇒"),
	operator("lArr", "⇐"),
	operator("hArr", "⇔"),

	// commands
	{input: "sqrt", tag: "msqrt", output: "sqrt", kind: kindUnary},
	{input: "root", tag: "mroot", output: "root", kind: kindBinary},
	{input: "frac", tag: "mfrac", output: "/", kind: kindBinary},
	{input: "/", tag: "mfrac", output: "/", kind: kindInfix},
	{input: "stackrel", tag: "mover", output: "stackrel", kind: kindBinary},
	{input: "overset", tag: "mover", output: "stackrel", kind: kindBinary},
	{input: "underset", tag: "munder", output: "stackrel", kind: kindBinary},
	{input: "_", tag: "msub", output: "_", kind: kindScript},
	{input: "^", tag: "msup", output: "^", kind: kindScript},
	fenced("abs", "|", "|"),
	fenced("floor", "⌊", "⌋"),
	fenced("ceil", "⌈", "⌉"),
	fenced("norm", "∥", "∥"),
	accent("hat", "^"),
	accent("bar", "¯"),
	accent("overline", "¯"),
	accent("vec", "→"),
	accent("tilde", "~"),
	accent("dot", "."),
	accent("ddot", ".."),
	{input: "ul", tag: "munder", output: "̲", kind: kindUnary, under: true},
	{input: "underline", tag: "munder", output: "̲", kind: kindUnary, under: true},
	{input: "text", tag: "mtext", output: "text", kind: kindText},
	{input: "mbox", tag: "mtext", output: "mbox", kind: kindText},
	font("bb", "bold"),
	font("mathbf", "bold"),
	font("sf", "sans-serif"),
	font("mathsf", "sans-serif"),
	font("bbb", "double-struck"),
	font("mathbb", "double-struck"),
	font("cc", "script"),
	font("mathcal", "script"),
	font("tt", "monospace"),
	font("mathtt", "monospace"),
	font("fr", "fraktur"),
	font("mathfrak", "fraktur"),
}

// symbolIndex groups the table by leading byte, longest input first, so the
// lexer can take the longest match with a short scan.
var symbolIndex = buildSymbolIndex(symbolTable)

func buildSymbolIndex(table []symbol) map[byte][]*symbol {
	index := make(map[byte][]*symbol)
	for i := range table {
		sym := &table[i]
		index[sym.input[0]] = append(index[sym.input[0]], sym)
	}
	for _, group := range index {
		sort.SliceStable(group, func(i, j int) bool {
			return len(group[i].input) > len(group[j].input)
		})
	}
	return index
}

func lookupSymbol(rest string) *symbol {
	if rest == "" {
		return nil
	}
	for _, sym := range symbolIndex[rest[0]] {
		if len(sym.input) <= len(rest) && rest[:len(sym.input)] == sym.input {
			return sym
		}
	}
	return nil
}
