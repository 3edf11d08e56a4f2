package amath

import "strings"

const mathMLNamespace = "http://www.w3.org/1998/Math/MathML"

type attribute struct {
	name  string
	value string
}

type element struct {
	tag      string
	attrs    []attribute
	text     string
	children []*element

	// Bracket groups keep their content without the fences so fraction and
	// script operands can drop the brackets.
	group bool
	open  string
	inner []*element
}

func leaf(tag, text string) *element {
	return &element{tag: tag, text: text}
}

func node(tag string, children ...*element) *element {
	return &element{tag: tag, children: children}
}

func (e *element) with(name, value string) *element {
	e.attrs = append(e.attrs, attribute{name: name, value: value})
	return e
}

func row(children []*element) *element {
	if len(children) == 1 && children[0] != nil {
		return children[0]
	}
	return node("mrow", children...)
}

func removeBrackets(e *element) *element {
	if e == nil || !e.group {
		return e
	}
	return row(e.inner)
}

func orEmpty(e *element) *element {
	if e == nil {
		return node("mrow")
	}
	return e
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func writeElement(b *strings.Builder, e *element) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, attr := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(attr.name)
		b.WriteString(`="`)
		xmlEscaper.WriteString(b, attr.value)
		b.WriteByte('"')
	}
	if e.text == "" && len(e.children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	xmlEscaper.WriteString(b, e.text)
	for _, child := range e.children {
		writeElement(b, child)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

func renderDocument(children []*element, display bool) string {
	root := node("math", children...).with("xmlns", mathMLNamespace)
	if display {
		root.with("display", "block")
	}
	var b strings.Builder
	writeElement(&b, root)
	return b.String()
}
