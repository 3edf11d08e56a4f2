package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

func writeMathML(w io.Writer, mathml string, color bool, style string) error {
	if color {
		return quick.Highlight(w, mathml+"\n", "xml", "terminal256", style)
	}
	_, err := io.WriteString(w, mathml+"\n")
	return err
}

func highlightString(mathml, style string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, mathml, "xml", "terminal256", style); err != nil {
		return mathml
	}
	return strings.TrimRight(buf.String(), "\n")
}
