// Package amath converts AsciiMath notation into MathML.
//
// The package defines the Converter contract shared by every backend: a
// converter either returns a MathML document for its input or reports that
// no result could be produced, with no further detail. Convert wraps that
// contract into a Go error carrying the offending input.
//
// Translator is the pure-Go backend. It supports the common ASCIIMathML
// notation:
//   - Numbers, single-letter identifiers and quoted text ("...").
//   - Greek letters, operators, relations, arrows and logical symbols.
//   - Sub- and superscripts via `_` and `^`, fractions via `/`.
//   - Grouping brackets, including invisible `{:` and `:}`.
//   - Unary commands (sqrt, abs, hat, bb, text, ...) and binary commands
//     (frac, root, stackrel, overset, underset).
//   - Matrices written as bracketed rows, e.g. `[(a,b),(c,d)]`.
//
// The native subpackage reaches the C implementation through cgo.
package amath
