// Package native reaches the C AsciiMath converter, amath_to_mathml, through
// cgo. It is compiled in with the amath_native build tag and cgo enabled;
// otherwise New reports ErrUnavailable.
//
// The C converter's thread-safety is not documented, so every call into it
// is serialised.
package native

import (
	"errors"
	"strings"
	"sync"
)

// ErrUnavailable is returned by New when the binary was built without the C
// converter.
var ErrUnavailable = errors.New("native: amath library not linked (build with cgo and -tags amath_native)")

// callMu serialises calls into the C library across all Converters.
var callMu sync.Mutex

// buffer is a result allocated by the foreign converter. The holder owns it
// until Release.
type buffer interface {
	String() string
	Release()
}

// foreignFunc calls the converter and returns its buffer, or nil when the
// converter produced nothing.
type foreignFunc func(src string) buffer

// Converter implements amath.Converter on top of the C library.
type Converter struct {
	call foreignFunc
}

// ToMathML implements amath.Converter.
func (c *Converter) ToMathML(src string) (string, bool) {
	// A NUL byte would silently truncate the C string.
	if strings.IndexByte(src, 0) >= 0 {
		return "", false
	}
	callMu.Lock()
	defer callMu.Unlock()
	return adopt(c.call, src)
}

// adopt copies a foreign result into a Go string and releases the foreign
// buffer before returning.
func adopt(call foreignFunc, src string) (string, bool) {
	buf := call(src)
	if buf == nil {
		return "", false
	}
	defer buf.Release()
	return buf.String(), true
}
