//go:build !cgo || !amath_native

package native

// Available reports whether the C converter is linked into this binary.
const Available = false

// New reports ErrUnavailable; rebuild with cgo and -tags amath_native.
func New() (*Converter, error) {
	return nil, ErrUnavailable
}
