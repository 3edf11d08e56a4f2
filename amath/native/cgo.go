//go:build cgo && amath_native

package native

/*
#cgo LDFLAGS: -lamath
#include <stdlib.h>
#include <amath.h>
*/
import "C"

import "unsafe"

// Available reports whether the C converter is linked into this binary.
const Available = true

type cBuffer struct {
	ptr *C.char
}

func (b cBuffer) String() string {
	return C.GoString(b.ptr)
}

func (b cBuffer) Release() {
	C.free(unsafe.Pointer(b.ptr))
}

func callAmath(src string) buffer {
	input := C.CString(src)
	defer C.free(unsafe.Pointer(input))

	out := C.amath_to_mathml(input)
	if out == nil {
		return nil
	}
	return cBuffer{ptr: out}
}

// New returns a Converter backed by amath_to_mathml.
func New() (*Converter, error) {
	return &Converter{call: callAmath}, nil
}
