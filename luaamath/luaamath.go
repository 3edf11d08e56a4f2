// Package luaamath exposes AsciiMath to MathML conversion to Lua scripts
// running on gopher-lua.
//
// The module is named "amath" and holds a single function:
//
//	local amath = require("amath")
//	local mathml = amath.to_mathml("x^2")
//
// to_mathml accepts exactly one string. Any other argument raises an error
// before the converter runs; a conversion failure raises an error naming the
// input.
package luaamath

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/specmark/amath/amath"
)

const (
	ModuleName   = "amath"
	FunctionName = "to_mathml"

	qualifiedName = ModuleName + "." + FunctionName
)

// Loader returns a module loader suitable for L.PreloadModule. A nil
// converter selects the pure-Go translator with default options.
func Loader(conv amath.Converter) lua.LGFunction {
	b := newBinding(conv)
	return func(L *lua.LState) int {
		L.Push(b.table(L))
		return 1
	}
}

// Preload registers the module so scripts can require("amath").
func Preload(L *lua.LState, conv amath.Converter) {
	L.PreloadModule(ModuleName, Loader(conv))
}

// Open builds the module table and binds it to the global "amath".
func Open(L *lua.LState, conv amath.Converter) *lua.LTable {
	mod := newBinding(conv).table(L)
	L.SetGlobal(ModuleName, mod)
	return mod
}

type binding struct {
	conv amath.Converter
}

func newBinding(conv amath.Converter) *binding {
	if conv == nil {
		conv = amath.New(amath.Options{})
	}
	return &binding{conv: conv}
}

func (b *binding) table(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		FunctionName: b.toMathML,
	})
}

func (b *binding) toMathML(L *lua.LState) int {
	src, err := checkString(L, 1)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	out, err := amath.Convert(b.conv, src)
	if err != nil {
		L.RaiseError("%s: %s", qualifiedName, err.Error())
		return 0
	}

	L.Push(lua.LString(out))
	return 1
}

// checkString accepts only a real Lua string. Numbers are rejected even
// though Lua would coerce them.
func checkString(L *lua.LState, n int) (string, error) {
	if L.GetTop() < n {
		return "", &amath.ArgumentError{Function: qualifiedName, Position: n, Expected: "string", Got: "no value"}
	}
	lv := L.Get(n)
	s, ok := lv.(lua.LString)
	if !ok {
		return "", &amath.ArgumentError{Function: qualifiedName, Position: n, Expected: "string", Got: lv.Type().String()}
	}
	return string(s), nil
}
