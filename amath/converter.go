package amath

// Converter turns AsciiMath source into a MathML document. A false result
// reports failure and carries no further detail, matching the C library's
// NULL return.
type Converter interface {
	ToMathML(src string) (string, bool)
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(src string) (string, bool)

func (f ConverterFunc) ToMathML(src string) (string, bool) {
	return f(src)
}

// Convert runs c once and reports failure as a *ConversionError holding src.
func Convert(c Converter, src string) (string, error) {
	out, ok := c.ToMathML(src)
	if !ok {
		return "", &ConversionError{Input: src}
	}
	return out, nil
}
