package amath

import (
	"errors"
	"strings"
	"testing"
)

func TestConvertSuccess(t *testing.T) {
	calls := 0
	conv := ConverterFunc(func(src string) (string, bool) {
		calls++
		return "<math>" + src + "</math>", true
	})

	out, err := Convert(conv, "x")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if out != "<math>x</math>" {
		t.Fatalf("unexpected output: %q", out)
	}
	if calls != 1 {
		t.Fatalf("expected one converter call, got %d", calls)
	}
}

func TestConvertFailureCarriesInput(t *testing.T) {
	conv := ConverterFunc(func(string) (string, bool) { return "", false })

	_, err := Convert(conv, "")
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConversionError, got %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), `""`) {
		t.Fatalf("expected quoted empty input in %q", err.Error())
	}

	_, err = Convert(conv, `a "quoted" b`)
	if !strings.Contains(err.Error(), `a "quoted" b`) {
		t.Fatalf("expected verbatim input in %q", err.Error())
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	err := &ArgumentError{Function: "amath.to_mathml", Position: 1, Expected: "string", Got: "number"}
	want := "amath.to_mathml: bad argument #1 (string expected, got number)"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestTranslatorSatisfiesConverter(t *testing.T) {
	var conv Converter = New(Options{})
	if _, err := Convert(conv, "x^2"); err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if _, err := Convert(conv, ""); err == nil {
		t.Fatalf("expected empty input to fail")
	}
}
