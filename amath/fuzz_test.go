package amath

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzTranslateDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("x^2")
	f.Add("sum_(i=1)^n i^2")
	f.Add("[(a,b),(c,d)]")
	f.Add(`text(a (b) c`)
	f.Add(strings.Repeat("sqrt ", 80) + "x")
	f.Add("a/b/c_d^e")

	tr := New(Options{})
	f.Fuzz(func(t *testing.T, src string) {
		out, err := tr.Translate(src)
		if err != nil {
			if out != "" {
				t.Fatalf("failed translation returned output %q", out)
			}
			return
		}
		if !utf8.ValidString(out) {
			t.Fatalf("output is not valid UTF-8: %q", out)
		}
		if !strings.HasPrefix(out, "<math ") || !strings.HasSuffix(out, "</math>") {
			t.Fatalf("output is not a math element: %q", out)
		}
	})
}

func BenchmarkTranslate(b *testing.B) {
	tr := New(Options{})
	src := "sum_(k=0)^n ((n),(k)) x^k y^(n-k) = (x+y)^n"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Translate(src); err != nil {
			b.Fatalf("translate failed: %v", err)
		}
	}
}
