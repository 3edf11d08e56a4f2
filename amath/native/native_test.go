package native

import (
	"sync"
	"sync/atomic"
	"testing"
)

type fakeAllocator struct {
	allocs   atomic.Int64
	releases atomic.Int64
	fail     map[string]bool
}

type fakeBuffer struct {
	owner    *fakeAllocator
	data     string
	released bool
}

func (b *fakeBuffer) String() string {
	if b.released {
		panic("read after release")
	}
	return b.data
}

func (b *fakeBuffer) Release() {
	if b.released {
		panic("double release")
	}
	b.released = true
	b.owner.releases.Add(1)
}

func (a *fakeAllocator) call(src string) buffer {
	if a.fail[src] {
		return nil
	}
	a.allocs.Add(1)
	return &fakeBuffer{owner: a, data: "<math>" + src + "</math>"}
}

func TestConverterReleasesEachBufferOnce(t *testing.T) {
	alloc := &fakeAllocator{}
	conv := &Converter{call: alloc.call}

	for i := 0; i < 3; i++ {
		out, ok := conv.ToMathML("x^2")
		if !ok {
			t.Fatalf("call %d failed", i)
		}
		if out != "<math>x^2</math>" {
			t.Fatalf("unexpected output: %q", out)
		}
	}
	if got := alloc.allocs.Load(); got != 3 {
		t.Fatalf("expected 3 allocations, got %d", got)
	}
	if got := alloc.releases.Load(); got != 3 {
		t.Fatalf("expected 3 releases, got %d", got)
	}
}

func TestConverterNullResult(t *testing.T) {
	alloc := &fakeAllocator{fail: map[string]bool{"": true}}
	conv := &Converter{call: alloc.call}

	if out, ok := conv.ToMathML(""); ok || out != "" {
		t.Fatalf("expected failure, got %q, %v", out, ok)
	}
	if alloc.allocs.Load() != 0 || alloc.releases.Load() != 0 {
		t.Fatalf("expected no buffer traffic on failure")
	}
}

func TestConverterRejectsEmbeddedNUL(t *testing.T) {
	alloc := &fakeAllocator{}
	conv := &Converter{call: alloc.call}

	if _, ok := conv.ToMathML("x\x00y"); ok {
		t.Fatalf("expected NUL input to fail")
	}
	if alloc.allocs.Load() != 0 {
		t.Fatalf("converter should not be called for NUL input")
	}
}

func TestConverterSerialisesCalls(t *testing.T) {
	var active, peak atomic.Int64
	conv := &Converter{call: func(src string) buffer {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		active.Add(-1)
		return nil
	}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv.ToMathML("x")
		}()
	}
	wg.Wait()
	if peak.Load() != 1 {
		t.Fatalf("expected serialised calls, saw %d concurrent", peak.Load())
	}
}
