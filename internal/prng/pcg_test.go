package prng

import "testing"

// TestDeterministicStream checks that seed (1, 1), the seed used throughout
// the Handycipher test suite (see SPEC_FULL.md §8), yields a non-degenerate
// stream that replays identically.
func TestDeterministicStream(t *testing.T) {
	p := New(1, 1)
	first := p.Next32()
	second := p.Next32()
	if first == 0 && second == 0 {
		t.Fatalf("expected a non-degenerate stream from seed (1,1)")
	}

	replay := New(1, 1)
	if got := replay.Next32(); got != first {
		t.Fatalf("stream not deterministic: got %d, want %d", got, first)
	}
	if got := replay.Next32(); got != second {
		t.Fatalf("stream not deterministic: got %d, want %d", got, second)
	}
}

func TestBoundedRange(t *testing.T) {
	p := New(42, 54)
	for i := 0; i < 10000; i++ {
		v := p.Bounded(25)
		if v >= 25 {
			t.Fatalf("Bounded(25) returned out-of-range value %d", v)
		}
	}
}

func TestDistinctSeedsDiverge(t *testing.T) {
	a := New(1, 1)
	b := New(2, 1)
	same := true
	for i := 0; i < 8; i++ {
		if a.Next32() != b.Next32() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct seeds produced identical streams")
	}
}

func TestSeedFromEntropyProducesUsableState(t *testing.T) {
	p := &PCG32{}
	if err := p.SeedFromEntropy(); err != nil {
		t.Fatalf("SeedFromEntropy: %v", err)
	}
	// Smoke test: generator should be usable after entropy seeding.
	_ = p.Bounded(31)
}
