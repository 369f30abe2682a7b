package extract

import (
	"math"
	"testing"
)

func TestEntropyEmpty(t *testing.T) {
	if got := Entropy(""); got != 0.0 {
		t.Fatalf("Entropy(\"\") = %v, want 0", got)
	}
}

func TestEntropySingleSymbol(t *testing.T) {
	if got := Entropy("aaaaaaaa"); got != 0.0 {
		t.Fatalf("Entropy of a single repeated symbol = %v, want 0", got)
	}
}

func TestEntropyUniformAlphabet(t *testing.T) {
	// four equiprobable symbols: exactly 2 bits
	if got := Entropy("abcdabcd"); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("Entropy(abcdabcd) = %v, want 2.0", got)
	}
}

func TestEntropyOrderIndependent(t *testing.T) {
	a := Entropy("factura electronica")
	b := Entropy("acinortcele arutcaf")
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("entropy must not depend on symbol order: %v vs %v", a, b)
	}
}
