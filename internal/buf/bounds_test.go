package buf

import (
	"math"
	"testing"
)

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, -1, 2); ok {
		t.Fatalf("Slice should fail on negative offset")
	}
	if _, ok := Slice(data, 2, -1); ok {
		t.Fatalf("Slice should fail on negative length")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 0, 5) {
		t.Fatalf("Has should be true for the full range")
	}
}

func TestSliceOverflow(t *testing.T) {
	data := []byte{0, 1, 2}
	if _, ok := Slice(data, math.MaxInt, 2); ok {
		t.Fatalf("Slice should fail when off+n overflows")
	}
	if _, ok := Slice(data, 1, math.MaxInt); ok {
		t.Fatalf("Slice should fail when off+n overflows")
	}
}
