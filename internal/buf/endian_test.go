package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 {
		t.Fatalf("U16LE short should be 0")
	}
	if U32LE(short) != 0 {
		t.Fatalf("U32LE short should be 0")
	}
	if U16LE(nil) != 0 || U32LE(nil) != 0 {
		t.Fatalf("nil reads should return 0")
	}
}
