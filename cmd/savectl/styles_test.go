package main

import (
	"strings"
	"testing"
)

func TestHPBar(t *testing.T) {
	if got := hpBar(10, 10, 10); got != strings.Repeat("█", 10) {
		t.Fatalf("full bar = %q", got)
	}
	if got := hpBar(0, 10, 10); got != strings.Repeat("░", 10) {
		t.Fatalf("empty bar = %q", got)
	}
	if got := hpBar(5, 10, 10); got != strings.Repeat("█", 5)+strings.Repeat("░", 5) {
		t.Fatalf("half bar = %q", got)
	}
	// Zero max (corrupt record) must not divide by zero.
	if got := hpBar(5, 0, 10); got != strings.Repeat("░", 10) {
		t.Fatalf("zero-max bar = %q", got)
	}
	// Current above max caps at full.
	if got := hpBar(20, 10, 10); got != strings.Repeat("█", 10) {
		t.Fatalf("overfull bar = %q", got)
	}
}

func TestHexRows(t *testing.T) {
	noColor = true
	defer func() { noColor = false }()

	got := hexRows([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}, 4, 0)
	want := "00 01 02 03\n04 05"
	if got != want {
		t.Fatalf("hexRows = %q, want %q", got, want)
	}

	if got := hexRows([]byte{0xAB}, 16, 1); got != "ab" {
		t.Fatalf("single byte = %q", got)
	}
}
