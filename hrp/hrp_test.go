// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hrp

import (
	"errors"
	"strings"
	"testing"
)

// TestParse ensures HRP validation accepts and rejects the expected inputs.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		err  error
	}{
		{name: "mainnet", in: "grs"},
		{name: "uppercase", in: "GRS"},
		{name: "single char", in: "a"},
		{name: "punctuation", in: "?"},
		{name: "contains separator", in: "1"},
		{name: "max length", in: strings.Repeat("a", MaxLength)},
		{name: "printable bounds", in: "!~"},
		{name: "empty", in: "", err: ErrEmpty},
		{name: "too long", in: strings.Repeat("a", MaxLength+1),
			err: ErrTooLong},
		{name: "space", in: "a b", err: ErrInvalidASCIIByte},
		{name: "DEL", in: "\x7f", err: ErrInvalidASCIIByte},
		{name: "control", in: "\x00", err: ErrInvalidASCIIByte},
		{name: "non-ASCII", in: "gr\xc3\xa9", err: ErrNonASCII},
		{name: "mixed case", in: "Grs", err: ErrMixedCase},
	}

	for _, test := range tests {
		h, err := Parse(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: Parse(%q) error = %v, want %v", test.name,
				test.in, err, test.err)
			continue
		}
		if test.err != nil {
			continue
		}
		if h.String() != test.in {
			t.Errorf("%s: String() = %q, want %q", test.name,
				h.String(), test.in)
		}
		if h.Len() != len(test.in) {
			t.Errorf("%s: Len() = %d, want %d", test.name, h.Len(),
				len(test.in))
		}
	}
}

// TestCase ensures the case helpers and case-insensitive equality behave.
func TestCase(t *testing.T) {
	t.Parallel()

	upper := MustParse("TGRS")
	if upper.Lowercase() != "tgrs" {
		t.Fatalf("Lowercase() = %q, want %q", upper.Lowercase(), "tgrs")
	}
	if !upper.Equal(TGRS) {
		t.Fatal("TGRS should equal tgrs")
	}
	if upper.Equal(GRS) {
		t.Fatal("TGRS should not equal grs")
	}
	for i := 0; i < upper.Len(); i++ {
		if upper.LowercaseByte(i) != TGRS.String()[i] {
			t.Errorf("LowercaseByte(%d) = %q", i, upper.LowercaseByte(i))
		}
		if TGRS.UppercaseByte(i) != upper.String()[i] {
			t.Errorf("UppercaseByte(%d) = %q", i, TGRS.UppercaseByte(i))
		}
	}

	// Non-letters are untouched by either conversion.
	sym := MustParse("?1")
	if sym.LowercaseByte(0) != '?' || sym.UppercaseByte(1) != '1' {
		t.Fatal("case conversion changed a non-letter")
	}
}

// TestKnownNetworks checks the segwit HRP network predicates.
func TestKnownNetworks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in                         string
		main, test, regtest, valid bool
	}{
		{"grs", true, false, false, true},
		{"GRS", true, false, false, true},
		{"tgrs", false, true, false, true},
		{"grsrt", false, false, true, true},
		{"tgrt", false, false, false, false},
		{"bc", false, false, false, false},
	}
	for _, test := range tests {
		h := MustParse(test.in)
		if h.IsValidOnMainnet() != test.main ||
			h.IsValidOnTestnet() != test.test ||
			h.IsValidOnRegtest() != test.regtest ||
			h.IsValidSegwit() != test.valid {

			t.Errorf("%q: wrong network predicates", test.in)
		}
	}
}

// TestMustParsePanics ensures MustParse panics on an invalid HRP.
func TestMustParsePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic")
		}
	}()
	MustParse("")
}
