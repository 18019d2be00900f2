// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf32

import (
	"errors"
	"testing"
)

// TestCharRoundTrip ensures every field element maps to a unique character
// and back, in both cases.
func TestCharRoundTrip(t *testing.T) {
	t.Parallel()

	seen := make(map[byte]bool)
	for v := uint8(0); v < 32; v++ {
		fe, err := FromUint(v)
		if err != nil {
			t.Fatalf("FromUint(%d): unexpected error: %v", v, err)
		}
		c := fe.Char()
		if seen[c] {
			t.Fatalf("character %q produced twice", c)
		}
		seen[c] = true

		got, err := FromChar(c)
		if err != nil || got != fe {
			t.Errorf("FromChar(%q) = %d, %v; want %d", c, got, err, fe)
		}
		got, err = FromChar(fe.UpperChar())
		if err != nil || got != fe {
			t.Errorf("FromChar(%q) = %d, %v; want %d", fe.UpperChar(),
				got, err, fe)
		}
	}
}

// TestFromUintOutOfRange ensures values wider than 5 bits are rejected.
func TestFromUintOutOfRange(t *testing.T) {
	t.Parallel()

	for _, v := range []uint8{32, 33, 100, 255} {
		_, err := FromUint(v)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FromUint(%d): got %v, want %v", v, err,
				ErrOutOfRange)
		}
	}
}

// TestFromCharInvalid ensures characters outside the alphabet are rejected.
func TestFromCharInvalid(t *testing.T) {
	t.Parallel()

	// The alphabet deliberately omits 1, b, i and o.
	for _, c := range []byte{'1', 'b', 'i', 'o', 'B', 'I', 'O', ' ', '!',
		0x7f, 0x80, 0xff} {

		_, err := FromChar(c)
		if !errors.Is(err, ErrInvalidChar) {
			t.Errorf("FromChar(%q): got %v, want %v", c, err,
				ErrInvalidChar)
		}
		var fErr Error
		if !errors.As(err, &fErr) || fErr.Description == "" {
			t.Errorf("FromChar(%q): missing error description", c)
		}
	}
}

// TestSplitByte checks the HRP expansion pair.
func TestSplitByte(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        byte
		high, low Fe32
	}{
		{'a', 3, 1},
		{'A', 2, 1},
		{'!', 1, 1},
		{'~', 3, 30},
		{'1', 1, 17},
	}
	for _, test := range tests {
		high, low := SplitByte(test.in)
		if high != test.high || low != test.low {
			t.Errorf("SplitByte(%q) = (%d, %d), want (%d, %d)",
				test.in, high, low, test.high, test.low)
		}
	}
}

// TestNamedConstants spot checks the named field elements.
func TestNamedConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fe   Fe32
		char byte
	}{
		{Q, 'q'}, {P, 'p'}, {Z, 'z'}, {L, 'l'}, {A, 'a'}, {S, 's'},
	}
	for _, test := range tests {
		if test.fe.Char() != test.char {
			t.Errorf("%d.Char() = %q, want %q", test.fe,
				test.fe.Char(), test.char)
		}
		if test.fe.String() != string(test.char) {
			t.Errorf("%d.String() = %q, want %q", test.fe,
				test.fe.String(), string(test.char))
		}
	}
}
