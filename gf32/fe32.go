// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf32

// Charset is the bech32 alphabet.  The index of each character is the
// numeric value of the field element it represents.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// invalidChar marks bytes in charsetRev that are not part of the alphabet.
const invalidChar = 0xff

// charsetRev maps an ASCII byte (either case) to its field element value or
// invalidChar.
var charsetRev = [128]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	15, 0xff, 10, 17, 21, 20, 26, 30, 7, 5, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 29, 0xff, 24, 13, 25, 9, 8, 23, 0xff, 18, 22, 31, 27, 19, 0xff,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 29, 0xff, 24, 13, 25, 9, 8, 23, 0xff, 18, 22, 31, 27, 19, 0xff,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Fe32 is an element of GF(32), i.e. one 5-bit bech32 symbol.  Values outside
// [0, 31] are never produced by this package.
type Fe32 uint8

// Field elements named after their bech32 character.  Digits have no named
// constant.
const (
	Q Fe32 = 0
	P Fe32 = 1
	Z Fe32 = 2
	R Fe32 = 3
	Y Fe32 = 4
	X Fe32 = 6
	G Fe32 = 8
	F Fe32 = 9
	T Fe32 = 11
	V Fe32 = 12
	D Fe32 = 13
	W Fe32 = 14
	S Fe32 = 16
	J Fe32 = 18
	N Fe32 = 19
	K Fe32 = 22
	H Fe32 = 23
	C Fe32 = 24
	E Fe32 = 25
	M Fe32 = 27
	U Fe32 = 28
	A Fe32 = 29
	L Fe32 = 31
)

// FromUint returns the field element with the value v.  An error of kind
// ErrOutOfRange is returned when v does not fit in 5 bits.
func FromUint(v uint8) (Fe32, error) {
	if v > 31 {
		str := "field element value %d is not in range [0, 31]"
		return 0, makeError(ErrOutOfRange, str, v)
	}
	return Fe32(v), nil
}

// FromChar returns the field element represented by the bech32 character c.
// Both lower and upper case characters are accepted.
func FromChar(c byte) (Fe32, error) {
	if c >= 0x80 || charsetRev[c] == invalidChar {
		str := "character %q is not part of the bech32 alphabet"
		return 0, makeError(ErrInvalidChar, str, c)
	}
	return Fe32(charsetRev[c]), nil
}

// SplitByte splits an HRP byte into the pair of field elements used by the
// checksum expansion: the upper three bits and the lower five bits.
func SplitByte(b byte) (high, low Fe32) {
	return Fe32(b >> 5), Fe32(b & 31)
}

// Char returns the lowercase bech32 character for the field element.
func (fe Fe32) Char() byte {
	return Charset[fe&31]
}

// UpperChar returns the uppercase bech32 character for the field element.
func (fe Fe32) UpperChar() byte {
	c := fe.Char()
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// String returns the lowercase character as a string.
func (fe Fe32) String() string {
	return string(fe.Char())
}
