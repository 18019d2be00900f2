// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"

	"github.com/groestlcoin/bech32grs/bitpack"
	"github.com/groestlcoin/bech32grs/checksum"
	"github.com/groestlcoin/bech32grs/gf32"
	"github.com/groestlcoin/bech32grs/hrp"
)

const (
	// MaxLength is the maximum length of a bech32 string, including the
	// human-readable part, the separator and the checksum.
	MaxLength = 90

	// Separator divides the human-readable part from the data part.  The
	// last occurrence in a string is the separator.
	Separator = '1'
)

// UncheckedHrpstring is a bech32 string that has been split into its
// human-readable part and data part, with every character validated, but
// whose checksum has not been checked.
type UncheckedHrpstring struct {
	hrp  hrp.Hrp
	data []gf32.Fe32
}

// ParseUnchecked parses s into its human-readable part and data part.  The
// checks run in order: separator, case, HRP, data characters.
func ParseUnchecked(s string) (*UncheckedHrpstring, error) {
	sep := strings.LastIndexByte(s, Separator)
	if sep < 0 {
		return nil, makeError(ErrMissingSeparator, "no separator "+
			"character '1' in %q", s)
	}
	if sep == 0 {
		return nil, makeError(ErrAmbiguousSeparator, "separator is the "+
			"first character of %q, human-readable part is empty", s)
	}

	if isMixedCase(s) {
		return nil, makeError(ErrMixedCase, "%q contains both upper and "+
			"lower case characters", s)
	}

	h, err := hrp.Parse(s[:sep])
	if err != nil {
		return nil, wrapError(ErrInvalidHrp, err, "invalid "+
			"human-readable part: %v", err)
	}

	dataPart := s[sep+1:]
	data := make([]gf32.Fe32, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		fe, err := gf32.FromChar(dataPart[i])
		if err != nil {
			return nil, wrapError(ErrInvalidChar, err, "invalid "+
				"character %q at position %d", dataPart[i],
				sep+1+i)
		}
		data[i] = fe
	}

	return &UncheckedHrpstring{hrp: h, data: data}, nil
}

// isMixedCase reports whether s has both upper and lower case ASCII letters.
func isMixedCase(s string) bool {
	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	return hasLower && hasUpper
}

// Hrp returns the human-readable part.
func (u *UncheckedHrpstring) Hrp() hrp.Hrp {
	return u.hrp
}

// Data returns the data part including the checksum.  The returned slice
// must not be modified.
func (u *UncheckedHrpstring) Data() []gf32.Fe32 {
	return u.data
}

// Len returns the length of the parsed string.
func (u *UncheckedHrpstring) Len() int {
	return u.hrp.Len() + 1 + len(u.data)
}

// HasValidChecksum reports whether the string carries a valid checksum of the
// given algorithm.
func (u *UncheckedHrpstring) HasValidChecksum(algo checksum.Algorithm) bool {
	return u.ValidateChecksum(algo) == nil
}

// ValidateChecksum checks the trailing six characters are a valid checksum of
// the given algorithm.
func (u *UncheckedHrpstring) ValidateChecksum(algo checksum.Algorithm) error {
	if len(u.data) < checksum.Length {
		str := "data part has %d characters, a checksum needs %d"
		return makeError(ErrInvalidChecksumLength, str, len(u.data),
			checksum.Length)
	}
	if !checksum.Verify(u.hrp, u.data, algo) {
		str := "invalid %v checksum"
		return makeError(ErrInvalidChecksum, str, algo)
	}
	return nil
}

// DetectChecksum returns the algorithm whose checksum the string carries.
func (u *UncheckedHrpstring) DetectChecksum() (checksum.Algorithm, error) {
	if len(u.data) < checksum.Length {
		str := "data part has %d characters, a checksum needs %d"
		return 0, makeError(ErrInvalidChecksumLength, str, len(u.data),
			checksum.Length)
	}
	algo, ok := checksum.Detect(u.hrp, u.data)
	if !ok {
		return 0, makeError(ErrInvalidChecksum, "checksum matches "+
			"neither bech32 nor bech32m")
	}
	return algo, nil
}

// RemoveChecksum validates the length and the checksum of the string and
// returns the checked string without its checksum.
func (u *UncheckedHrpstring) RemoveChecksum(algo checksum.Algorithm) (*CheckedHrpstring, error) {
	if u.Len() > MaxLength {
		str := "string is %d characters, maximum is %d"
		return nil, makeError(ErrTooLong, str, u.Len(), MaxLength)
	}
	if err := u.ValidateChecksum(algo); err != nil {
		return nil, err
	}

	return &CheckedHrpstring{
		hrp:  u.hrp,
		data: u.data[:len(u.data)-checksum.Length],
		algo: algo,
	}, nil
}

// CheckedHrpstring is a bech32 string with a verified checksum.  The
// checksum itself has been removed from the data part.
type CheckedHrpstring struct {
	hrp  hrp.Hrp
	data []gf32.Fe32
	algo checksum.Algorithm
}

// ParseChecked parses s and validates its checksum against algo.
func ParseChecked(s string, algo checksum.Algorithm) (*CheckedHrpstring, error) {
	u, err := ParseUnchecked(s)
	if err != nil {
		return nil, err
	}
	return u.RemoveChecksum(algo)
}

// Hrp returns the human-readable part.
func (c *CheckedHrpstring) Hrp() hrp.Hrp {
	return c.hrp
}

// Data returns the data part without the checksum.  The returned slice must
// not be modified.
func (c *CheckedHrpstring) Data() []gf32.Fe32 {
	return c.data
}

// Algorithm returns the algorithm the checksum was validated with.
func (c *CheckedHrpstring) Algorithm() checksum.Algorithm {
	return c.algo
}

// ByteIterator returns an iterator over the bytes packed into the data part.
func (c *CheckedHrpstring) ByteIterator() bitpack.ByteIterator {
	return bitpack.MakeByteIterator(c.data)
}

// Bytes returns the bytes packed into the data part.
func (c *CheckedHrpstring) Bytes() ([]byte, error) {
	return bitpack.FesToBytes(c.data)
}
