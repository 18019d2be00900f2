// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hrp

import "strings"

// MaxLength is the maximum number of characters in a human-readable part.
// An 83 character HRP plus the separator and a six character checksum fills
// the 90 character limit of a bech32 string.
const MaxLength = 83

// Known segwit human-readable parts of the Groestlcoin networks.
var (
	// GRS is the mainnet HRP.
	GRS = MustParse("grs")

	// TGRS is the testnet HRP.
	TGRS = MustParse("tgrs")

	// GRSRT is the regtest HRP.
	GRSRT = MustParse("grsrt")
)

// Hrp is a validated human-readable part.  The zero value is not a valid HRP;
// values are only created by Parse.
type Hrp struct {
	s string
}

// Parse validates s as a human-readable part.  The HRP must be 1 to 83 ASCII
// characters in the range [33, 126] and must not mix upper and lower case.
// The case of s is preserved.
func Parse(s string) (Hrp, error) {
	if len(s) == 0 {
		return Hrp{}, makeError(ErrEmpty, "human-readable part is empty")
	}
	if len(s) > MaxLength {
		str := "human-readable part is %d characters, maximum is %d"
		return Hrp{}, makeError(ErrTooLong, str, len(s), MaxLength)
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 0x80:
			str := "non-ASCII byte %#x at position %d"
			return Hrp{}, makeError(ErrNonASCII, str, b, i)

		case b < 33 || b > 126:
			str := "byte %#x at position %d is outside [33, 126]"
			return Hrp{}, makeError(ErrInvalidASCIIByte, str, b, i)

		case b >= 'a' && b <= 'z':
			hasLower = true

		case b >= 'A' && b <= 'Z':
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		return Hrp{}, makeError(ErrMixedCase, "human-readable part %q "+
			"mixes upper and lower case", s)
	}

	return Hrp{s: s}, nil
}

// MustParse is like Parse but panics on error.  It is only intended for
// initializing package level HRP constants.
func MustParse(s string) Hrp {
	h, err := Parse(s)
	if err != nil {
		panic("hrp: MustParse(" + s + "): " + err.Error())
	}
	return h
}

// String returns the HRP exactly as it was parsed.
func (h Hrp) String() string {
	return h.s
}

// Len returns the number of characters in the HRP.
func (h Hrp) Len() int {
	return len(h.s)
}

// LowercaseByte returns the i'th byte of the HRP converted to lowercase.
// Checksums are always computed over the lowercase form.
func (h Hrp) LowercaseByte(i int) byte {
	b := h.s[i]
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return b
}

// UppercaseByte returns the i'th byte of the HRP converted to uppercase.
func (h Hrp) UppercaseByte(i int) byte {
	b := h.s[i]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b
}

// Lowercase returns the lowercase form of the HRP.
func (h Hrp) Lowercase() string {
	return strings.ToLower(h.s)
}

// Equal reports whether h and other are the same HRP ignoring case.
func (h Hrp) Equal(other Hrp) bool {
	return strings.EqualFold(h.s, other.s)
}

// IsValidOnMainnet reports whether h is the mainnet segwit HRP.
func (h Hrp) IsValidOnMainnet() bool {
	return h.Equal(GRS)
}

// IsValidOnTestnet reports whether h is the testnet segwit HRP.
func (h Hrp) IsValidOnTestnet() bool {
	return h.Equal(TGRS)
}

// IsValidOnRegtest reports whether h is the regtest segwit HRP.
func (h Hrp) IsValidOnRegtest() bool {
	return h.Equal(GRSRT)
}

// IsValidSegwit reports whether h is the segwit HRP of any known network.
func (h Hrp) IsValidSegwit() bool {
	return h.IsValidOnMainnet() || h.IsValidOnTestnet() ||
		h.IsValidOnRegtest()
}
