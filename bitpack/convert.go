// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitpack

// ConvertBits regroups data from fromBits wide values into toBits wide
// values.  With pad set, a final partial group is padded with zero bits.
// Without it, leftover bits must number fewer than fromBits and be zero, the
// same rule the ByteIterator enforces.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := "bit groups must be between 1 and 8 bits wide, got " +
			"%d and %d"
		return nil, makeError(ErrInvalidBitGroup, str, fromBits, toBits)
	}

	maxOut := uint32(1)<<toBits - 1
	regrouped := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	var acc uint32
	var bits uint8
	for i, b := range data {
		if b>>fromBits != 0 {
			str := "value %d at index %d does not fit in %d bits"
			return nil, makeError(ErrInvalidDataRange, str, b, i,
				fromBits)
		}
		acc = (acc<<fromBits | uint32(b)) & 0xffff
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxOut))
		}
	}

	switch {
	case pad:
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxOut))
		}

	case bits >= fromBits:
		str := "%d bits left after the last whole group"
		return nil, makeError(ErrIncompleteGroup, str, bits)

	case acc<<(toBits-bits)&maxOut != 0:
		return nil, makeError(ErrNonZeroPadding, "padding bits are "+
			"not zero")
	}

	return regrouped, nil
}
