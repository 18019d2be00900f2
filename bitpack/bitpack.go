// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitpack

import (
	"github.com/groestlcoin/bech32grs/gf32"
)

// FeIterator converts bytes into field elements without creating
// allocations.  Bits are consumed most significant first and a final partial
// group is padded on the right with zero bits.  Each successive element is
// produced by Next, which returns false once the input is exhausted, and is
// obtained with Fe.
type FeIterator struct {
	data   []byte
	offset int
	acc    uint32
	bits   uint
	fe     gf32.Fe32
}

// MakeFeIterator returns an iterator over the field elements of data.
func MakeFeIterator(data []byte) FeIterator {
	return FeIterator{data: data}
}

// Next advances to the next field element and returns whether there was one.
func (it *FeIterator) Next() bool {
	switch {
	case it.bits >= 5:
		// A whole group is already buffered.

	case it.offset < len(it.data):
		it.acc = (it.acc<<8 | uint32(it.data[it.offset])) & 0xfff
		it.offset++
		it.bits += 8

	case it.bits > 0:
		// Final partial group.
		it.fe = gf32.Fe32((it.acc << (5 - it.bits)) & 31)
		it.bits = 0
		return true

	default:
		return false
	}

	it.bits -= 5
	it.fe = gf32.Fe32((it.acc >> it.bits) & 31)
	return true
}

// Fe returns the field element produced by the last successful call to Next.
func (it *FeIterator) Fe() gf32.Fe32 {
	return it.fe
}

// Len returns the total number of field elements the iterator produces.
func (it *FeIterator) Len() int {
	return (len(it.data)*8 + 4) / 5
}

// Reset rewinds the iterator to the start of its input.
func (it *FeIterator) Reset() {
	*it = FeIterator{data: it.data}
}

// ByteIterator converts field elements into bytes without creating
// allocations.  Each successive byte is produced by Next, which returns false
// when iteration is complete, either due to consuming every element or due
// to finding illegal padding.  In the case of failure, Err returns the
// specific error.
//
// The elements left over after the last whole byte are padding.  There must
// be fewer than five of those bits and all of them must be zero.
type ByteIterator struct {
	fes      []gf32.Fe32
	offset   int
	acc      uint32
	bits     uint
	b        byte
	finished bool
	err      error
}

// MakeByteIterator returns an iterator over the bytes packed into fes.
func MakeByteIterator(fes []gf32.Fe32) ByteIterator {
	return ByteIterator{fes: fes}
}

// Done returns true when either all elements have been consumed or illegal
// padding was found and therefore the iterator has an associated error.
func (it *ByteIterator) Done() bool {
	return it.finished || it.err != nil
}

// Next advances to the next byte and returns whether there was one.  The
// padding is checked when the input runs out, so Err must be consulted after
// Next returns false.
func (it *ByteIterator) Next() bool {
	if it.Done() {
		return false
	}

	for it.bits < 8 {
		if it.offset >= len(it.fes) {
			it.finished = true
			it.err = checkPadding(it.acc, it.bits)
			return false
		}
		it.acc = (it.acc<<5 | uint32(it.fes[it.offset]&31)) & 0x1fff
		it.offset++
		it.bits += 5
	}

	it.bits -= 8
	it.b = byte(it.acc >> it.bits)
	return true
}

// Byte returns the byte produced by the last successful call to Next.
func (it *ByteIterator) Byte() byte {
	return it.b
}

// Err returns the padding error found at the end of the input, if any.
func (it *ByteIterator) Err() error {
	return it.err
}

// Len returns the number of whole bytes packed into the elements.
func (it *ByteIterator) Len() int {
	return len(it.fes) * 5 / 8
}

// Reset rewinds the iterator to the start of its input.
func (it *ByteIterator) Reset() {
	*it = ByteIterator{fes: it.fes}
}

// checkPadding validates the bits left in acc after the last whole byte.
func checkPadding(acc uint32, bits uint) error {
	if bits >= 5 {
		str := "%d bits left after the last whole byte, a complete " +
			"group would have been dropped"
		return makeError(ErrIncompleteGroup, str, bits)
	}
	if pad := acc & (1<<bits - 1); pad != 0 {
		str := "padding bits %0*b are not zero"
		return makeError(ErrNonZeroPadding, str, int(bits), pad)
	}
	return nil
}

// BytesToFes returns the field elements of data.
func BytesToFes(data []byte) []gf32.Fe32 {
	it := MakeFeIterator(data)
	fes := make([]gf32.Fe32, 0, it.Len())
	for it.Next() {
		fes = append(fes, it.Fe())
	}
	return fes
}

// FesToBytes returns the bytes packed into fes.  An error is returned when the
// padding is illegal.
func FesToBytes(fes []gf32.Fe32) ([]byte, error) {
	it := MakeByteIterator(fes)
	data := make([]byte, 0, it.Len())
	for it.Next() {
		data = append(data, it.Byte())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return data, nil
}
