// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checksum

import (
	"fmt"

	"github.com/groestlcoin/bech32grs/gf32"
	"github.com/groestlcoin/bech32grs/hrp"
)

// Length is the number of field elements in a bech32 checksum.
const Length = 6

// The generator constants of the bech32 BCH code.  Generator i is XORed into
// the residue when bit i of the outgoing top symbol is set.
const (
	Generator0 uint32 = 0x3b6a57b2
	Generator1 uint32 = 0x26508e6d
	Generator2 uint32 = 0x1ea119fa
	Generator3 uint32 = 0x3d4233dd
	Generator4 uint32 = 0x2a1462b3
)

// Target residues of the two checksum algorithms.
const (
	// Bech32Const is the target residue of BIP-173 bech32.
	Bech32Const uint32 = 1

	// Bech32mConst is the target residue of BIP-350 bech32m.
	Bech32mConst uint32 = 0x2bc830a3
)

// residueMask keeps the 25 bits that survive a shift by one symbol.
const residueMask = 0x1ffffff

var generators = [5]uint32{
	Generator0, Generator1, Generator2, Generator3, Generator4,
}

// Algorithm selects the target residue of a checksum.
type Algorithm uint8

const (
	// Bech32 is the original checksum defined in BIP-173.
	Bech32 Algorithm = iota

	// Bech32m is the checksum defined in BIP-350.
	Bech32m
)

// Target returns the residue a valid checksum of the algorithm resolves to.
func (a Algorithm) Target() uint32 {
	if a == Bech32m {
		return Bech32mConst
	}
	return Bech32Const
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	}
	return fmt.Sprintf("Unknown Algorithm (%d)", uint8(a))
}

// PolymodStep feeds one field element into a residue and returns the updated
// residue.
func PolymodStep(residue uint32, fe gf32.Fe32) uint32 {
	top := residue >> 25
	residue = (residue&residueMask)<<5 ^ uint32(fe)
	for i, g := range generators {
		if (top>>uint(i))&1 == 1 {
			residue ^= g
		}
	}
	return residue
}

// Engine computes a bech32 residue one field element at a time.  The zero
// value is not ready for use; create engines with NewEngine.
type Engine struct {
	residue uint32
}

// NewEngine returns an engine with the initial residue.
func NewEngine() Engine {
	return Engine{residue: 1}
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() {
	e.residue = 1
}

// Input feeds a single field element.
func (e *Engine) Input(fe gf32.Fe32) {
	e.residue = PolymodStep(e.residue, fe)
}

// InputHrp feeds the expansion of the lowercase HRP: the high bits of every
// byte, a zero, then the low five bits of every byte.
func (e *Engine) InputHrp(h hrp.Hrp) {
	for i := 0; i < h.Len(); i++ {
		high, _ := gf32.SplitByte(h.LowercaseByte(i))
		e.Input(high)
	}
	e.Input(gf32.Q)
	for i := 0; i < h.Len(); i++ {
		_, low := gf32.SplitByte(h.LowercaseByte(i))
		e.Input(low)
	}
}

// Residue returns the current residue.
func (e *Engine) Residue() uint32 {
	return e.residue
}

// Checksum finalizes the engine and returns the checksum for everything fed
// so far, most significant symbol first.  The engine must be reset before it
// is used again.
func (e *Engine) Checksum(algo Algorithm) [Length]gf32.Fe32 {
	for i := 0; i < Length; i++ {
		e.Input(gf32.Q)
	}
	polymod := e.residue ^ algo.Target()

	var sum [Length]gf32.Fe32
	for i := 0; i < Length; i++ {
		sum[i] = gf32.Fe32((polymod >> uint(5*(Length-1-i))) & 31)
	}
	return sum
}

// Residue returns the residue of the HRP expansion followed by fes.
func Residue(h hrp.Hrp, fes []gf32.Fe32) uint32 {
	e := NewEngine()
	e.InputHrp(h)
	for _, fe := range fes {
		e.Input(fe)
	}
	return e.Residue()
}

// Compute returns the checksum of data under the HRP h.
func Compute(h hrp.Hrp, data []gf32.Fe32, algo Algorithm) [Length]gf32.Fe32 {
	e := NewEngine()
	e.InputHrp(h)
	for _, fe := range data {
		e.Input(fe)
	}
	return e.Checksum(algo)
}

// Verify reports whether the trailing six elements of fes are a valid
// checksum of the rest under the HRP h.
func Verify(h hrp.Hrp, fes []gf32.Fe32, algo Algorithm) bool {
	if len(fes) < Length {
		return false
	}
	return Residue(h, fes) == algo.Target()
}

// Detect returns the algorithm whose checksum fes carries.  The second return
// value is false when the residue matches neither target.
func Detect(h hrp.Hrp, fes []gf32.Fe32) (Algorithm, bool) {
	if len(fes) < Length {
		return 0, false
	}
	switch Residue(h, fes) {
	case Bech32Const:
		return Bech32, true
	case Bech32mConst:
		return Bech32m, true
	}
	return 0, false
}
