// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import (
	"fmt"

	"github.com/groestlcoin/bech32grs/checksum"
	"github.com/groestlcoin/bech32grs/gf32"
)

const (
	// MinProgramLength is the minimum length of a witness program.
	MinProgramLength = 2

	// MaxProgramLength is the maximum length of a witness program.
	MaxProgramLength = 40

	// WitnessV0PubKeyHashLen is the length of a version 0 pay-to-pubkey-hash
	// witness program.
	WitnessV0PubKeyHashLen = 20

	// WitnessV0ScriptHashLen is the length of a version 0 pay-to-script-hash
	// witness program.
	WitnessV0ScriptHashLen = 32
)

// WitnessVersion is the version of a segwit output.
type WitnessVersion uint8

const (
	// Version0 is the witness version of BIP-141 outputs.
	Version0 WitnessVersion = 0

	// Version1 is the witness version of taproot outputs.
	Version1 WitnessVersion = 1

	// MaxVersion is the highest witness version.
	MaxVersion WitnessVersion = 16
)

// NewWitnessVersion returns the witness version carried by a field element.
func NewWitnessVersion(fe gf32.Fe32) (WitnessVersion, error) {
	v := WitnessVersion(fe)
	if err := ValidateWitnessVersion(v); err != nil {
		return 0, err
	}
	return v, nil
}

// Fe returns the field element that encodes the version.  The version must be
// valid.
func (v WitnessVersion) Fe() gf32.Fe32 {
	return gf32.Fe32(v)
}

// Algorithm returns the checksum algorithm addresses of this version use.
func (v WitnessVersion) Algorithm() checksum.Algorithm {
	if v == Version0 {
		return checksum.Bech32
	}
	return checksum.Bech32m
}

// String returns the version as a decimal number.
func (v WitnessVersion) String() string {
	return fmt.Sprintf("%d", uint8(v))
}

// ValidateWitnessVersion returns an error unless v is in [0, 16].
func ValidateWitnessVersion(v WitnessVersion) error {
	if v > MaxVersion {
		str := "witness version %d is above the maximum of %d"
		return makeError(ErrInvalidWitnessVersion, str, uint8(v),
			uint8(MaxVersion))
	}
	return nil
}

// ValidateWitnessProgramLength returns an error unless n is a legal program
// length for version v.
func ValidateWitnessProgramLength(n int, v WitnessVersion) error {
	if n < MinProgramLength || n > MaxProgramLength {
		str := "witness program is %d bytes, must be between %d and %d"
		return makeError(ErrWitnessLength, str, n, MinProgramLength,
			MaxProgramLength)
	}
	if v == Version0 && n != WitnessV0PubKeyHashLen &&
		n != WitnessV0ScriptHashLen {

		str := "version 0 witness program is %d bytes, must be %d or %d"
		return makeError(ErrWitnessLength, str, n,
			WitnessV0PubKeyHashLen, WitnessV0ScriptHashLen)
	}
	return nil
}
