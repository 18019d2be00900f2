// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package segwit encodes and decodes segregated witness addresses as defined by
BIP-173 and BIP-350.

A segwit address is a bech32 string whose first data character is the witness
version and whose remaining characters pack the witness program.  Version 0
addresses carry a bech32 checksum, versions 1 through 16 a bech32m checksum.

Decoding runs a fixed sequence of checks and stops at the first failure: the
separator, the case, the human-readable part, the alphabet, the range of the
witness version, the checksum with the algorithm that version requires, the
padding of the program and finally its length.

	h, version, program, err := segwit.Decode(addr)

Encode validates the version and program length first.  EncodeUnchecked and
EncodeUncheckedUpper skip validation and stream straight to an io.Writer.
*/
package segwit
