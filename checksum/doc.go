// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package checksum implements the bech32 and bech32m checksums.

Both checksums are the same BCH code over GF(32) and only differ in the
residue a valid string resolves to.  The code is evaluated as a 30-bit shift
register, so a residue can be computed while a string is streamed without
holding the whole symbol sequence in memory.

The HRP takes part in the checksum through its expansion: the high three bits
of every lowercase HRP byte, a zero symbol, then the low five bits of every
byte.
*/
package checksum
