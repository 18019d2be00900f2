// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hrp implements the human-readable part of a bech32 string.

The human-readable part (HRP) is the prefix in front of the last '1' of a
bech32 string.  It identifies the network or purpose of the data that
follows and takes part in the checksum, so two strings carrying the same data
under different HRPs have different checksums.

A valid HRP is 1 to 83 printable ASCII characters, all of the same case.  The
segwit HRPs of the Groestlcoin networks are provided as GRS, TGRS and GRSRT.
*/
package hrp
