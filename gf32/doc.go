// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gf32 provides the 32 element field used by bech32 checksums and the
// mapping between field elements and the bech32 alphabet.
package gf32
