// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bitpack converts between bytes and 5-bit bech32 field elements.

The conversion is done by pull iterators that keep only a small bit buffer,
so they can be chained with the checksum engine without materializing the
whole symbol stream.  FeIterator packs bytes into field elements, padding the
final group with zero bits.  ByteIterator unpacks field elements into bytes
and rejects padding that a valid encoder could not have produced: five or
more leftover bits, or leftover bits that are not zero.
*/
package bitpack
