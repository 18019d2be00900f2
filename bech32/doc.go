// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 parses and encodes generic bech32 and bech32m strings.

A bech32 string consists of a human-readable part, the separator '1', a data
part of characters from the 32 character alphabet and a six character
checksum.  Parsing is split into two stages.  ParseUnchecked splits a string
and validates every character, and RemoveChecksum on the result validates the
checksum for a given algorithm and strips it:

	u, err := bech32.ParseUnchecked(s)
	if err != nil {
		return err
	}
	c, err := u.RemoveChecksum(checksum.Bech32m)
	if err != nil {
		return err
	}
	data, err := c.Bytes()

Encoding either packs a byte slice with Encode or streams field elements
through an Encoder.  Strings are produced entirely in lower case, or entirely
in upper case with the Upper variants.

# Errors

Errors returned by this package are of type bech32.Error and support
errors.Is and errors.As for the ErrorKind values defined here.  Errors caused
by the hrp and gf32 packages remain reachable through the same functions.
*/
package bech32
