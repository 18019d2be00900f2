// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/groestlcoin/bech32grs/bitpack"
	"github.com/groestlcoin/bech32grs/checksum"
	"github.com/groestlcoin/bech32grs/gf32"
	"github.com/groestlcoin/bech32grs/hrp"
)

// Encoder streams a bech32 string to a writer while computing its checksum.
// A string is written with WriteHrp, any number of WriteFe calls and a final
// WriteChecksum.  The first write error is sticky and returned by every later
// call.  No length or content rules are enforced.
type Encoder struct {
	w      io.Writer
	upper  bool
	engine checksum.Engine
	buf    [1]byte
	err    error
}

// NewEncoder returns an encoder writing to w.  With upper set every character,
// including the human-readable part, is written in upper case.
func NewEncoder(w io.Writer, upper bool) *Encoder {
	return &Encoder{w: w, upper: upper, engine: checksum.NewEngine()}
}

func (e *Encoder) writeByte(b byte) {
	if e.err != nil {
		return
	}
	if bw, ok := e.w.(io.ByteWriter); ok {
		e.err = bw.WriteByte(b)
		return
	}
	e.buf[0] = b
	_, e.err = e.w.Write(e.buf[:])
}

// WriteHrp writes the human-readable part and the separator and feeds the HRP
// expansion to the checksum.
func (e *Encoder) WriteHrp(h hrp.Hrp) error {
	e.engine.InputHrp(h)
	for i := 0; i < h.Len(); i++ {
		if e.upper {
			e.writeByte(h.UppercaseByte(i))
		} else {
			e.writeByte(h.LowercaseByte(i))
		}
	}
	e.writeByte(Separator)
	return e.err
}

// WriteFe writes one data character.
func (e *Encoder) WriteFe(fe gf32.Fe32) error {
	e.engine.Input(fe)
	if e.upper {
		e.writeByte(fe.UpperChar())
	} else {
		e.writeByte(fe.Char())
	}
	return e.err
}

// WriteChecksum writes the six checksum characters of everything written so
// far.  The encoder must not be used afterwards.
func (e *Encoder) WriteChecksum(algo checksum.Algorithm) error {
	for _, fe := range e.engine.Checksum(algo) {
		if e.upper {
			e.writeByte(fe.UpperChar())
		} else {
			e.writeByte(fe.Char())
		}
	}
	return e.err
}

// EncodedLength returns the length of a bech32 string with the HRP h and
// numFes data characters.
func EncodedLength(h hrp.Hrp, numFes int) int {
	return h.Len() + 1 + numFes + checksum.Length
}

// EncodeToWriter writes the bech32 string of data under the HRP h to w.  The
// bytes are packed into field elements on the fly.  The length of the result
// is not checked.
func EncodeToWriter(w io.Writer, h hrp.Hrp, data []byte,
	algo checksum.Algorithm, upper bool) error {

	enc := NewEncoder(w, upper)
	if err := enc.WriteHrp(h); err != nil {
		return err
	}
	it := bitpack.MakeFeIterator(data)
	for it.Next() {
		if err := enc.WriteFe(it.Fe()); err != nil {
			return err
		}
	}
	return enc.WriteChecksum(algo)
}

func encode(h hrp.Hrp, data []byte, algo checksum.Algorithm,
	upper bool) (string, error) {

	it := bitpack.MakeFeIterator(data)
	length := EncodedLength(h, it.Len())
	if length > MaxLength {
		str := "encoded string would be %d characters, maximum is %d"
		return "", makeError(ErrTooLong, str, length, MaxLength)
	}

	var sb strings.Builder
	sb.Grow(length)
	if err := EncodeToWriter(&sb, h, data, algo, upper); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Encode packs data into field elements and returns the lowercase bech32
// string under the HRP h with a checksum of the given algorithm.
func Encode(h hrp.Hrp, data []byte, algo checksum.Algorithm) (string, error) {
	return encode(h, data, algo, false)
}

// EncodeUpper is like Encode but returns the uppercase form, which packs
// better into QR codes.
func EncodeUpper(h hrp.Hrp, data []byte, algo checksum.Algorithm) (string, error) {
	return encode(h, data, algo, true)
}

// EncodeFes returns the lowercase bech32 string of already packed field
// elements.
func EncodeFes(h hrp.Hrp, fes []gf32.Fe32, algo checksum.Algorithm) (string, error) {
	length := EncodedLength(h, len(fes))
	if length > MaxLength {
		str := "encoded string would be %d characters, maximum is %d"
		return "", makeError(ErrTooLong, str, length, MaxLength)
	}

	var sb strings.Builder
	sb.Grow(length)
	enc := NewEncoder(&sb, false)

	// Encoder errors are sticky, so only the final call needs checking.
	_ = enc.WriteHrp(h)
	for _, fe := range fes {
		_ = enc.WriteFe(fe)
	}
	if err := enc.WriteChecksum(algo); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Decode parses a bech32 or bech32m string and returns its human-readable
// part, the bytes packed into its data part and the checksum algorithm it
// was created with.
func Decode(s string) (hrp.Hrp, []byte, checksum.Algorithm, error) {
	c, data, err := decode(s)
	if err != nil {
		log.Debugf("Rejected bech32 string %q: %v", s, err)
		return hrp.Hrp{}, nil, 0, err
	}

	log.Tracef("Decoded %v string with hrp %q: %v", c.Algorithm(), c.Hrp(),
		newLogClosure(func() string {
			return spew.Sdump(data)
		}))
	return c.Hrp(), data, c.Algorithm(), nil
}

func decode(s string) (*CheckedHrpstring, []byte, error) {
	u, err := ParseUnchecked(s)
	if err != nil {
		return nil, nil, err
	}
	algo, err := u.DetectChecksum()
	if err != nil {
		return nil, nil, err
	}
	c, err := u.RemoveChecksum(algo)
	if err != nil {
		return nil, nil, err
	}
	data, err := c.Bytes()
	if err != nil {
		return nil, nil, err
	}
	return c, data, nil
}
