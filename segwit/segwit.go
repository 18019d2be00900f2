// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import (
	"io"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/davecgh/go-spew/spew"
	"github.com/groestlcoin/bech32grs/bech32"
	"github.com/groestlcoin/bech32grs/bitpack"
	"github.com/groestlcoin/bech32grs/checksum"
	"github.com/groestlcoin/bech32grs/gf32"
	"github.com/groestlcoin/bech32grs/hrp"
)

// EncodeUnchecked writes the lowercase address of the witness program under
// the HRP h to w.  The version and program length are not validated.
func EncodeUnchecked(w io.Writer, h hrp.Hrp, v WitnessVersion,
	program []byte) error {

	return encodeUnchecked(w, h, v, program, false)
}

// EncodeUncheckedUpper is like EncodeUnchecked but writes the uppercase form,
// which packs better into QR codes.
func EncodeUncheckedUpper(w io.Writer, h hrp.Hrp, v WitnessVersion,
	program []byte) error {

	return encodeUnchecked(w, h, v, program, true)
}

func encodeUnchecked(w io.Writer, h hrp.Hrp, v WitnessVersion, program []byte,
	upper bool) error {

	enc := bech32.NewEncoder(w, upper)
	if err := enc.WriteHrp(h); err != nil {
		return err
	}
	if err := enc.WriteFe(v.Fe()); err != nil {
		return err
	}
	it := bitpack.MakeFeIterator(program)
	for it.Next() {
		if err := enc.WriteFe(it.Fe()); err != nil {
			return err
		}
	}
	return enc.WriteChecksum(v.Algorithm())
}

func encode(h hrp.Hrp, v WitnessVersion, program []byte,
	upper bool) (string, error) {

	if err := ValidateWitnessVersion(v); err != nil {
		return "", err
	}
	if err := ValidateWitnessProgramLength(len(program), v); err != nil {
		return "", err
	}

	it := bitpack.MakeFeIterator(program)
	length := bech32.EncodedLength(h, 1+it.Len())
	if length > bech32.MaxLength {
		str := "address would be %d characters, maximum is %d"
		return "", makeError(bech32.ErrTooLong, str, length,
			bech32.MaxLength)
	}

	var sb strings.Builder
	sb.Grow(length)
	if err := encodeUnchecked(&sb, h, v, program, upper); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Encode returns the lowercase segwit address of the witness program under
// the HRP h.  Version 0 addresses carry a bech32 checksum and later versions
// a bech32m checksum.
func Encode(h hrp.Hrp, v WitnessVersion, program []byte) (string, error) {
	return encode(h, v, program, false)
}

// EncodeUpper is like Encode but returns the uppercase form.
func EncodeUpper(h hrp.Hrp, v WitnessVersion, program []byte) (string, error) {
	return encode(h, v, program, true)
}

// EncodeV0 returns the address of a version 0 witness program.
func EncodeV0(h hrp.Hrp, program []byte) (string, error) {
	return Encode(h, Version0, program)
}

// EncodeV1 returns the address of a version 1 (taproot) witness program.
func EncodeV1(h hrp.Hrp, program []byte) (string, error) {
	return Encode(h, Version1, program)
}

// Hrpstring is a parsed and fully validated segwit address.
type Hrpstring struct {
	hrp     hrp.Hrp
	version WitnessVersion
	fes     []gf32.Fe32
	program []byte
}

// Parse validates s as a segwit address.  The first data character must be a
// witness version in [0, 16], and the checksum is then verified with the
// algorithm that version requires, so a version 0 address with a bech32m
// checksum, or the reverse, is rejected as an invalid checksum.
func Parse(s string) (*Hrpstring, error) {
	u, err := bech32.ParseUnchecked(s)
	if err != nil {
		return nil, err
	}

	data := u.Data()
	if len(data) == 0 || len(data) == checksum.Length {
		return nil, makeError(ErrNoData, "address %q has no witness "+
			"version", s)
	}

	// The version only selects the checksum algorithm here.  It is not
	// trusted as part of the address until the checksum verifies.
	v, err := NewWitnessVersion(data[0])
	if err != nil {
		return nil, err
	}
	c, err := u.RemoveChecksum(v.Algorithm())
	if err != nil {
		return nil, err
	}

	fes := c.Data()[1:]
	program, err := bitpack.FesToBytes(fes)
	if err != nil {
		return nil, err
	}
	if err := ValidateWitnessProgramLength(len(program), v); err != nil {
		return nil, err
	}

	return &Hrpstring{
		hrp:     c.Hrp(),
		version: v,
		fes:     fes,
		program: program,
	}, nil
}

// Hrp returns the human-readable part.
func (s *Hrpstring) Hrp() hrp.Hrp {
	return s.hrp
}

// WitnessVersion returns the witness version.
func (s *Hrpstring) WitnessVersion() WitnessVersion {
	return s.version
}

// Program returns the witness program.  The returned slice must not be
// modified.
func (s *Hrpstring) Program() []byte {
	return s.program
}

// ByteIterator returns an iterator over the witness program bytes.
func (s *Hrpstring) ByteIterator() bitpack.ByteIterator {
	return bitpack.MakeByteIterator(s.fes)
}

// HasValidHrp reports whether the HRP is one of the Groestlcoin segwit HRPs.
func (s *Hrpstring) HasValidHrp() bool {
	return s.hrp.IsValidSegwit()
}

// ScriptPubKey returns the output script paying to the witness program.
func (s *Hrpstring) ScriptPubKey() ([]byte, error) {
	return ScriptPubKey(s.version, s.program)
}

// Decode parses a segwit address and returns its HRP, witness version and
// witness program.
func Decode(s string) (hrp.Hrp, WitnessVersion, []byte, error) {
	addr, err := Parse(s)
	if err != nil {
		log.Debugf("Rejected segwit address %q: %v", s, err)
		return hrp.Hrp{}, 0, nil, err
	}

	log.Tracef("Decoded version %v address with hrp %q: %v", addr.version,
		addr.hrp, newLogClosure(func() string {
			return spew.Sdump(addr.program)
		}))
	return addr.hrp, addr.version, addr.program, nil
}

// ScriptPubKey returns the output script paying to a witness program: OP_0 or
// OP_1 through OP_16 followed by a push of the program.
func ScriptPubKey(v WitnessVersion, program []byte) ([]byte, error) {
	if err := ValidateWitnessVersion(v); err != nil {
		return nil, err
	}
	if err := ValidateWitnessProgramLength(len(program), v); err != nil {
		return nil, err
	}

	op := byte(txscript.OP_0)
	if v != Version0 {
		op = txscript.OP_1 - 1 + byte(v)
	}
	return txscript.NewScriptBuilder().AddOp(op).AddData(program).Script()
}
