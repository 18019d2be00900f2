// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checksum

import (
	"testing"

	"github.com/groestlcoin/bech32grs/gf32"
	"github.com/groestlcoin/bech32grs/hrp"
	"github.com/stretchr/testify/require"
)

// branchlessStep is the mask based formulation of the residue update found in
// most C implementations.  It is used to cross check PolymodStep.
func branchlessStep(pre uint32, fe gf32.Fe32) uint32 {
	b := pre >> 25
	return ((pre&0x1ffffff)<<5 ^ uint32(fe)) ^
		(-((b >> 0) & 1) & 0x3b6a57b2) ^
		(-((b >> 1) & 1) & 0x26508e6d) ^
		(-((b >> 2) & 1) & 0x1ea119fa) ^
		(-((b >> 3) & 1) & 0x3d4233dd) ^
		(-((b >> 4) & 1) & 0x2a1462b3)
}

func fesFromString(t *testing.T, s string) []gf32.Fe32 {
	t.Helper()

	fes := make([]gf32.Fe32, 0, len(s))
	for i := 0; i < len(s); i++ {
		fe, err := gf32.FromChar(s[i])
		require.NoError(t, err)
		fes = append(fes, fe)
	}
	return fes
}

// TestPolymodStep cross checks the residue update against the mask based
// formulation over a spread of residues.
func TestPolymodStep(t *testing.T) {
	t.Parallel()

	residue := uint32(1)
	for i := 0; i < 5000; i++ {
		fe := gf32.Fe32(i % 32)
		want := branchlessStep(residue, fe)
		got := PolymodStep(residue, fe)
		require.Equal(t, want, got, "step %d", i)
		require.Zero(t, got>>30, "residue exceeds 30 bits")
		residue = got
	}
}

// TestCompute checks computed checksums against BIP-173 and BIP-350 strings
// with an empty data part.
func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hrp  string
		data string
		algo Algorithm
		want string
	}{
		{"a", "", Bech32, "2uel5l"},
		{"a", "", Bech32m, "lqfn3a"},
		{"A", "", Bech32m, "lqfn3a"},
		{"?", "", Bech32m, "v759aa"},
		{"abcdef", "qpzry9x8gf2tvdw0s3jn54khce6mua7l", Bech32,
			"mqqqxw"},
		{"abcdef", "l7aum6echk45nj3s0wdvt2fg8x9yrzpq", Bech32m,
			"zd3ryx"},
	}

	for _, test := range tests {
		h := hrp.MustParse(test.hrp)
		data := fesFromString(t, test.data)

		sum := Compute(h, data, test.algo)
		got := make([]byte, 0, Length)
		for _, fe := range sum {
			got = append(got, fe.Char())
		}
		require.Equal(t, test.want, string(got), "hrp %q algo %v",
			test.hrp, test.algo)

		full := append(data, sum[:]...)
		require.True(t, Verify(h, full, test.algo))

		algo, ok := Detect(h, full)
		require.True(t, ok)
		require.Equal(t, test.algo, algo)
	}
}

// TestAlgorithmSeparation ensures a checksum valid under one algorithm is
// never valid under the other.
func TestAlgorithmSeparation(t *testing.T) {
	t.Parallel()

	h := hrp.MustParse("grs")
	data := fesFromString(t, "qw508d6qejxtdg4y5r3zarvary0c5xw7k")
	for _, algo := range []Algorithm{Bech32, Bech32m} {
		sum := Compute(h, data, algo)
		full := append(append([]gf32.Fe32{}, data...), sum[:]...)

		other := Bech32m
		if algo == Bech32m {
			other = Bech32
		}
		require.True(t, Verify(h, full, algo))
		require.False(t, Verify(h, full, other))
	}
}

// TestHrpSensitivity ensures the HRP takes part in the checksum.
func TestHrpSensitivity(t *testing.T) {
	t.Parallel()

	data := fesFromString(t, "qw508d6qejxtdg4y5r3zarvary0c5xw7k")
	sum := Compute(hrp.GRS, data, Bech32)
	full := append(append([]gf32.Fe32{}, data...), sum[:]...)

	require.True(t, Verify(hrp.GRS, full, Bech32))
	require.True(t, Verify(hrp.MustParse("GRS"), full, Bech32))
	require.False(t, Verify(hrp.TGRS, full, Bech32))

	_, ok := Detect(hrp.TGRS, full)
	require.False(t, ok)
}

// TestShortInput ensures inputs without room for a checksum never verify.
func TestShortInput(t *testing.T) {
	t.Parallel()

	h := hrp.MustParse("a")
	for n := 0; n < Length; n++ {
		fes := make([]gf32.Fe32, n)
		require.False(t, Verify(h, fes, Bech32))
		require.False(t, Verify(h, fes, Bech32m))
		_, ok := Detect(h, fes)
		require.False(t, ok)
	}
}

// TestEngineReset ensures a reset engine reproduces its first result.
func TestEngineReset(t *testing.T) {
	t.Parallel()

	h := hrp.MustParse("split")
	data := fesFromString(t, "checkupstagehandshakeupstreamerranterredcaperred")

	e := NewEngine()
	e.InputHrp(h)
	for _, fe := range data {
		e.Input(fe)
	}
	first := e.Checksum(Bech32)

	e.Reset()
	require.Equal(t, uint32(1), e.Residue())
	e.InputHrp(h)
	for _, fe := range data {
		e.Input(fe)
	}
	require.Equal(t, first, e.Checksum(Bech32))
	require.Equal(t, Compute(h, data, Bech32), first)
}

// TestAlgorithmStringer tests the stringized output and targets of the
// Algorithm type.
func TestAlgorithmStringer(t *testing.T) {
	t.Parallel()

	require.Equal(t, "bech32", Bech32.String())
	require.Equal(t, "bech32m", Bech32m.String())
	require.Equal(t, "Unknown Algorithm (9)", Algorithm(9).String())
	require.Equal(t, uint32(1), Bech32.Target())
	require.Equal(t, uint32(0x2bc830a3), Bech32m.Target())
}
