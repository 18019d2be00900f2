// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit_test

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/groestlcoin/bech32grs/hrp"
	"github.com/groestlcoin/bech32grs/segwit"
)

// This example demonstrates decoding a taproot address.
func ExampleDecode() {
	addr := "grs1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqddt7at"
	h, version, program, err := segwit.Decode(addr)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("HRP:", h)
	fmt.Println("Version:", version)
	fmt.Println("Program:", hex.EncodeToString(program))

	// Output:
	// HRP: grs
	// Version: 1
	// Program: 79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798
}

// This example demonstrates encoding a version 0 witness program.
func ExampleEncode() {
	program, _ := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	addr, err := segwit.Encode(hrp.GRS, segwit.Version0, program)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(addr)

	// Output:
	// grs1qw508d6qejxtdg4y5r3zarvary0c5xw7k3k4sj5
}

// This example demonstrates writing the uppercase form used in QR codes.
func ExampleEncodeUncheckedUpper() {
	program, _ := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	err := segwit.EncodeUncheckedUpper(os.Stdout, hrp.GRS, segwit.Version0,
		program)
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println()

	// Output:
	// GRS1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7K3K4SJ5
}
