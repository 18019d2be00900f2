// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/groestlcoin/bech32grs/hrp"
	"github.com/groestlcoin/bech32grs/internal/log"
	"github.com/groestlcoin/bech32grs/segwit"
)

// encodeAddress renders the address in the case selected by the config.
func encodeAddress(cfg *config, v segwit.WitnessVersion,
	program []byte) (string, error) {

	if cfg.Upper {
		return segwit.EncodeUpper(cfg.hrp, v, program)
	}
	return segwit.Encode(cfg.hrp, v, program)
}

// handleEncode prints the address of a witness version and hex encoded
// program.
func handleEncode(cfg *config, args []string, w io.Writer) error {
	version, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid witness version %q: %w", args[0], err)
	}
	program, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("invalid witness program: %w", err)
	}

	addr, err := encodeAddress(cfg, segwit.WitnessVersion(version), program)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, addr)
	return err
}

// networkName returns the network a human-readable part belongs to.
func networkName(h hrp.Hrp) string {
	switch {
	case h.IsValidOnMainnet():
		return "mainnet"
	case h.IsValidOnTestnet():
		return "testnet"
	case h.IsValidOnRegtest():
		return "regtest"
	}
	return "unknown"
}

// handleDecode prints the parts of an address and its output script.
func handleDecode(cfg *config, args []string, w io.Writer) error {
	addr, err := segwit.Parse(args[0])
	if err != nil {
		return err
	}
	script, err := addr.ScriptPubKey()
	if err != nil {
		return err
	}
	if !addr.HasValidHrp() {
		log.GadrLog.Warnf("Address %s has the unknown human-readable "+
			"part %q", args[0], addr.Hrp())
	}

	_, err = fmt.Fprintf(w, "hrp:          %s\nnetwork:      %s\n"+
		"version:      %d\nprogram:      %x\nscriptpubkey: %x\n",
		addr.Hrp().Lowercase(), networkName(addr.Hrp()),
		addr.WitnessVersion(), addr.Program(), script)
	return err
}

// handleFromKey prints the address paying to a hex encoded public key.  The
// default is a version 0 pay-to-witness-pubkey-hash address.  With the
// taproot option the key is tweaked into a version 1 key path only output.
func handleFromKey(cfg *config, args []string, w io.Writer) error {
	keyBytes, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}
	pubKey, err := btcec.ParsePubKey(keyBytes)
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}

	version := segwit.Version0
	program := btcutil.Hash160(pubKey.SerializeCompressed())
	if cfg.Taproot {
		tapKey := txscript.ComputeTaprootKeyNoScript(pubKey)
		version = segwit.Version1
		program = schnorr.SerializePubKey(tapKey)
	}
	log.GadrLog.Debugf("Witness program for key %x: %x", keyBytes, program)

	addr, err := encodeAddress(cfg, version, program)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, addr)
	return err
}
