// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/groestlcoin/bech32grs/hrp"
	"github.com/groestlcoin/bech32grs/internal/log"
	"github.com/groestlcoin/bech32grs/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "grsaddr.log"
)

var (
	grsaddrHomeDir = btcutil.AppDataDir("grsaddr", false)
	defaultLogDir  = filepath.Join(grsaddrHomeDir, defaultLogDirname)
)

// config defines the configuration options for grsaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	TestNet       bool   `long:"testnet" description:"Use the test network human-readable part (tgrs)"`
	RegTest       bool   `long:"regtest" description:"Use the regression test network human-readable part (grsrt)"`
	Hrp           string `long:"hrp" description:"Use a custom human-readable part instead of a network one"`
	Upper         bool   `short:"u" long:"upper" description:"Print addresses in upper case, as used in QR codes"`
	Taproot       bool   `short:"t" long:"taproot" description:"Derive a version 1 key path address with fromkey"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`

	hrp hrp.Hrp
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(grsaddrHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// errVersionShown is returned by loadConfig after printing the version.
var errVersionShown = errors.New("version shown")

// activeHrp returns the human-readable part selected by the network flags.
// At most one of the network flags and a custom HRP may be given.
func activeHrp(cfg *config) (hrp.Hrp, error) {
	numNets := 0
	h := hrp.GRS
	if cfg.TestNet {
		numNets++
		h = hrp.TGRS
	}
	if cfg.RegTest {
		numNets++
		h = hrp.GRSRT
	}
	if cfg.Hrp != "" {
		numNets++
		custom, err := hrp.Parse(cfg.Hrp)
		if err != nil {
			return hrp.Hrp{}, fmt.Errorf("invalid --hrp: %w", err)
		}
		h = custom
	}
	if numNets > 1 {
		return hrp.Hrp{}, errors.New("the testnet, regtest and hrp " +
			"options can't be used together -- choose one")
	}
	return h, nil
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] encode <version> <hexprogram> | " +
		"decode <address> | fromkey <hexpubkey>"
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	funcName := "loadConfig"
	if cfg.ShowVersion {
		fmt.Println("grsaddr version", version.String())
		return nil, nil, errVersionShown
	}

	cfg.hrp, err = activeHrp(&cfg)
	if err != nil {
		err := fmt.Errorf("%s: %w", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if !log.ValidLogLevel(cfg.DebugLevel) {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}
	log.SetLogLevels(cfg.DebugLevel)

	return &cfg, remainingArgs, nil
}
