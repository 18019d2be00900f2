// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/groestlcoin/bech32grs/internal/log"
)

// errUsage is returned for a missing or unknown command or a wrong number of
// arguments.
var errUsage = errors.New("usage: grsaddr [OPTIONS] encode <version> " +
	"<hexprogram> | decode <address> | fromkey <hexpubkey>")

// commandHandler is the function signature of every grsaddr command.
type commandHandler func(cfg *config, args []string, w io.Writer) error

// commandHandlers maps a command name to its handler and the number of
// arguments it takes.
var commandHandlers = map[string]struct {
	handler commandHandler
	numArgs int
}{
	"encode":  {handleEncode, 2},
	"decode":  {handleDecode, 1},
	"fromkey": {handleFromKey, 1},
}

// run dispatches the command named by the first argument and writes its
// result to w.
func run(cfg *config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commandHandlers[args[0]]
	if !ok || len(args)-1 != cmd.numArgs {
		return errUsage
	}

	log.GadrLog.Debugf("Running %s with hrp %q", args[0], cfg.hrp)
	return cmd.handler(cfg, args[1:], w)
}

func realMain() int {
	cfg, args, err := loadConfig()
	if err != nil {
		if errors.Is(err, errVersionShown) {
			return 0
		}
		return 1
	}
	defer func() {
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
	}()

	if err := run(cfg, args, os.Stdout); err != nil {
		log.GadrLog.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain())
}
