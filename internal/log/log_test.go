// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestSetLogLevels ensures levels apply to every subsystem and unknown
// subsystems are ignored.
func TestSetLogLevels(t *testing.T) {
	SetLogLevels("debug")
	for id, logger := range SubsystemLoggers {
		require.Equal(t, btclog.LevelDebug, logger.Level(), id)
	}

	SetLogLevel("SWIT", "trace")
	require.Equal(t, btclog.LevelTrace, switLog.Level())
	SetLogLevel("NONE", "trace")

	// Invalid levels fall back to info.
	SetLogLevel("BECH", "verbose")
	require.Equal(t, btclog.LevelInfo, bechLog.Level())

	require.Equal(t, []string{"BECH", "GADR", "SWIT"}, SupportedSubsystems())
	require.True(t, ValidLogLevel("critical"))
	require.False(t, ValidLogLevel("verbose"))
}
