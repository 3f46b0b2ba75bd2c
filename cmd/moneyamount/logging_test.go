package main

import (
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// syncCountingCore counts Sync calls on the wrapped core.
type syncCountingCore struct {
	zapcore.Core

	syncs *int32
}

func (c syncCountingCore) Sync() error {
	atomic.AddInt32(c.syncs, 1)

	return c.Core.Sync()
}

func executeObserved(
	t *testing.T,
	args ...string,
) (*observer.ObservedLogs, int32, error) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	var syncs int32

	cmd := newRootCmdWithLogger(func(string, bool) (*zap.Logger, error) {
		return zap.New(syncCountingCore{Core: core, syncs: &syncs}), nil
	})

	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return logs, atomic.LoadInt32(&syncs), err
}

func TestFailureLogging(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"Show":     {"show", "1e2", "CAD"},
		"ShowJSON": {"show", "--json", "1.005", "CAD"},
		"Multiply": {"multiply", "1.005", "CAD", "2"},
		"Add":      {"add", "1.00", "CAD", "1.00", "USD"},
	}

	for name, args := range tests {
		args := args

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logs, syncs, err := executeObserved(t, args...)
			require.Error(t, err)

			failures := logs.FilterMessage("operation failed").All()
			require.Len(t, failures, 1)
			require.Equal(t, zapcore.ErrorLevel, failures[0].Level)
			require.Equal(t, args[0], failures[0].ContextMap()["command"])

			require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

			require.Equal(t, int32(1), syncs)
		})
	}
}

func TestSuccessSyncsLogger(t *testing.T) {
	t.Parallel()

	logs, syncs, err := executeObserved(t, "show", "123.45", "CAD")
	require.NoError(t, err)

	require.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	require.Equal(t, 1, logs.FilterMessage("run operation").Len())
	require.Equal(t, int32(1), syncs)
}
