package logger_test

import (
	"testing"

	"github.com/purposeinplay/go-currency/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("Debug", func(t *testing.T) {
		t.Parallel()

		log, err := logger.New(t.Name(), true)
		require.NoError(t, err)

		require.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		t.Parallel()

		log, err := logger.New(t.Name(), false)
		require.NoError(t, err)

		require.False(t, log.Core().Enabled(zapcore.InfoLevel))
		require.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})
}
