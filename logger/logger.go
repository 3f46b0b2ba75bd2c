// Package logger builds the zap loggers used by the moneyamount
// command. Entries follow Google Stackdriver's structured logging
// format and are written to stderr, leaving stdout to command results.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a *zap.Logger for service. With debug set, logging is
// enabled at DebugLevel and above, otherwise at WarnLevel and above.
func New(service string, debug bool) (*zap.Logger, error) {
	if debug {
		return newLoggerFromConfig(zapdriver.NewDevelopmentConfig(), service)
	}

	cfg := zapdriver.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	return newLoggerFromConfig(cfg, service)
}

func newLoggerFromConfig(cfg zap.Config, service string) (*zap.Logger, error) {
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}
