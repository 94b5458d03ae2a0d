// Package logging holds the process-wide zap logger used by the dispatcher,
// the IO runner and the effect adapters.
package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Encoding names accepted by New.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the current logger. It never returns nil.
func L() *zap.Logger {
	return current.Load()
}

// Set replaces the current logger and returns a function restoring the
// previous one.
func Set(logger *zap.Logger) (restore func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		current.Store(prev)
	}
}

// New builds a logger for the given level and encoding. Unknown levels fall
// back to info, unknown encodings to json.
func New(level, encoding string) (*zap.Logger, error) {
	var cfg zap.Config
	if encoding == EncodingConsole {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// NewTestLogger writes every entry at debug level to stdout with the console
// encoder.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// Sync flushes every given logger and combines their errors.
func Sync(loggers ...*zap.Logger) error {
	var err error
	for _, logger := range loggers {
		err = multierr.Append(err, logger.Sync())
	}
	return err
}
