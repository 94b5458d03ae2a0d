package effects

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/funtom_go/effio"
	"github.com/on-the-ground/funtom_go/internal/logging"
)

// LogLevel names a zap level using the same spelling as the log.level
// config key.
type LogLevel string

const (
	LogDebug LogLevel = logging.LevelDebug
	LogInfo  LogLevel = logging.LevelInfo
	LogWarn  LogLevel = logging.LevelWarn
	LogError LogLevel = logging.LevelError
)

// zapLevel maps l to a zap level. Unrecognised names map to info.
func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		lvl, _ := zapcore.ParseLevel(string(l))
		return lvl
	default:
		return zapcore.InfoLevel
	}
}

// Log writes one structured entry to logger when run.
func Log(logger *zap.Logger, level LogLevel, msg string, fields map[string]any) effio.IO[struct{}] {
	return effio.New(func() struct{} {
		zapFields := make([]zap.Field, 0, len(fields))
		for k, v := range fields {
			zapFields = append(zapFields, zap.Any(k, v))
		}
		logger.Log(level.zapLevel(), msg, zapFields...)
		return struct{}{}
	})
}
