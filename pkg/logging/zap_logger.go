package logging

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.Logger to Logger.
type ZapLogger struct {
	zl *zap.Logger
}

// NewZapLogger wraps an existing zap logger. A nil logger is
// replaced by zap.NewNop().
func NewZapLogger(zl *zap.Logger) *ZapLogger {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &ZapLogger{zl: zl}
}

// NewProductionZapLogger builds a JSON zap logger at the given
// level writing to stderr.
func NewProductionZapLogger(level LogLevel) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.OutputPaths = []string{"stderr"}

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(zl), nil
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// Zap returns the underlying zap logger.
func (z *ZapLogger) Zap() *zap.Logger { return z.zl }

// Info logs an informational message.
func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.zl.Info(msg, zapFields(fields)...)
}

// Warn logs a warning message.
func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.zl.Warn(msg, zapFields(fields)...)
}

// Error logs an error message.
func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.zl.Error(msg, zapFields(fields)...)
}

// Debug logs a debug message.
func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.zl.Debug(msg, zapFields(fields)...)
}

// WithFields returns a ZapLogger with the fields attached.
func (z *ZapLogger) WithFields(fields ...Field) Logger {
	return &ZapLogger{zl: z.zl.With(zapFields(fields)...)}
}

// Close flushes the zap logger. Sync errors from terminals that do
// not support fsync are ignored.
func (z *ZapLogger) Close() error {
	err := z.zl.Sync()
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) {
		return nil
	}
	return err
}
