package logging

import "strconv"

// DefaultMaxValueLength is the field length kept by a
// TruncatingLogger created with a non-positive limit.
const DefaultMaxValueLength = 200

// TruncatingLogger is a decorator that shortens long string field
// values before passing them to the inner logger. Rendered operands
// can be arbitrarily large; the log line should not be.
type TruncatingLogger struct {
	inner Logger
	max   int
}

// NewTruncatingLogger wraps inner so string fields longer than max
// bytes are cut and annotated.
func NewTruncatingLogger(inner Logger, max int) *TruncatingLogger {
	if max <= 0 {
		max = DefaultMaxValueLength
	}
	return &TruncatingLogger{inner: inner, max: max}
}

func (t *TruncatingLogger) truncate(s string) string {
	if len(s) <= t.max {
		return s
	}
	return s[:t.max] + "... (truncated " +
		strconv.Itoa(len(s)-t.max) + " chars)"
}

func (t *TruncatingLogger) truncateFields(fields []Field) []Field {
	result := make([]Field, len(fields))
	for i, f := range fields {
		if str, ok := f.Value.(string); ok {
			result[i] = Field{Key: f.Key, Value: t.truncate(str)}
		} else {
			result[i] = f
		}
	}
	return result
}

// Info logs an informational message with truncated fields.
func (t *TruncatingLogger) Info(msg string, fields ...Field) {
	t.inner.Info(msg, t.truncateFields(fields)...)
}

// Warn logs a warning message with truncated fields.
func (t *TruncatingLogger) Warn(msg string, fields ...Field) {
	t.inner.Warn(msg, t.truncateFields(fields)...)
}

// Error logs an error message with truncated fields.
func (t *TruncatingLogger) Error(msg string, fields ...Field) {
	t.inner.Error(msg, t.truncateFields(fields)...)
}

// Debug logs a debug message with truncated fields.
func (t *TruncatingLogger) Debug(msg string, fields ...Field) {
	t.inner.Debug(msg, t.truncateFields(fields)...)
}

// WithFields returns a TruncatingLogger wrapping a new inner
// logger with the given fields applied.
func (t *TruncatingLogger) WithFields(fields ...Field) Logger {
	return &TruncatingLogger{
		inner: t.inner.WithFields(t.truncateFields(fields)...),
		max:   t.max,
	}
}

// Close closes the inner logger.
func (t *TruncatingLogger) Close() error {
	return t.inner.Close()
}
