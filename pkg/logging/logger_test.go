package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"", LevelInfo},
		{"info", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestFields(t *testing.T) {
	assert.Equal(t, Field{"key", "value"}, LogField("key", "value"))
	assert.Equal(t, Field{"name", "test"}, StringField("name", "test"))
	assert.Equal(t, Field{"count", 42}, IntField("count", 42))
	assert.Equal(t, Field{"enabled", true}, BoolField("enabled", true))
	assert.Equal(t, Field{"token", "!="}, TokenField("!="))
	assert.Equal(t, Field{"message", "5 != 6"}, MessageField("5 != 6"))
}

func TestErrorField(t *testing.T) {
	f := ErrorField(errors.New("boom"))
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "boom", f.Value)

	f = ErrorField(nil)
	assert.Equal(t, "<nil>", f.Value)
}

func TestMergeFields(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	merged := mergeFields(base, []Field{{"b", 3}, {"c", 4}})

	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, 2, base["b"], "base must not be modified")
	assert.Empty(t, mergeFields(nil, nil))
}

func TestNullLogger_AllMethodsSucceed(t *testing.T) {
	l := NullLogger{}
	l.Info("test")
	l.Warn("test")
	l.Error("test")
	l.Debug("test", IntField("n", 1))

	child := l.WithFields(LogField("k", "v"))
	assert.Equal(t, NullLogger{}, child)
	assert.NoError(t, l.Close())
}

func TestLoggers_ImplementInterface(t *testing.T) {
	var _ Logger = NullLogger{}
	var _ Logger = &MultiLogger{}
	var _ Logger = &ConsoleLogger{}
	var _ Logger = &JSONLogger{}
	var _ Logger = &TruncatingLogger{}
	var _ Logger = &ZapLogger{}
}
