package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	l.Debug("d")
	l.Info("i", TokenField("!="))
	l.Warn("w")
	l.Error("e", IntField("n", 2))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, "!=", entries[1].ContextMap()["token"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(2), entries[3].ContextMap()["n"])
}

func TestZapLogger_WithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core))

	l.WithFields(StringField("component", "render")).Info("child")

	entries := logs.FilterMessage("child").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "render", entries[0].ContextMap()["component"])
}

func TestZapLogger_NilUsesNop(t *testing.T) {
	l := NewZapLogger(nil)
	assert.NotNil(t, l.Zap())
	l.Info("ignored")
	assert.NoError(t, l.Close())
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, zapLevel(LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, zapLevel(LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, zapLevel(LevelError))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(LogLevel(42)))
}

func TestFactory_New(t *testing.T) {
	tests := []struct {
		format string
		kind   any
	}{
		{"", &ConsoleLogger{}},
		{"console", &ConsoleLogger{}},
		{"JSON", &JSONLogger{}},
		{"zap", &ZapLogger{}},
		{"none", NullLogger{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			l, err := New(tt.format, LevelInfo, "")
			require.NoError(t, err)
			assert.IsType(t, tt.kind, l)
		})
	}

	_, err := New("syslog", LevelInfo, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestFactory_NewBoth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failmsg.log")

	l, err := New(FormatBoth, LevelInfo, path)
	require.NoError(t, err)
	require.IsType(t, &MultiLogger{}, l)

	l.WithFields(TokenField("!=")).Info("synthesized")
	l.Debug("dropped")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"synthesized"`)
	assert.Contains(t, string(data), `"token":"!="`)
	assert.NotContains(t, string(data), "dropped")

	_, err = New("both", LevelInfo, "")
	assert.ErrorIs(t, err, ErrOutputRequired)
}
