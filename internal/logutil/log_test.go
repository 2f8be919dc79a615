package logutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sparksql.log")
	cfg := NewLogConfig("debug", DefaultLogFormat, NewFileLogConfig(file, DefaultLogMaxSize), true)
	require.NoError(t, InitLogger(cfg))
	require.True(t, BgLogger().Core().Enabled(zapcore.DebugLevel))

	BgLogger().Debug("parsed", zap.String("entry", "statement"))
	require.NoError(t, SetLevel("error"))
	require.False(t, BgLogger().Core().Enabled(zapcore.WarnLevel))
	require.True(t, BgLogger().Core().Enabled(zapcore.ErrorLevel))
	require.Error(t, SetLevel("loud"))
}

func TestInitLoggerBadLevel(t *testing.T) {
	cfg := NewLogConfig("loud", DefaultLogFormat, FileLogConfig{}, false)
	require.Error(t, InitLogger(cfg))
}
