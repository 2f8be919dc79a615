package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "sparkparse.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, OutputExplain, conf.Output)
	require.False(t, conf.Parser.AnsiKeywords)
	require.Equal(t, "warn", conf.Log.Level)
	require.NoError(t, conf.Valid())

	// NewConfig hands out copies.
	conf.Output = OutputJSON
	require.Equal(t, OutputExplain, NewConfig().Output)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output = "sql"
metrics = true

[parser]
ansi-keywords = true
legacy-exponent-as-decimal = true

[log]
level = "debug"
`)
	conf := NewConfig()
	require.NoError(t, conf.Load(path))
	require.Equal(t, OutputSQL, conf.Output)
	require.True(t, conf.Metrics)
	require.True(t, conf.Parser.AnsiKeywords)
	require.False(t, conf.Parser.LegacySetOpsPrecedence)
	require.True(t, conf.Parser.LegacyExponentAsDecimal)
	require.Equal(t, "debug", conf.Log.Level)
	require.Equal(t, "text", conf.Log.Format)

	logConf := conf.Log.ToLogConfig()
	require.Equal(t, "debug", logConf.Level)
}

func TestLoadErrors(t *testing.T) {
	conf := NewConfig()
	require.Error(t, conf.Load(filepath.Join(t.TempDir(), "missing.toml")))

	conf = NewConfig()
	err := conf.Load(writeConfig(t, "[parser]\nansi = true\n"))
	require.ErrorContains(t, err, "unknown keys")

	conf = NewConfig()
	err = conf.Load(writeConfig(t, `output = "yaml"`))
	require.ErrorContains(t, err, "invalid output")

	conf = NewConfig()
	require.Error(t, conf.Load(writeConfig(t, "output = ")))
}
