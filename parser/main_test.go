package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sqlc-dev/sparksql/token"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAmbiguousShape(t *testing.T) {
	saved := shapes
	defer func() { shapes = saved }()
	shapes = append(append([]shape(nil), saved...),
		shape{"Shadow", []step{kw(token.CLEAR), kw(token.CACHE)}, (*Parser).clearCache})

	_, err := ParseStatement("CLEAR CACHE", DefaultConfig)
	require.Error(t, err)
	require.True(t, IsCode(err, CodeAmbiguousShape))
	require.Contains(t, err.Error(), "ambiguous statement: ClearCache and Shadow both match CLEAR CACHE")
}

func TestShapesAreUnambiguous(t *testing.T) {
	for _, sql := range []string{
		"CLEAR CACHE",
		"SET ROLE admin",
		"SET TIME ZONE LOCAL",
		"SHOW CURRENT NAMESPACE",
		"SHOW CURRENT ROLES",
		"DESCRIBE FUNCTION f",
		"DESCRIBE t",
		"REFRESH TABLE t",
		"REFRESH '/p'",
	} {
		_, err := ParseStatement(sql, DefaultConfig)
		require.NoError(t, err, sql)
	}
}

func TestTryRewinds(t *testing.T) {
	p := NewString("a-b c", DefaultConfig)
	ok := p.try(func() {
		p.errorCapturingIdentifier()
		p.unexpected("<EOF>")
	})
	require.False(t, ok)
	require.Empty(t, p.diags)
	require.Equal(t, "a", p.peek().Value)

	ok = p.try(func() { p.errorCapturingIdentifier() })
	require.True(t, ok)
	require.Len(t, p.diags, 1)
	require.Equal(t, "c", p.peek().Value)
}

func TestOtherPanicsPropagate(t *testing.T) {
	p := NewString("SELECT 1", DefaultConfig)
	require.PanicsWithValue(t, "boom", func() {
		_ = p.run(func() { panic("boom") })
	})
	require.PanicsWithValue(t, "boom", func() {
		p.try(func() { panic("boom") })
	})
}

func TestRunDropsDiagnosticsOnFailure(t *testing.T) {
	p := NewString("SELECT * FROM a-b WHERE", DefaultConfig)
	_, err := p.ParseStatement()
	require.Error(t, err)
	require.Empty(t, p.Diagnostics())
}

func TestBacktrackIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := NewString("CREATE TABLE t (a INT, b STRING) USING parquet PARTITIONED BY (b)", DefaultConfig)
	p.SetLogger(zap.New(core))
	_, err := p.ParseStatement()
	require.NoError(t, err)
	require.NotZero(t, logs.FilterMessage("backtrack").Len())
}
