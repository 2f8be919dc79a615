package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseStdin(t *testing.T) {
	out, err := execute(t, "SELECT 1; SELECT 2", "parse")
	require.NoError(t, err)
	require.Len(t, regexp.MustCompile(`(?m)^Query`).FindAllString(out, -1), 2)
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	bad := filepath.Join(dir, "bad.sql")
	require.NoError(t, os.WriteFile(good, []byte("select a from t"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("select (1; select b from u"), 0o644))

	out, err := execute(t, "", "parse", "-o", "sql", good, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.sql")
	require.Contains(t, out, "FROM t;")
	// The statement after the broken one is still printed.
	require.Contains(t, out, "FROM u;")
}

func TestParseStrict(t *testing.T) {
	out, err := execute(t, "GRANT SELECT ON t TO u", "parse")
	require.NoError(t, err)
	require.Contains(t, out, "UnsupportedCommand")

	_, err = execute(t, "GRANT SELECT ON t TO u", "parse", "--strict")
	require.ErrorContains(t, err, "Operation not allowed: GRANT")
}

func TestExpr(t *testing.T) {
	out, err := execute(t, "", "expr", "a + 1")
	require.NoError(t, err)
	require.Equal(t, "BinaryExpr op=\"+\" (children 2)\n Identifier a\n Literal Integer 1\n", out)

	out, err = execute(t, "", "expr", "-o", "json", "a + 1")
	require.NoError(t, err)
	require.Contains(t, out, `"kind": "BinaryExpr"`)
	require.Contains(t, out, `"op": "+"`)

	_, err = execute(t, "", "expr", "-o", "yaml", "a")
	require.ErrorContains(t, err, "invalid output")
}

func TestExprMetrics(t *testing.T) {
	out, err := execute(t, "", "expr", "--metrics", "1")
	require.NoError(t, err)
	require.Contains(t, out, "sparksql_parser_parse_total")
	require.Contains(t, out, `entry="expression"`)
}

func TestKeywords(t *testing.T) {
	out, err := execute(t, "", "keywords")
	require.NoError(t, err)
	require.Contains(t, strings.Split(out, "\n"), "JOIN")

	out, err = execute(t, "", "keywords", "--category", "non-reserved")
	require.NoError(t, err)
	require.NotContains(t, strings.Split(out, "\n"), "JOIN")

	out, err = execute(t, "", "keywords", "--category", "strict-non-reserved")
	require.NoError(t, err)
	require.Equal(t, "ANTI\nMINUS\nSEMI\n", out)

	_, err = execute(t, "", "keywords", "--category", "loud")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparkparse.toml")
	require.NoError(t, os.WriteFile(path, []byte("output = \"sql\"\n[parser]\nlegacy-exponent-as-decimal = true\n"), 0o644))

	out, err := execute(t, "", "expr", "-c", path, "1.5E3")
	require.NoError(t, err)
	require.Equal(t, "1.5E3\n", out)

	out, err = execute(t, "", "expr", "-c", path, "-o", "explain", "1.5E3")
	require.NoError(t, err)
	require.Equal(t, "Literal Decimal 1.5E3\n", out)
}
