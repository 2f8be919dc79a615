package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/parser"
)

func TestMultiStatementParsing(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected int
	}{
		{
			name:     "two selects with semicolon",
			sql:      "SELECT 1; SELECT 2;",
			expected: 2,
		},
		{
			name:     "three selects",
			sql:      "SELECT 1; SELECT 2; SELECT 3;",
			expected: 3,
		},
		{
			name:     "mixed statements",
			sql:      "SELECT 1; CREATE TABLE t (a INT) USING parquet; DROP TABLE t;",
			expected: 3,
		},
		{
			name:     "no trailing semicolon",
			sql:      "SELECT 1; SELECT 2",
			expected: 2,
		},
		{
			name:     "multiple semicolons between statements",
			sql:      "SELECT 1;; SELECT 2;;; SELECT 3",
			expected: 3,
		},
		{
			name:     "newlines between statements",
			sql:      "SELECT 1;\nSELECT 2;\nSELECT 3;",
			expected: 3,
		},
		{
			name:     "single statement",
			sql:      "SELECT 1;",
			expected: 1,
		},
		{
			name:     "only semicolons",
			sql:      ";;;",
			expected: 0,
		},
		{
			name:     "complex multi-statement",
			sql:      "SELECT a, b FROM t1 WHERE x > 10; INSERT INTO t2 VALUES (1, 'hello'); SELECT * FROM t3 ORDER BY id;",
			expected: 3,
		},
		{
			name:     "set with free form value",
			sql:      "SET spark.sql.ansi.enabled=true; SELECT 1",
			expected: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmts, err := parser.Parse(context.Background(), strings.NewReader(tc.sql), parser.DefaultConfig)
			require.NoError(t, err)
			require.Len(t, stmts, tc.expected)
		})
	}
}

func TestParseString(t *testing.T) {
	stmts, err := parser.ParseString(context.Background(), "SELECT 1; SELECT 2; SELECT 3;", parser.DefaultConfig)
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	for _, stmt := range stmts {
		require.IsType(t, &ast.Query{}, stmt)
	}
}

func TestParseStringRecovers(t *testing.T) {
	stmts, err := parser.ParseString(context.Background(),
		"SELECT 1; SELEC 2; SELECT 3; DROP TABLE; SELECT 4", parser.DefaultConfig)
	require.Error(t, err)
	require.Len(t, stmts, 3)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		require.True(t, parser.IsCode(e, parser.CodeUnexpectedToken), e.Error())
	}
	se, ok := parser.AsSyntaxError(errs[0])
	require.True(t, ok)
	require.Equal(t, 1, se.Pos.Line)
	require.Equal(t, 11, se.Pos.Column)
	require.Equal(t, "SELEC", se.Found)
}

func TestParseStringCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stmts, err := parser.ParseString(ctx, "SELECT 1; SELECT 2", parser.DefaultConfig)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, stmts)
}

func TestParseFile(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "test.sql")

	content := `-- This is a SQL file with multiple statements
SELECT 1;

-- A more complex query
SELECT a, b, c
FROM my_table
WHERE x > 10;

/* Create a table */
CREATE TABLE test_table (
    id INT,
    name STRING
) USING parquet;

-- Insert some data
INSERT INTO test_table VALUES (1, 'hello');

-- Final select
SELECT * FROM test_table ORDER BY id;
`
	require.NoError(t, os.WriteFile(sqlFile, []byte(content), 0644))

	stmts, err := parser.ParseFile(context.Background(), sqlFile, parser.DefaultConfig)
	require.NoError(t, err)
	require.Len(t, stmts, 5)
	require.IsType(t, &ast.CreateTable{}, stmts[2])
	require.IsType(t, &ast.InsertStatement{}, stmts[3])
}

func TestParseFileError(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "bad.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte("SELECT 1;\nSELECT 1 +;\n"), 0644))

	stmts, err := parser.ParseFile(context.Background(), sqlFile, parser.DefaultConfig)
	require.Error(t, err)
	require.Len(t, stmts, 1)
	require.Contains(t, err.Error(), "parse "+sqlFile)
	require.True(t, parser.IsCode(err, parser.CodeUnexpectedToken))
}

func TestParseFileNotFound(t *testing.T) {
	_, err := parser.ParseFile(context.Background(), "/nonexistent/file.sql", parser.DefaultConfig)
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}
