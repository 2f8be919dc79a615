package explain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/internal/explain"
	"github.com/sqlc-dev/sparksql/parser"
)

func TestExplainExpression(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"a + 1", "BinaryExpr op=\"+\" (children 2)\n Identifier a\n Literal Integer 1\n"},
		{"x is not null", "IsExpr not kind=NULL (children 1)\n Identifier x\n"},
		{"`a b`.c", "Identifier `a b`.c\n"},
		{"'x'", "Literal String \"x\"\n"},
		{"null", "Literal Null\n"},
		{"true", "Literal Boolean true\n"},
		{"-5L", "Literal BigInt -5L\n"},
		{"cast(a as decimal(10, 2))", "CastExpr (children 2)\n Identifier a\n DataType name=DECIMAL params=[10 2]\n"},
	} {
		expr, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, explain.Explain(expr), tt.in)
	}
}

func TestExplainStatement(t *testing.T) {
	stmt, err := parser.ParseStatement("SELECT a FROM t", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, `Query (children 1)
 QuerySpecification (children 2)
  columns (children 1)
   Identifier a
  FromClause (children 1)
   relations (children 1)
    TableName (children 1)
     Identifier t
`, explain.Explain(stmt))

	stmt, err = parser.ParseStatement("DROP TABLE IF EXISTS db.t PURGE", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "DropTable if_exists purge (children 1)\n Identifier db.t\n", explain.Explain(stmt))
}

func TestExplainIgnoresPositions(t *testing.T) {
	a, err := parser.ParseStatement("SELECT a, b FROM t WHERE c > 1", parser.DefaultConfig)
	require.NoError(t, err)
	b, err := parser.ParseStatement("select   a,\n  b\nfrom t\nwhere c>1", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, explain.Explain(a), explain.Explain(b))
}

func TestExplainNil(t *testing.T) {
	require.Equal(t, "", explain.Explain(nil))
	var q *ast.Query
	require.Equal(t, "", explain.Explain(q))
}
