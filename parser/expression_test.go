package parser_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/parser"
)

func TestPrecedence(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"1 + 2 * 3", "1 + (2 * 3)"},
		{"a + b + c", "(a + b) + c"},
		{"a - b - c", "(a - b) - c"},
		{"a * b div c", "(a * b) DIV c"},
		{"a | b ^ c & d", "a | (b ^ (c & d))"},
		{"a || b + c", "(a || b) + c"},
		{"a = 1 AND b = 2 OR c", "((a = 1) AND (b = 2)) OR c"},
		{"NOT a = b", "NOT (a = b)"},
		{"-a * b", "(-a) * b"},
		{"a + 1 > b * 2", "(a + 1) > (b * 2)"},
		{"a between 1 and 2 and b", "(a BETWEEN 1 AND 2) AND b"},
		{"a not like 'x%' or b in (1, 2)", "(a NOT LIKE 'x%') OR (b IN (1, 2))"},
		{"a <=> b", "a <=> b"},
	} {
		expr, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, parser.FormatExpression(expr), tt.in)
	}
}

func TestComparisonsDoNotChain(t *testing.T) {
	for _, sql := range []string{
		"a = b = c",
		"a < b > c",
		"a in (1) = true",
	} {
		_, err := parser.ParseExpression(sql, parser.DefaultConfig)
		require.Error(t, err, sql)
		require.True(t, parser.IsCode(err, parser.CodeUnexpectedToken), err.Error())
	}
}

func TestNumericLiterals(t *testing.T) {
	for _, tt := range []struct {
		in    string
		typ   ast.LiteralType
		value interface{}
	}{
		{"1", ast.LiteralInteger, int64(1)},
		{"-7", ast.LiteralInteger, int64(-7)},
		{"2147483648", ast.LiteralBigInt, int64(2147483648)},
		{"1L", ast.LiteralBigInt, int64(1)},
		{"1S", ast.LiteralSmallInt, int64(1)},
		{"-128Y", ast.LiteralTinyInt, int64(-128)},
		{"1.5D", ast.LiteralDouble, 1.5},
		{"1.5F", ast.LiteralFloat, 1.5},
		{"1E10", ast.LiteralDouble, 1e10},
	} {
		expr, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.NoError(t, err, tt.in)
		lit, ok := expr.(*ast.Literal)
		require.True(t, ok, tt.in)
		require.Equal(t, tt.typ, lit.Type, tt.in)
		require.Equal(t, tt.value, lit.Value, tt.in)
	}

	for _, tt := range []struct {
		in    string
		typ   ast.LiteralType
		value string
	}{
		{"1.5", ast.LiteralDecimal, "1.5"},
		{"1.5BD", ast.LiteralBigDecimal, "1.5"},
		{"99999999999999999999", ast.LiteralDecimal, "99999999999999999999"},
	} {
		expr, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.NoError(t, err, tt.in)
		lit := expr.(*ast.Literal)
		require.Equal(t, tt.typ, lit.Type, tt.in)
		require.True(t, decimal.RequireFromString(tt.value).Equal(lit.Value.(decimal.Decimal)), tt.in)
	}
}

func TestLegacyExponentAsDecimal(t *testing.T) {
	cfg := parser.Config{LegacyExponentAsDecimal: true}
	expr, err := parser.ParseExpression("1.5E3", cfg)
	require.NoError(t, err)
	lit := expr.(*ast.Literal)
	require.Equal(t, ast.LiteralDecimal, lit.Type)
	require.True(t, decimal.NewFromInt(1500).Equal(lit.Value.(decimal.Decimal)))

	expr, err = parser.ParseExpression("1.5E3", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, ast.LiteralDouble, expr.(*ast.Literal).Type)
}

func TestNumericLiteralRange(t *testing.T) {
	for _, tt := range []struct {
		in, msg string
	}{
		{"128Y", "Numeric literal 128 does not fit in range [-128, 127] for type tinyint"},
		{"40000S", "Numeric literal 40000 does not fit in range [-32768, 32767] for type smallint"},
		{"9223372036854775808L", "Numeric literal 9223372036854775808 does not fit in range [-9223372036854775808, 9223372036854775807] for type bigint"},
		{"1E400", "Numeric literal 1E400 does not fit in range for type double"},
	} {
		_, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.Error(t, err, tt.in)
		require.True(t, parser.IsCode(err, parser.CodeInvalidLiteral), err.Error())
		require.Contains(t, err.Error(), tt.msg)
	}
}

func TestTypedLiterals(t *testing.T) {
	expr, err := parser.ParseExpression("DATE '2020-01-31'", parser.DefaultConfig)
	require.NoError(t, err)
	lit := expr.(*ast.TypedLiteral)
	require.Equal(t, "DATE", lit.TypeName)
	require.NotNil(t, lit.Date)
	require.Equal(t, 2020, lit.Date.Year)
	require.Equal(t, 31, lit.Date.Day)

	expr, err = parser.ParseExpression("timestamp '2020-01-31 10:20:30'", parser.DefaultConfig)
	require.NoError(t, err)
	lit = expr.(*ast.TypedLiteral)
	require.Equal(t, "TIMESTAMP", lit.TypeName)
	require.NotNil(t, lit.Timestamp)
	require.Equal(t, 10, lit.Timestamp.Time.Hour)

	expr, err = parser.ParseExpression("X'0A1'", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "0A1", expr.(*ast.TypedLiteral).Value)

	_, err = parser.ParseExpression("X'0G'", parser.DefaultConfig)
	require.Error(t, err)
	require.Contains(t, err.Error(), "contains illegal character for hexBinary: 0G")

	_, err = parser.ParseExpression("geometry 'POINT(1 1)'", parser.DefaultConfig)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Literals of type 'GEOMETRY' are currently not supported.")
}

func TestStringLiterals(t *testing.T) {
	expr, err := parser.ParseExpression(`'a' "b" 'c'`, parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "abc", expr.(*ast.Literal).Value)
}

func TestIntervals(t *testing.T) {
	expr, err := parser.ParseExpression("INTERVAL '1-2' YEAR TO MONTH", parser.DefaultConfig)
	require.NoError(t, err)
	iv := expr.(*ast.IntervalLiteral)
	require.Len(t, iv.Fields, 1)
	require.Equal(t, "YEAR", iv.Fields[0].Unit)
	require.Equal(t, "MONTH", iv.Fields[0].ToUnit)
	require.Empty(t, parser.Diagnostics(expr))

	expr, err = parser.ParseExpression("INTERVAL 1 DAYS -2 HOURS", parser.DefaultConfig)
	require.NoError(t, err)
	iv = expr.(*ast.IntervalLiteral)
	require.Len(t, iv.Fields, 2)
	require.Equal(t, "-2", iv.Fields[1].Value)
	require.Equal(t, "HOUR", iv.Fields[1].Unit)

	// A from-to unit mixed with other fields parses but is flagged.
	expr, err = parser.ParseExpression("INTERVAL '1-2' YEAR TO MONTH 3 DAYS", parser.DefaultConfig)
	require.NoError(t, err)
	diags := parser.Diagnostics(expr)
	require.Len(t, diags, 1)
	require.Equal(t, ast.DiagIntervalShape, diags[0].Kind)

	err = parser.CheckDiagnostics(expr)
	require.Error(t, err)
	require.True(t, parser.IsCode(err, parser.CodeIntervalShape))

	for _, tt := range []struct {
		in, msg string
	}{
		{"INTERVAL 1 YEAR TO MONTH", "The value of from-to unit must be a string"},
		{"INTERVAL '1' DAY TO MONTH", "Intervals FROM DAY TO MONTH are not supported."},
		{"INTERVAL 1 fortnight", "Error parsing interval, invalid unit 'fortnight'"},
	} {
		_, err := parser.ParseExpression(tt.in, parser.DefaultConfig)
		require.Error(t, err, tt.in)
		require.True(t, parser.IsCode(err, parser.CodeInvalidLiteral), err.Error())
		require.Contains(t, err.Error(), tt.msg)
	}
}

func TestNamedExpression(t *testing.T) {
	expr, err := parser.ParseExpression("a + 1 AS b", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "a + 1 AS b", parser.FormatExpression(expr))

	_, err = parser.ParseExpression("a +", parser.DefaultConfig)
	require.Error(t, err)
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	require.Equal(t, parser.CodeUnexpectedToken, se.Code)
	require.Equal(t, "", se.Found)
	require.Contains(t, err.Error(), "mismatched input <EOF>")
}
