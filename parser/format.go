package parser

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/internal/format"
)

// Format returns the SQL string representation of the statements.
func Format(stmts []ast.Statement) string {
	return format.Format(stmts)
}

// FormatStatement returns the SQL text of a single statement without a
// trailing semicolon.
func FormatStatement(stmt ast.Statement) string {
	var sb strings.Builder
	format.Statement(&sb, stmt)
	return sb.String()
}

// FormatExpression returns the SQL text of an expression.
func FormatExpression(expr ast.Expression) string {
	var sb strings.Builder
	format.Expression(&sb, expr)
	return sb.String()
}

// FormatDataType returns the SQL text of a data type.
func FormatDataType(dt *ast.DataType) string {
	var sb strings.Builder
	format.DataType(&sb, dt)
	return sb.String()
}
