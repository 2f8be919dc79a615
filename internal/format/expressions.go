package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
)

// Expression formats an expression.
func Expression(sb *strings.Builder, expr ast.Expression) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *ast.Literal:
		formatLiteral(sb, e)
	case *ast.TypedLiteral:
		sb.WriteString(e.TypeName)
		sb.WriteString(" ")
		String(sb, e.Value)
	case *ast.IntervalLiteral:
		formatInterval(sb, e)
	case *ast.Identifier:
		Identifier(sb, e)
	case *ast.Star:
		if e.Target != nil {
			Identifier(sb, e.Target)
			sb.WriteString(".")
		}
		sb.WriteString("*")
	case *ast.UnaryExpr:
		formatUnaryExpr(sb, e)
	case *ast.BinaryExpr:
		operand(sb, e.Left)
		sb.WriteString(" ")
		sb.WriteString(string(e.Op))
		sb.WriteString(" ")
		operand(sb, e.Right)
	case *ast.BetweenExpr:
		operand(sb, e.Expr)
		not(sb, e.Not)
		sb.WriteString(" BETWEEN ")
		operand(sb, e.Low)
		sb.WriteString(" AND ")
		operand(sb, e.High)
	case *ast.InExpr:
		formatInExpr(sb, e)
	case *ast.LikeExpr:
		formatLikeExpr(sb, e)
	case *ast.IsExpr:
		operand(sb, e.Expr)
		sb.WriteString(" IS")
		not(sb, e.Not)
		sb.WriteString(" ")
		sb.WriteString(string(e.Kind))
		if e.Right != nil {
			sb.WriteString(" ")
			operand(sb, e.Right)
		}
	case *ast.ExistsExpr:
		sb.WriteString("EXISTS (")
		formatQuery(sb, e.Query)
		sb.WriteString(")")
	case *ast.FunctionCall:
		formatFunctionCall(sb, e)
	case *ast.CaseExpr:
		formatCaseExpr(sb, e)
	case *ast.CastExpr:
		sb.WriteString("CAST(")
		Expression(sb, e.Expr)
		sb.WriteString(" AS ")
		DataType(sb, e.Type)
		sb.WriteString(")")
	case *ast.StructExpr:
		sb.WriteString("STRUCT(")
		expressionList(sb, e.Fields)
		sb.WriteString(")")
	case *ast.RowExpr:
		sb.WriteString("(")
		expressionList(sb, e.Items)
		sb.WriteString(")")
	case *ast.Subquery:
		sb.WriteString("(")
		formatQuery(sb, e.Query)
		sb.WriteString(")")
	case *ast.Lambda:
		if len(e.Params) == 1 {
			Identifier(sb, e.Params[0])
		} else {
			identifierList(sb, e.Params)
		}
		sb.WriteString(" -> ")
		Expression(sb, e.Body)
	case *ast.Subscript:
		operand(sb, e.Base)
		sb.WriteString("[")
		Expression(sb, e.Index)
		sb.WriteString("]")
	case *ast.Dereference:
		operand(sb, e.Base)
		sb.WriteString(".")
		Identifier(sb, e.Field)
	case *ast.ExtractExpr:
		sb.WriteString("EXTRACT(")
		Identifier(sb, e.Field)
		sb.WriteString(" FROM ")
		operand(sb, e.Source)
		sb.WriteString(")")
	case *ast.SubstringExpr:
		sb.WriteString("SUBSTRING(")
		operand(sb, e.Str)
		sb.WriteString(", ")
		operand(sb, e.Start)
		if e.Length != nil {
			sb.WriteString(", ")
			operand(sb, e.Length)
		}
		sb.WriteString(")")
	case *ast.TrimExpr:
		sb.WriteString("TRIM(")
		if e.Option != "" {
			sb.WriteString(e.Option)
			sb.WriteString(" ")
		}
		if e.Chars != nil {
			operand(sb, e.Chars)
			sb.WriteString(" ")
		}
		sb.WriteString("FROM ")
		operand(sb, e.Source)
		sb.WriteString(")")
	case *ast.OverlayExpr:
		sb.WriteString("OVERLAY(")
		operand(sb, e.Input)
		sb.WriteString(" PLACING ")
		operand(sb, e.Replace)
		sb.WriteString(" FROM ")
		operand(sb, e.Start)
		if e.Length != nil {
			sb.WriteString(" FOR ")
			operand(sb, e.Length)
		}
		sb.WriteString(")")
	case *ast.PositionExpr:
		sb.WriteString("POSITION(")
		operand(sb, e.Substr)
		sb.WriteString(" IN ")
		operand(sb, e.Str)
		sb.WriteString(")")
	case *ast.CurrentDatetime:
		sb.WriteString(e.Name)
	case *ast.AliasedExpr:
		Expression(sb, e.Expr)
		sb.WriteString(" AS ")
		if e.Alias != nil {
			Identifier(sb, e.Alias)
		} else {
			identifierList(sb, e.Columns)
		}
	default:
		sb.WriteString(fmt.Sprintf("%v", expr))
	}
}

// operand writes expr as the operand of an operator or a postfix access.
// Every compound form is parenthesized so the text parses back to the same
// tree regardless of operator binding.
func operand(sb *strings.Builder, expr ast.Expression) {
	if needsParens(expr) {
		sb.WriteString("(")
		Expression(sb, expr)
		sb.WriteString(")")
		return
	}
	Expression(sb, expr)
}

func needsParens(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.UnaryExpr, *ast.BinaryExpr, *ast.BetweenExpr, *ast.InExpr, *ast.LikeExpr,
		*ast.IsExpr, *ast.ExistsExpr, *ast.Lambda, *ast.IntervalLiteral:
		return true
	case *ast.Literal:
		return strings.HasPrefix(e.Raw, "-")
	}
	return false
}

func not(sb *strings.Builder, n bool) {
	if n {
		sb.WriteString(" NOT")
	}
}

func expressionList(sb *strings.Builder, exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, e)
	}
}

func formatLiteral(sb *strings.Builder, lit *ast.Literal) {
	switch lit.Type {
	case ast.LiteralNull:
		sb.WriteString("NULL")
	case ast.LiteralBoolean:
		if b, _ := lit.Value.(bool); b {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
	case ast.LiteralString:
		s, _ := lit.Value.(string)
		String(sb, s)
	default:
		if lit.Raw != "" {
			sb.WriteString(lit.Raw)
			return
		}
		switch v := lit.Value.(type) {
		case int64:
			sb.WriteString(strconv.FormatInt(v, 10))
		case float64:
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			sb.WriteString("D")
		default:
			sb.WriteString(fmt.Sprintf("%v", v))
		}
	}
}

func formatInterval(sb *strings.Builder, lit *ast.IntervalLiteral) {
	sb.WriteString("INTERVAL")
	for _, f := range lit.Fields {
		sb.WriteString(" ")
		if f.StringValue {
			String(sb, f.Value)
		} else {
			sb.WriteString(f.Value)
		}
		sb.WriteString(" ")
		sb.WriteString(f.Unit)
		if f.ToUnit != "" {
			sb.WriteString(" TO ")
			sb.WriteString(f.ToUnit)
		}
	}
}

func formatUnaryExpr(sb *strings.Builder, e *ast.UnaryExpr) {
	if e.Op == ast.OpNot {
		sb.WriteString("NOT ")
		operand(sb, e.Operand)
		return
	}
	sb.WriteString(string(e.Op))
	// A signed operand is parenthesized so the signs never form a comment.
	if _, ok := e.Operand.(*ast.Literal); ok || needsParens(e.Operand) {
		sb.WriteString("(")
		Expression(sb, e.Operand)
		sb.WriteString(")")
		return
	}
	Expression(sb, e.Operand)
}

func formatInExpr(sb *strings.Builder, e *ast.InExpr) {
	operand(sb, e.Expr)
	not(sb, e.Not)
	sb.WriteString(" IN (")
	if e.Query != nil {
		formatQuery(sb, e.Query)
	} else {
		expressionList(sb, e.List)
	}
	sb.WriteString(")")
}

func formatLikeExpr(sb *strings.Builder, e *ast.LikeExpr) {
	operand(sb, e.Expr)
	not(sb, e.Not)
	if e.Regex {
		sb.WriteString(" RLIKE ")
		operand(sb, e.Pattern)
		return
	}
	sb.WriteString(" LIKE ")
	if e.Quantifier != "" {
		sb.WriteString(e.Quantifier)
		sb.WriteString(" (")
		expressionList(sb, e.Patterns)
		sb.WriteString(")")
		return
	}
	operand(sb, e.Pattern)
	optString(sb, " ESCAPE ", e.Escape)
}

func formatFunctionCall(sb *strings.Builder, fn *ast.FunctionCall) {
	Identifier(sb, fn.Name)
	sb.WriteString("(")
	if fn.Quantifier != "" {
		sb.WriteString(fn.Quantifier)
		sb.WriteString(" ")
	}
	expressionList(sb, fn.Args)
	if fn.IgnoreNulls {
		sb.WriteString(" IGNORE NULLS")
	}
	sb.WriteString(")")
	if fn.Filter != nil {
		sb.WriteString(" FILTER (WHERE ")
		Expression(sb, fn.Filter)
		sb.WriteString(")")
	}
	if fn.Over != nil {
		sb.WriteString(" OVER ")
		formatWindowSpec(sb, fn.Over)
	}
}

func formatCaseExpr(sb *strings.Builder, c *ast.CaseExpr) {
	sb.WriteString("CASE")
	if c.Operand != nil {
		sb.WriteString(" ")
		Expression(sb, c.Operand)
	}
	for _, w := range c.Whens {
		sb.WriteString(" WHEN ")
		Expression(sb, w.Condition)
		sb.WriteString(" THEN ")
		Expression(sb, w.Result)
	}
	if c.Else != nil {
		sb.WriteString(" ELSE ")
		Expression(sb, c.Else)
	}
	sb.WriteString(" END")
}

func formatWindowSpec(sb *strings.Builder, w *ast.WindowSpec) {
	if w.Ref != nil {
		if w.ParenRef {
			sb.WriteString("(")
			Identifier(sb, w.Ref)
			sb.WriteString(")")
			return
		}
		Identifier(sb, w.Ref)
		return
	}
	var parts []string
	if len(w.ClusterBy) > 0 {
		parts = append(parts, "CLUSTER BY "+expressionText(w.ClusterBy))
	}
	if len(w.PartitionBy) > 0 {
		parts = append(parts, "PARTITION BY "+expressionText(w.PartitionBy))
	}
	if len(w.OrderBy) > 0 {
		var b strings.Builder
		sortItems(&b, w.OrderBy)
		parts = append(parts, "ORDER BY "+b.String())
	}
	if w.Frame != nil {
		var b strings.Builder
		formatFrame(&b, w.Frame)
		parts = append(parts, b.String())
	}
	sb.WriteString("(")
	sb.WriteString(strings.Join(parts, " "))
	sb.WriteString(")")
}

func expressionText(exprs []ast.Expression) string {
	var b strings.Builder
	expressionList(&b, exprs)
	return b.String()
}

func formatFrame(sb *strings.Builder, f *ast.WindowFrame) {
	sb.WriteString(f.Type)
	sb.WriteString(" ")
	if f.To == nil {
		formatFrameBound(sb, f.From)
		return
	}
	sb.WriteString("BETWEEN ")
	formatFrameBound(sb, f.From)
	sb.WriteString(" AND ")
	formatFrameBound(sb, f.To)
}

func formatFrameBound(sb *strings.Builder, b *ast.FrameBound) {
	if b.Expr != nil {
		operand(sb, b.Expr)
		sb.WriteString(" ")
	}
	sb.WriteString(string(b.Kind))
}

func sortItems(sb *strings.Builder, items []*ast.SortItem) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, item.Expr)
		if item.Ordering != "" {
			sb.WriteString(" ")
			sb.WriteString(item.Ordering)
		}
		if item.NullOrder != "" {
			sb.WriteString(" NULLS ")
			sb.WriteString(item.NullOrder)
		}
	}
}

// DataType formats a data type.
func DataType(sb *strings.Builder, dt *ast.DataType) {
	if dt == nil {
		return
	}
	switch dt.Name {
	case "ARRAY":
		if dt.Elem != nil {
			sb.WriteString("ARRAY<")
			DataType(sb, dt.Elem)
			sb.WriteString(">")
			return
		}
	case "MAP":
		if dt.Key != nil {
			sb.WriteString("MAP<")
			DataType(sb, dt.Key)
			sb.WriteString(", ")
			DataType(sb, dt.Value)
			sb.WriteString(">")
			return
		}
	case "STRUCT":
		sb.WriteString("STRUCT<")
		for i, f := range dt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			Identifier(sb, f.Name)
			sb.WriteString(": ")
			DataType(sb, f.Type)
			if f.NotNull {
				sb.WriteString(" NOT NULL")
			}
			optString(sb, " COMMENT ", f.Comment)
		}
		sb.WriteString(">")
		return
	}
	sb.WriteString(dt.Name)
	if len(dt.Params) > 0 {
		sb.WriteString("(")
		for i, v := range dt.Params {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteString(")")
	}
}
