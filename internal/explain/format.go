package explain

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/internal/format"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func identifierText(id *ast.Identifier) string {
	var sb strings.Builder
	format.Identifier(&sb, id)
	return sb.String()
}

// literalLabel renders a literal as its type followed by its canonical
// source text.
func literalLabel(lit *ast.Literal) string {
	var sb strings.Builder
	sb.WriteString("Literal ")
	sb.WriteString(string(lit.Type))
	switch lit.Type {
	case ast.LiteralNull:
		return sb.String()
	case ast.LiteralString:
		s, _ := lit.Value.(string)
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(s))
	case ast.LiteralBoolean:
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprint(lit.Value))
	default:
		sb.WriteString(" ")
		if lit.Raw != "" {
			sb.WriteString(lit.Raw)
		} else {
			sb.WriteString(fmt.Sprint(lit.Value))
		}
	}
	return sb.String()
}

// attribute renders a scalar field as name=value. A true bool is written
// as its bare name.
func attribute(name string, v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		return name
	case reflect.String:
		return name + "=" + scalar(v.String())
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return name + "=[" + strings.Join(parts, " ") + "]"
	}
	return name + "=" + scalar(fmt.Sprint(v.Interface()))
}

// scalar quotes s unless it is a plain word.
func scalar(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if !(r == '_' || r == '.' || r == '-' || r == ':' || r == '*' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return strconv.Quote(s)
		}
	}
	return s
}
