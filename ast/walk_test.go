package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/token"
)

func TestInspect(t *testing.T) {
	dashed := &Diagnostic{Kind: DiagDashedIdentifier, Message: "dashed"}
	expr := &BinaryExpr{
		Left: &Identifier{Parts: []string{"a-b"}, Diagnostic: dashed},
		Op:   OpAdd,
		Right: &FunctionCall{
			Name: NewIdentifier(token.Position{}, "f"),
			Args: []Expression{&Literal{Type: LiteralInteger, Value: int64(1)}},
		},
	}

	var kinds []string
	Inspect(expr, func(n Node) bool {
		switch n.(type) {
		case *BinaryExpr:
			kinds = append(kinds, "binary")
		case *Identifier:
			kinds = append(kinds, "ident")
		case *Diagnostic:
			kinds = append(kinds, "diag")
		case *FunctionCall:
			kinds = append(kinds, "call")
		case *Literal:
			kinds = append(kinds, "literal")
		}
		return true
	})
	require.Equal(t, []string{"binary", "ident", "diag", "call", "ident", "literal"}, kinds)

	var visited int
	Inspect(expr, func(n Node) bool {
		visited++
		_, isCall := n.(*FunctionCall)
		return !isCall
	})
	require.Equal(t, 4, visited)

	require.Equal(t, []*Diagnostic{dashed}, Diagnostics(expr))
}

func TestInspectNil(t *testing.T) {
	var id *Identifier
	Inspect(id, func(Node) bool {
		t.Fatal("visited a nil node")
		return true
	})
	Inspect(nil, func(Node) bool {
		t.Fatal("visited a nil node")
		return true
	})
	require.Empty(t, Diagnostics(&Query{}))
}

func TestInspectNestedLists(t *testing.T) {
	g := &GroupBy{
		Kind: GroupingSets,
		Sets: [][]Expression{
			{NewIdentifier(token.Position{}, "a")},
			{},
			{NewIdentifier(token.Position{}, "b"), NewIdentifier(token.Position{}, "c")},
		},
	}
	var names []string
	Inspect(g, func(n Node) bool {
		if id, ok := n.(*Identifier); ok {
			names = append(names, id.Name())
		}
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, names)
}

func TestIdentifier(t *testing.T) {
	id := NewIdentifier(token.Position{Line: 1, Column: 1}, "db", "tbl")
	require.Equal(t, "db.tbl", id.Name())
	require.Equal(t, "tbl", id.Last())
	require.Equal(t, []bool{false, false}, id.Quoted)
	require.Equal(t, "", (&Identifier{}).Last())

	d := &Diagnostic{Kind: DiagUnsupportedCommand, Message: "Operation not allowed: GRANT"}
	require.Equal(t, "UnsupportedCommand: Operation not allowed: GRANT", d.Error())
}

func TestLiteralIsNumeric(t *testing.T) {
	require.True(t, (&Literal{Type: LiteralDecimal}).IsNumeric())
	require.True(t, (&Literal{Type: LiteralTinyInt}).IsNumeric())
	require.False(t, (&Literal{Type: LiteralString}).IsNumeric())
	require.False(t, (&Literal{Type: LiteralNull}).IsNumeric())
}
