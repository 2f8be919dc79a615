package parser

import (
	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/internal/explain"
)

// Explain returns the indented tree dump of a node. Positions are omitted,
// so equal dumps mean structurally equal trees.
func Explain(node ast.Node) string {
	return explain.Explain(node)
}
