package main

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/pingcap/errors"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/config"
	"github.com/sqlc-dev/sparksql/parser"
)

// jsonNode tags a node with its Go type name so the shape survives
// encoding.
type jsonNode struct {
	Kind string   `json:"kind"`
	Node ast.Node `json:"node"`
}

func kindOf(node ast.Node) string {
	return reflect.Indirect(reflect.ValueOf(node)).Type().Name()
}

// printNode writes node to w in the configured output format.
func printNode(w io.Writer, output string, node ast.Node) error {
	switch output {
	case config.OutputJSON:
		b, err := json.MarshalIndent(jsonNode{Kind: kindOf(node), Node: node}, "", "  ")
		if err != nil {
			return errors.Trace(err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return errors.Trace(err)
	case config.OutputSQL:
		var text string
		switch n := node.(type) {
		case ast.Statement:
			text = parser.FormatStatement(n) + ";"
		case ast.Expression:
			text = parser.FormatExpression(n)
		default:
			return errors.Errorf("cannot print %s as SQL", kindOf(node))
		}
		_, err := fmt.Fprintln(w, text)
		return errors.Trace(err)
	}
	_, err := io.WriteString(w, parser.Explain(node))
	return errors.Trace(err)
}
