// Package ast defines the abstract syntax tree for Spark SQL.
package ast

import (
	"strings"

	"github.com/sqlc-dev/sparksql/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Relation is the interface implemented by the items of a FROM clause.
type Relation interface {
	Node
	relationNode()
}

// QueryTerm is an operand of a set operation.
type QueryTerm interface {
	Node
	queryTermNode()
}

// -----------------------------------------------------------------------------
// Diagnostics

// DiagnosticKind classifies a recoverable problem found while parsing.
type DiagnosticKind string

const (
	DiagDashedIdentifier   DiagnosticKind = "DashedIdentifier"
	DiagIntervalShape      DiagnosticKind = "IntervalShape"
	DiagUnsupportedCommand DiagnosticKind = "UnsupportedCommand"
)

// Diagnostic is a non-fatal error attached to a node that otherwise parsed.
type Diagnostic struct {
	Position token.Position `json:"-"`
	Kind     DiagnosticKind `json:"kind"`
	Message  string         `json:"message"`
}

func (d *Diagnostic) Pos() token.Position { return d.Position }
func (d *Diagnostic) End() token.Position { return d.Position }

func (d *Diagnostic) Error() string {
	return string(d.Kind) + ": " + d.Message
}

// -----------------------------------------------------------------------------
// Identifiers

// Identifier is a dot-separated name. As an expression it is a column
// reference.
type Identifier struct {
	Position   token.Position `json:"-"`
	Parts      []string       `json:"parts"`
	Quoted     []bool         `json:"quoted,omitempty"`
	Diagnostic *Diagnostic    `json:"diagnostic,omitempty"`
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) End() token.Position { return i.Position }
func (i *Identifier) expressionNode()     {}

// Name returns the dot-joined name.
func (i *Identifier) Name() string {
	return strings.Join(i.Parts, ".")
}

// Last returns the final part of the name.
func (i *Identifier) Last() string {
	if len(i.Parts) == 0 {
		return ""
	}
	return i.Parts[len(i.Parts)-1]
}

// NewIdentifier builds an unquoted identifier from parts.
func NewIdentifier(pos token.Position, parts ...string) *Identifier {
	return &Identifier{Position: pos, Parts: parts, Quoted: make([]bool, len(parts))}
}
