// Package explain renders a Spark SQL AST as an indented tree with one node
// per line. Positions are left out, so two parses of equivalent text produce
// the same dump.
package explain

import (
	"reflect"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
)

var nodeType = reflect.TypeOf((*ast.Node)(nil)).Elem()

// Explain returns the tree dump of node.
func Explain(node ast.Node) string {
	var sb strings.Builder
	Node(&sb, node, 0)
	return sb.String()
}

// Node writes node and its children, indented by depth.
func Node(sb *strings.Builder, node ast.Node, depth int) {
	if isNil(node) {
		return
	}
	v := reflect.Indirect(reflect.ValueOf(node))

	var label string
	var children []child
	switch n := node.(type) {
	case *ast.Identifier:
		label = "Identifier " + identifierText(n)
		if n.Diagnostic != nil {
			children = append(children, child{node: n.Diagnostic})
		}
	case *ast.Literal:
		label = literalLabel(n)
	default:
		label, children = inspect(v)
	}
	writeLine(sb, depth, label, len(children))
	for _, c := range children {
		c.write(sb, depth+1)
	}
}

// child is either a single node or a named list of children.
type child struct {
	node  ast.Node
	name  string
	items []child
}

func (c child) write(sb *strings.Builder, depth int) {
	if c.node != nil {
		Node(sb, c.node, depth)
		return
	}
	writeLine(sb, depth, c.name, len(c.items))
	for _, item := range c.items {
		item.write(sb, depth+1)
	}
}

func writeLine(sb *strings.Builder, depth int, label string, children int) {
	sb.WriteString(strings.Repeat(" ", depth))
	sb.WriteString(label)
	if children > 0 {
		sb.WriteString(" (children ")
		sb.WriteString(itoa(children))
		sb.WriteString(")")
	}
	sb.WriteString("\n")
}

// inspect splits the fields of a node into scalar attributes, which form
// the label, and child nodes.
func inspect(v reflect.Value) (string, []child) {
	t := v.Type()
	attrs := []string{t.Name()}
	var children []child
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := fieldName(f)
		if name == "" {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		switch fv.Kind() {
		case reflect.Ptr, reflect.Interface:
			if n, ok := fv.Interface().(ast.Node); ok {
				if !isNil(n) {
					children = append(children, child{node: n})
				}
				continue
			}
			attrs = append(attrs, attribute(name, fv.Elem()))
		case reflect.Slice:
			if fv.Len() == 0 {
				continue
			}
			if c, ok := list(name, fv); ok {
				children = append(children, c)
				continue
			}
			attrs = append(attrs, attribute(name, fv))
		default:
			attrs = append(attrs, attribute(name, fv))
		}
	}
	return strings.Join(attrs, " "), children
}

// list turns a slice of nodes, or a slice of node slices, into a named
// child list.
func list(name string, v reflect.Value) (child, bool) {
	elem := v.Type().Elem()
	switch {
	case elem.Kind() == reflect.Slice:
		if !isNodeType(elem.Elem()) {
			return child{}, false
		}
		c := child{name: name}
		for i := 0; i < v.Len(); i++ {
			inner, _ := list("ExpressionList", v.Index(i))
			c.items = append(c.items, inner)
		}
		return c, true
	case isNodeType(elem):
		c := child{name: name}
		for i := 0; i < v.Len(); i++ {
			if n, ok := v.Index(i).Interface().(ast.Node); ok && !isNil(n) {
				c.items = append(c.items, child{node: n})
			}
		}
		return c, true
	}
	return child{}, false
}

func isNodeType(t reflect.Type) bool {
	return t.Implements(nodeType) || (t.Kind() == reflect.Interface && nodeType.Implements(t))
}

func isNil(node ast.Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// fieldName returns the json name of a field, or "" when the field is
// hidden from the dump.
func fieldName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}
