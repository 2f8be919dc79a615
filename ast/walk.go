package ast

import "reflect"

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

// Inspect traverses the tree rooted at node in depth-first order, calling
// f for each node. If f returns false the children of that node are
// skipped. Children are visited in field declaration order.
func Inspect(node Node, f func(Node) bool) {
	if node == nil {
		return
	}
	v := reflect.ValueOf(node)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}
	if !f(node) {
		return
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		if !v.Type().Field(i).IsExported() {
			continue
		}
		walkValue(v.Field(i), f)
	}
}

func walkValue(v reflect.Value, f func(Node) bool) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return
		}
		if n, ok := v.Interface().(Node); ok {
			Inspect(n, f)
		}
	case reflect.Slice:
		elem := v.Type().Elem()
		if elem.Kind() != reflect.Slice && !elem.Implements(nodeType) && elem.Kind() != reflect.Interface {
			return
		}
		for i := 0; i < v.Len(); i++ {
			walkValue(v.Index(i), f)
		}
	}
}

// Diagnostics returns every diagnostic attached to the tree rooted at node,
// in source order of the nodes carrying them.
func Diagnostics(node Node) []*Diagnostic {
	var diags []*Diagnostic
	Inspect(node, func(n Node) bool {
		if d, ok := n.(*Diagnostic); ok {
			diags = append(diags, d)
		}
		return true
	})
	return diags
}
