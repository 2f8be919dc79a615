package parser

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// primitiveTypes maps the accepted primitive type names to the number of
// parameters they may take.
var primitiveTypes = map[string][2]int{
	"BOOLEAN":   {0, 0},
	"TINYINT":   {0, 0},
	"BYTE":      {0, 0},
	"SMALLINT":  {0, 0},
	"SHORT":     {0, 0},
	"INT":       {0, 0},
	"INTEGER":   {0, 0},
	"BIGINT":    {0, 0},
	"LONG":      {0, 0},
	"FLOAT":     {0, 0},
	"REAL":      {0, 0},
	"DOUBLE":    {0, 0},
	"DATE":      {0, 0},
	"TIMESTAMP": {0, 0},
	"STRING":    {0, 0},
	"BINARY":    {0, 0},
	"INTERVAL":  {0, 0},
	"CHAR":      {1, 1},
	"VARCHAR":   {1, 1},
	"DECIMAL":   {0, 2},
	"DEC":       {0, 2},
	"NUMERIC":   {0, 2},
}

// dataType parses a primitive, ARRAY<t>, MAP<k, v> or STRUCT<...> type.
func (p *Parser) dataType() *ast.DataType {
	item := p.peek()
	dt := &ast.DataType{Position: item.Pos}

	switch {
	case item.Token == token.ARRAY && p.peekTok(1) == token.LT:
		p.next()
		p.next()
		dt.Name = "ARRAY"
		dt.Elem = p.dataType()
		p.expect(token.GT)
		return dt

	case item.Token == token.MAP && p.peekTok(1) == token.LT:
		p.next()
		p.next()
		dt.Name = "MAP"
		dt.Key = p.dataType()
		p.expect(token.COMMA)
		dt.Value = p.dataType()
		p.expect(token.GT)
		return dt

	case item.Token == token.STRUCT && p.peekTok(1) == token.NEQ:
		p.next()
		p.next()
		dt.Name = "STRUCT"
		return dt

	case item.Token == token.STRUCT && p.peekTok(1) == token.LT:
		p.next()
		p.next()
		dt.Name = "STRUCT"
		if !p.at(token.GT) {
			dt.Fields = []*ast.StructField{p.structField()}
			for p.accept(token.COMMA) {
				dt.Fields = append(dt.Fields, p.structField())
			}
		}
		p.expect(token.GT)
		return dt
	}

	name := p.identifierPart(false)
	dt.Name = strings.ToUpper(name.Value)
	if p.accept(token.LPAREN) {
		dt.Params = []int{p.integerValue()}
		for p.accept(token.COMMA) {
			dt.Params = append(dt.Params, p.integerValue())
		}
		p.expect(token.RPAREN)
	}
	bounds, ok := primitiveTypes[dt.Name]
	if !ok || len(dt.Params) < bounds[0] || len(dt.Params) > bounds[1] {
		p.failf(CodeUnsupportedType, name.Pos, "DataType %s is not supported.", typeText(name.Value, dt.Params))
	}
	return dt
}

func typeText(name string, params []int) string {
	if len(params) == 0 {
		return strings.ToLower(name)
	}
	parts := make([]string, len(params))
	for i, v := range params {
		parts[i] = fmt.Sprint(v)
	}
	return strings.ToLower(name) + "(" + strings.Join(parts, ",") + ")"
}

// structField parses name [:] type [NOT NULL] [COMMENT '...'].
func (p *Parser) structField() *ast.StructField {
	f := &ast.StructField{Position: p.peek().Pos, Name: p.identifier()}
	p.accept(token.COLON)
	f.Type = p.dataType()
	f.NotNull = p.acceptSeq(token.NOT, token.NULL)
	if p.at(token.COMMENT) {
		f.Comment = p.commentSpec()
	}
	return f
}

// colType parses name type [NOT NULL] [COMMENT '...'].
func (p *Parser) colType() *ast.ColumnDef {
	c := &ast.ColumnDef{Position: p.peek().Pos, Name: p.errorCapturingIdentifier()}
	c.Type = p.dataType()
	c.NotNull = p.acceptSeq(token.NOT, token.NULL)
	if p.at(token.COMMENT) {
		c.Comment = p.commentSpec()
	}
	return c
}

func (p *Parser) colTypeList() []*ast.ColumnDef {
	cols := []*ast.ColumnDef{p.colType()}
	for p.accept(token.COMMA) {
		cols = append(cols, p.colType())
	}
	return cols
}

// qualifiedColType parses a column of ALTER TABLE ADD COLUMNS.
func (p *Parser) qualifiedColType() *ast.QualifiedColumn {
	c := &ast.QualifiedColumn{Position: p.peek().Pos, Name: p.multipartIdentifier()}
	c.Type = p.dataType()
	c.NotNull = p.acceptSeq(token.NOT, token.NULL)
	if p.at(token.COMMENT) {
		c.Comment = p.commentSpec()
	}
	if p.at(token.FIRST, token.AFTER) {
		c.Place = p.colPosition()
	}
	return c
}

func (p *Parser) qualifiedColTypeList() []*ast.QualifiedColumn {
	cols := []*ast.QualifiedColumn{p.qualifiedColType()}
	for p.accept(token.COMMA) {
		cols = append(cols, p.qualifiedColType())
	}
	return cols
}

// colPosition parses FIRST or AFTER column.
func (p *Parser) colPosition() *ast.ColumnPosition {
	pos := &ast.ColumnPosition{Position: p.peek().Pos}
	if p.accept(token.FIRST) {
		pos.First = true
		return pos
	}
	p.expect(token.AFTER)
	pos.After = p.errorCapturingIdentifier()
	return pos
}
