package parser

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// showIn parses an optional FROM|IN namespace.
func (p *Parser) showIn() *ast.Identifier {
	if p.accept(token.FROM) || p.accept(token.IN) {
		return p.multipartIdentifier()
	}
	return nil
}

// showPattern parses an optional [LIKE] 'pattern'.
func (p *Parser) showPattern() *string {
	if p.accept(token.LIKE) {
		s := p.stringValue()
		return &s
	}
	return p.optString()
}

func (p *Parser) showNamespaces() ast.Statement {
	stmt := &ast.ShowNamespaces{Position: p.expect(token.SHOW).Pos}
	if !p.at(token.DATABASES, token.NAMESPACES) {
		p.unexpected("DATABASES", "NAMESPACES")
	}
	stmt.Keyword = keywordText(p.next())
	stmt.In = p.showIn()
	stmt.Pattern = p.showPattern()
	return stmt
}

func (p *Parser) showTables() ast.Statement {
	stmt := &ast.ShowTables{Position: p.expect(token.SHOW).Pos}
	p.expect(token.TABLES)
	stmt.In = p.showIn()
	stmt.Pattern = p.showPattern()
	return stmt
}

// showTableExtended parses SHOW TABLE EXTENDED [FROM|IN ns] LIKE 'pattern'
// [PARTITION (...)].
func (p *Parser) showTableExtended() ast.Statement {
	stmt := &ast.ShowTableExtended{Position: p.expect(token.SHOW).Pos}
	p.expectSeq(token.TABLE, token.EXTENDED)
	stmt.In = p.showIn()
	p.expect(token.LIKE)
	stmt.Pattern = p.stringValue()
	stmt.Partition = p.optPartitionSpec()
	return stmt
}

func (p *Parser) showTblProperties() ast.Statement {
	stmt := &ast.ShowTblProperties{Position: p.expect(token.SHOW).Pos}
	p.expect(token.TBLPROPERTIES)
	stmt.Table = p.multipartIdentifier()
	if p.accept(token.LPAREN) {
		stmt.Key = p.propertyKey()
		p.expect(token.RPAREN)
	}
	return stmt
}

func (p *Parser) showColumns() ast.Statement {
	stmt := &ast.ShowColumns{Position: p.expect(token.SHOW).Pos}
	p.expect(token.COLUMNS)
	if !p.accept(token.FROM) && !p.accept(token.IN) {
		p.unexpected("FROM", "IN")
	}
	stmt.Table = p.multipartIdentifier()
	stmt.In = p.showIn()
	return stmt
}

func (p *Parser) showViews() ast.Statement {
	stmt := &ast.ShowViews{Position: p.expect(token.SHOW).Pos}
	p.expect(token.VIEWS)
	stmt.In = p.showIn()
	stmt.Pattern = p.showPattern()
	return stmt
}

func (p *Parser) showPartitions() ast.Statement {
	stmt := &ast.ShowPartitions{Position: p.expect(token.SHOW).Pos}
	p.expect(token.PARTITIONS)
	stmt.Table = p.multipartIdentifier()
	stmt.Partition = p.optPartitionSpec()
	return stmt
}

var functionScopes = map[string]bool{"USER": true, "SYSTEM": true, "ALL": true}

// showFunctions parses SHOW [USER|SYSTEM|ALL] FUNCTIONS [[LIKE] name|'pattern'].
func (p *Parser) showFunctions() ast.Statement {
	stmt := &ast.ShowFunctions{Position: p.expect(token.SHOW).Pos}
	if !p.at(token.FUNCTIONS) {
		item := p.next()
		if !functionScopes[strings.ToUpper(item.Value)] {
			p.failf(CodeInvalidStatement, item.Pos, "SHOW %s FUNCTIONS not supported", item.Value)
		}
		stmt.Scope = &ast.Identifier{Position: item.Pos, Parts: []string{item.Value}, Quoted: []bool{item.Quoted}}
	}
	p.expect(token.FUNCTIONS)
	p.accept(token.LIKE)
	switch {
	case p.at(token.STRING):
		s := p.stringValue()
		stmt.Pattern = &s
	case p.atIdentifier(0):
		stmt.Name = p.multipartIdentifier()
	}
	return stmt
}

func (p *Parser) showCreateTable() ast.Statement {
	stmt := &ast.ShowCreateTable{Position: p.expect(token.SHOW).Pos}
	p.expectSeq(token.CREATE, token.TABLE)
	stmt.Table = p.multipartIdentifier()
	stmt.AsSerde = p.acceptSeq(token.AS, token.SERDE)
	return stmt
}

func (p *Parser) showCurrentNamespace() ast.Statement {
	stmt := &ast.ShowCurrentNamespace{Position: p.expect(token.SHOW).Pos}
	p.expectSeq(token.CURRENT, token.NAMESPACE)
	return stmt
}

// -----------------------------------------------------------------------------
// DESCRIBE

func (p *Parser) describeKeyword() token.Position {
	if !p.at(token.DESC, token.DESCRIBE) {
		p.unexpected("DESC", "DESCRIBE")
	}
	return p.next().Pos
}

// operatorNames are the symbols DESCRIBE FUNCTION accepts in place of a
// function name.
var operatorNames = map[token.Token]bool{
	token.EQ: true, token.NSEQ: true, token.NEQ: true, token.NEQJ: true,
	token.LT: true, token.LTE: true, token.GT: true, token.GTE: true,
	token.PLUS: true, token.MINUS: true, token.ASTERISK: true, token.SLASH: true,
	token.PERCENT: true, token.DIV: true, token.TILDE: true, token.AMPERSAND: true,
	token.PIPE: true, token.CONCAT_PIPE: true, token.HAT: true,
	token.OR: true, token.AND: true, token.IN: true, token.NOT: true,
}

// describeFunction parses DESCRIBE FUNCTION [EXTENDED] name, where name is
// a qualified name, a string or an operator.
func (p *Parser) describeFunction() ast.Statement {
	stmt := &ast.DescribeFunction{Position: p.describeKeyword()}
	p.expect(token.FUNCTION)
	stmt.Extended = p.accept(token.EXTENDED)
	switch item := p.peek(); {
	case item.Token == token.STRING:
		stmt.Name = p.stringValue()
		stmt.StringName = true
	case operatorNames[item.Token]:
		p.next()
		stmt.Name = item.Value
	default:
		stmt.Name = p.qualifiedName().Name()
	}
	return stmt
}

func (p *Parser) describeNamespace() ast.Statement {
	stmt := &ast.DescribeNamespace{Position: p.describeKeyword()}
	stmt.Kind = p.namespaceKind()
	stmt.Extended = p.accept(token.EXTENDED)
	stmt.Name = p.multipartIdentifier()
	return stmt
}

// describeRelation parses DESCRIBE [TABLE] [EXTENDED|FORMATTED] name
// [PARTITION (...)] [column].
func (p *Parser) describeRelation() ast.Statement {
	stmt := &ast.DescribeRelation{Position: p.describeKeyword()}
	p.accept(token.TABLE)
	if p.at(token.EXTENDED, token.FORMATTED) && p.atIdentifier(1) {
		stmt.Option = keywordText(p.next())
	}
	stmt.Table = p.multipartIdentifier()
	stmt.Partition = p.optPartitionSpec()
	if p.atIdentifier(0) {
		stmt.Column = p.qualifiedName()
	}
	return stmt
}

func (p *Parser) describeQuery() ast.Statement {
	stmt := &ast.DescribeQuery{Position: p.describeKeyword()}
	p.accept(token.QUERY)
	stmt.Query = p.query()
	return stmt
}

// -----------------------------------------------------------------------------
// COMMENT ON

// commentValue parses the STRING or NULL after IS.
func (p *Parser) commentValue() *string {
	p.expect(token.IS)
	if p.accept(token.NULL) {
		return nil
	}
	s := p.stringValue()
	return &s
}

func (p *Parser) commentNamespace() ast.Statement {
	stmt := &ast.CommentNamespace{Position: p.expect(token.COMMENT).Pos}
	p.expect(token.ON)
	stmt.Kind = p.namespaceKind()
	stmt.Name = p.multipartIdentifier()
	stmt.Comment = p.commentValue()
	return stmt
}

func (p *Parser) commentTable() ast.Statement {
	stmt := &ast.CommentTable{Position: p.expect(token.COMMENT).Pos}
	p.expectSeq(token.ON, token.TABLE)
	stmt.Name = p.multipartIdentifier()
	stmt.Comment = p.commentValue()
	return stmt
}
