package parser

import (
	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// queryStatement parses a query, an INSERT with leading CTEs or a FROM-first
// multi-insert.
func (p *Parser) queryStatement() ast.Statement {
	pos := p.peek().Pos
	var with []*ast.CTE
	if p.at(token.WITH) {
		with = p.ctes()
	}
	switch {
	case p.at(token.INSERT):
		return p.insertBody(pos, with)
	case p.at(token.FROM):
		var from *ast.FromClause
		if p.try(func() {
			from = p.fromClause()
			if !p.at(token.INSERT) {
				p.unexpected("INSERT")
			}
		}) {
			return p.multiInsert(pos, with, from)
		}
	}
	q := &ast.Query{Position: pos, With: with}
	q.Body = p.queryTerm(1)
	p.queryOrganization(q)
	return q
}

func (p *Parser) insertStatement() ast.Statement {
	return p.insertBody(p.peek().Pos, nil)
}

func (p *Parser) insertBody(pos token.Position, with []*ast.CTE) *ast.InsertStatement {
	stmt := &ast.InsertStatement{Position: pos, With: with, Target: p.insertTarget()}
	q := &ast.Query{Position: p.peek().Pos}
	q.Body = p.queryTerm(1)
	p.queryOrganization(q)
	stmt.Query = q
	return stmt
}

// insertTarget parses INSERT INTO|OVERWRITE up to the query.
func (p *Parser) insertTarget() *ast.InsertTarget {
	t := &ast.InsertTarget{Position: p.expect(token.INSERT).Pos}
	if p.accept(token.INTO) {
		t.Kind = ast.InsertInto
		p.accept(token.TABLE)
		t.Table = p.multipartIdentifier()
		t.Partition = p.optPartitionSpec()
		t.IfNotExists = p.acceptIfNotExists()
		return t
	}
	p.expect(token.OVERWRITE)

	if p.at(token.LOCAL, token.DIRECTORY) {
		t.Local = p.accept(token.LOCAL)
		p.expect(token.DIRECTORY)
		t.Path = p.optString()
		if p.accept(token.USING) {
			t.Kind = ast.InsertOverwriteDir
			t.Provider = p.multipartIdentifier()
			if p.accept(token.OPTIONS) {
				t.Options = p.propertyList()
			}
			return t
		}
		if t.Path == nil {
			p.unexpected("STRING", "USING")
		}
		t.Kind = ast.InsertOverwriteHiveDir
		if p.at(token.ROW) {
			t.RowFormat = p.rowFormat()
		}
		if p.at(token.STORED) {
			t.FileFormat = p.fileFormat()
		}
		return t
	}

	t.Kind = ast.InsertOverwrite
	p.accept(token.TABLE)
	t.Table = p.multipartIdentifier()
	if t.Partition = p.optPartitionSpec(); t.Partition != nil {
		t.IfNotExists = p.acceptIfNotExists()
	}
	return t
}

// multiInsert parses the INSERT ... SELECT arms following a FROM clause.
func (p *Parser) multiInsert(pos token.Position, with []*ast.CTE, from *ast.FromClause) *ast.MultiInsertStatement {
	stmt := &ast.MultiInsertStatement{Position: pos, With: with, From: from}
	for p.at(token.INSERT) {
		body := &ast.MultiInsertBody{Position: p.peek().Pos, Target: p.insertTarget()}
		body.Body = p.fromStatementBody()
		stmt.Bodies = append(stmt.Bodies, body)
	}
	return stmt
}

// dmlAlias parses a table alias that may not rename columns.
func (p *Parser) dmlAlias(statement string) *ast.TableAlias {
	alias := p.tableAlias()
	if alias != nil && len(alias.Columns) > 0 {
		p.failf(CodeInvalidStatement, alias.Position, "Columns aliases are not allowed in %s.", statement)
	}
	return alias
}

// deleteStatement parses DELETE FROM table [alias] [WHERE cond].
func (p *Parser) deleteStatement() ast.Statement {
	stmt := &ast.DeleteFromTable{Position: p.expect(token.DELETE).Pos}
	p.expect(token.FROM)
	stmt.Table = p.multipartIdentifier()
	stmt.Alias = p.dmlAlias("DELETE")
	if p.accept(token.WHERE) {
		stmt.Where = p.booleanExpression()
	}
	return stmt
}

// updateStatement parses UPDATE table [alias] SET assignments [WHERE cond].
func (p *Parser) updateStatement() ast.Statement {
	stmt := &ast.UpdateTable{Position: p.expect(token.UPDATE).Pos}
	stmt.Table = p.multipartIdentifier()
	stmt.Alias = p.dmlAlias("UPDATE")
	p.expect(token.SET)
	stmt.Assignments = p.assignments()
	if p.accept(token.WHERE) {
		stmt.Where = p.booleanExpression()
	}
	return stmt
}

func (p *Parser) assignments() []*ast.Assignment {
	list := []*ast.Assignment{p.assignment()}
	for p.accept(token.COMMA) {
		list = append(list, p.assignment())
	}
	return list
}

func (p *Parser) assignment() *ast.Assignment {
	a := &ast.Assignment{Position: p.peek().Pos, Column: p.multipartIdentifier()}
	p.expect(token.EQ)
	a.Value = p.booleanExpression()
	return a
}

// mergeStatement parses MERGE INTO. Every WHEN MATCHED arm must come before
// the first WHEN NOT MATCHED arm.
func (p *Parser) mergeStatement() ast.Statement {
	stmt := &ast.MergeIntoTable{Position: p.expect(token.MERGE).Pos}
	p.expect(token.INTO)
	stmt.Target = p.multipartIdentifier()
	stmt.TargetAlias = p.dmlAlias("MERGE")

	p.expect(token.USING)
	if p.at(token.LPAREN) {
		p.next()
		stmt.SourceQuery = p.query()
		p.expect(token.RPAREN)
	} else {
		stmt.SourceTable = p.multipartIdentifier()
	}
	stmt.SourceAlias = p.dmlAlias("MERGE")

	p.expect(token.ON)
	stmt.On = p.booleanExpression()

	for p.atSeq(token.WHEN, token.MATCHED) {
		stmt.Matched = append(stmt.Matched, p.matchedClause())
	}
	for p.atSeq(token.WHEN, token.NOT, token.MATCHED) {
		stmt.NotMatched = append(stmt.NotMatched, p.notMatchedClause())
	}
	if len(stmt.Matched)+len(stmt.NotMatched) == 0 {
		p.failf(CodeInvalidStatement, stmt.Position, "There must be at least one WHEN clause in a MERGE statement")
	}
	for i, a := range stmt.Matched {
		if a.Condition == nil && i < len(stmt.Matched)-1 {
			p.failf(CodeInvalidStatement, a.Position,
				"When there are more than one MATCHED clauses in a MERGE statement, only the last MATCHED clause can omit the condition.")
		}
	}
	for i, a := range stmt.NotMatched {
		if a.Condition == nil && i < len(stmt.NotMatched)-1 {
			p.failf(CodeInvalidStatement, a.Position,
				"When there are more than one NOT MATCHED clauses in a MERGE statement, only the last NOT MATCHED clause can omit the condition.")
		}
	}
	return stmt
}

func (p *Parser) matchedClause() *ast.MergeAction {
	a := &ast.MergeAction{Position: p.peek().Pos}
	p.expectSeq(token.WHEN, token.MATCHED)
	if p.accept(token.AND) {
		a.Condition = p.booleanExpression()
	}
	p.expect(token.THEN)
	switch {
	case p.accept(token.DELETE):
		a.Kind = ast.MergeDelete
	case p.accept(token.UPDATE):
		p.expect(token.SET)
		if p.accept(token.ASTERISK) {
			a.Kind = ast.MergeUpdateStar
		} else {
			a.Kind = ast.MergeUpdate
			a.Assignments = p.assignments()
		}
	default:
		p.unexpected("DELETE", "UPDATE")
	}
	return a
}

func (p *Parser) notMatchedClause() *ast.MergeAction {
	a := &ast.MergeAction{Position: p.peek().Pos}
	p.expectSeq(token.WHEN, token.NOT, token.MATCHED)
	if p.accept(token.AND) {
		a.Condition = p.booleanExpression()
	}
	p.expectSeq(token.THEN, token.INSERT)
	if p.accept(token.ASTERISK) {
		a.Kind = ast.MergeInsertStar
		return a
	}
	a.Kind = ast.MergeInsert
	p.expect(token.LPAREN)
	a.Columns = p.multipartIdentifierList()
	p.expect(token.RPAREN)
	p.expectSeq(token.VALUES, token.LPAREN)
	a.Values = p.expressionList()
	p.expect(token.RPAREN)
	return a
}
