package parser

import (
	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// atQueryStart reports whether a query starts n tokens ahead.
func (p *Parser) atQueryStart(n int) bool {
	switch p.peekTok(n) {
	case token.SELECT, token.WITH, token.VALUES, token.FROM, token.MAP, token.REDUCE:
		return true
	case token.TABLE:
		return p.atIdentifier(n + 1)
	case token.LPAREN:
		return p.atQueryStart(n + 1)
	}
	return false
}

// query parses [WITH ...] term [organization].
func (p *Parser) query() *ast.Query {
	q := &ast.Query{Position: p.peek().Pos}
	if p.at(token.WITH) {
		q.With = p.ctes()
	}
	q.Body = p.queryTerm(1)
	p.queryOrganization(q)
	return q
}

func (p *Parser) ctes() []*ast.CTE {
	p.expect(token.WITH)
	ctes := []*ast.CTE{p.namedQuery()}
	for p.accept(token.COMMA) {
		ctes = append(ctes, p.namedQuery())
	}
	return ctes
}

func (p *Parser) namedQuery() *ast.CTE {
	cte := &ast.CTE{Position: p.peek().Pos, Name: p.errorCapturingIdentifier()}
	if p.atIdentifierList(0) {
		cte.Columns = p.identifierList()
	}
	p.accept(token.AS)
	p.expect(token.LPAREN)
	cte.Query = p.query()
	p.expect(token.RPAREN)
	return cte
}

// setOperator returns the operator at the next token and its binding
// strength, or 0 if there is none.
func (p *Parser) setOperator() (ast.SetOperator, int) {
	var op ast.SetOperator
	switch p.peekTok(0) {
	case token.UNION:
		op = ast.SetUnion
	case token.EXCEPT:
		op = ast.SetExcept
	case token.SETMINUS:
		op = ast.SetMinus
	case token.INTERSECT:
		op = ast.SetIntersect
		if !p.cfg.LegacySetOpsPrecedence {
			return op, 2
		}
	default:
		return "", 0
	}
	return op, 1
}

// queryTerm parses set operations binding at least as strongly as minPrec.
// Operators of equal strength associate to the left.
func (p *Parser) queryTerm(minPrec int) ast.QueryTerm {
	left := p.queryPrimary()
	for {
		op, prec := p.setOperator()
		if prec == 0 || prec < minPrec {
			return left
		}
		setOp := &ast.SetOperation{Position: p.next().Pos, Op: op, Left: left}
		if p.at(token.DISTINCT, token.ALL) {
			setOp.Quantifier = keywordText(p.next())
		}
		setOp.Right = p.queryTerm(prec + 1)
		left = setOp
	}
}

func (p *Parser) queryPrimary() ast.QueryTerm {
	switch p.peekTok(0) {
	case token.SELECT, token.MAP, token.REDUCE:
		return p.querySpecification()
	case token.FROM:
		return p.fromQuery()
	case token.TABLE:
		t := &ast.TableQuery{Position: p.next().Pos}
		t.Name = p.multipartIdentifier()
		return t
	case token.VALUES:
		return p.inlineTable()
	case token.LPAREN:
		p.next()
		q := p.query()
		p.expect(token.RPAREN)
		return q
	}
	p.unexpected("'('", "FROM", "MAP", "REDUCE", "SELECT", "TABLE", "VALUES", "WITH")
	return nil
}

// atTransform reports whether a TRANSFORM, MAP or REDUCE clause is next.
func (p *Parser) atTransform() bool {
	switch p.peekTok(0) {
	case token.MAP, token.REDUCE:
		return true
	case token.SELECT:
		return p.peekTok(1) == token.TRANSFORM && p.peekTok(2) == token.LPAREN
	}
	return false
}

// querySpecification parses a SELECT block, or a script transform, with
// its own FROM clause.
func (p *Parser) querySpecification() *ast.QuerySpecification {
	spec := p.selectBody()
	if spec.Transform != nil {
		if p.at(token.FROM) {
			spec.From = p.fromClause()
		}
		if p.accept(token.WHERE) {
			spec.Where = p.booleanExpression()
		}
		return spec
	}
	if p.at(token.FROM) {
		spec.From = p.fromClause()
	}
	p.selectTail(spec)
	return spec
}

// selectBody parses the projection part of a query block.
func (p *Parser) selectBody() *ast.QuerySpecification {
	spec := &ast.QuerySpecification{Position: p.peek().Pos}
	if p.atTransform() {
		spec.Transform = p.transformClause()
		return spec
	}
	p.expect(token.SELECT)
	spec.Hints = p.hints()
	switch p.peekTok(0) {
	case token.DISTINCT:
		spec.Quantifier = keywordText(p.next())
	case token.ALL:
		switch p.peekTok(1) {
		case token.COMMA, token.FROM, token.DOT, token.EOF, token.SEMICOLON:
		default:
			spec.Quantifier = keywordText(p.next())
		}
	}
	spec.Columns = p.namedExpressionList()
	return spec
}

// selectTail parses WHERE, GROUP BY, HAVING and WINDOW of a SELECT block.
func (p *Parser) selectTail(spec *ast.QuerySpecification) {
	if p.accept(token.WHERE) {
		spec.Where = p.booleanExpression()
	}
	if p.at(token.GROUP) {
		spec.GroupBy = p.groupBy()
	}
	if p.accept(token.HAVING) {
		spec.Having = p.booleanExpression()
	}
	if p.at(token.WINDOW) {
		spec.Windows = p.windowClause()
	}
}

func (p *Parser) hints() []*ast.Hint {
	var hints []*ast.Hint
	for p.accept(token.HINT_START) {
		for !p.at(token.HINT_END) {
			h := &ast.Hint{Position: p.peek().Pos, Name: p.identifier()}
			if p.accept(token.LPAREN) {
				h.Params = []ast.Expression{p.primary()}
				for p.accept(token.COMMA) {
					h.Params = append(h.Params, p.primary())
				}
				p.expect(token.RPAREN)
			}
			hints = append(hints, h)
			p.accept(token.COMMA)
		}
		p.expect(token.HINT_END)
	}
	return hints
}

func (p *Parser) transformClause() *ast.TransformClause {
	t := &ast.TransformClause{Position: p.peek().Pos}
	if p.accept(token.SELECT) {
		p.expect(token.TRANSFORM)
		t.Kind = "TRANSFORM"
		p.expect(token.LPAREN)
		t.Exprs = p.namedExpressionList()
		p.expect(token.RPAREN)
	} else {
		t.Kind = keywordText(p.next())
		t.Exprs = p.namedExpressionList()
	}
	if p.at(token.ROW) {
		t.InRowFormat = p.rowFormat()
	}
	if p.accept(token.RECORDWRITER) {
		t.RecordWriter = p.optString()
	}
	p.expect(token.USING)
	t.Script = p.stringValue()
	if p.accept(token.AS) {
		if p.accept(token.LPAREN) {
			t.AsParens = true
			p.transformColumns(t)
			p.expect(token.RPAREN)
		} else {
			p.transformColumns(t)
		}
	}
	if p.at(token.ROW) {
		t.OutRowFormat = p.rowFormat()
	}
	if p.accept(token.RECORDREADER) {
		t.RecordReader = p.optString()
	}
	return t
}

func (p *Parser) transformColumns(t *ast.TransformClause) {
	if p.try(func() { t.AsColumns = p.colTypeList() }) {
		return
	}
	t.AsNames = p.identifierSeq()
}

func (p *Parser) groupBy() *ast.GroupBy {
	g := &ast.GroupBy{Position: p.expect(token.GROUP).Pos}
	p.expect(token.BY)
	if p.atSeq(token.GROUPING, token.SETS) {
		g.Kind = ast.GroupingSets
		g.Sets = p.groupingSets()
		return g
	}
	g.Exprs = p.expressionList()
	switch {
	case p.acceptSeq(token.WITH, token.ROLLUP):
		g.Kind = ast.GroupingRollup
	case p.acceptSeq(token.WITH, token.CUBE):
		g.Kind = ast.GroupingCube
	case p.atSeq(token.GROUPING, token.SETS):
		g.Kind = ast.GroupingSets
		g.Sets = p.groupingSets()
	}
	return g
}

// groupingSets parses GROUPING SETS (set, ...), where a set is an
// expression or a parenthesized, possibly empty, expression list.
func (p *Parser) groupingSets() [][]ast.Expression {
	p.expectSeq(token.GROUPING, token.SETS, token.LPAREN)
	sets := [][]ast.Expression{p.groupingSet()}
	for p.accept(token.COMMA) {
		sets = append(sets, p.groupingSet())
	}
	p.expect(token.RPAREN)
	return sets
}

func (p *Parser) groupingSet() []ast.Expression {
	if p.at(token.LPAREN) {
		var set []ast.Expression
		if p.try(func() {
			p.next()
			set = []ast.Expression{}
			if !p.at(token.RPAREN) {
				set = p.expressionList()
			}
			p.expect(token.RPAREN)
			if p.at(token.COMMA, token.RPAREN) {
				return
			}
			p.unexpected("','", "')'")
		}) {
			return set
		}
	}
	return []ast.Expression{p.booleanExpression()}
}

func (p *Parser) windowClause() []*ast.NamedWindow {
	p.expect(token.WINDOW)
	windows := []*ast.NamedWindow{p.namedWindow()}
	for p.accept(token.COMMA) {
		windows = append(windows, p.namedWindow())
	}
	return windows
}

func (p *Parser) namedWindow() *ast.NamedWindow {
	w := &ast.NamedWindow{Position: p.peek().Pos, Name: p.errorCapturingIdentifier()}
	p.expect(token.AS)
	w.Spec = p.windowSpec()
	return w
}

// queryOrganization parses ORDER BY, CLUSTER BY, DISTRIBUTE BY, SORT BY,
// WINDOW and LIMIT, in that order.
func (p *Parser) queryOrganization(q *ast.Query) {
	if p.acceptSeq(token.ORDER, token.BY) {
		q.OrderBy = p.sortItems()
	}
	if p.acceptSeq(token.CLUSTER, token.BY) {
		q.ClusterBy = p.expressionList()
	}
	if p.acceptSeq(token.DISTRIBUTE, token.BY) {
		q.DistributeBy = p.expressionList()
	}
	if p.acceptSeq(token.SORT, token.BY) {
		q.SortBy = p.sortItems()
	}
	if p.at(token.WINDOW) {
		q.Windows = p.windowClause()
	}
	if p.accept(token.LIMIT) {
		if p.accept(token.ALL) {
			q.LimitAll = true
		} else {
			q.Limit = p.booleanExpression()
		}
	}
}

// fromQuery parses FROM relations followed by one or more SELECT or
// transform bodies.
func (p *Parser) fromQuery() *ast.FromQuery {
	f := &ast.FromQuery{Position: p.peek().Pos, From: p.fromClause()}
	for {
		f.Bodies = append(f.Bodies, p.fromStatementBody())
		if !p.at(token.SELECT, token.MAP, token.REDUCE) {
			return f
		}
	}
}

// fromStatementBody parses one body of a FROM-first query.
func (p *Parser) fromStatementBody() *ast.Query {
	q := &ast.Query{Position: p.peek().Pos}
	spec := p.selectBody()
	if spec.Transform != nil {
		if p.accept(token.WHERE) {
			spec.Where = p.booleanExpression()
		}
	} else {
		p.selectTail(spec)
	}
	q.Body = spec
	p.queryOrganization(q)
	return q
}
