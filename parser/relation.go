package parser

import (
	"github.com/shopspring/decimal"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// fromClause parses FROM relation, ... [LATERAL VIEW ...] [PIVOT (...)].
func (p *Parser) fromClause() *ast.FromClause {
	from := &ast.FromClause{Position: p.expect(token.FROM).Pos}
	from.Relations = []ast.Relation{p.relation()}
	for p.accept(token.COMMA) {
		from.Relations = append(from.Relations, p.relation())
	}
	for p.atSeq(token.LATERAL, token.VIEW) {
		from.LateralViews = append(from.LateralViews, p.lateralView())
	}
	if p.at(token.PIVOT) {
		from.Pivot = p.pivot()
	}
	return from
}

// relation parses a primary relation followed by any number of joins.
func (p *Parser) relation() ast.Relation {
	left := p.relationPrimary()
	for {
		join := p.joinType()
		if join == nil {
			return left
		}
		join.Left = left
		join.Right = p.relationPrimary()
		if !join.Natural {
			switch {
			case p.accept(token.ON):
				join.On = p.booleanExpression()
			case p.accept(token.USING):
				join.Using = p.identifierList()
			}
		}
		left = join
	}
}

// joinType consumes a join operator up to and including JOIN.
func (p *Parser) joinType() *ast.Join {
	pos := p.peek().Pos
	n := 0
	natural := false
	if p.peekTok(0) == token.NATURAL {
		natural = true
		n++
	}
	var typ ast.JoinType
	switch p.peekTok(n) {
	case token.JOIN:
		typ = ast.JoinInner
	case token.INNER:
		typ = ast.JoinInner
		n++
	case token.CROSS:
		typ = ast.JoinCross
		n++
	case token.LEFT:
		typ = ast.JoinLeft
		n++
		switch p.peekTok(n) {
		case token.OUTER:
			n++
		case token.SEMI:
			typ = ast.JoinSemi
			n++
		case token.ANTI:
			typ = ast.JoinAnti
			n++
		}
	case token.SEMI:
		typ = ast.JoinSemi
		n++
	case token.ANTI:
		typ = ast.JoinAnti
		n++
	case token.RIGHT:
		typ = ast.JoinRight
		n++
		if p.peekTok(n) == token.OUTER {
			n++
		}
	case token.FULL:
		typ = ast.JoinFull
		n++
		if p.peekTok(n) == token.OUTER {
			n++
		}
	default:
		if natural {
			p.next()
			p.unexpected("JOIN")
		}
		return nil
	}
	if p.peekTok(n) != token.JOIN {
		if n == 0 || (n == 1 && natural) {
			return nil
		}
		for i := 0; i < n; i++ {
			p.next()
		}
		p.unexpected("JOIN")
	}
	for i := 0; i <= n; i++ {
		p.next()
	}
	return &ast.Join{Position: pos, Type: typ, Natural: natural}
}

func (p *Parser) relationPrimary() ast.Relation {
	pos := p.peek().Pos
	switch {
	case p.at(token.VALUES):
		return p.inlineTable()

	case p.at(token.LPAREN):
		if p.atQueryStart(1) {
			var q *ast.Query
			if p.try(func() {
				p.next()
				q = p.query()
				p.expect(token.RPAREN)
			}) {
				aq := &ast.AliasedQuery{Position: pos, Query: q}
				aq.Sample = p.sample()
				aq.Alias = p.tableAlias()
				return aq
			}
		}
		p.next()
		rel := &ast.AliasedRelation{Position: pos, Relation: p.relation()}
		p.expect(token.RPAREN)
		rel.Sample = p.sample()
		rel.Alias = p.tableAlias()
		return rel

	case p.isIdentifier(p.peek(), false) && p.peekTok(1) == token.LPAREN:
		fn := &ast.TableFunction{Position: pos, Name: p.errorCapturingIdentifier()}
		p.expect(token.LPAREN)
		if !p.at(token.RPAREN) {
			fn.Args = p.expressionList()
		}
		p.expect(token.RPAREN)
		fn.Alias = p.tableAlias()
		return fn
	}

	t := &ast.TableName{Position: pos, Name: p.multipartIdentifier()}
	t.Sample = p.sample()
	t.Alias = p.tableAlias()
	return t
}

// tableAlias parses [AS] name [(columns)].
func (p *Parser) tableAlias() *ast.TableAlias {
	pos := p.peek().Pos
	if !p.accept(token.AS) && !p.atImplicitAlias(true) {
		return nil
	}
	alias := &ast.TableAlias{Position: pos, Name: p.strictIdentifier()}
	if p.atIdentifierList(0) {
		alias.Columns = p.identifierList()
	}
	return alias
}

// inlineTable parses VALUES row, ... [alias].
func (p *Parser) inlineTable() *ast.InlineTable {
	t := &ast.InlineTable{Position: p.expect(token.VALUES).Pos}
	t.Rows = p.expressionList()
	t.Alias = p.tableAlias()
	return t
}

var hundred = decimal.NewFromInt(100)

// sample parses TABLESAMPLE (...) if present.
func (p *Parser) sample() *ast.Sample {
	if !p.at(token.TABLESAMPLE) {
		return nil
	}
	s := &ast.Sample{Position: p.next().Pos}
	p.expect(token.LPAREN)

	n := 0
	if p.at(token.MINUS) {
		n = 1
	}
	switch t := p.peekTok(n); {
	case (t == token.INTEGER_VALUE || t == token.DECIMAL_VALUE) && p.peekTok(n+1) == token.PERCENTLIT:
		lit := p.number()
		p.next()
		s.Kind = ast.SamplePercent
		s.Percent = lit.Raw
		fraction := p.decimal(p.peek(), lit.Raw).Div(hundred)
		if fraction.IsNegative() || fraction.GreaterThan(decimal.NewFromInt(1)) {
			p.failf(CodeInvalidLiteral, lit.Position, "Sampling fraction (%s) must be on interval [0, 1]", fraction.String())
		}

	case p.at(token.BUCKET):
		p.next()
		s.Kind = ast.SampleBucket
		s.Numerator = p.expect(token.INTEGER_VALUE).Value
		p.expectSeq(token.OUT, token.OF)
		s.Denominator = p.expect(token.INTEGER_VALUE).Value
		if p.accept(token.ON) {
			if p.peekTok(p.qualifiedNameLen(0)) == token.LPAREN {
				s.On = p.qualifiedName()
				s.OnFunction = true
				p.expectSeq(token.LPAREN, token.RPAREN)
			} else {
				s.On = p.identifier()
			}
		}

	default:
		s.Expr = p.valueExpression()
		s.Kind = ast.SampleBytes
		if p.accept(token.ROWS) {
			s.Kind = ast.SampleRows
		}
	}
	p.expect(token.RPAREN)
	return s
}

// lateralView parses LATERAL VIEW [OUTER] func(args) table [AS] columns.
func (p *Parser) lateralView() *ast.LateralView {
	lv := &ast.LateralView{Position: p.next().Pos}
	p.expect(token.VIEW)
	lv.Outer = p.accept(token.OUTER)
	lv.Function = p.qualifiedName()
	p.expect(token.LPAREN)
	if !p.at(token.RPAREN) {
		lv.Args = p.expressionList()
	}
	p.expect(token.RPAREN)
	lv.Table = p.identifier()
	if p.accept(token.AS) || p.atImplicitAlias(false) {
		lv.Columns = []*ast.Identifier{p.identifier()}
		for p.accept(token.COMMA) {
			lv.Columns = append(lv.Columns, p.identifier())
		}
	}
	return lv
}

// pivot parses PIVOT (aggregates FOR column(s) IN (values)).
func (p *Parser) pivot() *ast.Pivot {
	pv := &ast.Pivot{Position: p.expect(token.PIVOT).Pos}
	p.expect(token.LPAREN)
	pv.Aggregates = p.namedExpressionList()
	p.expect(token.FOR)
	if p.at(token.LPAREN) {
		pv.Columns = p.identifierList()
	} else {
		pv.Columns = []*ast.Identifier{p.identifier()}
	}
	p.expectSeq(token.IN, token.LPAREN)
	pv.Values = []ast.Expression{p.pivotValue()}
	for p.accept(token.COMMA) {
		pv.Values = append(pv.Values, p.pivotValue())
	}
	p.expectSeq(token.RPAREN, token.RPAREN)
	return pv
}

func (p *Parser) pivotValue() ast.Expression {
	expr := p.booleanExpression()
	pos := p.peek().Pos
	if p.accept(token.AS) || p.atImplicitAlias(false) {
		return &ast.AliasedExpr{Position: pos, Expr: expr, Alias: p.identifier()}
	}
	return expr
}
