package parser

import (
	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

func (p *Parser) primary() ast.Expression {
	return p.postfix(p.primaryBase())
}

// postfix applies .field, .* and [index] to expr. A field of a column
// reference extends its name.
func (p *Parser) postfix(expr ast.Expression) ast.Expression {
	for {
		switch p.peekTok(0) {
		case token.DOT:
			if p.peekTok(1) == token.ASTERISK {
				id, ok := expr.(*ast.Identifier)
				if !ok {
					return expr
				}
				p.next()
				p.next()
				return &ast.Star{Position: id.Position, Target: id}
			}
			pos := p.next().Pos
			field := p.identifierPart(false)
			if id, ok := expr.(*ast.Identifier); ok {
				id.Parts = append(id.Parts, field.Value)
				id.Quoted = append(id.Quoted, field.Quoted)
				continue
			}
			expr = &ast.Dereference{
				Position: pos,
				Base:     expr,
				Field:    &ast.Identifier{Position: field.Pos, Parts: []string{field.Value}, Quoted: []bool{field.Quoted}},
			}
		case token.LBRACKET:
			pos := p.next().Pos
			index := p.booleanExpression()
			p.expect(token.RBRACKET)
			expr = &ast.Subscript{Position: pos, Base: expr, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) primaryBase() ast.Expression {
	item := p.peek()
	switch item.Token {
	case token.STRING:
		return p.stringLiteral()
	case token.NULL:
		p.next()
		return &ast.Literal{Position: item.Pos, Type: ast.LiteralNull}
	case token.TRUE, token.FALSE:
		p.next()
		return &ast.Literal{Position: item.Pos, Type: ast.LiteralBoolean, Value: item.Token == token.TRUE}
	case token.ASTERISK:
		p.next()
		return &ast.Star{Position: item.Pos}
	case token.LPAREN:
		return p.parenExpression()
	case token.CASE:
		return p.caseExpression()
	case token.CAST:
		if p.peekTok(1) == token.LPAREN {
			return p.castExpression()
		}
	case token.STRUCT:
		if p.peekTok(1) == token.LPAREN {
			return p.structExpression()
		}
	case token.EXTRACT, token.SUBSTR, token.SUBSTRING, token.TRIM, token.OVERLAY, token.POSITION,
		token.FIRST, token.LAST:
		if p.peekTok(1) == token.LPAREN {
			var expr ast.Expression
			if p.try(func() { expr = p.specialForm(item.Token) }) {
				return expr
			}
		}
	case token.CURRENT_DATE, token.CURRENT_TIMESTAMP:
		if p.peekTok(1) != token.LPAREN || !p.isIdentifier(item, false) {
			p.next()
			return &ast.CurrentDatetime{Position: item.Pos, Name: keywordText(item)}
		}
	case token.INTERVAL:
		if p.atInterval() {
			return p.interval()
		}
	}

	if item.Token.IsNumeric() {
		p.next()
		return p.numberLiteral(item, false)
	}
	if !p.isIdentifier(item, false) {
		p.unexpected("expression")
	}
	switch p.peekTok(1) {
	case token.STRING:
		return p.typedLiteral()
	case token.ARROW:
		param := p.identifier()
		p.expect(token.ARROW)
		return &ast.Lambda{Position: item.Pos, Params: []*ast.Identifier{param}, Body: p.booleanExpression()}
	}
	if p.peekTok(p.qualifiedNameLen(0)) == token.LPAREN {
		return p.functionCall(p.qualifiedName())
	}
	return p.identifier()
}

// qualifiedNameLen returns the number of tokens of the dotted name that
// starts n tokens ahead.
func (p *Parser) qualifiedNameLen(n int) int {
	l := 1
	for p.peekTok(n+l) == token.DOT && p.atIdentifier(n+l+1) {
		l += 2
	}
	return l
}

// parenExpression parses a lambda with a parameter list, a scalar
// subquery, a row constructor or a parenthesized expression.
func (p *Parser) parenExpression() ast.Expression {
	pos := p.peek().Pos
	if l := p.identifierListLen(0); l > 0 && p.peekTok(l) == token.ARROW {
		params := p.identifierList()
		p.expect(token.ARROW)
		return &ast.Lambda{Position: pos, Params: params, Body: p.booleanExpression()}
	}
	if p.atQueryStart(1) {
		var q *ast.Query
		if p.try(func() {
			p.expect(token.LPAREN)
			q = p.query()
			p.expect(token.RPAREN)
		}) {
			return &ast.Subquery{Position: pos, Query: q}
		}
	}

	p.expect(token.LPAREN)
	first := p.booleanExpression()
	if p.accept(token.RPAREN) {
		return first
	}
	row := &ast.RowExpr{Position: pos, Items: []ast.Expression{p.alias(first)}}
	if !p.at(token.COMMA) {
		p.unexpected("','", "')'")
	}
	for p.accept(token.COMMA) {
		row.Items = append(row.Items, p.namedExpression())
	}
	p.expect(token.RPAREN)
	return row
}

func (p *Parser) caseExpression() ast.Expression {
	c := &ast.CaseExpr{Position: p.expect(token.CASE).Pos}
	if !p.at(token.WHEN) {
		c.Operand = p.booleanExpression()
	}
	if !p.at(token.WHEN) {
		p.unexpected("WHEN")
	}
	for p.at(token.WHEN) {
		w := &ast.WhenClause{Position: p.next().Pos}
		w.Condition = p.booleanExpression()
		p.expect(token.THEN)
		w.Result = p.booleanExpression()
		c.Whens = append(c.Whens, w)
	}
	if p.accept(token.ELSE) {
		c.Else = p.booleanExpression()
	}
	p.expect(token.END)
	return c
}

func (p *Parser) castExpression() ast.Expression {
	c := &ast.CastExpr{Position: p.expect(token.CAST).Pos}
	p.expect(token.LPAREN)
	c.Expr = p.booleanExpression()
	p.expect(token.AS)
	c.Type = p.dataType()
	p.expect(token.RPAREN)
	return c
}

func (p *Parser) structExpression() ast.Expression {
	s := &ast.StructExpr{Position: p.expect(token.STRUCT).Pos}
	p.expect(token.LPAREN)
	if !p.at(token.RPAREN) {
		s.Fields = p.namedExpressionList()
	}
	p.expect(token.RPAREN)
	return s
}

// specialForm parses the keyword argument syntax of EXTRACT, SUBSTRING,
// TRIM, OVERLAY, POSITION, FIRST and LAST. The caller falls back to a plain
// function call when it fails.
func (p *Parser) specialForm(tok token.Token) ast.Expression {
	start := p.next()
	p.expect(token.LPAREN)
	var expr ast.Expression
	switch tok {
	case token.EXTRACT:
		field := p.identifier()
		p.expect(token.FROM)
		expr = &ast.ExtractExpr{Position: start.Pos, Field: field, Source: p.valueExpression()}

	case token.SUBSTR, token.SUBSTRING:
		s := &ast.SubstringExpr{Position: start.Pos, Str: p.valueExpression()}
		if !p.accept(token.FROM) {
			p.expect(token.COMMA)
		}
		s.Start = p.valueExpression()
		if p.accept(token.FOR) || p.accept(token.COMMA) {
			s.Length = p.valueExpression()
		}
		expr = s

	case token.TRIM:
		t := &ast.TrimExpr{Position: start.Pos}
		if p.at(token.BOTH, token.LEADING, token.TRAILING) {
			t.Option = keywordText(p.next())
		}
		if !p.at(token.FROM) {
			t.Chars = p.valueExpression()
		}
		p.expect(token.FROM)
		t.Source = p.valueExpression()
		expr = t

	case token.OVERLAY:
		o := &ast.OverlayExpr{Position: start.Pos, Input: p.valueExpression()}
		p.expect(token.PLACING)
		o.Replace = p.valueExpression()
		p.expect(token.FROM)
		o.Start = p.valueExpression()
		if p.accept(token.FOR) {
			o.Length = p.valueExpression()
		}
		expr = o

	case token.POSITION:
		pe := &ast.PositionExpr{Position: start.Pos, Substr: p.valueExpression()}
		p.expect(token.IN)
		pe.Str = p.valueExpression()
		expr = pe

	case token.FIRST, token.LAST:
		fn := &ast.FunctionCall{
			Position: start.Pos,
			Name:     &ast.Identifier{Position: start.Pos, Parts: []string{start.Value}, Quoted: []bool{false}},
			Args:     []ast.Expression{p.booleanExpression()},
		}
		fn.IgnoreNulls = p.acceptSeq(token.IGNORE, token.NULLS)
		p.expect(token.RPAREN)
		p.functionTail(fn)
		return fn
	}
	p.expect(token.RPAREN)
	return expr
}

// functionCall parses the argument list and trailing clauses of a call to
// name.
func (p *Parser) functionCall(name *ast.Identifier) ast.Expression {
	fn := &ast.FunctionCall{Position: name.Position, Name: name}
	p.expect(token.LPAREN)
	if !p.at(token.RPAREN) {
		switch p.peekTok(0) {
		case token.DISTINCT:
			fn.Quantifier = keywordText(p.next())
		case token.ALL:
			switch p.peekTok(1) {
			case token.RPAREN, token.COMMA, token.DOT:
			default:
				fn.Quantifier = keywordText(p.next())
			}
		}
		fn.Args = p.expressionList()
	}
	p.expect(token.RPAREN)
	p.functionTail(fn)
	return fn
}

// functionTail parses FILTER (WHERE ...) and OVER window.
func (p *Parser) functionTail(fn *ast.FunctionCall) {
	if p.at(token.FILTER) && p.peekTok(1) == token.LPAREN {
		p.next()
		p.expect(token.LPAREN)
		p.expect(token.WHERE)
		fn.Filter = p.booleanExpression()
		p.expect(token.RPAREN)
	}
	if p.at(token.OVER) && (p.peekTok(1) == token.LPAREN || p.atIdentifier(1)) {
		p.next()
		fn.Over = p.windowSpec()
	}
}

// windowSpec parses a window name, (name) or an inline definition.
func (p *Parser) windowSpec() *ast.WindowSpec {
	spec := &ast.WindowSpec{Position: p.peek().Pos}
	if !p.at(token.LPAREN) {
		spec.Ref = p.errorCapturingIdentifier()
		return spec
	}
	if p.atIdentifier(1) && p.peekTok(2) == token.RPAREN {
		p.next()
		spec.Ref = p.errorCapturingIdentifier()
		spec.ParenRef = true
		p.expect(token.RPAREN)
		return spec
	}

	p.expect(token.LPAREN)
	if p.acceptSeq(token.CLUSTER, token.BY) {
		spec.ClusterBy = p.expressionList()
	} else {
		if p.at(token.PARTITION, token.DISTRIBUTE) && p.peekTok(1) == token.BY {
			p.next()
			p.next()
			spec.PartitionBy = p.expressionList()
		}
		if p.at(token.ORDER, token.SORT) && p.peekTok(1) == token.BY {
			p.next()
			p.next()
			spec.OrderBy = p.sortItems()
		}
	}
	if p.at(token.ROWS, token.RANGE) {
		spec.Frame = p.windowFrame()
	}
	p.expect(token.RPAREN)
	return spec
}

func (p *Parser) windowFrame() *ast.WindowFrame {
	item := p.next()
	frame := &ast.WindowFrame{Position: item.Pos, Type: keywordText(item)}
	if p.accept(token.BETWEEN) {
		frame.From = p.frameBound()
		p.expect(token.AND)
		frame.To = p.frameBound()
		return frame
	}
	frame.From = p.frameBound()
	return frame
}

func (p *Parser) frameBound() *ast.FrameBound {
	b := &ast.FrameBound{Position: p.peek().Pos}
	switch {
	case p.acceptSeq(token.UNBOUNDED, token.PRECEDING):
		b.Kind = ast.UnboundedPreceding
	case p.acceptSeq(token.UNBOUNDED, token.FOLLOWING):
		b.Kind = ast.UnboundedFollowing
	case p.acceptSeq(token.CURRENT, token.ROW):
		b.Kind = ast.CurrentRow
	default:
		b.Expr = p.valueExpression()
		switch {
		case p.accept(token.PRECEDING):
			b.Kind = ast.Preceding
		case p.accept(token.FOLLOWING):
			b.Kind = ast.Following
		default:
			p.unexpected("PRECEDING", "FOLLOWING")
		}
	}
	return b
}
