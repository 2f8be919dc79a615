package parser

import (
	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// Operator precedence levels
const (
	LOWEST         = iota
	OR_PREC        // OR
	AND_PREC       // AND
	NOT_PREC       // NOT x
	PREDICATE_PREC // BETWEEN, IN, LIKE, RLIKE, IS
	COMPARE_PREC   // =, <=>, <>, !=, <, <=, >, >=
	BITOR_PREC     // |
	BITXOR_PREC    // ^
	BITAND_PREC    // &
	ADD_PREC       // +, -, ||
	MUL_PREC       // *, /, %, DIV
	UNARY_PREC     // -x, +x, ~x
)

func (p *Parser) precedence() int {
	switch p.peekTok(0) {
	case token.OR:
		return OR_PREC
	case token.AND:
		return AND_PREC
	case token.NOT:
		switch p.peekTok(1) {
		case token.BETWEEN, token.IN, token.LIKE, token.RLIKE:
			return PREDICATE_PREC
		}
		return LOWEST
	case token.BETWEEN, token.IN, token.LIKE, token.RLIKE, token.IS:
		return PREDICATE_PREC
	case token.EQ, token.NSEQ, token.NEQ, token.NEQJ, token.LT, token.LTE, token.GT, token.GTE:
		return COMPARE_PREC
	case token.PIPE:
		return BITOR_PREC
	case token.HAT:
		return BITXOR_PREC
	case token.AMPERSAND:
		return BITAND_PREC
	case token.PLUS, token.MINUS, token.CONCAT_PIPE:
		return ADD_PREC
	case token.ASTERISK, token.SLASH, token.PERCENT, token.DIV:
		return MUL_PREC
	}
	return LOWEST
}

var binaryOps = map[token.Token]ast.Operator{
	token.OR:          ast.OpOr,
	token.AND:         ast.OpAnd,
	token.EQ:          ast.OpEq,
	token.NSEQ:        ast.OpNullSafeEq,
	token.NEQ:         ast.OpNeq,
	token.NEQJ:        ast.OpNeqJ,
	token.LT:          ast.OpLt,
	token.LTE:         ast.OpLte,
	token.GT:          ast.OpGt,
	token.GTE:         ast.OpGte,
	token.PIPE:        ast.OpBitOr,
	token.HAT:         ast.OpBitXor,
	token.AMPERSAND:   ast.OpBitAnd,
	token.PLUS:        ast.OpAdd,
	token.MINUS:       ast.OpSub,
	token.CONCAT_PIPE: ast.OpConcat,
	token.ASTERISK:    ast.OpMul,
	token.SLASH:       ast.OpDiv,
	token.PERCENT:     ast.OpMod,
	token.DIV:         ast.OpIntDiv,
}

// expression parses an expression whose operators all bind tighter than
// precedence. A predicate may only be followed by AND or OR, and
// comparisons do not chain.
func (p *Parser) expression(precedence int) ast.Expression {
	left := p.prefix(precedence)
	ceiling := UNARY_PREC
	for {
		prec := p.precedence()
		if prec == LOWEST || prec <= precedence {
			return left
		}
		if prec > ceiling {
			if prec == COMPARE_PREC && ceiling == PREDICATE_PREC {
				p.unexpected()
			}
			return left
		}
		switch prec {
		case PREDICATE_PREC:
			left = p.predicate(left)
			ceiling = AND_PREC
		case COMPARE_PREC:
			left = p.binary(left, prec)
			if ceiling > PREDICATE_PREC {
				ceiling = PREDICATE_PREC
			}
		default:
			left = p.binary(left, prec)
		}
	}
}

func (p *Parser) binary(left ast.Expression, prec int) ast.Expression {
	op := p.next()
	right := p.expression(prec)
	return &ast.BinaryExpr{Position: op.Pos, Left: left, Op: binaryOps[op.Token], Right: right}
}

// booleanExpression parses a full condition.
func (p *Parser) booleanExpression() ast.Expression {
	return p.expression(LOWEST)
}

// valueExpression parses an operand of a predicate: arithmetic and
// comparisons, but no predicates and no boolean connectives.
func (p *Parser) valueExpression() ast.Expression {
	return p.expression(PREDICATE_PREC)
}

func (p *Parser) prefix(precedence int) ast.Expression {
	item := p.peek()
	switch item.Token {
	case token.NOT:
		if precedence > NOT_PREC {
			p.unexpected("expression")
		}
		p.next()
		operand := p.expression(NOT_PREC)
		return &ast.UnaryExpr{Position: item.Pos, Op: ast.OpNot, Operand: operand}
	case token.EXISTS:
		if precedence <= NOT_PREC && p.peekTok(1) == token.LPAREN && p.atQueryStart(2) {
			p.next()
			p.expect(token.LPAREN)
			q := p.query()
			p.expect(token.RPAREN)
			return &ast.ExistsExpr{Position: item.Pos, Query: q}
		}
	case token.MINUS, token.PLUS, token.TILDE:
		p.next()
		if item.Token == token.MINUS && p.peek().Token.IsNumeric() {
			num := p.next()
			lit := p.numberLiteral(num, true)
			lit.Position = item.Pos
			return p.postfix(lit)
		}
		op := ast.OpNeg
		switch item.Token {
		case token.PLUS:
			op = ast.OpPos
		case token.TILDE:
			op = ast.OpBitNot
		}
		operand := p.expression(UNARY_PREC)
		return &ast.UnaryExpr{Position: item.Pos, Op: op, Operand: operand}
	}
	return p.primary()
}

// predicate parses the suffix of a predicate applied to left.
func (p *Parser) predicate(left ast.Expression) ast.Expression {
	pos := p.peek().Pos
	not := p.accept(token.NOT)
	switch {
	case p.accept(token.BETWEEN):
		low := p.valueExpression()
		p.expect(token.AND)
		high := p.valueExpression()
		return &ast.BetweenExpr{Position: pos, Expr: left, Not: not, Low: low, High: high}

	case p.accept(token.IN):
		in := &ast.InExpr{Position: pos, Expr: left, Not: not}
		if p.atQueryStart(1) && p.try(func() {
			p.expect(token.LPAREN)
			in.Query = p.query()
			p.expect(token.RPAREN)
		}) {
			return in
		}
		p.expect(token.LPAREN)
		in.List = p.expressionList()
		p.expect(token.RPAREN)
		return in

	case p.accept(token.RLIKE):
		return &ast.LikeExpr{Position: pos, Expr: left, Not: not, Regex: true, Pattern: p.valueExpression()}

	case p.accept(token.LIKE):
		like := &ast.LikeExpr{Position: pos, Expr: left, Not: not}
		if p.at(token.ANY, token.SOME, token.ALL) && p.peekTok(1) == token.LPAREN {
			like.Quantifier = keywordText(p.next())
			p.expect(token.LPAREN)
			if !p.at(token.RPAREN) {
				like.Patterns = p.expressionList()
			}
			p.expect(token.RPAREN)
			return like
		}
		like.Pattern = p.valueExpression()
		if p.at(token.ESCAPE) {
			p.next()
			escPos := p.peek().Pos
			esc := p.stringValue()
			if len([]rune(esc)) != 1 {
				p.failf(CodeInvalidLiteral, escPos, "Invalid escape string. Escape string must contain only one character.")
			}
			like.Escape = &esc
		}
		return like

	case !not && p.accept(token.IS):
		is := &ast.IsExpr{Position: pos, Expr: left, Not: p.accept(token.NOT)}
		switch p.peekTok(0) {
		case token.NULL:
			is.Kind = ast.IsNull
		case token.TRUE:
			is.Kind = ast.IsTrue
		case token.FALSE:
			is.Kind = ast.IsFalse
		case token.UNKNOWN:
			is.Kind = ast.IsUnknown
		case token.DISTINCT:
			p.next()
			p.expect(token.FROM)
			is.Kind = ast.IsDistinctFrom
			is.Right = p.valueExpression()
			return is
		default:
			p.unexpected("NULL", "TRUE", "FALSE", "UNKNOWN", "DISTINCT")
		}
		p.next()
		return is
	}
	p.unexpected("BETWEEN", "IN", "LIKE", "RLIKE")
	return nil
}

// expressionList parses expression, expression, ... .
func (p *Parser) expressionList() []ast.Expression {
	exprs := []ast.Expression{p.booleanExpression()}
	for p.accept(token.COMMA) {
		exprs = append(exprs, p.booleanExpression())
	}
	return exprs
}

// namedExpression parses an expression with an optional alias.
func (p *Parser) namedExpression() ast.Expression {
	return p.alias(p.booleanExpression())
}

func (p *Parser) namedExpressionList() []ast.Expression {
	exprs := []ast.Expression{p.namedExpression()}
	for p.accept(token.COMMA) {
		exprs = append(exprs, p.namedExpression())
	}
	return exprs
}

// alias wraps expr with an alias if one follows.
func (p *Parser) alias(expr ast.Expression) ast.Expression {
	pos := p.peek().Pos
	switch {
	case p.accept(token.AS):
		if p.at(token.LPAREN) {
			return &ast.AliasedExpr{Position: pos, Expr: expr, Columns: p.identifierList()}
		}
		return &ast.AliasedExpr{Position: pos, Expr: expr, Alias: p.errorCapturingIdentifier()}
	case p.at(token.LPAREN) && p.atIdentifierList(0):
		return &ast.AliasedExpr{Position: pos, Expr: expr, Columns: p.identifierList()}
	case p.atImplicitAlias(false):
		return &ast.AliasedExpr{Position: pos, Expr: expr, Alias: p.errorCapturingIdentifier()}
	}
	return expr
}

// atIdentifierList reports whether ( identifier, ... ) starts n tokens
// ahead.
func (p *Parser) atIdentifierList(n int) bool {
	return p.identifierListLen(n) > 0
}

// identifierListLen returns the number of tokens of the ( identifier, ... )
// list that starts n tokens ahead, or 0 if there is none.
func (p *Parser) identifierListLen(n int) int {
	if p.peekTok(n) != token.LPAREN {
		return 0
	}
	i := n + 1
	for {
		if !p.atIdentifier(i) {
			return 0
		}
		i++
		switch p.peekTok(i) {
		case token.COMMA:
			i++
		case token.RPAREN:
			return i + 1 - n
		default:
			return 0
		}
	}
}

// sortItem parses expr [ASC|DESC] [NULLS FIRST|LAST].
func (p *Parser) sortItem() *ast.SortItem {
	item := &ast.SortItem{Position: p.peek().Pos, Expr: p.booleanExpression()}
	if p.at(token.ASC, token.DESC) {
		item.Ordering = keywordText(p.next())
	}
	if p.at(token.NULLS) {
		p.next()
		if !p.at(token.FIRST, token.LAST) {
			p.unexpected("FIRST", "LAST")
		}
		item.NullOrder = keywordText(p.next())
	}
	return item
}

func (p *Parser) sortItems() []*ast.SortItem {
	items := []*ast.SortItem{p.sortItem()}
	for p.accept(token.COMMA) {
		items = append(items, p.sortItem())
	}
	return items
}
