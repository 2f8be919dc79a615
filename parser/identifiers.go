package parser

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/lexer"
	"github.com/sqlc-dev/sparksql/token"
)

// aliasStop holds the keywords that end a clause. They are never taken as
// an alias written without AS, even when the dialect allows them as names.
var aliasStop = map[token.Token]bool{
	token.FROM:        true,
	token.WHERE:       true,
	token.GROUP:       true,
	token.HAVING:      true,
	token.WINDOW:      true,
	token.ORDER:       true,
	token.SORT:        true,
	token.CLUSTER:     true,
	token.DISTRIBUTE:  true,
	token.LIMIT:       true,
	token.UNION:       true,
	token.EXCEPT:      true,
	token.SETMINUS:    true,
	token.INTERSECT:   true,
	token.LATERAL:     true,
	token.PIVOT:       true,
	token.JOIN:        true,
	token.INNER:       true,
	token.CROSS:       true,
	token.LEFT:        true,
	token.RIGHT:       true,
	token.FULL:        true,
	token.NATURAL:     true,
	token.SEMI:        true,
	token.ANTI:        true,
	token.ON:          true,
	token.USING:       true,
	token.INSERT:      true,
	token.SELECT:      true,
	token.MAP:         true,
	token.REDUCE:      true,
	token.SET:         true,
	token.WHEN:        true,
	token.THEN:        true,
	token.ELSE:        true,
	token.END:         true,
	token.AND:         true,
	token.OR:          true,
	token.FOR:         true,
	token.INTO:        true,
	token.TABLESAMPLE: true,
	token.OPTIONS:     true,
	token.AS:          true,
}

// isIdentifier classifies item as an identifier under the dialect. strict
// positions, such as table aliases, never accept the join and set operation
// keywords.
func (p *Parser) isIdentifier(item lexer.Item, strict bool) bool {
	switch {
	case item.Token == token.IDENT:
		return true
	case item.Token.IsKeyword():
		if item.Value == "!" {
			return false
		}
		return token.CanBeIdentifier(item.Token, p.cfg.AnsiKeywords, strict)
	}
	return false
}

// atIdentifier reports whether the token n ahead is an identifier.
func (p *Parser) atIdentifier(n int) bool {
	return p.isIdentifier(p.peekN(n), false)
}

// atImplicitAlias reports whether the next token may start an alias
// written without AS.
func (p *Parser) atImplicitAlias(strict bool) bool {
	item := p.peek()
	if item.Token != token.IDENT && aliasStop[item.Token] {
		return false
	}
	return p.isIdentifier(item, strict)
}

// identifierPart consumes one identifier token.
func (p *Parser) identifierPart(strict bool) lexer.Item {
	item := p.peek()
	if !p.isIdentifier(item, strict) {
		p.unexpected("identifier")
	}
	return p.next()
}

// identifier parses a single-part name.
func (p *Parser) identifier() *ast.Identifier {
	item := p.identifierPart(false)
	return &ast.Identifier{Position: item.Pos, Parts: []string{item.Value}, Quoted: []bool{item.Quoted}}
}

// strictIdentifier parses a single-part name in a strict position.
func (p *Parser) strictIdentifier() *ast.Identifier {
	item := p.identifierPart(true)
	return &ast.Identifier{Position: item.Pos, Parts: []string{item.Value}, Quoted: []bool{item.Quoted}}
}

// errorCapturingPart parses one identifier and folds a trailing chain of
// `- identifier` into it. The folded name carries a diagnostic.
func (p *Parser) errorCapturingPart(strict bool) (lexer.Item, *ast.Diagnostic) {
	item := p.identifierPart(strict)
	if !p.at(token.MINUS) || !p.isIdentifier(p.peekN(1), false) {
		return item, nil
	}
	parts := []string{item.Value}
	for p.at(token.MINUS) && p.isIdentifier(p.peekN(1), false) {
		p.next()
		parts = append(parts, p.next().Value)
	}
	name := strings.Join(parts, "-")
	d := p.diagnose(item.Pos, ast.DiagDashedIdentifier,
		"Possibly unquoted identifier %s detected. Please consider quoting it with back-quotes as `%s`", name, name)
	item.Value = name
	item.Quoted = false
	return item, d
}

// errorCapturingIdentifier parses a single-part name that may be dashed.
func (p *Parser) errorCapturingIdentifier() *ast.Identifier {
	item, d := p.errorCapturingPart(false)
	return &ast.Identifier{Position: item.Pos, Parts: []string{item.Value}, Quoted: []bool{item.Quoted}, Diagnostic: d}
}

// multipartIdentifier parses part(.part)*, each part error capturing.
func (p *Parser) multipartIdentifier() *ast.Identifier {
	item, d := p.errorCapturingPart(false)
	id := &ast.Identifier{Position: item.Pos, Parts: []string{item.Value}, Quoted: []bool{item.Quoted}, Diagnostic: d}
	for p.at(token.DOT) {
		p.next()
		part, pd := p.errorCapturingPart(false)
		id.Parts = append(id.Parts, part.Value)
		id.Quoted = append(id.Quoted, part.Quoted)
		if id.Diagnostic == nil {
			id.Diagnostic = pd
		}
	}
	return id
}

// qualifiedName parses identifier(.identifier)* without dash capture.
func (p *Parser) qualifiedName() *ast.Identifier {
	id := p.identifier()
	for p.at(token.DOT) && p.atIdentifier(1) {
		p.next()
		part := p.next()
		id.Parts = append(id.Parts, part.Value)
		id.Quoted = append(id.Quoted, part.Quoted)
	}
	return id
}

// tableIdentifier parses [db.]table.
func (p *Parser) tableIdentifier() *ast.Identifier {
	item, d := p.errorCapturingPart(false)
	id := &ast.Identifier{Position: item.Pos, Parts: []string{item.Value}, Quoted: []bool{item.Quoted}, Diagnostic: d}
	if p.accept(token.DOT) {
		part, pd := p.errorCapturingPart(false)
		id.Parts = append(id.Parts, part.Value)
		id.Quoted = append(id.Quoted, part.Quoted)
		if id.Diagnostic == nil {
			id.Diagnostic = pd
		}
	}
	return id
}

// functionIdentifier parses [db.]function.
func (p *Parser) functionIdentifier() *ast.Identifier {
	return p.tableIdentifier()
}

// identifierList parses ( identifier, ... ).
func (p *Parser) identifierList() []*ast.Identifier {
	p.expect(token.LPAREN)
	ids := p.identifierSeq()
	p.expect(token.RPAREN)
	return ids
}

// identifierSeq parses identifier, identifier, ... with dash capture.
func (p *Parser) identifierSeq() []*ast.Identifier {
	ids := []*ast.Identifier{p.errorCapturingIdentifier()}
	for p.accept(token.COMMA) {
		ids = append(ids, p.errorCapturingIdentifier())
	}
	return ids
}

// multipartIdentifierList parses name, name, ... .
func (p *Parser) multipartIdentifierList() []*ast.Identifier {
	ids := []*ast.Identifier{p.multipartIdentifier()}
	for p.accept(token.COMMA) {
		ids = append(ids, p.multipartIdentifier())
	}
	return ids
}

// keywordText returns the upper-cased text of an identifier-like token.
func keywordText(item lexer.Item) string {
	if item.Quoted {
		return item.Value
	}
	return strings.ToUpper(item.Value)
}
