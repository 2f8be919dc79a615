package parser

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// unsupportedCommand builds the parser for a recognized native command that
// is not supported. The first n tokens name the command.
func unsupportedCommand(n int) func(p *Parser) ast.Statement {
	return func(p *Parser) ast.Statement {
		start := p.s.Offset()
		pos := p.peek().Pos
		kws := make([]string, 0, n)
		for i := 0; i < n; i++ {
			kws = append(kws, keywordText(p.next()))
		}
		return p.unsupportedTail(pos, start, kws)
	}
}

// unsupportedTail consumes the rest of the statement and returns it as an
// UnsupportedCommand carrying a diagnostic.
func (p *Parser) unsupportedTail(pos token.Position, start int, kws []string) *ast.UnsupportedCommand {
	text := p.restOfStatement(start)
	stmt := &ast.UnsupportedCommand{Position: pos, Keywords: kws, Text: text}
	stmt.Diagnostic = p.diagnose(pos, ast.DiagUnsupportedCommand, "Operation not allowed: %s", strings.Join(kws, " "))
	return stmt
}

// unsupportedAlters lists the ALTER TABLE actions, following the table
// name, that are recognized but not supported.
var unsupportedAlters = [][]token.Token{
	{token.NOT, token.CLUSTERED},
	{token.NOT, token.SORTED},
	{token.NOT, token.SKEWED},
	{token.NOT, token.STORED, token.AS, token.DIRECTORIES},
	{token.SKEWED, token.BY},
	{token.CLUSTERED, token.BY},
	{token.SET, token.SKEWED, token.LOCATION},
	{token.EXCHANGE, token.PARTITION},
	{token.ARCHIVE, token.PARTITION},
	{token.UNARCHIVE, token.PARTITION},
	{token.TOUCH},
	{token.COMPACT},
	{token.CONCATENATE},
	{token.SET, token.FILEFORMAT},
}

// unsupportedAlter reports whether an unsupported ALTER TABLE action is next
// and returns its keywords. REPLACE COLUMNS is unsupported only without a
// parenthesized column list.
func (p *Parser) unsupportedAlter() ([]string, bool) {
	if p.atSeq(token.REPLACE, token.COLUMNS) && p.peekTok(2) != token.LPAREN {
		return []string{"REPLACE", "COLUMNS"}, true
	}
	for _, seq := range unsupportedAlters {
		if !p.atSeq(seq...) {
			continue
		}
		kws := make([]string, len(seq))
		for i := range seq {
			kws[i] = keywordText(p.peekN(i))
		}
		return kws, true
	}
	return nil, false
}
