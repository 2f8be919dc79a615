package parser

import (
	"regexp"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// explainStatement parses EXPLAIN [LOGICAL|FORMATTED|EXTENDED|CODEGEN|COST] statement.
func (p *Parser) explainStatement() ast.Statement {
	stmt := &ast.Explain{Position: p.expect(token.EXPLAIN).Pos}
	if p.at(token.LOGICAL, token.FORMATTED, token.EXTENDED, token.CODEGEN, token.COST) {
		stmt.Mode = keywordText(p.next())
	}
	stmt.Statement = p.statement()
	return stmt
}

// -----------------------------------------------------------------------------
// REFRESH

func (p *Parser) refreshTable() ast.Statement {
	stmt := &ast.RefreshTable{Position: p.expect(token.REFRESH).Pos}
	p.expect(token.TABLE)
	stmt.Name = p.multipartIdentifier()
	return stmt
}

func (p *Parser) refreshFunction() ast.Statement {
	stmt := &ast.RefreshFunction{Position: p.expect(token.REFRESH).Pos}
	p.expect(token.FUNCTION)
	stmt.Name = p.multipartIdentifier()
	return stmt
}

// refreshResource parses REFRESH 'path' or REFRESH followed by an unquoted
// path taken verbatim up to the end of the statement.
func (p *Parser) refreshResource() ast.Statement {
	pos := p.expect(token.REFRESH).Pos
	stmt := &ast.RefreshResource{Position: pos}
	if p.at(token.STRING) {
		n := 1
		for p.peekTok(n) == token.STRING {
			n++
		}
		if t := p.peekTok(n); t == token.SEMICOLON || t == token.EOF {
			stmt.Path = p.stringValue()
			stmt.Quoted = true
			return stmt
		}
	}
	stmt.Path = p.restOfStatement(p.s.Offset())
	if stmt.Path == "" {
		p.failf(CodeInvalidStatement, pos, "Resource paths cannot be empty in REFRESH statements. Use / to match everything")
	}
	if strings.ContainsAny(stmt.Path, " \n\r\t") {
		p.failf(CodeInvalidStatement, pos, "REFRESH statements cannot contain ' ', '\\n', '\\r', '\\t' inside unquoted resource paths")
	}
	return stmt
}

// -----------------------------------------------------------------------------
// Caching

// cacheTable parses CACHE [LAZY] TABLE name [OPTIONS (...)] [[AS] query].
func (p *Parser) cacheTable() ast.Statement {
	stmt := &ast.CacheTable{Position: p.expect(token.CACHE).Pos}
	stmt.Lazy = p.accept(token.LAZY)
	p.expect(token.TABLE)
	stmt.Name = p.multipartIdentifier()
	if p.accept(token.OPTIONS) {
		stmt.Options = p.propertyList()
	}
	stmt.Query = p.asQuery()
	if stmt.Query != nil && len(stmt.Name.Parts) > 1 {
		p.failf(CodeInvalidStatement, stmt.Name.Position,
			"It is not allowed to add database prefix `%s` to the table name in CACHE TABLE AS SELECT",
			strings.Join(stmt.Name.Parts[:len(stmt.Name.Parts)-1], "."))
	}
	return stmt
}

func (p *Parser) uncacheTable() ast.Statement {
	stmt := &ast.UncacheTable{Position: p.expect(token.UNCACHE).Pos}
	p.expect(token.TABLE)
	stmt.IfExists = p.acceptIfExists()
	stmt.Name = p.multipartIdentifier()
	return stmt
}

func (p *Parser) clearCache() ast.Statement {
	stmt := &ast.ClearCache{Position: p.expect(token.CLEAR).Pos}
	p.expect(token.CACHE)
	return stmt
}

// -----------------------------------------------------------------------------
// Table maintenance

// loadData parses LOAD DATA [LOCAL] INPATH 'path' [OVERWRITE] INTO TABLE
// name [PARTITION (...)].
func (p *Parser) loadData() ast.Statement {
	stmt := &ast.LoadData{Position: p.expect(token.LOAD).Pos}
	p.expect(token.DATA)
	stmt.Local = p.accept(token.LOCAL)
	p.expect(token.INPATH)
	stmt.Path = p.stringValue()
	stmt.Overwrite = p.accept(token.OVERWRITE)
	p.expectSeq(token.INTO, token.TABLE)
	stmt.Table = p.multipartIdentifier()
	stmt.Partition = p.optPartitionSpec()
	return stmt
}

func (p *Parser) truncateTable() ast.Statement {
	stmt := &ast.TruncateTable{Position: p.expect(token.TRUNCATE).Pos}
	p.expect(token.TABLE)
	stmt.Table = p.multipartIdentifier()
	stmt.Partition = p.optPartitionSpec()
	return stmt
}

// repairTable parses MSCK REPAIR TABLE name [ADD|DROP|SYNC PARTITIONS].
func (p *Parser) repairTable() ast.Statement {
	stmt := &ast.RepairTable{Position: p.expect(token.MSCK).Pos}
	p.expectSeq(token.REPAIR, token.TABLE)
	stmt.Table = p.multipartIdentifier()
	if p.at(token.ADD, token.DROP, token.SYNC) {
		stmt.Option = keywordText(p.next())
		p.expect(token.PARTITIONS)
	}
	return stmt
}

// manageResource parses ADD|LIST type args, keeping args verbatim.
func (p *Parser) manageResource() ast.Statement {
	if !p.at(token.ADD, token.LIST) {
		p.unexpected("ADD", "LIST")
	}
	op := p.next()
	stmt := &ast.ManageResource{Position: op.Pos, Op: keywordText(op), Type: p.identifier()}
	stmt.Args = p.restOfStatement(p.s.Offset())
	return stmt
}

// -----------------------------------------------------------------------------
// Session configuration

// setTimeZone parses SET TIME ZONE interval | 'zone' | LOCAL.
func (p *Parser) setTimeZone() ast.Statement {
	stmt := &ast.SetTimeZone{Position: p.expect(token.SET).Pos}
	p.expectSeq(token.TIME, token.ZONE)
	switch {
	case p.at(token.INTERVAL):
		stmt.Interval = p.interval()
	case p.at(token.STRING):
		stmt.Zone = p.optString()
	case p.accept(token.LOCAL):
		stmt.Local = true
	default:
		p.failf(CodeInvalidStatement, p.peek().Pos, "Invalid time zone displacement value")
	}
	return stmt
}

var keyValueDefinition = regexp.MustCompile(`^([^=]+)=([^;]*);*$`)

// setConfiguration parses SET, SET -v, SET key and SET key=value from the
// verbatim text of the statement.
func (p *Parser) setConfiguration() ast.Statement {
	stmt := &ast.SetConfiguration{Position: p.expect(token.SET).Pos}
	raw := p.restOfStatement(p.s.Offset())
	if m := keyValueDefinition.FindStringSubmatch(raw); m != nil {
		value := strings.TrimSpace(m[2])
		stmt.Key = strings.TrimSpace(m[1])
		stmt.Value = &value
		return stmt
	}
	stmt.Key = raw
	return stmt
}

// resetConfiguration parses RESET [key].
func (p *Parser) resetConfiguration() ast.Statement {
	stmt := &ast.ResetConfiguration{Position: p.expect(token.RESET).Pos}
	stmt.Key = p.restOfStatement(p.s.Offset())
	return stmt
}
