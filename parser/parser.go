// Package parser implements a recursive descent parser for Spark SQL.
package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/internal/logutil"
	"github.com/sqlc-dev/sparksql/internal/terror"
	"github.com/sqlc-dev/sparksql/lexer"
	"github.com/sqlc-dev/sparksql/metrics"
	"github.com/sqlc-dev/sparksql/token"
)

// Parser parses Spark SQL from a token stream. A Parser is not safe for
// concurrent use; parse independent inputs with independent parsers.
type Parser struct {
	s     *lexer.TokenStream
	cfg   Config
	diags []*ast.Diagnostic
	log   *zap.Logger
}

// New creates a new Parser reading from s.
func New(s *lexer.TokenStream, cfg Config) *Parser {
	return &Parser{
		s:   s,
		cfg: cfg,
		log: logutil.BgLogger(),
	}
}

// NewString creates a new Parser over sql.
func NewString(sql string, cfg Config) *Parser {
	return New(lexer.NewTokenStream(sql), cfg)
}

// SetLogger replaces the logger used for debug output.
func (p *Parser) SetLogger(l *zap.Logger) {
	p.log = l
}

// Config returns the dialect configuration of the parser.
func (p *Parser) Config() Config {
	return p.cfg
}

// Diagnostics returns the recoverable problems found by successful parses
// so far.
func (p *Parser) Diagnostics() []*ast.Diagnostic {
	return p.diags
}

// -----------------------------------------------------------------------------
// Token helpers

func (p *Parser) peek() lexer.Item {
	return p.s.Peek()
}

func (p *Parser) peekN(n int) lexer.Item {
	return p.s.PeekN(n)
}

func (p *Parser) peekTok(n int) token.Token {
	return p.s.PeekN(n).Token
}

func (p *Parser) next() lexer.Item {
	return p.s.Next()
}

// at reports whether the next token is one of toks.
func (p *Parser) at(toks ...token.Token) bool {
	cur := p.peek().Token
	for _, t := range toks {
		if cur == t {
			return true
		}
	}
	return false
}

// atSeq reports whether the next tokens are exactly toks.
func (p *Parser) atSeq(toks ...token.Token) bool {
	for i, t := range toks {
		if p.peekTok(i) != t {
			return false
		}
	}
	return true
}

func (p *Parser) accept(tok token.Token) bool {
	if p.peek().Token == tok {
		p.next()
		return true
	}
	return false
}

// acceptSeq consumes toks if the next tokens match all of them.
func (p *Parser) acceptSeq(toks ...token.Token) bool {
	if !p.atSeq(toks...) {
		return false
	}
	for range toks {
		p.next()
	}
	return true
}

func (p *Parser) expect(tok token.Token) lexer.Item {
	if p.peek().Token != tok {
		p.unexpected(quote(tok))
	}
	return p.next()
}

func (p *Parser) expectSeq(toks ...token.Token) {
	for _, t := range toks {
		p.expect(t)
	}
}

// acceptIfNotExists consumes IF NOT EXISTS.
func (p *Parser) acceptIfNotExists() bool {
	return p.acceptSeq(token.IF, token.NOT, token.EXISTS)
}

// acceptIfExists consumes IF EXISTS.
func (p *Parser) acceptIfExists() bool {
	return p.acceptSeq(token.IF, token.EXISTS)
}

func quote(tok token.Token) string {
	if tok == token.EOF {
		return "<EOF>"
	}
	return "'" + tok.String() + "'"
}

func describe(item lexer.Item) string {
	switch item.Token {
	case token.EOF:
		return "<EOF>"
	case token.STRING:
		return "'" + strings.ReplaceAll(item.Value, "'", "\\'") + "'"
	}
	return "'" + item.Value + "'"
}

// -----------------------------------------------------------------------------
// Failure handling

// unexpected aborts the parse at the next token.
func (p *Parser) unexpected(expected ...string) {
	item := p.peek()
	msg := "mismatched input " + describe(item)
	if item.Token == token.ILLEGAL {
		msg = "token recognition error at: " + describe(item)
	}
	err := newSyntaxError(CodeUnexpectedToken, item.Pos, msg)
	err.Expected = expected
	err.Found = item.Value
	panic(bailout{err: err})
}

// failf aborts the parse with a formatted message at pos.
func (p *Parser) failf(code terror.ErrCode, pos token.Position, format string, args ...interface{}) {
	err := newSyntaxError(code, pos, fmt.Sprintf(format, args...))
	err.Found = p.peek().Value
	panic(bailout{err: err})
}

// try runs fn and reports whether it succeeded. On failure the token stream
// and the diagnostics are rewound to where they were before fn ran.
func (p *Parser) try(fn func()) (ok bool) {
	mark := p.s.Mark()
	n := len(p.diags)
	defer func() {
		if r := recover(); r != nil {
			b, isBailout := r.(bailout)
			if !isBailout {
				panic(r)
			}
			p.log.Debug("backtrack",
				zap.Int("offset", p.s.Offset()),
				zap.String("reason", b.err.Message))
			p.s.Reset(mark)
			p.diags = p.diags[:n]
			ok = false
		}
	}()
	fn()
	return true
}

// run executes fn as one entry point. A hard failure inside fn becomes the
// returned error and the diagnostics recorded by fn are dropped.
func (p *Parser) run(fn func()) (err error) {
	n := len(p.diags)
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			p.diags = p.diags[:n]
			err = errors.Trace(b.err)
			return
		}
		for _, d := range p.diags[n:] {
			metrics.DiagnosticCounter.WithLabelValues(string(d.Kind)).Inc()
		}
	}()
	fn()
	return nil
}

// diagnose records a recoverable problem.
func (p *Parser) diagnose(pos token.Position, kind ast.DiagnosticKind, format string, args ...interface{}) *ast.Diagnostic {
	d := &ast.Diagnostic{Position: pos, Kind: kind, Message: fmt.Sprintf(format, args...)}
	p.diags = append(p.diags, d)
	p.log.Debug("recoverable parse error",
		zap.String("kind", string(kind)),
		zap.String("message", d.Message),
		zap.Int("line", pos.Line),
		zap.Int("column", pos.Column))
	return d
}

// restOfStatement consumes the remaining tokens of the statement and returns
// the source text from offset start up to the terminating ';' or EOF.
func (p *Parser) restOfStatement(start int) string {
	for !p.at(token.SEMICOLON, token.EOF) {
		p.next()
	}
	return p.textBetween(start, p.s.Offset())
}

func (p *Parser) textBetween(start, end int) string {
	src := p.s.Source()
	if end > len(src) {
		end = len(src)
	}
	if start > end {
		return ""
	}
	return strings.TrimSpace(src[start:end])
}

// endOfStatement requires the statement to be followed by an optional ';'
// and the end of input.
func (p *Parser) endOfStatement() {
	p.accept(token.SEMICOLON)
	p.endOfInput()
}

func (p *Parser) endOfInput() {
	if !p.at(token.EOF) {
		p.unexpected("<EOF>")
	}
}

// -----------------------------------------------------------------------------
// Entry points on *Parser

// ParseStatement parses a single statement and requires the end of input.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	var stmt ast.Statement
	if err := p.run(func() {
		stmt = p.statement()
		p.endOfStatement()
	}); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseExpression parses a named expression, an expression with an
// optional alias, and requires the end of input.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	var expr ast.Expression
	if err := p.run(func() {
		expr = p.namedExpression()
		p.endOfInput()
	}); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseTableIdentifier parses [db.]table.
func (p *Parser) ParseTableIdentifier() (*ast.Identifier, error) {
	var id *ast.Identifier
	if err := p.run(func() {
		id = p.tableIdentifier()
		p.endOfInput()
	}); err != nil {
		return nil, err
	}
	return id, nil
}

// ParseMultipartIdentifier parses a dot separated name of any length.
func (p *Parser) ParseMultipartIdentifier() (*ast.Identifier, error) {
	var id *ast.Identifier
	if err := p.run(func() {
		id = p.multipartIdentifier()
		p.endOfInput()
	}); err != nil {
		return nil, err
	}
	return id, nil
}

// ParseFunctionIdentifier parses [db.]function.
func (p *Parser) ParseFunctionIdentifier() (*ast.Identifier, error) {
	var id *ast.Identifier
	if err := p.run(func() {
		id = p.functionIdentifier()
		p.endOfInput()
	}); err != nil {
		return nil, err
	}
	return id, nil
}

// ParseDataType parses a data type.
func (p *Parser) ParseDataType() (*ast.DataType, error) {
	var dt *ast.DataType
	if err := p.run(func() {
		dt = p.dataType()
		p.endOfInput()
	}); err != nil {
		return nil, err
	}
	return dt, nil
}

// ParseTableSchema parses a column list such as `a INT, b STRING`. A
// STRUCT<...> type is accepted in its place.
func (p *Parser) ParseTableSchema() ([]*ast.ColumnDef, error) {
	var cols []*ast.ColumnDef
	if err := p.run(func() {
		if p.at(token.STRUCT) && (p.peekTok(1) == token.LT || p.peekTok(1) == token.NEQ) {
			if !p.try(func() {
				cols = structToColumns(p.dataType())
				p.endOfInput()
			}) {
				cols = p.colTypeList()
				p.endOfInput()
			}
			return
		}
		cols = p.colTypeList()
		p.endOfInput()
	}); err != nil {
		return nil, err
	}
	return cols, nil
}

func structToColumns(dt *ast.DataType) []*ast.ColumnDef {
	cols := make([]*ast.ColumnDef, 0, len(dt.Fields))
	for _, f := range dt.Fields {
		cols = append(cols, &ast.ColumnDef{
			Position: f.Position,
			Name:     f.Name,
			Type:     f.Type,
			NotNull:  f.NotNull,
			Comment:  f.Comment,
		})
	}
	return cols
}

// ParseStatements parses a ';' separated script. A statement that fails
// to parse is skipped up to the next ';' and its error is combined with
// the others; the statements that did parse are returned alongside.
func (p *Parser) ParseStatements(ctx context.Context) ([]ast.Statement, error) {
	var (
		stmts []ast.Statement
		errs  error
	)
	for {
		for p.accept(token.SEMICOLON) {
		}
		if p.at(token.EOF) {
			break
		}

		select {
		case <-ctx.Done():
			return stmts, multierr.Append(errs, ctx.Err())
		default:
		}

		start := time.Now()
		var stmt ast.Statement
		err := p.run(func() {
			stmt = p.statement()
			if !p.at(token.SEMICOLON, token.EOF) {
				p.unexpected("';'", "<EOF>")
			}
		})
		observe(entryScript, start, err)
		if err != nil {
			errs = multierr.Append(errs, err)
			for !p.at(token.SEMICOLON, token.EOF) {
				p.next()
			}
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, errs
}

// -----------------------------------------------------------------------------
// Package level entry points

const (
	entryStatement      = "statement"
	entryExpression     = "expression"
	entryTableIdent     = "table_identifier"
	entryMultipartIdent = "multipart_identifier"
	entryFunctionIdent  = "function_identifier"
	entryDataType       = "data_type"
	entryTableSchema    = "table_schema"
	entryScript         = "script"
)

func observe(entry string, start time.Time, err error) {
	metrics.ParseDuration.WithLabelValues(entry).Observe(time.Since(start).Seconds())
	metrics.ParseCounter.WithLabelValues(entry, metrics.RetLabel(err)).Inc()
}

// ParseStatement parses sql as a single statement.
func ParseStatement(sql string, cfg Config) (ast.Statement, error) {
	start := time.Now()
	stmt, err := NewString(sql, cfg).ParseStatement()
	observe(entryStatement, start, err)
	return stmt, err
}

// ParseExpression parses sql as a named expression.
func ParseExpression(sql string, cfg Config) (ast.Expression, error) {
	start := time.Now()
	expr, err := NewString(sql, cfg).ParseExpression()
	observe(entryExpression, start, err)
	return expr, err
}

// ParseTableIdentifier parses sql as [db.]table.
func ParseTableIdentifier(sql string, cfg Config) (*ast.Identifier, error) {
	start := time.Now()
	id, err := NewString(sql, cfg).ParseTableIdentifier()
	observe(entryTableIdent, start, err)
	return id, err
}

// ParseMultipartIdentifier parses sql as a dot separated name.
func ParseMultipartIdentifier(sql string, cfg Config) (*ast.Identifier, error) {
	start := time.Now()
	id, err := NewString(sql, cfg).ParseMultipartIdentifier()
	observe(entryMultipartIdent, start, err)
	return id, err
}

// ParseFunctionIdentifier parses sql as [db.]function.
func ParseFunctionIdentifier(sql string, cfg Config) (*ast.Identifier, error) {
	start := time.Now()
	id, err := NewString(sql, cfg).ParseFunctionIdentifier()
	observe(entryFunctionIdent, start, err)
	return id, err
}

// ParseDataType parses sql as a data type.
func ParseDataType(sql string, cfg Config) (*ast.DataType, error) {
	start := time.Now()
	dt, err := NewString(sql, cfg).ParseDataType()
	observe(entryDataType, start, err)
	return dt, err
}

// ParseTableSchema parses sql as a column list.
func ParseTableSchema(sql string, cfg Config) ([]*ast.ColumnDef, error) {
	start := time.Now()
	cols, err := NewString(sql, cfg).ParseTableSchema()
	observe(entryTableSchema, start, err)
	return cols, err
}

// Parse parses a ';' separated script from r.
func Parse(ctx context.Context, r io.Reader, cfg Config) ([]ast.Statement, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ParseString(ctx, string(b), cfg)
}

// ParseString parses a ';' separated script.
func ParseString(ctx context.Context, sql string, cfg Config) ([]ast.Statement, error) {
	return NewString(sql, cfg).ParseStatements(ctx)
}

// ParseFile parses the script stored at path.
func ParseFile(ctx context.Context, path string, cfg Config) ([]ast.Statement, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	stmts, err := ParseString(ctx, string(b), cfg)
	if err != nil {
		return stmts, errors.Annotatef(err, "parse %s", path)
	}
	return stmts, nil
}

// Diagnostics returns the diagnostics attached to the tree rooted at node.
func Diagnostics(node ast.Node) []*ast.Diagnostic {
	return ast.Diagnostics(node)
}

// CheckDiagnostics turns the diagnostics attached to node into an error,
// for callers that treat them as fatal. It returns nil when there are none.
func CheckDiagnostics(node ast.Node) error {
	var errs error
	for _, d := range ast.Diagnostics(node) {
		base := ErrInvalidIdentifier
		switch d.Kind {
		case ast.DiagUnsupportedCommand:
			base = ErrUnsupportedCommand
		case ast.DiagIntervalShape:
			base = ErrIntervalShape
		}
		errs = multierr.Append(errs, base.Gen("line %d:%d %s", d.Position.Line, d.Position.Column, d.Message))
	}
	return errs
}
