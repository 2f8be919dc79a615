package parser

import (
	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// constant parses a literal as allowed in partition specs and skew values.
func (p *Parser) constant() ast.Expression {
	item := p.peek()
	switch {
	case item.Token == token.MINUS || item.Token.IsNumeric():
		return p.number()
	case item.Token == token.STRING:
		return p.stringLiteral()
	case item.Token == token.NULL:
		p.next()
		return &ast.Literal{Position: item.Pos, Type: ast.LiteralNull}
	case item.Token == token.TRUE || item.Token == token.FALSE:
		p.next()
		return &ast.Literal{Position: item.Pos, Type: ast.LiteralBoolean, Value: item.Token == token.TRUE}
	case item.Token == token.INTERVAL:
		return p.interval()
	case p.isIdentifier(item, false) && p.peekTok(1) == token.STRING:
		return p.typedLiteral()
	}
	p.unexpected("constant")
	return nil
}

func (p *Parser) constantList() []ast.Expression {
	p.expect(token.LPAREN)
	values := []ast.Expression{p.constant()}
	for p.accept(token.COMMA) {
		values = append(values, p.constant())
	}
	p.expect(token.RPAREN)
	return values
}

// partitionSpec parses PARTITION (name [= value], ...).
func (p *Parser) partitionSpec() *ast.PartitionSpec {
	spec := &ast.PartitionSpec{Position: p.expect(token.PARTITION).Pos}
	p.expect(token.LPAREN)
	spec.Values = []*ast.PartitionValue{p.partitionValue()}
	for p.accept(token.COMMA) {
		spec.Values = append(spec.Values, p.partitionValue())
	}
	p.expect(token.RPAREN)
	return spec
}

func (p *Parser) partitionValue() *ast.PartitionValue {
	v := &ast.PartitionValue{Position: p.peek().Pos, Name: p.identifier()}
	if p.accept(token.EQ) {
		v.Value = p.constant()
	}
	return v
}

// optPartitionSpec parses a partition spec if one is next.
func (p *Parser) optPartitionSpec() *ast.PartitionSpec {
	if !p.at(token.PARTITION) {
		return nil
	}
	return p.partitionSpec()
}

// partitionLocation parses PARTITION (...) [LOCATION 'path'].
func (p *Parser) partitionLocation() *ast.PartitionLocation {
	pl := &ast.PartitionLocation{Position: p.peek().Pos, Spec: p.partitionSpec()}
	if p.at(token.LOCATION) {
		pl.Location = p.locationSpec()
	}
	return pl
}

// rowFormat parses ROW FORMAT SERDE ... or ROW FORMAT DELIMITED ... .
func (p *Parser) rowFormat() *ast.RowFormat {
	rf := &ast.RowFormat{Position: p.expect(token.ROW).Pos}
	p.expect(token.FORMAT)
	if p.accept(token.SERDE) {
		s := p.stringValue()
		rf.Serde = &s
		if p.acceptSeq(token.WITH, token.SERDEPROPERTIES) {
			rf.SerdeProperties = p.propertyList()
		}
		return rf
	}
	p.expect(token.DELIMITED)
	rf.Delimited = true
	if p.acceptSeq(token.FIELDS, token.TERMINATED, token.BY) {
		rf.FieldsTerminatedBy = p.delimiter()
		if p.acceptSeq(token.ESCAPED, token.BY) {
			rf.EscapedBy = p.delimiter()
		}
	}
	if p.acceptSeq(token.COLLECTION, token.ITEMS, token.TERMINATED, token.BY) {
		rf.CollectionItemsTerminatedBy = p.delimiter()
	}
	if p.acceptSeq(token.MAP, token.KEYS, token.TERMINATED, token.BY) {
		rf.MapKeysTerminatedBy = p.delimiter()
	}
	if p.acceptSeq(token.LINES, token.TERMINATED, token.BY) {
		rf.LinesTerminatedBy = p.delimiter()
	}
	if p.acceptSeq(token.NULL, token.DEFINED, token.AS) {
		rf.NullDefinedAs = p.delimiter()
	}
	return rf
}

func (p *Parser) delimiter() *string {
	s := p.expect(token.STRING).Value
	return &s
}

// fileFormat parses STORED AS format, STORED AS INPUTFORMAT ... OUTPUTFORMAT
// ... or STORED BY handler.
func (p *Parser) fileFormat() *ast.FileFormat {
	ff := &ast.FileFormat{Position: p.expect(token.STORED).Pos}
	if p.accept(token.BY) {
		s := p.stringValue()
		ff.StorageHandler = &s
		if p.acceptSeq(token.WITH, token.SERDEPROPERTIES) {
			ff.HandlerProperties = p.propertyList()
		}
		return ff
	}
	p.expect(token.AS)
	if p.accept(token.INPUTFORMAT) {
		in := p.stringValue()
		p.expect(token.OUTPUTFORMAT)
		out := p.stringValue()
		ff.InputFormat, ff.OutputFormat = &in, &out
		return ff
	}
	ff.Format = p.identifier()
	return ff
}

// bucketSpec parses CLUSTERED BY (cols) [SORTED BY (cols)] INTO n BUCKETS.
func (p *Parser) bucketSpec() *ast.BucketSpec {
	b := &ast.BucketSpec{Position: p.expect(token.CLUSTERED).Pos}
	p.expect(token.BY)
	b.Columns = p.identifierList()
	if p.acceptSeq(token.SORTED, token.BY) {
		p.expect(token.LPAREN)
		b.SortedBy = []*ast.OrderedIdentifier{p.orderedIdentifier()}
		for p.accept(token.COMMA) {
			b.SortedBy = append(b.SortedBy, p.orderedIdentifier())
		}
		p.expect(token.RPAREN)
	}
	p.expect(token.INTO)
	b.Buckets = p.integerValue()
	p.expect(token.BUCKETS)
	return b
}

func (p *Parser) orderedIdentifier() *ast.OrderedIdentifier {
	o := &ast.OrderedIdentifier{Position: p.peek().Pos, Name: p.errorCapturingIdentifier()}
	if p.at(token.ASC, token.DESC) {
		o.Ordering = keywordText(p.next())
	}
	return o
}

// skewSpec parses SKEWED BY (cols) ON (values) [STORED AS DIRECTORIES].
func (p *Parser) skewSpec() *ast.SkewSpec {
	s := &ast.SkewSpec{Position: p.expect(token.SKEWED).Pos}
	p.expect(token.BY)
	s.Columns = p.identifierList()
	p.expect(token.ON)
	if p.peekTok(1) == token.LPAREN {
		s.Nested = true
		p.expect(token.LPAREN)
		s.Values = [][]ast.Expression{p.constantList()}
		for p.accept(token.COMMA) {
			s.Values = append(s.Values, p.constantList())
		}
		p.expect(token.RPAREN)
	} else {
		for _, v := range p.constantList() {
			s.Values = append(s.Values, []ast.Expression{v})
		}
	}
	s.StoredAsDirectories = p.acceptSeq(token.STORED, token.AS, token.DIRECTORIES)
	return s
}

// partitioning parses the list after PARTITIONED BY: either column
// definitions or transforms.
func (p *Parser) partitioning(c *ast.TableClauses) {
	if p.try(func() {
		p.expect(token.LPAREN)
		cols := p.colTypeList()
		p.expect(token.RPAREN)
		c.PartitionColumns = cols
	}) {
		return
	}
	p.expect(token.LPAREN)
	c.Partitioning = []*ast.Transform{p.transform()}
	for p.accept(token.COMMA) {
		c.Partitioning = append(c.Partitioning, p.transform())
	}
	p.expect(token.RPAREN)
}

// transform parses a column reference or func(args).
func (p *Parser) transform() *ast.Transform {
	pos := p.peek().Pos
	if p.isIdentifier(p.peek(), false) && p.peekTok(1) == token.LPAREN {
		t := &ast.Transform{Position: pos, Func: p.identifier()}
		p.expect(token.LPAREN)
		t.Args = []ast.Expression{p.transformArg()}
		for p.accept(token.COMMA) {
			t.Args = append(t.Args, p.transformArg())
		}
		p.expect(token.RPAREN)
		return t
	}
	return &ast.Transform{Position: pos, Column: p.qualifiedName()}
}

func (p *Parser) transformArg() ast.Expression {
	if p.atIdentifier(0) && p.peekTok(1) != token.STRING {
		return p.qualifiedName()
	}
	return p.constant()
}

// tableClause names one of the clauses accepted after a table header.
type tableClause uint

const (
	clauseOptions tableClause = 1 << iota
	clausePartitioned
	clauseBucket
	clauseSkew
	clauseRowFormat
	clauseFileFormat
	clauseLocation
	clauseComment
	clauseProperties
	clauseProvider
)

var clauseNames = map[tableClause]string{
	clauseOptions:     "OPTIONS",
	clausePartitioned: "PARTITIONED BY",
	clauseBucket:      "CLUSTERED BY",
	clauseSkew:        "SKEWED BY",
	clauseRowFormat:   "ROW FORMAT",
	clauseFileFormat:  "STORED AS/BY",
	clauseLocation:    "LOCATION",
	clauseComment:     "COMMENT",
	clauseProperties:  "TBLPROPERTIES",
	clauseProvider:    "USING",
}

const (
	createClauses = clauseOptions | clausePartitioned | clauseBucket | clauseSkew | clauseRowFormat |
		clauseFileFormat | clauseLocation | clauseComment | clauseProperties
	likeClauses = clauseProvider | clauseRowFormat | clauseFileFormat | clauseLocation | clauseProperties
)

// nextTableClause reports which clause starts at the next token.
func (p *Parser) nextTableClause() tableClause {
	switch p.peekTok(0) {
	case token.OPTIONS:
		return clauseOptions
	case token.PARTITIONED:
		if p.peekTok(1) == token.BY {
			return clausePartitioned
		}
	case token.CLUSTERED:
		return clauseBucket
	case token.SKEWED:
		return clauseSkew
	case token.ROW:
		return clauseRowFormat
	case token.STORED:
		return clauseFileFormat
	case token.LOCATION:
		return clauseLocation
	case token.COMMENT:
		return clauseComment
	case token.TBLPROPERTIES:
		return clauseProperties
	case token.USING:
		return clauseProvider
	}
	return 0
}

// tableClauses parses the allowed clauses in any order, each at most once.
// A USING clause is returned separately when allowed.
func (p *Parser) tableClauses(allowed tableClause) (*ast.TableClauses, *ast.Identifier) {
	c := &ast.TableClauses{Position: p.peek().Pos}
	var (
		provider *ast.Identifier
		seen     tableClause
	)
	for {
		clause := p.nextTableClause()
		if clause == 0 || allowed&clause == 0 {
			return c, provider
		}
		if seen&clause != 0 {
			p.failf(CodeDuplicateClause, p.peek().Pos, "Found duplicate clauses: %s", clauseNames[clause])
		}
		seen |= clause

		switch clause {
		case clauseOptions:
			p.next()
			c.Options = p.propertyList()
		case clausePartitioned:
			p.expectSeq(token.PARTITIONED, token.BY)
			p.partitioning(c)
		case clauseBucket:
			c.Bucket = p.bucketSpec()
		case clauseSkew:
			c.Skew = p.skewSpec()
		case clauseRowFormat:
			c.RowFormat = p.rowFormat()
		case clauseFileFormat:
			c.FileFormat = p.fileFormat()
		case clauseLocation:
			c.Location = p.locationSpec()
		case clauseComment:
			c.Comment = p.commentSpec()
		case clauseProperties:
			p.next()
			c.Properties = p.propertyList()
		case clauseProvider:
			p.next()
			provider = p.multipartIdentifier()
		}
	}
}

// propertyKey parses a property key without a value.
func (p *Parser) propertyKey() *ast.Property {
	prop := &ast.Property{Position: p.peek().Pos}
	if p.at(token.STRING) {
		prop.Key = p.stringValue()
		prop.StringKey = true
		return prop
	}
	prop.Key = p.qualifiedName().Name()
	return prop
}

// namespaceKind consumes NAMESPACE, DATABASE or SCHEMA.
func (p *Parser) namespaceKind() string {
	if !p.at(token.NAMESPACE, token.DATABASE, token.SCHEMA) {
		p.unexpected("NAMESPACE", "DATABASE", "SCHEMA")
	}
	return keywordText(p.next())
}
