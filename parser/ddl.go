package parser

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/token"
)

// -----------------------------------------------------------------------------
// Namespaces

func (p *Parser) useStatement() ast.Statement {
	stmt := &ast.Use{Position: p.expect(token.USE).Pos}
	stmt.Namespace = p.accept(token.NAMESPACE)
	stmt.Name = p.multipartIdentifier()
	return stmt
}

// createNamespace parses CREATE NAMESPACE [IF NOT EXISTS] name followed by
// COMMENT, LOCATION and WITH PROPERTIES clauses in any order.
func (p *Parser) createNamespace() ast.Statement {
	stmt := &ast.CreateNamespace{Position: p.expect(token.CREATE).Pos}
	stmt.Kind = p.namespaceKind()
	stmt.IfNotExists = p.acceptIfNotExists()
	stmt.Name = p.multipartIdentifier()

	seen := map[string]bool{}
	once := func(name string) {
		if seen[name] {
			p.failf(CodeDuplicateClause, p.peek().Pos, "Found duplicate clauses: %s", name)
		}
		seen[name] = true
	}
	for {
		switch {
		case p.at(token.COMMENT):
			once("COMMENT")
			stmt.Comment = p.commentSpec()
		case p.at(token.LOCATION):
			once("LOCATION")
			stmt.Location = p.locationSpec()
		case p.at(token.WITH) && (p.peekTok(1) == token.DBPROPERTIES || p.peekTok(1) == token.PROPERTIES):
			once("WITH DBPROPERTIES")
			p.next()
			stmt.PropertiesKeyword = keywordText(p.next())
			stmt.Properties = p.propertyList()
		default:
			return stmt
		}
	}
}

// alterNamespace parses ALTER NAMESPACE name SET PROPERTIES|LOCATION.
func (p *Parser) alterNamespace() ast.Statement {
	pos := p.expect(token.ALTER).Pos
	kind := p.namespaceKind()
	name := p.multipartIdentifier()
	p.expect(token.SET)
	switch {
	case p.at(token.DBPROPERTIES, token.PROPERTIES):
		stmt := &ast.SetNamespaceProperties{Position: pos, Kind: kind, Name: name}
		stmt.PropertiesKeyword = keywordText(p.next())
		stmt.Properties = p.propertyList()
		return stmt
	case p.at(token.LOCATION):
		return &ast.SetNamespaceLocation{Position: pos, Kind: kind, Name: name, Location: *p.locationSpec()}
	}
	p.unexpected("DBPROPERTIES", "PROPERTIES", "LOCATION")
	return nil
}

func (p *Parser) dropNamespace() ast.Statement {
	stmt := &ast.DropNamespace{Position: p.expect(token.DROP).Pos}
	stmt.Kind = p.namespaceKind()
	stmt.IfExists = p.acceptIfExists()
	stmt.Name = p.multipartIdentifier()
	switch {
	case p.accept(token.RESTRICT):
		stmt.Restrict = true
	case p.accept(token.CASCADE):
		stmt.Cascade = true
	}
	return stmt
}

// -----------------------------------------------------------------------------
// Tables

// createTable parses CREATE [TEMPORARY] [EXTERNAL] TABLE. The statement is
// a CREATE TABLE LIKE when LIKE directly follows the name, a data source
// table when a USING clause is present and a Hive table otherwise.
func (p *Parser) createTable() ast.Statement {
	h := &ast.CreateTableHeader{Position: p.expect(token.CREATE).Pos}
	h.Temporary = p.accept(token.TEMPORARY)
	h.External = p.accept(token.EXTERNAL)
	p.expect(token.TABLE)
	h.IfNotExists = p.acceptIfNotExists()
	h.Name = p.multipartIdentifier()

	if p.at(token.LIKE) {
		return p.createTableLike(h)
	}

	var cols []*ast.ColumnDef
	if p.at(token.LPAREN) && !p.atQueryStart(0) {
		p.next()
		cols = p.colTypeList()
		p.expect(token.RPAREN)
	}
	var provider *ast.Identifier
	if p.accept(token.USING) {
		provider = p.multipartIdentifier()
	}
	clauses, _ := p.tableClauses(createClauses)
	query := p.asQuery()

	if provider != nil {
		return &ast.CreateTable{Position: h.Position, Header: h, Columns: cols, Provider: provider, Clauses: clauses, AsQuery: query}
	}
	return &ast.CreateHiveTable{Position: h.Position, Header: h, Columns: cols, Clauses: clauses, AsQuery: query}
}

func (p *Parser) createTableLike(h *ast.CreateTableHeader) ast.Statement {
	if h.Temporary || h.External {
		p.unexpected("'('", "USING", "AS")
	}
	if len(h.Name.Parts) > 2 {
		p.failf(CodeInvalidIdentifier, h.Name.Position, "Table identifier %s has too many parts", h.Name.Name())
	}
	p.expect(token.LIKE)
	stmt := &ast.CreateTableLike{Position: h.Position, IfNotExists: h.IfNotExists, Target: h.Name}
	stmt.Source = p.tableIdentifier()
	stmt.Clauses, stmt.Provider = p.tableClauses(likeClauses)
	return stmt
}

// asQuery parses an optional [AS] query at the end of a table definition.
func (p *Parser) asQuery() *ast.Query {
	if p.accept(token.AS) || p.atQueryStart(0) {
		return p.query()
	}
	return nil
}

// replaceTable parses [CREATE OR] REPLACE TABLE.
func (p *Parser) replaceTable() ast.Statement {
	stmt := &ast.ReplaceTable{Position: p.peek().Pos}
	if p.accept(token.CREATE) {
		p.expect(token.OR)
		stmt.OrCreate = true
	}
	p.expectSeq(token.REPLACE, token.TABLE)
	stmt.Name = p.multipartIdentifier()
	if p.at(token.LPAREN) && !p.atQueryStart(0) {
		p.next()
		stmt.Columns = p.colTypeList()
		p.expect(token.RPAREN)
	}
	p.expect(token.USING)
	stmt.Provider = p.multipartIdentifier()
	stmt.Clauses, _ = p.tableClauses(createClauses)
	stmt.AsQuery = p.asQuery()
	return stmt
}

// analyzeStatement parses ANALYZE TABLE name [PARTITION ...] COMPUTE
// STATISTICS [NOSCAN | FOR COLUMNS cols | FOR ALL COLUMNS].
func (p *Parser) analyzeStatement() ast.Statement {
	stmt := &ast.Analyze{Position: p.expect(token.ANALYZE).Pos}
	p.expect(token.TABLE)
	stmt.Table = p.multipartIdentifier()
	stmt.Partition = p.optPartitionSpec()
	p.expectSeq(token.COMPUTE, token.STATISTICS)
	switch {
	case p.acceptSeq(token.FOR, token.ALL, token.COLUMNS):
		stmt.ForAllColumns = true
	case p.accept(token.FOR):
		p.expect(token.COLUMNS)
		stmt.ForColumns = p.identifierSeq()
	case p.atIdentifier(0):
		item := p.next()
		if !strings.EqualFold(item.Value, "NOSCAN") {
			p.failf(CodeInvalidStatement, item.Pos, "Expected `NOSCAN` instead of `%s`", item.Value)
		}
		stmt.NoScan = true
	}
	return stmt
}

func (p *Parser) dropTable() ast.Statement {
	stmt := &ast.DropTable{Position: p.expect(token.DROP).Pos}
	p.expect(token.TABLE)
	stmt.IfExists = p.acceptIfExists()
	stmt.Name = p.multipartIdentifier()
	stmt.Purge = p.accept(token.PURGE)
	return stmt
}

func (p *Parser) dropView() ast.Statement {
	stmt := &ast.DropView{Position: p.expect(token.DROP).Pos}
	p.expect(token.VIEW)
	stmt.IfExists = p.acceptIfExists()
	stmt.Name = p.multipartIdentifier()
	return stmt
}

// -----------------------------------------------------------------------------
// ALTER TABLE and ALTER VIEW

// alterTable parses the ALTER TABLE family. The action is chosen by the
// keywords that follow the table name and optional partition spec.
func (p *Parser) alterTable() ast.Statement {
	start := p.s.Offset()
	pos := p.expect(token.ALTER).Pos
	p.expect(token.TABLE)
	table := p.multipartIdentifier()

	if kws, ok := p.unsupportedAlter(); ok {
		return p.unsupportedTail(pos, start, append([]string{"ALTER", "TABLE"}, kws...))
	}

	if p.at(token.PARTITION) {
		spec := p.partitionSpec()
		return p.alterTablePartition(pos, start, table, spec)
	}

	switch {
	case p.at(token.ADD) && (p.peekTok(1) == token.COLUMN || p.peekTok(1) == token.COLUMNS):
		p.next()
		p.next()
		stmt := &ast.AddTableColumns{Position: pos, Table: table}
		if p.accept(token.LPAREN) {
			stmt.Columns = p.qualifiedColTypeList()
			p.expect(token.RPAREN)
		} else {
			stmt.Columns = p.qualifiedColTypeList()
		}
		return stmt

	case p.acceptSeq(token.RENAME, token.COLUMN):
		stmt := &ast.RenameTableColumn{Position: pos, Table: table, From: p.multipartIdentifier()}
		p.expect(token.TO)
		stmt.To = p.errorCapturingIdentifier()
		return stmt

	case p.at(token.DROP) && (p.peekTok(1) == token.COLUMN || p.peekTok(1) == token.COLUMNS):
		p.next()
		p.next()
		stmt := &ast.DropTableColumns{Position: pos, Table: table}
		if p.accept(token.LPAREN) {
			stmt.Columns = p.multipartIdentifierList()
			p.expect(token.RPAREN)
		} else {
			stmt.Columns = p.multipartIdentifierList()
		}
		return stmt

	case p.at(token.ALTER):
		p.next()
		p.accept(token.COLUMN)
		stmt := &ast.AlterTableAlterColumn{Position: pos, Table: table, Column: p.multipartIdentifier()}
		stmt.Action = p.alterColumnAction()
		return stmt

	case p.at(token.CHANGE):
		return p.changeColumn(pos, table, nil)

	case p.atSeq(token.REPLACE, token.COLUMNS, token.LPAREN):
		return p.replaceColumns(pos, table, nil)

	case p.atSeq(token.RECOVER, token.PARTITIONS):
		p.next()
		p.next()
		return &ast.RecoverPartitions{Position: pos, Table: table}

	case p.atSeq(token.SET, token.SERDE), p.atSeq(token.SET, token.SERDEPROPERTIES):
		return p.setSerde(pos, table, nil)

	case p.atSeq(token.SET, token.LOCATION):
		p.next()
		return &ast.SetTableLocation{Position: pos, Table: table, Location: *p.locationSpec()}
	}
	return p.alterRelation(pos, table, false)
}

// alterTablePartition handles the ALTER TABLE actions that may follow a
// partition spec.
func (p *Parser) alterTablePartition(pos token.Position, start int, table *ast.Identifier, spec *ast.PartitionSpec) ast.Statement {
	switch {
	case p.at(token.COMPACT, token.CONCATENATE):
		return p.unsupportedTail(pos, start, []string{"ALTER", "TABLE", keywordText(p.peek())})
	case p.atSeq(token.SET, token.FILEFORMAT):
		return p.unsupportedTail(pos, start, []string{"ALTER", "TABLE", "SET", "FILEFORMAT"})
	case p.at(token.REPLACE) && p.peekTok(1) == token.COLUMNS && p.peekTok(2) != token.LPAREN:
		return p.unsupportedTail(pos, start, []string{"ALTER", "TABLE", "REPLACE", "COLUMNS"})
	case p.acceptSeq(token.RENAME, token.TO):
		return &ast.RenameTablePartition{Position: pos, Table: table, From: spec, To: p.partitionSpec()}
	case p.at(token.CHANGE):
		return p.changeColumn(pos, table, spec)
	case p.at(token.REPLACE):
		return p.replaceColumns(pos, table, spec)
	case p.atSeq(token.SET, token.SERDE), p.atSeq(token.SET, token.SERDEPROPERTIES):
		return p.setSerde(pos, table, spec)
	case p.accept(token.SET):
		return &ast.SetTableLocation{Position: pos, Table: table, Partition: spec, Location: *p.locationSpec()}
	}
	p.unexpected("RENAME", "CHANGE", "REPLACE", "SET")
	return nil
}

// alterView parses the ALTER VIEW family.
func (p *Parser) alterView() ast.Statement {
	pos := p.expect(token.ALTER).Pos
	p.expect(token.VIEW)
	name := p.multipartIdentifier()
	if p.accept(token.AS) || p.atQueryStart(0) {
		return &ast.AlterViewQuery{Position: pos, Name: name, Query: p.query()}
	}
	return p.alterRelation(pos, name, true)
}

// alterRelation parses the actions shared by ALTER TABLE and ALTER VIEW.
func (p *Parser) alterRelation(pos token.Position, name *ast.Identifier, view bool) ast.Statement {
	switch {
	case p.acceptSeq(token.RENAME, token.TO):
		return &ast.RenameTable{Position: pos, View: view, From: name, To: p.multipartIdentifier()}

	case p.acceptSeq(token.SET, token.TBLPROPERTIES):
		return &ast.SetTableProperties{Position: pos, View: view, Table: name, Properties: p.propertyList()}

	case p.acceptSeq(token.UNSET, token.TBLPROPERTIES):
		stmt := &ast.UnsetTableProperties{Position: pos, View: view, Table: name}
		stmt.IfExists = p.acceptIfExists()
		stmt.Properties = p.propertyList()
		return stmt

	case p.accept(token.ADD):
		stmt := &ast.AddTablePartition{Position: pos, View: view, Table: name}
		stmt.IfNotExists = p.acceptIfNotExists()
		stmt.Partitions = []*ast.PartitionLocation{p.partitionLocation()}
		for p.at(token.PARTITION) {
			stmt.Partitions = append(stmt.Partitions, p.partitionLocation())
		}
		return stmt

	case p.accept(token.DROP):
		stmt := &ast.DropTablePartitions{Position: pos, View: view, Table: name}
		stmt.IfExists = p.acceptIfExists()
		stmt.Partitions = []*ast.PartitionSpec{p.partitionSpec()}
		for p.accept(token.COMMA) {
			stmt.Partitions = append(stmt.Partitions, p.partitionSpec())
		}
		stmt.Purge = p.accept(token.PURGE)
		return stmt
	}
	if view {
		p.unexpected("AS", "RENAME", "SET", "UNSET", "ADD", "DROP")
	}
	p.unexpected("ADD", "ALTER", "CHANGE", "DROP", "RECOVER", "RENAME", "REPLACE", "SET", "UNSET")
	return nil
}

// alterColumnAction parses TYPE t, COMMENT c, FIRST | AFTER c or
// SET | DROP NOT NULL. The action is optional.
func (p *Parser) alterColumnAction() *ast.AlterColumnAction {
	a := &ast.AlterColumnAction{Position: p.peek().Pos}
	switch {
	case p.accept(token.TYPE):
		a.Type = p.dataType()
	case p.at(token.COMMENT):
		a.Comment = p.commentSpec()
	case p.at(token.FIRST, token.AFTER):
		a.Place = p.colPosition()
	case p.acceptSeq(token.SET, token.NOT, token.NULL):
		a.SetNotNull = true
	case p.acceptSeq(token.DROP, token.NOT, token.NULL):
		a.DropNotNull = true
	default:
		return nil
	}
	return a
}

// changeColumn parses CHANGE [COLUMN] col, either the Hive form with a full
// new column definition or an alter column action.
func (p *Parser) changeColumn(pos token.Position, table *ast.Identifier, spec *ast.PartitionSpec) ast.Statement {
	p.expect(token.CHANGE)
	p.accept(token.COLUMN)
	col := p.multipartIdentifier()
	if spec == nil {
		if action := p.alterColumnAction(); action != nil || p.at(token.SEMICOLON, token.EOF) {
			return &ast.AlterTableAlterColumn{Position: pos, Table: table, Change: true, Column: col, Action: action}
		}
	}
	stmt := &ast.HiveChangeColumn{Position: pos, Table: table, Partition: spec, Column: col}
	stmt.NewColumn = p.colType()
	if p.at(token.FIRST, token.AFTER) {
		stmt.Place = p.colPosition()
	}
	return stmt
}

func (p *Parser) replaceColumns(pos token.Position, table *ast.Identifier, spec *ast.PartitionSpec) ast.Statement {
	p.expectSeq(token.REPLACE, token.COLUMNS, token.LPAREN)
	stmt := &ast.HiveReplaceColumns{Position: pos, Table: table, Partition: spec}
	stmt.Columns = p.qualifiedColTypeList()
	p.expect(token.RPAREN)
	return stmt
}

func (p *Parser) setSerde(pos token.Position, table *ast.Identifier, spec *ast.PartitionSpec) ast.Statement {
	p.expect(token.SET)
	stmt := &ast.SetTableSerDe{Position: pos, Table: table, Partition: spec}
	if p.accept(token.SERDE) {
		stmt.Serde = p.optString()
		if stmt.Serde == nil {
			p.unexpected("STRING")
		}
		if p.acceptSeq(token.WITH, token.SERDEPROPERTIES) {
			stmt.Properties = p.propertyList()
		}
		return stmt
	}
	p.expect(token.SERDEPROPERTIES)
	stmt.Properties = p.propertyList()
	return stmt
}

// -----------------------------------------------------------------------------
// Views

// createView parses CREATE [OR REPLACE] [[GLOBAL] TEMPORARY] VIEW. A
// temporary view whose name is followed by an optional column schema and a
// USING clause is a data source view.
func (p *Parser) createView() ast.Statement {
	pos := p.expect(token.CREATE).Pos
	orReplace := p.acceptSeq(token.OR, token.REPLACE)
	global := p.accept(token.GLOBAL)
	temporary := p.accept(token.TEMPORARY)
	if global && !temporary {
		p.unexpected("TEMPORARY")
	}
	p.expect(token.VIEW)

	if temporary {
		using := &ast.CreateTempViewUsing{Position: pos, OrReplace: orReplace, Global: global}
		if p.try(func() {
			using.Name = p.tableIdentifier()
			if p.accept(token.LPAREN) {
				using.Columns = p.colTypeList()
				p.expect(token.RPAREN)
			}
			p.expect(token.USING)
		}) {
			using.Provider = p.multipartIdentifier()
			if p.accept(token.OPTIONS) {
				using.Options = p.propertyList()
			}
			return using
		}
	}

	stmt := &ast.CreateView{Position: pos, OrReplace: orReplace, Global: global, Temporary: temporary}
	stmt.IfNotExists = p.acceptIfNotExists()
	stmt.Name = p.multipartIdentifier()
	if p.at(token.LPAREN) {
		stmt.Columns = p.viewColumns()
	}

	seen := map[string]bool{}
	once := func(name string) {
		if seen[name] {
			p.failf(CodeDuplicateClause, p.peek().Pos, "Found duplicate clauses: %s", name)
		}
		seen[name] = true
	}
	for !p.at(token.AS) {
		switch {
		case p.at(token.COMMENT):
			once("COMMENT")
			stmt.Comment = p.commentSpec()
		case p.acceptSeq(token.PARTITIONED, token.ON):
			once("PARTITIONED ON")
			stmt.PartitionedOn = p.identifierList()
		case p.accept(token.TBLPROPERTIES):
			once("TBLPROPERTIES")
			stmt.Properties = p.propertyList()
		default:
			p.unexpected("AS", "COMMENT", "PARTITIONED", "TBLPROPERTIES")
		}
	}
	p.expect(token.AS)
	stmt.Query = p.query()
	return stmt
}

func (p *Parser) viewColumns() []*ast.ViewColumn {
	p.expect(token.LPAREN)
	var cols []*ast.ViewColumn
	for {
		c := &ast.ViewColumn{Position: p.peek().Pos, Name: p.identifier()}
		if p.at(token.COMMENT) {
			c.Comment = p.commentSpec()
		}
		cols = append(cols, c)
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return cols
}

// -----------------------------------------------------------------------------
// Functions

var resourceTypes = map[string]bool{"JAR": true, "FILE": true, "ARCHIVE": true}

func (p *Parser) createFunction() ast.Statement {
	stmt := &ast.CreateFunction{Position: p.expect(token.CREATE).Pos}
	stmt.OrReplace = p.acceptSeq(token.OR, token.REPLACE)
	stmt.Temporary = p.accept(token.TEMPORARY)
	p.expect(token.FUNCTION)
	stmt.IfNotExists = p.acceptIfNotExists()
	stmt.Name = p.multipartIdentifier()
	p.expect(token.AS)
	stmt.ClassName = p.stringValue()
	if p.accept(token.USING) {
		stmt.Resources = []*ast.FunctionResource{p.functionResource()}
		for p.accept(token.COMMA) {
			stmt.Resources = append(stmt.Resources, p.functionResource())
		}
	}
	return stmt
}

func (p *Parser) functionResource() *ast.FunctionResource {
	item := p.identifierPart(false)
	typ := strings.ToUpper(item.Value)
	if !resourceTypes[typ] {
		p.failf(CodeUnsupportedCommand, item.Pos, "Operation not allowed: CREATE FUNCTION with resource type '%s'", strings.ToLower(item.Value))
	}
	return &ast.FunctionResource{Position: item.Pos, Type: typ, URI: p.stringValue()}
}

func (p *Parser) dropFunction() ast.Statement {
	stmt := &ast.DropFunction{Position: p.expect(token.DROP).Pos}
	stmt.Temporary = p.accept(token.TEMPORARY)
	p.expect(token.FUNCTION)
	stmt.IfExists = p.acceptIfExists()
	stmt.Name = p.multipartIdentifier()
	return stmt
}
