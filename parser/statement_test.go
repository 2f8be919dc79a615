package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sparksql/ast"
	"github.com/sqlc-dev/sparksql/parser"
)

func TestSetOperationPrecedence(t *testing.T) {
	const sql = "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3"

	stmt, err := parser.ParseStatement(sql, parser.DefaultConfig)
	require.NoError(t, err)
	top := stmt.(*ast.Query).Body.(*ast.SetOperation)
	require.Equal(t, ast.SetUnion, top.Op)
	require.IsType(t, &ast.QuerySpecification{}, top.Left)
	require.Equal(t, ast.SetIntersect, top.Right.(*ast.SetOperation).Op)

	stmt, err = parser.ParseStatement(sql, parser.Config{LegacySetOpsPrecedence: true})
	require.NoError(t, err)
	top = stmt.(*ast.Query).Body.(*ast.SetOperation)
	require.Equal(t, ast.SetIntersect, top.Op)
	require.Equal(t, ast.SetUnion, top.Left.(*ast.SetOperation).Op)
	require.IsType(t, &ast.QuerySpecification{}, top.Right)

	stmt, err = parser.ParseStatement("SELECT 1 EXCEPT ALL SELECT 2 UNION SELECT 3", parser.DefaultConfig)
	require.NoError(t, err)
	top = stmt.(*ast.Query).Body.(*ast.SetOperation)
	require.Equal(t, ast.SetUnion, top.Op)
	left := top.Left.(*ast.SetOperation)
	require.Equal(t, ast.SetExcept, left.Op)
	require.Equal(t, "ALL", left.Quantifier)
}

func TestAnsiKeywords(t *testing.T) {
	id, err := parser.ParseMultipartIdentifier("table.x", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, []string{"table", "x"}, id.Parts)

	_, err = parser.ParseMultipartIdentifier("table.x", parser.AnsiConfig)
	require.Error(t, err)
	require.True(t, parser.IsCode(err, parser.CodeUnexpectedToken))

	id, err = parser.ParseMultipartIdentifier("`table`.x", parser.AnsiConfig)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, id.Quoted)

	_, err = parser.ParseStatement("SELECT * FROM t AS select", parser.AnsiConfig)
	require.Error(t, err)

	// ANTI, SEMI and MINUS are names under ANSI but not strict names by default.
	for _, sql := range []string{"SELECT 1 AS anti", "SELECT * FROM t AS semi", "SELECT minus FROM t"} {
		_, err = parser.ParseStatement(sql, parser.AnsiConfig)
		require.NoError(t, err, sql)
	}
	_, err = parser.ParseStatement("SELECT 1 AS anti", parser.DefaultConfig)
	require.NoError(t, err)
	_, err = parser.ParseStatement("SELECT * FROM t AS semi", parser.DefaultConfig)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expecting identifier")

	_, err = parser.ParseStatement("SELECT * FROM t AS lateral", parser.AnsiConfig)
	require.Error(t, err)
}

func TestIdentifierEntryPoints(t *testing.T) {
	id, err := parser.ParseTableIdentifier("db.t", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "db.t", id.Name())

	_, err = parser.ParseTableIdentifier("a.b.c", parser.DefaultConfig)
	require.Error(t, err)
	require.True(t, parser.IsCode(err, parser.CodeUnexpectedToken))

	id, err = parser.ParseFunctionIdentifier("db.f", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "f", id.Last())

	id, err = parser.ParseMultipartIdentifier("cat.db.t", parser.DefaultConfig)
	require.NoError(t, err)
	require.Len(t, id.Parts, 3)

	_, err = parser.ParseStatement("CREATE TABLE a.b.c LIKE d", parser.DefaultConfig)
	require.Error(t, err)
	require.True(t, parser.IsCode(err, parser.CodeInvalidIdentifier))
	require.Contains(t, err.Error(), "Table identifier a.b.c has too many parts")
}

func TestDashedIdentifier(t *testing.T) {
	stmt, err := parser.ParseStatement("SELECT * FROM a-b", parser.DefaultConfig)
	require.NoError(t, err)

	diags := parser.Diagnostics(stmt)
	require.Len(t, diags, 1)
	require.Equal(t, ast.DiagDashedIdentifier, diags[0].Kind)
	require.Equal(t, "Possibly unquoted identifier a-b detected. Please consider quoting it with back-quotes as `a-b`", diags[0].Message)

	err = parser.CheckDiagnostics(stmt)
	require.Error(t, err)
	require.True(t, parser.IsCode(err, parser.CodeInvalidIdentifier))

	stmt, err = parser.ParseStatement("SELECT a - b FROM t", parser.DefaultConfig)
	require.NoError(t, err)
	require.Empty(t, parser.Diagnostics(stmt))
	require.NoError(t, parser.CheckDiagnostics(stmt))
}

func TestUnsupportedCommand(t *testing.T) {
	for _, tt := range []struct {
		sql      string
		keywords []string
	}{
		{"GRANT SELECT ON t TO alice", []string{"GRANT"}},
		{"revoke select on t from alice", []string{"REVOKE"}},
		{"CREATE ROLE admin", []string{"CREATE", "ROLE"}},
		{"SHOW CURRENT ROLES", []string{"SHOW", "CURRENT", "ROLES"}},
		{"START TRANSACTION", []string{"START", "TRANSACTION"}},
		{"ALTER TABLE t TOUCH", []string{"ALTER", "TABLE", "TOUCH"}},
		{"ALTER TABLE t REPLACE COLUMNS", []string{"ALTER", "TABLE", "REPLACE", "COLUMNS"}},
	} {
		stmt, err := parser.ParseStatement(tt.sql, parser.DefaultConfig)
		require.NoError(t, err, tt.sql)
		cmd, ok := stmt.(*ast.UnsupportedCommand)
		require.True(t, ok, "%s: %T", tt.sql, stmt)
		require.Equal(t, tt.keywords, cmd.Keywords, tt.sql)
		require.NotNil(t, cmd.Diagnostic, tt.sql)
		require.Equal(t, ast.DiagUnsupportedCommand, cmd.Diagnostic.Kind)

		err = parser.CheckDiagnostics(stmt)
		require.True(t, parser.IsCode(err, parser.CodeUnsupportedCommand), tt.sql)
	}

	stmt, err := parser.ParseStatement("GRANT SELECT ON t TO alice", parser.DefaultConfig)
	require.NoError(t, err)
	cmd := stmt.(*ast.UnsupportedCommand)
	require.Equal(t, "GRANT SELECT ON t TO alice", cmd.Text)
	require.Equal(t, "Operation not allowed: GRANT", cmd.Diagnostic.Message)

	stmt, err = parser.ParseStatement("ALTER TABLE t REPLACE COLUMNS (a INT)", parser.DefaultConfig)
	require.NoError(t, err)
	require.IsType(t, &ast.HiveReplaceColumns{}, stmt)
}

func TestMerge(t *testing.T) {
	stmt, err := parser.ParseStatement(`MERGE INTO t USING s ON t.id = s.id
		WHEN MATCHED AND s.deleted THEN DELETE
		WHEN MATCHED THEN UPDATE SET t.v = s.v
		WHEN NOT MATCHED AND s.v > 0 THEN INSERT (id, v) VALUES (s.id, s.v)
		WHEN NOT MATCHED THEN INSERT *`, parser.DefaultConfig)
	require.NoError(t, err)
	m := stmt.(*ast.MergeIntoTable)
	require.Len(t, m.Matched, 2)
	require.Equal(t, ast.MergeDelete, m.Matched[0].Kind)
	require.Equal(t, ast.MergeUpdate, m.Matched[1].Kind)
	require.Len(t, m.NotMatched, 2)
	require.Equal(t, ast.MergeInsert, m.NotMatched[0].Kind)
	require.Len(t, m.NotMatched[0].Columns, 2)
	require.Equal(t, ast.MergeInsertStar, m.NotMatched[1].Kind)

	stmt, err = parser.ParseStatement("MERGE INTO t USING (SELECT * FROM s) src ON t.id = src.id WHEN MATCHED THEN UPDATE SET *", parser.DefaultConfig)
	require.NoError(t, err)
	m = stmt.(*ast.MergeIntoTable)
	require.NotNil(t, m.SourceQuery)
	require.Equal(t, ast.MergeUpdateStar, m.Matched[0].Kind)

	for _, tt := range []struct {
		sql  string
		code int
		msg  string
	}{
		{
			"MERGE INTO t USING s ON t.id = s.id",
			int(parser.CodeInvalidStatement),
			"There must be at least one WHEN clause in a MERGE statement",
		},
		{
			"MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE WHEN MATCHED AND s.x THEN UPDATE SET *",
			int(parser.CodeInvalidStatement),
			"only the last MATCHED clause can omit the condition",
		},
		{
			"MERGE INTO t USING s ON t.id = s.id WHEN NOT MATCHED THEN INSERT * WHEN NOT MATCHED AND s.x THEN INSERT *",
			int(parser.CodeInvalidStatement),
			"only the last NOT MATCHED clause can omit the condition",
		},
		{
			"MERGE INTO t USING s ON t.id = s.id WHEN NOT MATCHED THEN INSERT * WHEN MATCHED THEN DELETE",
			int(parser.CodeUnexpectedToken),
			"mismatched input 'WHEN'",
		},
		{
			"MERGE INTO t AS x(a) USING s ON t.id = s.id WHEN MATCHED THEN DELETE",
			int(parser.CodeInvalidStatement),
			"Columns aliases are not allowed in MERGE.",
		},
	} {
		_, err := parser.ParseStatement(tt.sql, parser.DefaultConfig)
		require.Error(t, err, tt.sql)
		se, ok := parser.AsSyntaxError(err)
		require.True(t, ok)
		require.Equal(t, tt.code, int(se.Code), tt.sql)
		require.Contains(t, err.Error(), tt.msg)
	}
}

func TestDuplicateClauses(t *testing.T) {
	for _, tt := range []struct {
		sql, clause string
	}{
		{"CREATE TABLE t (a INT) USING parquet COMMENT 'a' COMMENT 'b'", "COMMENT"},
		{"CREATE TABLE t (a INT) USING parquet OPTIONS (a 1) LOCATION '/x' OPTIONS (b 2)", "OPTIONS"},
		{"CREATE TABLE t (a INT) STORED AS ORC STORED AS PARQUET", "STORED AS/BY"},
		{"CREATE DATABASE d LOCATION '/a' LOCATION '/b'", "LOCATION"},
	} {
		_, err := parser.ParseStatement(tt.sql, parser.DefaultConfig)
		require.Error(t, err, tt.sql)
		require.True(t, parser.IsCode(err, parser.CodeDuplicateClause), err.Error())
		require.Contains(t, err.Error(), "Found duplicate clauses: "+tt.clause)
	}
}

func TestStatementErrors(t *testing.T) {
	for _, tt := range []struct {
		sql, msg string
	}{
		{"ANALYZE TABLE t COMPUTE STATISTICS FULLSCAN", "Expected `NOSCAN` instead of `FULLSCAN`"},
		{"CREATE FUNCTION f AS 'x' USING WHEEL '/w'", "Operation not allowed: CREATE FUNCTION with resource type 'wheel'"},
		{"SHOW BUILTIN FUNCTIONS", "SHOW BUILTIN FUNCTIONS not supported"},
		{"SET TIME ZONE 5", "Invalid time zone displacement value"},
		{"REFRESH", "Resource paths cannot be empty in REFRESH statements"},
		{"REFRESH /a b", "REFRESH statements cannot contain"},
		{"SELECT * FROM t TABLESAMPLE (150 PERCENT)", "Sampling fraction (1.5) must be on interval [0, 1]"},
		{"CACHE TABLE db.t AS SELECT 1", "It is not allowed to add database prefix `db` to the table name in CACHE TABLE AS SELECT"},
		{"SELECT a LIKE 'x' ESCAPE 'ab' FROM t", "Escape string must contain only one character."},
	} {
		_, err := parser.ParseStatement(tt.sql, parser.DefaultConfig)
		require.Error(t, err, tt.sql)
		require.Contains(t, err.Error(), tt.msg, tt.sql)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := parser.ParseStatement("SELECT a FROM t WHERE", parser.DefaultConfig)
	require.Error(t, err)
	se, ok := parser.AsSyntaxError(err)
	require.True(t, ok)
	require.Equal(t, 1, se.Pos.Line)
	require.Equal(t, 22, se.Pos.Column)

	_, err = parser.ParseStatement("DROP TABLE t extra", parser.DefaultConfig)
	require.Error(t, err)
	require.Equal(t, "[parser:1001]line 1:14 mismatched input 'extra' expecting <EOF>", err.Error())

	_, err = parser.ParseStatement("FROBNICATE t", parser.DefaultConfig)
	require.Error(t, err)
	se, ok = parser.AsSyntaxError(err)
	require.True(t, ok)
	require.Contains(t, se.Expected, "'SELECT'")
	require.Contains(t, err.Error(), "expecting {")
}

func TestParseDataType(t *testing.T) {
	dt, err := parser.ParseDataType("map<string, array<decimal(10, 2)>>", parser.DefaultConfig)
	require.NoError(t, err)
	require.Equal(t, "MAP", dt.Name)
	require.Equal(t, "STRING", dt.Key.Name)
	require.Equal(t, "ARRAY", dt.Value.Name)
	require.Equal(t, []int{10, 2}, dt.Value.Elem.Params)

	for _, tt := range []struct {
		in, msg string
	}{
		{"varchar", "DataType varchar is not supported."},
		{"int(3)", "DataType int(3) is not supported."},
		{"geometry", "DataType geometry is not supported."},
	} {
		_, err := parser.ParseDataType(tt.in, parser.DefaultConfig)
		require.Error(t, err, tt.in)
		require.True(t, parser.IsCode(err, parser.CodeUnsupportedType), err.Error())
		require.Contains(t, err.Error(), tt.msg)
	}

	_, err = parser.ParseDataType("array<int", parser.DefaultConfig)
	require.Error(t, err)
}

func TestParseTableSchema(t *testing.T) {
	cols, err := parser.ParseTableSchema("a INT NOT NULL, b STRING COMMENT 'name'", parser.DefaultConfig)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "a", cols[0].Name.Name())
	require.True(t, cols[0].NotNull)
	require.Equal(t, "STRING", cols[1].Type.Name)
	require.Equal(t, "name", *cols[1].Comment)

	cols, err = parser.ParseTableSchema("struct<a: int, b: array<string>>", parser.DefaultConfig)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "b", cols[1].Name.Name())
	require.Equal(t, "ARRAY", cols[1].Type.Name)

	cols, err = parser.ParseTableSchema("struct<>", parser.DefaultConfig)
	require.NoError(t, err)
	require.Empty(t, cols)

	_, err = parser.ParseTableSchema("a INT,", parser.DefaultConfig)
	require.Error(t, err)
}
