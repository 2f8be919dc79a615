package format

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
)

// -----------------------------------------------------------------------------
// DML

func formatInsert(sb *strings.Builder, s *ast.InsertStatement) {
	formatWith(sb, s.With)
	formatInsertTarget(sb, s.Target)
	sb.WriteString(" ")
	formatQuery(sb, s.Query)
}

func formatInsertTarget(sb *strings.Builder, t *ast.InsertTarget) {
	sb.WriteString("INSERT ")
	switch t.Kind {
	case ast.InsertInto, ast.InsertOverwrite:
		sb.WriteString(string(t.Kind))
		sb.WriteString(" TABLE ")
		Identifier(sb, t.Table)
		formatOptPartition(sb, t.Partition)
		if t.IfNotExists {
			sb.WriteString(" IF NOT EXISTS")
		}
	case ast.InsertOverwriteDir, ast.InsertOverwriteHiveDir:
		sb.WriteString("OVERWRITE ")
		if t.Local {
			sb.WriteString("LOCAL ")
		}
		sb.WriteString("DIRECTORY")
		optString(sb, " ", t.Path)
		if t.Kind == ast.InsertOverwriteDir {
			sb.WriteString(" USING ")
			Identifier(sb, t.Provider)
			if len(t.Options) > 0 {
				sb.WriteString(" OPTIONS ")
				formatProperties(sb, t.Options)
			}
			return
		}
		if t.RowFormat != nil {
			sb.WriteString(" ")
			formatRowFormat(sb, t.RowFormat)
		}
		if t.FileFormat != nil {
			sb.WriteString(" ")
			formatFileFormat(sb, t.FileFormat)
		}
	}
}

func formatMultiInsert(sb *strings.Builder, s *ast.MultiInsertStatement) {
	formatWith(sb, s.With)
	formatFromClause(sb, s.From)
	for _, body := range s.Bodies {
		sb.WriteString(" ")
		formatInsertTarget(sb, body.Target)
		sb.WriteString(" ")
		formatQuery(sb, body.Body)
	}
}

func formatDelete(sb *strings.Builder, s *ast.DeleteFromTable) {
	sb.WriteString("DELETE FROM ")
	Identifier(sb, s.Table)
	formatTableAlias(sb, s.Alias)
	if s.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, s.Where)
	}
}

func formatUpdate(sb *strings.Builder, s *ast.UpdateTable) {
	sb.WriteString("UPDATE ")
	Identifier(sb, s.Table)
	formatTableAlias(sb, s.Alias)
	sb.WriteString(" SET ")
	formatAssignments(sb, s.Assignments)
	if s.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, s.Where)
	}
}

func formatAssignments(sb *strings.Builder, list []*ast.Assignment) {
	for i, a := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, a.Column)
		sb.WriteString(" = ")
		Expression(sb, a.Value)
	}
}

func formatMerge(sb *strings.Builder, s *ast.MergeIntoTable) {
	sb.WriteString("MERGE INTO ")
	Identifier(sb, s.Target)
	formatTableAlias(sb, s.TargetAlias)
	sb.WriteString(" USING ")
	if s.SourceQuery != nil {
		sb.WriteString("(")
		formatQuery(sb, s.SourceQuery)
		sb.WriteString(")")
	} else {
		Identifier(sb, s.SourceTable)
	}
	formatTableAlias(sb, s.SourceAlias)
	sb.WriteString(" ON ")
	Expression(sb, s.On)
	for _, a := range s.Matched {
		sb.WriteString(" WHEN MATCHED")
		formatMergeAction(sb, a)
	}
	for _, a := range s.NotMatched {
		sb.WriteString(" WHEN NOT MATCHED")
		formatMergeAction(sb, a)
	}
}

func formatMergeAction(sb *strings.Builder, a *ast.MergeAction) {
	if a.Condition != nil {
		sb.WriteString(" AND ")
		Expression(sb, a.Condition)
	}
	sb.WriteString(" THEN ")
	switch a.Kind {
	case ast.MergeDelete:
		sb.WriteString("DELETE")
	case ast.MergeUpdateStar:
		sb.WriteString("UPDATE SET *")
	case ast.MergeUpdate:
		sb.WriteString("UPDATE SET ")
		formatAssignments(sb, a.Assignments)
	case ast.MergeInsertStar:
		sb.WriteString("INSERT *")
	case ast.MergeInsert:
		sb.WriteString("INSERT ")
		identifierList(sb, a.Columns)
		sb.WriteString(" VALUES (")
		expressionList(sb, a.Values)
		sb.WriteString(")")
	}
}

// -----------------------------------------------------------------------------
// Namespaces

func formatUse(sb *strings.Builder, s *ast.Use) {
	sb.WriteString("USE ")
	if s.Namespace {
		sb.WriteString("NAMESPACE ")
	}
	Identifier(sb, s.Name)
}

func formatCreateNamespace(sb *strings.Builder, s *ast.CreateNamespace) {
	sb.WriteString("CREATE ")
	sb.WriteString(s.Kind)
	if s.IfNotExists {
		sb.WriteString(" IF NOT EXISTS")
	}
	sb.WriteString(" ")
	Identifier(sb, s.Name)
	optString(sb, " COMMENT ", s.Comment)
	optString(sb, " LOCATION ", s.Location)
	if s.PropertiesKeyword != "" {
		sb.WriteString(" WITH ")
		sb.WriteString(s.PropertiesKeyword)
		sb.WriteString(" ")
		formatProperties(sb, s.Properties)
	}
}

func formatSetNamespaceProperties(sb *strings.Builder, s *ast.SetNamespaceProperties) {
	sb.WriteString("ALTER ")
	sb.WriteString(s.Kind)
	sb.WriteString(" ")
	Identifier(sb, s.Name)
	sb.WriteString(" SET ")
	sb.WriteString(s.PropertiesKeyword)
	sb.WriteString(" ")
	formatProperties(sb, s.Properties)
}

func formatSetNamespaceLocation(sb *strings.Builder, s *ast.SetNamespaceLocation) {
	sb.WriteString("ALTER ")
	sb.WriteString(s.Kind)
	sb.WriteString(" ")
	Identifier(sb, s.Name)
	sb.WriteString(" SET LOCATION ")
	String(sb, s.Location)
}

func formatDropNamespace(sb *strings.Builder, s *ast.DropNamespace) {
	sb.WriteString("DROP ")
	sb.WriteString(s.Kind)
	if s.IfExists {
		sb.WriteString(" IF EXISTS")
	}
	sb.WriteString(" ")
	Identifier(sb, s.Name)
	switch {
	case s.Restrict:
		sb.WriteString(" RESTRICT")
	case s.Cascade:
		sb.WriteString(" CASCADE")
	}
}

func formatShowIn(sb *strings.Builder, in *ast.Identifier) {
	if in == nil {
		return
	}
	sb.WriteString(" IN ")
	Identifier(sb, in)
}

func formatShowPattern(sb *strings.Builder, pattern *string) {
	optString(sb, " LIKE ", pattern)
}

func formatShowNamespaces(sb *strings.Builder, s *ast.ShowNamespaces) {
	sb.WriteString("SHOW ")
	sb.WriteString(s.Keyword)
	formatShowIn(sb, s.In)
	formatShowPattern(sb, s.Pattern)
}

// -----------------------------------------------------------------------------
// Tables

func formatCreateTableHeader(sb *strings.Builder, h *ast.CreateTableHeader) {
	sb.WriteString("CREATE ")
	if h.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	if h.External {
		sb.WriteString("EXTERNAL ")
	}
	sb.WriteString("TABLE ")
	if h.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	Identifier(sb, h.Name)
}

func formatColumnSchema(sb *strings.Builder, cols []*ast.ColumnDef) {
	if len(cols) == 0 {
		return
	}
	sb.WriteString(" (")
	columnDefs(sb, cols)
	sb.WriteString(")")
}

func formatAsQuery(sb *strings.Builder, q *ast.Query) {
	if q == nil {
		return
	}
	sb.WriteString(" AS ")
	formatQuery(sb, q)
}

func formatCreateTable(sb *strings.Builder, s *ast.CreateTable) {
	formatCreateTableHeader(sb, s.Header)
	formatColumnSchema(sb, s.Columns)
	sb.WriteString(" USING ")
	Identifier(sb, s.Provider)
	formatTableClauses(sb, s.Clauses)
	formatAsQuery(sb, s.AsQuery)
}

func formatCreateHiveTable(sb *strings.Builder, s *ast.CreateHiveTable) {
	formatCreateTableHeader(sb, s.Header)
	formatColumnSchema(sb, s.Columns)
	formatTableClauses(sb, s.Clauses)
	formatAsQuery(sb, s.AsQuery)
}

func formatCreateTableLike(sb *strings.Builder, s *ast.CreateTableLike) {
	sb.WriteString("CREATE TABLE ")
	if s.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	Identifier(sb, s.Target)
	sb.WriteString(" LIKE ")
	Identifier(sb, s.Source)
	if s.Provider != nil {
		sb.WriteString(" USING ")
		Identifier(sb, s.Provider)
	}
	formatTableClauses(sb, s.Clauses)
}

func formatReplaceTable(sb *strings.Builder, s *ast.ReplaceTable) {
	if s.OrCreate {
		sb.WriteString("CREATE OR ")
	}
	sb.WriteString("REPLACE TABLE ")
	Identifier(sb, s.Name)
	formatColumnSchema(sb, s.Columns)
	sb.WriteString(" USING ")
	Identifier(sb, s.Provider)
	formatTableClauses(sb, s.Clauses)
	formatAsQuery(sb, s.AsQuery)
}

func formatAnalyze(sb *strings.Builder, s *ast.Analyze) {
	sb.WriteString("ANALYZE TABLE ")
	Identifier(sb, s.Table)
	formatOptPartition(sb, s.Partition)
	sb.WriteString(" COMPUTE STATISTICS")
	switch {
	case s.NoScan:
		sb.WriteString(" NOSCAN")
	case s.ForAllColumns:
		sb.WriteString(" FOR ALL COLUMNS")
	case len(s.ForColumns) > 0:
		sb.WriteString(" FOR COLUMNS ")
		identifierSeq(sb, s.ForColumns)
	}
}

func formatDropTable(sb *strings.Builder, s *ast.DropTable) {
	sb.WriteString("DROP TABLE ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	Identifier(sb, s.Name)
	if s.Purge {
		sb.WriteString(" PURGE")
	}
}

func formatDropView(sb *strings.Builder, s *ast.DropView) {
	sb.WriteString("DROP VIEW ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	Identifier(sb, s.Name)
}

// -----------------------------------------------------------------------------
// ALTER TABLE

func alterPrefix(sb *strings.Builder, view bool, name *ast.Identifier) {
	if view {
		sb.WriteString("ALTER VIEW ")
	} else {
		sb.WriteString("ALTER TABLE ")
	}
	Identifier(sb, name)
}

func formatAddTableColumns(sb *strings.Builder, s *ast.AddTableColumns) {
	alterPrefix(sb, false, s.Table)
	sb.WriteString(" ADD COLUMNS (")
	qualifiedColumns(sb, s.Columns)
	sb.WriteString(")")
}

func formatRenameTableColumn(sb *strings.Builder, s *ast.RenameTableColumn) {
	alterPrefix(sb, false, s.Table)
	sb.WriteString(" RENAME COLUMN ")
	Identifier(sb, s.From)
	sb.WriteString(" TO ")
	Identifier(sb, s.To)
}

func formatDropTableColumns(sb *strings.Builder, s *ast.DropTableColumns) {
	alterPrefix(sb, false, s.Table)
	sb.WriteString(" DROP COLUMNS ")
	identifierList(sb, s.Columns)
}

func formatRenameTable(sb *strings.Builder, s *ast.RenameTable) {
	alterPrefix(sb, s.View, s.From)
	sb.WriteString(" RENAME TO ")
	Identifier(sb, s.To)
}

func formatSetTableProperties(sb *strings.Builder, s *ast.SetTableProperties) {
	alterPrefix(sb, s.View, s.Table)
	sb.WriteString(" SET TBLPROPERTIES ")
	formatProperties(sb, s.Properties)
}

func formatUnsetTableProperties(sb *strings.Builder, s *ast.UnsetTableProperties) {
	alterPrefix(sb, s.View, s.Table)
	sb.WriteString(" UNSET TBLPROPERTIES ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	formatProperties(sb, s.Properties)
}

func formatAlterColumn(sb *strings.Builder, s *ast.AlterTableAlterColumn) {
	alterPrefix(sb, false, s.Table)
	if s.Change {
		sb.WriteString(" CHANGE COLUMN ")
	} else {
		sb.WriteString(" ALTER COLUMN ")
	}
	Identifier(sb, s.Column)
	a := s.Action
	if a == nil {
		return
	}
	switch {
	case a.Type != nil:
		sb.WriteString(" TYPE ")
		DataType(sb, a.Type)
	case a.Comment != nil:
		optString(sb, " COMMENT ", a.Comment)
	case a.Place != nil:
		formatColumnPosition(sb, a.Place)
	case a.SetNotNull:
		sb.WriteString(" SET NOT NULL")
	case a.DropNotNull:
		sb.WriteString(" DROP NOT NULL")
	}
}

func formatHiveChangeColumn(sb *strings.Builder, s *ast.HiveChangeColumn) {
	alterPrefix(sb, false, s.Table)
	formatOptPartition(sb, s.Partition)
	sb.WriteString(" CHANGE COLUMN ")
	Identifier(sb, s.Column)
	sb.WriteString(" ")
	columnDefs(sb, []*ast.ColumnDef{s.NewColumn})
	formatColumnPosition(sb, s.Place)
}

func formatHiveReplaceColumns(sb *strings.Builder, s *ast.HiveReplaceColumns) {
	alterPrefix(sb, false, s.Table)
	formatOptPartition(sb, s.Partition)
	sb.WriteString(" REPLACE COLUMNS (")
	qualifiedColumns(sb, s.Columns)
	sb.WriteString(")")
}

func formatSetTableSerDe(sb *strings.Builder, s *ast.SetTableSerDe) {
	alterPrefix(sb, false, s.Table)
	formatOptPartition(sb, s.Partition)
	if s.Serde != nil {
		optString(sb, " SET SERDE ", s.Serde)
		if len(s.Properties) > 0 {
			sb.WriteString(" WITH SERDEPROPERTIES ")
			formatProperties(sb, s.Properties)
		}
		return
	}
	sb.WriteString(" SET SERDEPROPERTIES ")
	formatProperties(sb, s.Properties)
}

func formatAddTablePartition(sb *strings.Builder, s *ast.AddTablePartition) {
	alterPrefix(sb, s.View, s.Table)
	sb.WriteString(" ADD")
	if s.IfNotExists {
		sb.WriteString(" IF NOT EXISTS")
	}
	for _, pl := range s.Partitions {
		sb.WriteString(" ")
		formatPartitionSpec(sb, pl.Spec)
		optString(sb, " LOCATION ", pl.Location)
	}
}

func formatRenameTablePartition(sb *strings.Builder, s *ast.RenameTablePartition) {
	alterPrefix(sb, false, s.Table)
	sb.WriteString(" ")
	formatPartitionSpec(sb, s.From)
	sb.WriteString(" RENAME TO ")
	formatPartitionSpec(sb, s.To)
}

func formatDropTablePartitions(sb *strings.Builder, s *ast.DropTablePartitions) {
	alterPrefix(sb, s.View, s.Table)
	sb.WriteString(" DROP ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	for i, spec := range s.Partitions {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatPartitionSpec(sb, spec)
	}
	if s.Purge {
		sb.WriteString(" PURGE")
	}
}

func formatSetTableLocation(sb *strings.Builder, s *ast.SetTableLocation) {
	alterPrefix(sb, false, s.Table)
	formatOptPartition(sb, s.Partition)
	sb.WriteString(" SET LOCATION ")
	String(sb, s.Location)
}

// -----------------------------------------------------------------------------
// Views and functions

func formatCreateView(sb *strings.Builder, s *ast.CreateView) {
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	if s.Global {
		sb.WriteString("GLOBAL ")
	}
	if s.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	sb.WriteString("VIEW ")
	if s.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	Identifier(sb, s.Name)
	if len(s.Columns) > 0 {
		sb.WriteString(" (")
		for i, c := range s.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			Identifier(sb, c.Name)
			optString(sb, " COMMENT ", c.Comment)
		}
		sb.WriteString(")")
	}
	optString(sb, " COMMENT ", s.Comment)
	if len(s.PartitionedOn) > 0 {
		sb.WriteString(" PARTITIONED ON ")
		identifierList(sb, s.PartitionedOn)
	}
	if len(s.Properties) > 0 {
		sb.WriteString(" TBLPROPERTIES ")
		formatProperties(sb, s.Properties)
	}
	sb.WriteString(" AS ")
	formatQuery(sb, s.Query)
}

func formatCreateTempViewUsing(sb *strings.Builder, s *ast.CreateTempViewUsing) {
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	if s.Global {
		sb.WriteString("GLOBAL ")
	}
	sb.WriteString("TEMPORARY VIEW ")
	Identifier(sb, s.Name)
	formatColumnSchema(sb, s.Columns)
	sb.WriteString(" USING ")
	Identifier(sb, s.Provider)
	if len(s.Options) > 0 {
		sb.WriteString(" OPTIONS ")
		formatProperties(sb, s.Options)
	}
}

func formatCreateFunction(sb *strings.Builder, s *ast.CreateFunction) {
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	if s.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	sb.WriteString("FUNCTION ")
	if s.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	Identifier(sb, s.Name)
	sb.WriteString(" AS ")
	String(sb, s.ClassName)
	for i, r := range s.Resources {
		if i == 0 {
			sb.WriteString(" USING ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(r.Type)
		sb.WriteString(" ")
		String(sb, r.URI)
	}
}

func formatDropFunction(sb *strings.Builder, s *ast.DropFunction) {
	sb.WriteString("DROP ")
	if s.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	sb.WriteString("FUNCTION ")
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	Identifier(sb, s.Name)
}

// -----------------------------------------------------------------------------
// SHOW and DESCRIBE

func formatShowTables(sb *strings.Builder, s *ast.ShowTables) {
	sb.WriteString("SHOW TABLES")
	formatShowIn(sb, s.In)
	formatShowPattern(sb, s.Pattern)
}

func formatShowTableExtended(sb *strings.Builder, s *ast.ShowTableExtended) {
	sb.WriteString("SHOW TABLE EXTENDED")
	formatShowIn(sb, s.In)
	sb.WriteString(" LIKE ")
	String(sb, s.Pattern)
	formatOptPartition(sb, s.Partition)
}

func formatShowTblProperties(sb *strings.Builder, s *ast.ShowTblProperties) {
	sb.WriteString("SHOW TBLPROPERTIES ")
	Identifier(sb, s.Table)
	if s.Key != nil {
		sb.WriteString("(")
		formatPropertyKey(sb, s.Key)
		sb.WriteString(")")
	}
}

func formatShowColumns(sb *strings.Builder, s *ast.ShowColumns) {
	sb.WriteString("SHOW COLUMNS IN ")
	Identifier(sb, s.Table)
	formatShowIn(sb, s.In)
}

func formatShowViews(sb *strings.Builder, s *ast.ShowViews) {
	sb.WriteString("SHOW VIEWS")
	formatShowIn(sb, s.In)
	formatShowPattern(sb, s.Pattern)
}

func formatShowPartitions(sb *strings.Builder, s *ast.ShowPartitions) {
	sb.WriteString("SHOW PARTITIONS ")
	Identifier(sb, s.Table)
	formatOptPartition(sb, s.Partition)
}

func formatShowFunctions(sb *strings.Builder, s *ast.ShowFunctions) {
	sb.WriteString("SHOW ")
	if s.Scope != nil {
		Identifier(sb, s.Scope)
		sb.WriteString(" ")
	}
	sb.WriteString("FUNCTIONS")
	switch {
	case s.Pattern != nil:
		formatShowPattern(sb, s.Pattern)
	case s.Name != nil:
		sb.WriteString(" ")
		Identifier(sb, s.Name)
	}
}

func formatShowCreateTable(sb *strings.Builder, s *ast.ShowCreateTable) {
	sb.WriteString("SHOW CREATE TABLE ")
	Identifier(sb, s.Table)
	if s.AsSerde {
		sb.WriteString(" AS SERDE")
	}
}

func formatDescribeFunction(sb *strings.Builder, s *ast.DescribeFunction) {
	sb.WriteString("DESCRIBE FUNCTION ")
	if s.Extended {
		sb.WriteString("EXTENDED ")
	}
	if s.StringName {
		String(sb, s.Name)
		return
	}
	sb.WriteString(s.Name)
}

func formatDescribeNamespace(sb *strings.Builder, s *ast.DescribeNamespace) {
	sb.WriteString("DESCRIBE ")
	sb.WriteString(s.Kind)
	if s.Extended {
		sb.WriteString(" EXTENDED")
	}
	sb.WriteString(" ")
	Identifier(sb, s.Name)
}

func formatDescribeRelation(sb *strings.Builder, s *ast.DescribeRelation) {
	sb.WriteString("DESCRIBE TABLE ")
	if s.Option != "" {
		sb.WriteString(s.Option)
		sb.WriteString(" ")
	}
	Identifier(sb, s.Table)
	formatOptPartition(sb, s.Partition)
	if s.Column != nil {
		sb.WriteString(" ")
		Identifier(sb, s.Column)
	}
}

// -----------------------------------------------------------------------------
// Miscellaneous commands

func formatCommentValue(sb *strings.Builder, comment *string) {
	if comment == nil {
		sb.WriteString(" IS NULL")
		return
	}
	optString(sb, " IS ", comment)
}

func formatCacheTable(sb *strings.Builder, s *ast.CacheTable) {
	sb.WriteString("CACHE ")
	if s.Lazy {
		sb.WriteString("LAZY ")
	}
	sb.WriteString("TABLE ")
	Identifier(sb, s.Name)
	if len(s.Options) > 0 {
		sb.WriteString(" OPTIONS ")
		formatProperties(sb, s.Options)
	}
	formatAsQuery(sb, s.Query)
}

func formatLoadData(sb *strings.Builder, s *ast.LoadData) {
	sb.WriteString("LOAD DATA ")
	if s.Local {
		sb.WriteString("LOCAL ")
	}
	sb.WriteString("INPATH ")
	String(sb, s.Path)
	if s.Overwrite {
		sb.WriteString(" OVERWRITE")
	}
	sb.WriteString(" INTO TABLE ")
	Identifier(sb, s.Table)
	formatOptPartition(sb, s.Partition)
}

func formatSetTimeZone(sb *strings.Builder, s *ast.SetTimeZone) {
	sb.WriteString("SET TIME ZONE ")
	switch {
	case s.Interval != nil:
		Expression(sb, s.Interval)
	case s.Zone != nil:
		String(sb, *s.Zone)
	default:
		sb.WriteString("LOCAL")
	}
}
