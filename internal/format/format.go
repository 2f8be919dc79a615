// Package format renders a Spark SQL AST back to canonical SQL text. The
// output parses back to a structurally equal tree.
package format

import (
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
)

// Format returns the SQL string representation of the statements.
func Format(stmts []ast.Statement) string {
	var sb strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteString("\n")
		}
		Statement(&sb, stmt)
		sb.WriteString(";")
	}
	return sb.String()
}

// Statement formats a single statement.
func Statement(sb *strings.Builder, stmt ast.Statement) {
	if stmt == nil {
		return
	}

	switch s := stmt.(type) {
	case *ast.Query:
		formatQuery(sb, s)
	case *ast.InsertStatement:
		formatInsert(sb, s)
	case *ast.MultiInsertStatement:
		formatMultiInsert(sb, s)
	case *ast.DeleteFromTable:
		formatDelete(sb, s)
	case *ast.UpdateTable:
		formatUpdate(sb, s)
	case *ast.MergeIntoTable:
		formatMerge(sb, s)

	case *ast.Use:
		formatUse(sb, s)
	case *ast.CreateNamespace:
		formatCreateNamespace(sb, s)
	case *ast.SetNamespaceProperties:
		formatSetNamespaceProperties(sb, s)
	case *ast.SetNamespaceLocation:
		formatSetNamespaceLocation(sb, s)
	case *ast.DropNamespace:
		formatDropNamespace(sb, s)
	case *ast.ShowNamespaces:
		formatShowNamespaces(sb, s)

	case *ast.CreateTable:
		formatCreateTable(sb, s)
	case *ast.CreateHiveTable:
		formatCreateHiveTable(sb, s)
	case *ast.CreateTableLike:
		formatCreateTableLike(sb, s)
	case *ast.ReplaceTable:
		formatReplaceTable(sb, s)
	case *ast.Analyze:
		formatAnalyze(sb, s)
	case *ast.AddTableColumns:
		formatAddTableColumns(sb, s)
	case *ast.RenameTableColumn:
		formatRenameTableColumn(sb, s)
	case *ast.DropTableColumns:
		formatDropTableColumns(sb, s)
	case *ast.RenameTable:
		formatRenameTable(sb, s)
	case *ast.SetTableProperties:
		formatSetTableProperties(sb, s)
	case *ast.UnsetTableProperties:
		formatUnsetTableProperties(sb, s)
	case *ast.AlterTableAlterColumn:
		formatAlterColumn(sb, s)
	case *ast.HiveChangeColumn:
		formatHiveChangeColumn(sb, s)
	case *ast.HiveReplaceColumns:
		formatHiveReplaceColumns(sb, s)
	case *ast.SetTableSerDe:
		formatSetTableSerDe(sb, s)
	case *ast.AddTablePartition:
		formatAddTablePartition(sb, s)
	case *ast.RenameTablePartition:
		formatRenameTablePartition(sb, s)
	case *ast.DropTablePartitions:
		formatDropTablePartitions(sb, s)
	case *ast.SetTableLocation:
		formatSetTableLocation(sb, s)
	case *ast.RecoverPartitions:
		sb.WriteString("ALTER TABLE ")
		Identifier(sb, s.Table)
		sb.WriteString(" RECOVER PARTITIONS")
	case *ast.DropTable:
		formatDropTable(sb, s)
	case *ast.DropView:
		formatDropView(sb, s)
	case *ast.CreateView:
		formatCreateView(sb, s)
	case *ast.CreateTempViewUsing:
		formatCreateTempViewUsing(sb, s)
	case *ast.AlterViewQuery:
		sb.WriteString("ALTER VIEW ")
		Identifier(sb, s.Name)
		sb.WriteString(" AS ")
		formatQuery(sb, s.Query)
	case *ast.CreateFunction:
		formatCreateFunction(sb, s)
	case *ast.DropFunction:
		formatDropFunction(sb, s)

	case *ast.Explain:
		sb.WriteString("EXPLAIN ")
		if s.Mode != "" {
			sb.WriteString(s.Mode)
			sb.WriteString(" ")
		}
		Statement(sb, s.Statement)

	case *ast.ShowTables:
		formatShowTables(sb, s)
	case *ast.ShowTableExtended:
		formatShowTableExtended(sb, s)
	case *ast.ShowTblProperties:
		formatShowTblProperties(sb, s)
	case *ast.ShowColumns:
		formatShowColumns(sb, s)
	case *ast.ShowViews:
		formatShowViews(sb, s)
	case *ast.ShowPartitions:
		formatShowPartitions(sb, s)
	case *ast.ShowFunctions:
		formatShowFunctions(sb, s)
	case *ast.ShowCreateTable:
		formatShowCreateTable(sb, s)
	case *ast.ShowCurrentNamespace:
		sb.WriteString("SHOW CURRENT NAMESPACE")

	case *ast.DescribeFunction:
		formatDescribeFunction(sb, s)
	case *ast.DescribeNamespace:
		formatDescribeNamespace(sb, s)
	case *ast.DescribeRelation:
		formatDescribeRelation(sb, s)
	case *ast.DescribeQuery:
		sb.WriteString("DESCRIBE QUERY ")
		formatQuery(sb, s.Query)

	case *ast.CommentNamespace:
		sb.WriteString("COMMENT ON ")
		sb.WriteString(s.Kind)
		sb.WriteString(" ")
		Identifier(sb, s.Name)
		formatCommentValue(sb, s.Comment)
	case *ast.CommentTable:
		sb.WriteString("COMMENT ON TABLE ")
		Identifier(sb, s.Name)
		formatCommentValue(sb, s.Comment)

	case *ast.RefreshTable:
		sb.WriteString("REFRESH TABLE ")
		Identifier(sb, s.Name)
	case *ast.RefreshFunction:
		sb.WriteString("REFRESH FUNCTION ")
		Identifier(sb, s.Name)
	case *ast.RefreshResource:
		sb.WriteString("REFRESH ")
		if s.Quoted {
			String(sb, s.Path)
		} else {
			sb.WriteString(s.Path)
		}
	case *ast.CacheTable:
		formatCacheTable(sb, s)
	case *ast.UncacheTable:
		sb.WriteString("UNCACHE TABLE ")
		if s.IfExists {
			sb.WriteString("IF EXISTS ")
		}
		Identifier(sb, s.Name)
	case *ast.ClearCache:
		sb.WriteString("CLEAR CACHE")
	case *ast.LoadData:
		formatLoadData(sb, s)
	case *ast.TruncateTable:
		sb.WriteString("TRUNCATE TABLE ")
		Identifier(sb, s.Table)
		formatOptPartition(sb, s.Partition)
	case *ast.RepairTable:
		sb.WriteString("MSCK REPAIR TABLE ")
		Identifier(sb, s.Table)
		if s.Option != "" {
			sb.WriteString(" ")
			sb.WriteString(s.Option)
			sb.WriteString(" PARTITIONS")
		}
	case *ast.ManageResource:
		sb.WriteString(s.Op)
		sb.WriteString(" ")
		Identifier(sb, s.Type)
		if s.Args != "" {
			sb.WriteString(" ")
			sb.WriteString(s.Args)
		}

	case *ast.SetTimeZone:
		formatSetTimeZone(sb, s)
	case *ast.SetConfiguration:
		sb.WriteString("SET")
		if s.Key != "" || s.Value != nil {
			sb.WriteString(" ")
			sb.WriteString(s.Key)
		}
		if s.Value != nil {
			sb.WriteString("=")
			sb.WriteString(*s.Value)
		}
	case *ast.ResetConfiguration:
		sb.WriteString("RESET")
		if s.Key != "" {
			sb.WriteString(" ")
			sb.WriteString(s.Key)
		}
	case *ast.UnsupportedCommand:
		sb.WriteString(s.Text)
	}
}

// Identifier writes a dotted name, back-quoting the parts that were quoted
// in the source.
func Identifier(sb *strings.Builder, id *ast.Identifier) {
	if id == nil {
		return
	}
	for i, part := range id.Parts {
		if i > 0 {
			sb.WriteString(".")
		}
		if i < len(id.Quoted) && id.Quoted[i] {
			sb.WriteString("`")
			sb.WriteString(strings.ReplaceAll(part, "`", "``"))
			sb.WriteString("`")
			continue
		}
		sb.WriteString(part)
	}
}

func identifierList(sb *strings.Builder, ids []*ast.Identifier) {
	sb.WriteString("(")
	identifierSeq(sb, ids)
	sb.WriteString(")")
}

func identifierSeq(sb *strings.Builder, ids []*ast.Identifier) {
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, id)
	}
}

// String writes s as a single quoted literal using backslash escapes.
func String(sb *strings.Builder, s string) {
	sb.WriteString("'")
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\x1a':
			sb.WriteString(`\Z`)
		case 0:
			sb.WriteString(`\000`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString("'")
}

func optString(sb *strings.Builder, prefix string, s *string) {
	if s == nil {
		return
	}
	sb.WriteString(prefix)
	String(sb, *s)
}
