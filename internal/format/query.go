package format

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/sparksql/ast"
)

// Query formats a query.
func Query(sb *strings.Builder, q *ast.Query) {
	formatQuery(sb, q)
}

func formatQuery(sb *strings.Builder, q *ast.Query) {
	if q == nil {
		return
	}
	formatWith(sb, q.With)
	formatQueryTerm(sb, q.Body)
	formatOrganization(sb, q)
}

func formatWith(sb *strings.Builder, ctes []*ast.CTE) {
	if len(ctes) == 0 {
		return
	}
	sb.WriteString("WITH ")
	for i, cte := range ctes {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, cte.Name)
		if len(cte.Columns) > 0 {
			identifierList(sb, cte.Columns)
		}
		sb.WriteString(" AS (")
		formatQuery(sb, cte.Query)
		sb.WriteString(")")
	}
	sb.WriteString(" ")
}

// formatQueryTerm writes one operand of a set operation. A nested Query
// is always parenthesized; set operations are written flat because the
// tree already encodes the binding the parser produced.
func formatQueryTerm(sb *strings.Builder, term ast.QueryTerm) {
	switch t := term.(type) {
	case *ast.Query:
		sb.WriteString("(")
		formatQuery(sb, t)
		sb.WriteString(")")
	case *ast.SetOperation:
		formatQueryTerm(sb, t.Left)
		sb.WriteString(" ")
		sb.WriteString(string(t.Op))
		if t.Quantifier != "" {
			sb.WriteString(" ")
			sb.WriteString(t.Quantifier)
		}
		sb.WriteString(" ")
		formatQueryTerm(sb, t.Right)
	case *ast.QuerySpecification:
		formatQuerySpecification(sb, t)
	case *ast.FromQuery:
		formatFromClause(sb, t.From)
		for _, body := range t.Bodies {
			sb.WriteString(" ")
			formatQuery(sb, body)
		}
	case *ast.TableQuery:
		sb.WriteString("TABLE ")
		Identifier(sb, t.Name)
	case *ast.InlineTable:
		formatInlineTable(sb, t)
	}
}

func formatOrganization(sb *strings.Builder, q *ast.Query) {
	if len(q.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sortItems(sb, q.OrderBy)
	}
	if len(q.ClusterBy) > 0 {
		sb.WriteString(" CLUSTER BY ")
		expressionList(sb, q.ClusterBy)
	}
	if len(q.DistributeBy) > 0 {
		sb.WriteString(" DISTRIBUTE BY ")
		expressionList(sb, q.DistributeBy)
	}
	if len(q.SortBy) > 0 {
		sb.WriteString(" SORT BY ")
		sortItems(sb, q.SortBy)
	}
	formatWindows(sb, q.Windows)
	switch {
	case q.LimitAll:
		sb.WriteString(" LIMIT ALL")
	case q.Limit != nil:
		sb.WriteString(" LIMIT ")
		Expression(sb, q.Limit)
	}
}

func formatWindows(sb *strings.Builder, windows []*ast.NamedWindow) {
	if len(windows) == 0 {
		return
	}
	sb.WriteString(" WINDOW ")
	for i, w := range windows {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, w.Name)
		sb.WriteString(" AS ")
		formatWindowSpec(sb, w.Spec)
	}
}

func formatQuerySpecification(sb *strings.Builder, q *ast.QuerySpecification) {
	if q.Transform != nil {
		formatTransform(sb, q.Transform)
	} else {
		sb.WriteString("SELECT ")
		formatHints(sb, q.Hints)
		if q.Quantifier != "" {
			sb.WriteString(q.Quantifier)
			sb.WriteString(" ")
		}
		expressionList(sb, q.Columns)
	}
	if q.From != nil {
		sb.WriteString(" ")
		formatFromClause(sb, q.From)
	}
	if q.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, q.Where)
	}
	if q.GroupBy != nil {
		formatGroupBy(sb, q.GroupBy)
	}
	if q.Having != nil {
		sb.WriteString(" HAVING ")
		Expression(sb, q.Having)
	}
	formatWindows(sb, q.Windows)
}

func formatHints(sb *strings.Builder, hints []*ast.Hint) {
	if len(hints) == 0 {
		return
	}
	sb.WriteString("/*+ ")
	for i, h := range hints {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, h.Name)
		if len(h.Params) > 0 {
			sb.WriteString("(")
			expressionList(sb, h.Params)
			sb.WriteString(")")
		}
	}
	sb.WriteString(" */ ")
}

func formatGroupBy(sb *strings.Builder, g *ast.GroupBy) {
	sb.WriteString(" GROUP BY")
	if len(g.Exprs) > 0 {
		sb.WriteString(" ")
		expressionList(sb, g.Exprs)
	}
	switch g.Kind {
	case ast.GroupingRollup:
		sb.WriteString(" WITH ROLLUP")
	case ast.GroupingCube:
		sb.WriteString(" WITH CUBE")
	case ast.GroupingSets:
		sb.WriteString(" GROUPING SETS (")
		for i, set := range g.Sets {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(")
			expressionList(sb, set)
			sb.WriteString(")")
		}
		sb.WriteString(")")
	}
}

func formatTransform(sb *strings.Builder, t *ast.TransformClause) {
	if t.Kind == "TRANSFORM" {
		sb.WriteString("SELECT TRANSFORM(")
		expressionList(sb, t.Exprs)
		sb.WriteString(")")
	} else {
		sb.WriteString(t.Kind)
		sb.WriteString(" ")
		expressionList(sb, t.Exprs)
	}
	if t.InRowFormat != nil {
		sb.WriteString(" ")
		formatRowFormat(sb, t.InRowFormat)
	}
	optString(sb, " RECORDWRITER ", t.RecordWriter)
	sb.WriteString(" USING ")
	String(sb, t.Script)
	if len(t.AsNames) > 0 || len(t.AsColumns) > 0 {
		sb.WriteString(" AS ")
		if t.AsParens {
			sb.WriteString("(")
		}
		if len(t.AsColumns) > 0 {
			columnDefs(sb, t.AsColumns)
		} else {
			identifierSeq(sb, t.AsNames)
		}
		if t.AsParens {
			sb.WriteString(")")
		}
	}
	if t.OutRowFormat != nil {
		sb.WriteString(" ")
		formatRowFormat(sb, t.OutRowFormat)
	}
	optString(sb, " RECORDREADER ", t.RecordReader)
}

// -----------------------------------------------------------------------------
// Relations

func formatFromClause(sb *strings.Builder, f *ast.FromClause) {
	sb.WriteString("FROM ")
	for i, rel := range f.Relations {
		if i > 0 {
			sb.WriteString(", ")
		}
		Relation(sb, rel)
	}
	for _, lv := range f.LateralViews {
		sb.WriteString(" LATERAL VIEW ")
		if lv.Outer {
			sb.WriteString("OUTER ")
		}
		Identifier(sb, lv.Function)
		sb.WriteString("(")
		expressionList(sb, lv.Args)
		sb.WriteString(") ")
		Identifier(sb, lv.Table)
		if len(lv.Columns) > 0 {
			sb.WriteString(" AS ")
			identifierSeq(sb, lv.Columns)
		}
	}
	if pv := f.Pivot; pv != nil {
		sb.WriteString(" PIVOT (")
		expressionList(sb, pv.Aggregates)
		sb.WriteString(" FOR ")
		if len(pv.Columns) == 1 {
			Identifier(sb, pv.Columns[0])
		} else {
			identifierList(sb, pv.Columns)
		}
		sb.WriteString(" IN (")
		expressionList(sb, pv.Values)
		sb.WriteString("))")
	}
}

// Relation formats an item of a FROM clause.
func Relation(sb *strings.Builder, rel ast.Relation) {
	switch r := rel.(type) {
	case *ast.TableName:
		Identifier(sb, r.Name)
		formatSample(sb, r.Sample)
		formatTableAlias(sb, r.Alias)
	case *ast.AliasedQuery:
		sb.WriteString("(")
		formatQuery(sb, r.Query)
		sb.WriteString(")")
		formatSample(sb, r.Sample)
		formatTableAlias(sb, r.Alias)
	case *ast.AliasedRelation:
		sb.WriteString("(")
		Relation(sb, r.Relation)
		sb.WriteString(")")
		formatSample(sb, r.Sample)
		formatTableAlias(sb, r.Alias)
	case *ast.InlineTable:
		formatInlineTable(sb, r)
	case *ast.TableFunction:
		Identifier(sb, r.Name)
		sb.WriteString("(")
		expressionList(sb, r.Args)
		sb.WriteString(")")
		formatTableAlias(sb, r.Alias)
	case *ast.Join:
		Relation(sb, r.Left)
		sb.WriteString(" ")
		if r.Natural {
			sb.WriteString("NATURAL ")
		}
		sb.WriteString(string(r.Type))
		sb.WriteString(" JOIN ")
		Relation(sb, r.Right)
		if r.On != nil {
			sb.WriteString(" ON ")
			Expression(sb, r.On)
		}
		if len(r.Using) > 0 {
			sb.WriteString(" USING ")
			identifierList(sb, r.Using)
		}
	}
}

func formatInlineTable(sb *strings.Builder, t *ast.InlineTable) {
	sb.WriteString("VALUES ")
	expressionList(sb, t.Rows)
	formatTableAlias(sb, t.Alias)
}

func formatTableAlias(sb *strings.Builder, a *ast.TableAlias) {
	if a == nil {
		return
	}
	sb.WriteString(" AS ")
	Identifier(sb, a.Name)
	if len(a.Columns) > 0 {
		identifierList(sb, a.Columns)
	}
}

func formatSample(sb *strings.Builder, s *ast.Sample) {
	if s == nil {
		return
	}
	sb.WriteString(" TABLESAMPLE (")
	switch s.Kind {
	case ast.SamplePercent:
		sb.WriteString(s.Percent)
		sb.WriteString(" PERCENT")
	case ast.SampleBucket:
		sb.WriteString("BUCKET ")
		sb.WriteString(s.Numerator)
		sb.WriteString(" OUT OF ")
		sb.WriteString(s.Denominator)
		if s.On != nil {
			sb.WriteString(" ON ")
			Identifier(sb, s.On)
			if s.OnFunction {
				sb.WriteString("()")
			}
		}
	case ast.SampleRows:
		Expression(sb, s.Expr)
		sb.WriteString(" ROWS")
	default:
		Expression(sb, s.Expr)
	}
	sb.WriteString(")")
}

// -----------------------------------------------------------------------------
// Shared clauses

func columnDefs(sb *strings.Builder, cols []*ast.ColumnDef) {
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, c.Name)
		sb.WriteString(" ")
		DataType(sb, c.Type)
		if c.NotNull {
			sb.WriteString(" NOT NULL")
		}
		optString(sb, " COMMENT ", c.Comment)
	}
}

func qualifiedColumns(sb *strings.Builder, cols []*ast.QualifiedColumn) {
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, c.Name)
		sb.WriteString(" ")
		DataType(sb, c.Type)
		if c.NotNull {
			sb.WriteString(" NOT NULL")
		}
		optString(sb, " COMMENT ", c.Comment)
		formatColumnPosition(sb, c.Place)
	}
}

func formatColumnPosition(sb *strings.Builder, pos *ast.ColumnPosition) {
	if pos == nil {
		return
	}
	if pos.First {
		sb.WriteString(" FIRST")
		return
	}
	sb.WriteString(" AFTER ")
	Identifier(sb, pos.After)
}

func formatProperties(sb *strings.Builder, props []*ast.Property) {
	sb.WriteString("(")
	for i, prop := range props {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatPropertyKey(sb, prop)
		if prop.Value != nil {
			sb.WriteString(" = ")
			formatLiteral(sb, prop.Value)
		}
	}
	sb.WriteString(")")
}

func formatPropertyKey(sb *strings.Builder, prop *ast.Property) {
	if prop.StringKey {
		String(sb, prop.Key)
		return
	}
	sb.WriteString(prop.Key)
}

func formatPartitionSpec(sb *strings.Builder, spec *ast.PartitionSpec) {
	sb.WriteString("PARTITION (")
	for i, v := range spec.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		Identifier(sb, v.Name)
		if v.Value != nil {
			sb.WriteString(" = ")
			Expression(sb, v.Value)
		}
	}
	sb.WriteString(")")
}

func formatOptPartition(sb *strings.Builder, spec *ast.PartitionSpec) {
	if spec == nil {
		return
	}
	sb.WriteString(" ")
	formatPartitionSpec(sb, spec)
}

func formatRowFormat(sb *strings.Builder, rf *ast.RowFormat) {
	sb.WriteString("ROW FORMAT ")
	if rf.Serde != nil {
		sb.WriteString("SERDE ")
		String(sb, *rf.Serde)
		if len(rf.SerdeProperties) > 0 {
			sb.WriteString(" WITH SERDEPROPERTIES ")
			formatProperties(sb, rf.SerdeProperties)
		}
		return
	}
	sb.WriteString("DELIMITED")
	optString(sb, " FIELDS TERMINATED BY ", rf.FieldsTerminatedBy)
	optString(sb, " ESCAPED BY ", rf.EscapedBy)
	optString(sb, " COLLECTION ITEMS TERMINATED BY ", rf.CollectionItemsTerminatedBy)
	optString(sb, " MAP KEYS TERMINATED BY ", rf.MapKeysTerminatedBy)
	optString(sb, " LINES TERMINATED BY ", rf.LinesTerminatedBy)
	optString(sb, " NULL DEFINED AS ", rf.NullDefinedAs)
}

func formatFileFormat(sb *strings.Builder, ff *ast.FileFormat) {
	if ff.StorageHandler != nil {
		sb.WriteString("STORED BY ")
		String(sb, *ff.StorageHandler)
		if len(ff.HandlerProperties) > 0 {
			sb.WriteString(" WITH SERDEPROPERTIES ")
			formatProperties(sb, ff.HandlerProperties)
		}
		return
	}
	sb.WriteString("STORED AS ")
	if ff.InputFormat != nil {
		sb.WriteString("INPUTFORMAT ")
		String(sb, *ff.InputFormat)
		sb.WriteString(" OUTPUTFORMAT ")
		String(sb, *ff.OutputFormat)
		return
	}
	Identifier(sb, ff.Format)
}

// formatTableClauses writes the clauses in a fixed order; the parser
// accepts them in any order.
func formatTableClauses(sb *strings.Builder, c *ast.TableClauses) {
	if c == nil {
		return
	}
	if len(c.Options) > 0 {
		sb.WriteString(" OPTIONS ")
		formatProperties(sb, c.Options)
	}
	switch {
	case len(c.PartitionColumns) > 0:
		sb.WriteString(" PARTITIONED BY (")
		columnDefs(sb, c.PartitionColumns)
		sb.WriteString(")")
	case len(c.Partitioning) > 0:
		sb.WriteString(" PARTITIONED BY (")
		for i, t := range c.Partitioning {
			if i > 0 {
				sb.WriteString(", ")
			}
			formatTransformSpec(sb, t)
		}
		sb.WriteString(")")
	}
	if b := c.Bucket; b != nil {
		sb.WriteString(" CLUSTERED BY ")
		identifierList(sb, b.Columns)
		if len(b.SortedBy) > 0 {
			sb.WriteString(" SORTED BY (")
			for i, o := range b.SortedBy {
				if i > 0 {
					sb.WriteString(", ")
				}
				Identifier(sb, o.Name)
				if o.Ordering != "" {
					sb.WriteString(" ")
					sb.WriteString(o.Ordering)
				}
			}
			sb.WriteString(")")
		}
		sb.WriteString(" INTO ")
		sb.WriteString(strconv.Itoa(b.Buckets))
		sb.WriteString(" BUCKETS")
	}
	if s := c.Skew; s != nil {
		formatSkewSpec(sb, s)
	}
	if c.RowFormat != nil {
		sb.WriteString(" ")
		formatRowFormat(sb, c.RowFormat)
	}
	if c.FileFormat != nil {
		sb.WriteString(" ")
		formatFileFormat(sb, c.FileFormat)
	}
	optString(sb, " LOCATION ", c.Location)
	optString(sb, " COMMENT ", c.Comment)
	if len(c.Properties) > 0 {
		sb.WriteString(" TBLPROPERTIES ")
		formatProperties(sb, c.Properties)
	}
}

func formatSkewSpec(sb *strings.Builder, s *ast.SkewSpec) {
	sb.WriteString(" SKEWED BY ")
	identifierList(sb, s.Columns)
	sb.WriteString(" ON ")
	if s.Nested {
		sb.WriteString("(")
		for i, values := range s.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(")
			expressionList(sb, values)
			sb.WriteString(")")
		}
		sb.WriteString(")")
	} else {
		sb.WriteString("(")
		for i, values := range s.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			expressionList(sb, values)
		}
		sb.WriteString(")")
	}
	if s.StoredAsDirectories {
		sb.WriteString(" STORED AS DIRECTORIES")
	}
}

func formatTransformSpec(sb *strings.Builder, t *ast.Transform) {
	if t.Func == nil {
		Identifier(sb, t.Column)
		return
	}
	Identifier(sb, t.Func)
	sb.WriteString("(")
	expressionList(sb, t.Args)
	sb.WriteString(")")
}
