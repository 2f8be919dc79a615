package ast

import "github.com/sqlc-dev/sparksql/token"

// -----------------------------------------------------------------------------
// Queries

// CTE is a named query of a WITH clause.
type CTE struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Columns  []*Identifier  `json:"columns,omitempty"`
	Query    *Query         `json:"query"`
}

func (c *CTE) Pos() token.Position { return c.Position }
func (c *CTE) End() token.Position { return c.Position }

// Query is a complete query: optional CTEs, a set-operation tree and the
// trailing organization clauses.
type Query struct {
	Position     token.Position `json:"-"`
	With         []*CTE         `json:"with,omitempty"`
	Body         QueryTerm      `json:"body"`
	OrderBy      []*SortItem    `json:"order_by,omitempty"`
	ClusterBy    []Expression   `json:"cluster_by,omitempty"`
	DistributeBy []Expression   `json:"distribute_by,omitempty"`
	SortBy       []*SortItem    `json:"sort_by,omitempty"`
	Windows      []*NamedWindow `json:"windows,omitempty"`
	Limit        Expression     `json:"limit,omitempty"`
	LimitAll     bool           `json:"limit_all,omitempty"`
}

func (q *Query) Pos() token.Position { return q.Position }
func (q *Query) End() token.Position { return q.Position }
func (q *Query) statementNode()      {}
func (q *Query) queryTermNode()      {}

// SetOperator is UNION, INTERSECT, EXCEPT or MINUS.
type SetOperator string

const (
	SetUnion     SetOperator = "UNION"
	SetIntersect SetOperator = "INTERSECT"
	SetExcept    SetOperator = "EXCEPT"
	SetMinus     SetOperator = "MINUS"
)

// SetOperation combines two query terms.
type SetOperation struct {
	Position   token.Position `json:"-"`
	Op         SetOperator    `json:"op"`
	Quantifier string         `json:"quantifier,omitempty"` // DISTINCT or ALL
	Left       QueryTerm      `json:"left"`
	Right      QueryTerm      `json:"right"`
}

func (s *SetOperation) Pos() token.Position { return s.Position }
func (s *SetOperation) End() token.Position { return s.Position }
func (s *SetOperation) queryTermNode()      {}

// Hint is one entry of a /*+ ... */ hint block.
type Hint struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Params   []Expression   `json:"params,omitempty"`
}

func (h *Hint) Pos() token.Position { return h.Position }
func (h *Hint) End() token.Position { return h.Position }

// GroupingKind qualifies a GROUP BY clause.
type GroupingKind string

const (
	GroupingNone   GroupingKind = ""
	GroupingRollup GroupingKind = "ROLLUP"
	GroupingCube   GroupingKind = "CUBE"
	GroupingSets   GroupingKind = "GROUPING SETS"
)

// GroupBy is a GROUP BY clause. Sets is populated for GROUPING SETS.
type GroupBy struct {
	Position token.Position `json:"-"`
	Exprs    []Expression   `json:"exprs,omitempty"`
	Kind     GroupingKind   `json:"kind,omitempty"`
	Sets     [][]Expression `json:"sets,omitempty"`
}

func (g *GroupBy) Pos() token.Position { return g.Position }
func (g *GroupBy) End() token.Position { return g.Position }

// TransformClause is the script pipe of SELECT TRANSFORM, MAP and REDUCE.
type TransformClause struct {
	Position     token.Position `json:"-"`
	Kind         string         `json:"kind"` // TRANSFORM, MAP or REDUCE
	Exprs        []Expression   `json:"exprs"`
	InRowFormat  *RowFormat     `json:"in_row_format,omitempty"`
	RecordWriter *string        `json:"record_writer,omitempty"`
	Script       string         `json:"script"`
	AsNames      []*Identifier  `json:"as_names,omitempty"`
	AsColumns    []*ColumnDef   `json:"as_columns,omitempty"`
	AsParens     bool           `json:"as_parens,omitempty"`
	OutRowFormat *RowFormat     `json:"out_row_format,omitempty"`
	RecordReader *string        `json:"record_reader,omitempty"`
}

func (t *TransformClause) Pos() token.Position { return t.Position }
func (t *TransformClause) End() token.Position { return t.Position }

// QuerySpecification is a single SELECT (or TRANSFORM) block.
type QuerySpecification struct {
	Position   token.Position   `json:"-"`
	Hints      []*Hint          `json:"hints,omitempty"`
	Quantifier string           `json:"quantifier,omitempty"` // DISTINCT or ALL
	Columns    []Expression     `json:"columns,omitempty"`
	Transform  *TransformClause `json:"transform,omitempty"`
	From       *FromClause      `json:"from,omitempty"`
	Where      Expression       `json:"where,omitempty"`
	GroupBy    *GroupBy         `json:"group_by,omitempty"`
	Having     Expression       `json:"having,omitempty"`
	Windows    []*NamedWindow   `json:"windows,omitempty"`
}

func (q *QuerySpecification) Pos() token.Position { return q.Position }
func (q *QuerySpecification) End() token.Position { return q.Position }
func (q *QuerySpecification) queryTermNode()      {}

// FromQuery is a FROM-first query: FROM t SELECT ... [SELECT ...]. The
// bodies never carry their own FROM clause.
type FromQuery struct {
	Position token.Position `json:"-"`
	From     *FromClause    `json:"from"`
	Bodies   []*Query       `json:"bodies"`
}

func (f *FromQuery) Pos() token.Position { return f.Position }
func (f *FromQuery) End() token.Position { return f.Position }
func (f *FromQuery) queryTermNode()      {}

// TableQuery is TABLE name.
type TableQuery struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
}

func (t *TableQuery) Pos() token.Position { return t.Position }
func (t *TableQuery) End() token.Position { return t.Position }
func (t *TableQuery) queryTermNode()      {}

// -----------------------------------------------------------------------------
// Relations

// FromClause is FROM relations [lateral views] [pivot].
type FromClause struct {
	Position     token.Position `json:"-"`
	Relations    []Relation     `json:"relations"`
	LateralViews []*LateralView `json:"lateral_views,omitempty"`
	Pivot        *Pivot         `json:"pivot,omitempty"`
}

func (f *FromClause) Pos() token.Position { return f.Position }
func (f *FromClause) End() token.Position { return f.Position }

// TableAlias is [AS] name [(columns)].
type TableAlias struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Columns  []*Identifier  `json:"columns,omitempty"`
}

func (t *TableAlias) Pos() token.Position { return t.Position }
func (t *TableAlias) End() token.Position { return t.Position }

// SampleKind is the method of a TABLESAMPLE clause.
type SampleKind string

const (
	SamplePercent SampleKind = "PERCENT"
	SampleRows    SampleKind = "ROWS"
	SampleBucket  SampleKind = "BUCKET"
	SampleBytes   SampleKind = "BYTES"
)

// Sample is TABLESAMPLE (...). Percent and the bucket numbers keep their
// source text.
type Sample struct {
	Position    token.Position `json:"-"`
	Kind        SampleKind     `json:"kind"`
	Percent     string         `json:"percent,omitempty"`
	Expr        Expression     `json:"expr,omitempty"`
	Numerator   string         `json:"numerator,omitempty"`
	Denominator string         `json:"denominator,omitempty"`
	On          *Identifier    `json:"on,omitempty"`
	OnFunction  bool           `json:"on_function,omitempty"`
}

func (s *Sample) Pos() token.Position { return s.Position }
func (s *Sample) End() token.Position { return s.Position }

// TableName is a table reference.
type TableName struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Sample   *Sample        `json:"sample,omitempty"`
	Alias    *TableAlias    `json:"alias,omitempty"`
}

func (t *TableName) Pos() token.Position { return t.Position }
func (t *TableName) End() token.Position { return t.Position }
func (t *TableName) relationNode()       {}

// AliasedQuery is a parenthesized query used as a relation.
type AliasedQuery struct {
	Position token.Position `json:"-"`
	Query    *Query         `json:"query"`
	Sample   *Sample        `json:"sample,omitempty"`
	Alias    *TableAlias    `json:"alias,omitempty"`
}

func (a *AliasedQuery) Pos() token.Position { return a.Position }
func (a *AliasedQuery) End() token.Position { return a.Position }
func (a *AliasedQuery) relationNode()       {}

// AliasedRelation is a parenthesized relation, typically a join.
type AliasedRelation struct {
	Position token.Position `json:"-"`
	Relation Relation       `json:"relation"`
	Sample   *Sample        `json:"sample,omitempty"`
	Alias    *TableAlias    `json:"alias,omitempty"`
}

func (a *AliasedRelation) Pos() token.Position { return a.Position }
func (a *AliasedRelation) End() token.Position { return a.Position }
func (a *AliasedRelation) relationNode()       {}

// InlineTable is VALUES expr, ... [alias]. It is both a relation and a
// query term.
type InlineTable struct {
	Position token.Position `json:"-"`
	Rows     []Expression   `json:"rows"`
	Alias    *TableAlias    `json:"alias,omitempty"`
}

func (i *InlineTable) Pos() token.Position { return i.Position }
func (i *InlineTable) End() token.Position { return i.Position }
func (i *InlineTable) relationNode()       {}
func (i *InlineTable) queryTermNode()      {}

// TableFunction is a table-valued function call such as range(10).
type TableFunction struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Args     []Expression   `json:"args,omitempty"`
	Alias    *TableAlias    `json:"alias,omitempty"`
}

func (t *TableFunction) Pos() token.Position { return t.Position }
func (t *TableFunction) End() token.Position { return t.Position }
func (t *TableFunction) relationNode()       {}

// JoinType is the closed set of join kinds.
type JoinType string

const (
	JoinInner JoinType = "INNER"
	JoinCross JoinType = "CROSS"
	JoinLeft  JoinType = "LEFT OUTER"
	JoinRight JoinType = "RIGHT OUTER"
	JoinFull  JoinType = "FULL OUTER"
	JoinSemi  JoinType = "LEFT SEMI"
	JoinAnti  JoinType = "LEFT ANTI"
)

// Join is a joined relation. On and Using are mutually exclusive and both
// absent for NATURAL joins.
type Join struct {
	Position token.Position `json:"-"`
	Type     JoinType       `json:"type"`
	Natural  bool           `json:"natural,omitempty"`
	Left     Relation       `json:"left"`
	Right    Relation       `json:"right"`
	On       Expression     `json:"on,omitempty"`
	Using    []*Identifier  `json:"using,omitempty"`
}

func (j *Join) Pos() token.Position { return j.Position }
func (j *Join) End() token.Position { return j.Position }
func (j *Join) relationNode()       {}

// LateralView is LATERAL VIEW [OUTER] func(args) table [AS] columns.
type LateralView struct {
	Position token.Position `json:"-"`
	Outer    bool           `json:"outer,omitempty"`
	Function *Identifier    `json:"function"`
	Args     []Expression   `json:"args,omitempty"`
	Table    *Identifier    `json:"table"`
	Columns  []*Identifier  `json:"columns,omitempty"`
}

func (l *LateralView) Pos() token.Position { return l.Position }
func (l *LateralView) End() token.Position { return l.Position }

// Pivot is PIVOT (aggregates FOR columns IN (values)).
type Pivot struct {
	Position   token.Position `json:"-"`
	Aggregates []Expression   `json:"aggregates"`
	Columns    []*Identifier  `json:"columns"`
	Values     []Expression   `json:"values"`
}

func (p *Pivot) Pos() token.Position { return p.Position }
func (p *Pivot) End() token.Position { return p.Position }
