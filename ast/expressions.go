package ast

import (
	"cloud.google.com/go/civil"

	"github.com/sqlc-dev/sparksql/token"
)

// Operator is the resolved operator of a unary or binary expression.
type Operator string

const (
	OpOr         Operator = "OR"
	OpAnd        Operator = "AND"
	OpNot        Operator = "NOT"
	OpEq         Operator = "="
	OpNullSafeEq Operator = "<=>"
	OpNeq        Operator = "<>"
	OpNeqJ       Operator = "!="
	OpLt         Operator = "<"
	OpLte        Operator = "<="
	OpGt         Operator = ">"
	OpGte        Operator = ">="
	OpBitOr      Operator = "|"
	OpBitXor     Operator = "^"
	OpBitAnd     Operator = "&"
	OpAdd        Operator = "+"
	OpSub        Operator = "-"
	OpConcat     Operator = "||"
	OpMul        Operator = "*"
	OpDiv        Operator = "/"
	OpMod        Operator = "%"
	OpIntDiv     Operator = "DIV"
	OpNeg        Operator = "-"
	OpPos        Operator = "+"
	OpBitNot     Operator = "~"
)

// LiteralType represents the type of a literal.
type LiteralType string

const (
	LiteralNull       LiteralType = "Null"
	LiteralBoolean    LiteralType = "Boolean"
	LiteralString     LiteralType = "String"
	LiteralInteger    LiteralType = "Integer"
	LiteralBigInt     LiteralType = "BigInt"
	LiteralSmallInt   LiteralType = "SmallInt"
	LiteralTinyInt    LiteralType = "TinyInt"
	LiteralDouble     LiteralType = "Double"
	LiteralFloat      LiteralType = "Float"
	LiteralDecimal    LiteralType = "Decimal"
	LiteralBigDecimal LiteralType = "BigDecimal"
)

// Literal represents a constant. Value holds bool, string, int64, float64 or
// decimal.Decimal depending on Type. Raw keeps the numeric source text.
type Literal struct {
	Position token.Position `json:"-"`
	Type     LiteralType    `json:"type"`
	Value    interface{}    `json:"value"`
	Raw      string         `json:"raw,omitempty"`
}

func (l *Literal) Pos() token.Position { return l.Position }
func (l *Literal) End() token.Position { return l.Position }
func (l *Literal) expressionNode()     {}

// IsNumeric reports whether the literal is one of the numeric types.
func (l *Literal) IsNumeric() bool {
	switch l.Type {
	case LiteralNull, LiteralBoolean, LiteralString:
		return false
	}
	return true
}

// TypedLiteral is a type constructor such as DATE '2020-01-01'.
type TypedLiteral struct {
	Position  token.Position  `json:"-"`
	TypeName  string          `json:"type_name"`
	Value     string          `json:"value"`
	Date      *civil.Date     `json:"date,omitempty"`
	Timestamp *civil.DateTime `json:"timestamp,omitempty"`
}

func (t *TypedLiteral) Pos() token.Position { return t.Position }
func (t *TypedLiteral) End() token.Position { return t.Position }
func (t *TypedLiteral) expressionNode()     {}

// IntervalField is one `<value> <unit>` fragment of an interval, or a
// `<value> <unit> TO <unit>` range when ToUnit is set.
type IntervalField struct {
	Position    token.Position `json:"-"`
	Value       string         `json:"value"`
	StringValue bool           `json:"string_value,omitempty"`
	Unit        string         `json:"unit"`
	ToUnit      string         `json:"to_unit,omitempty"`
}

func (f *IntervalField) Pos() token.Position { return f.Position }
func (f *IntervalField) End() token.Position { return f.Position }

// IntervalLiteral represents INTERVAL ... . A malformed combination of
// fragments is kept with a Diagnostic.
type IntervalLiteral struct {
	Position   token.Position   `json:"-"`
	Fields     []*IntervalField `json:"fields"`
	Diagnostic *Diagnostic      `json:"diagnostic,omitempty"`
}

func (i *IntervalLiteral) Pos() token.Position { return i.Position }
func (i *IntervalLiteral) End() token.Position { return i.Position }
func (i *IntervalLiteral) expressionNode()     {}

// Star represents * or qualifier.*.
type Star struct {
	Position token.Position `json:"-"`
	Target   *Identifier    `json:"target,omitempty"`
}

func (s *Star) Pos() token.Position { return s.Position }
func (s *Star) End() token.Position { return s.Position }
func (s *Star) expressionNode()     {}

// UnaryExpr represents a prefix operator application.
type UnaryExpr struct {
	Position token.Position `json:"-"`
	Op       Operator       `json:"op"`
	Operand  Expression     `json:"operand"`
}

func (u *UnaryExpr) Pos() token.Position { return u.Position }
func (u *UnaryExpr) End() token.Position { return u.Position }
func (u *UnaryExpr) expressionNode()     {}

// BinaryExpr represents a binary operator application, including AND and OR.
type BinaryExpr struct {
	Position token.Position `json:"-"`
	Left     Expression     `json:"left"`
	Op       Operator       `json:"op"`
	Right    Expression     `json:"right"`
}

func (b *BinaryExpr) Pos() token.Position { return b.Position }
func (b *BinaryExpr) End() token.Position { return b.Position }
func (b *BinaryExpr) expressionNode()     {}

// BetweenExpr represents expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Low      Expression     `json:"low"`
	High     Expression     `json:"high"`
}

func (b *BetweenExpr) Pos() token.Position { return b.Position }
func (b *BetweenExpr) End() token.Position { return b.Position }
func (b *BetweenExpr) expressionNode()     {}

// InExpr represents expr [NOT] IN (list) or expr [NOT] IN (query).
type InExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	List     []Expression   `json:"list,omitempty"`
	Query    *Query         `json:"query,omitempty"`
}

func (i *InExpr) Pos() token.Position { return i.Position }
func (i *InExpr) End() token.Position { return i.Position }
func (i *InExpr) expressionNode()     {}

// LikeExpr represents [NOT] LIKE / RLIKE, including the quantified
// LIKE ANY|SOME|ALL (patterns) form.
type LikeExpr struct {
	Position   token.Position `json:"-"`
	Expr       Expression     `json:"expr"`
	Not        bool           `json:"not,omitempty"`
	Regex      bool           `json:"regex,omitempty"`
	Pattern    Expression     `json:"pattern,omitempty"`
	Escape     *string        `json:"escape,omitempty"`
	Quantifier string         `json:"quantifier,omitempty"`
	Patterns   []Expression   `json:"patterns,omitempty"`
}

func (l *LikeExpr) Pos() token.Position { return l.Position }
func (l *LikeExpr) End() token.Position { return l.Position }
func (l *LikeExpr) expressionNode()     {}

// IsKind is the right-hand side of an IS predicate.
type IsKind string

const (
	IsNull         IsKind = "NULL"
	IsTrue         IsKind = "TRUE"
	IsFalse        IsKind = "FALSE"
	IsUnknown      IsKind = "UNKNOWN"
	IsDistinctFrom IsKind = "DISTINCT FROM"
)

// IsExpr represents expr IS [NOT] NULL|TRUE|FALSE|UNKNOWN|DISTINCT FROM right.
type IsExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Kind     IsKind         `json:"kind"`
	Right    Expression     `json:"right,omitempty"`
}

func (i *IsExpr) Pos() token.Position { return i.Position }
func (i *IsExpr) End() token.Position { return i.Position }
func (i *IsExpr) expressionNode()     {}

// ExistsExpr represents EXISTS (query).
type ExistsExpr struct {
	Position token.Position `json:"-"`
	Query    *Query         `json:"query"`
}

func (e *ExistsExpr) Pos() token.Position { return e.Position }
func (e *ExistsExpr) End() token.Position { return e.Position }
func (e *ExistsExpr) expressionNode()     {}

// FunctionCall represents a function call, optionally aggregated with a
// FILTER clause or windowed with OVER.
type FunctionCall struct {
	Position    token.Position `json:"-"`
	Name        *Identifier    `json:"name"`
	Quantifier  string         `json:"quantifier,omitempty"` // DISTINCT or ALL
	Args        []Expression   `json:"args,omitempty"`
	IgnoreNulls bool           `json:"ignore_nulls,omitempty"`
	Filter      Expression     `json:"filter,omitempty"`
	Over        *WindowSpec    `json:"over,omitempty"`
}

func (f *FunctionCall) Pos() token.Position { return f.Position }
func (f *FunctionCall) End() token.Position { return f.Position }
func (f *FunctionCall) expressionNode()     {}

// WhenClause represents a WHEN ... THEN ... arm of a CASE.
type WhenClause struct {
	Position  token.Position `json:"-"`
	Condition Expression     `json:"condition"`
	Result    Expression     `json:"result"`
}

func (w *WhenClause) Pos() token.Position { return w.Position }
func (w *WhenClause) End() token.Position { return w.Position }

// CaseExpr represents a searched CASE (Operand nil) or a simple CASE.
type CaseExpr struct {
	Position token.Position `json:"-"`
	Operand  Expression     `json:"operand,omitempty"`
	Whens    []*WhenClause  `json:"whens"`
	Else     Expression     `json:"else,omitempty"`
}

func (c *CaseExpr) Pos() token.Position { return c.Position }
func (c *CaseExpr) End() token.Position { return c.Position }
func (c *CaseExpr) expressionNode()     {}

// CastExpr represents CAST(expr AS type).
type CastExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Type     *DataType      `json:"type"`
}

func (c *CastExpr) Pos() token.Position { return c.Position }
func (c *CastExpr) End() token.Position { return c.Position }
func (c *CastExpr) expressionNode()     {}

// StructExpr represents STRUCT(named expressions).
type StructExpr struct {
	Position token.Position `json:"-"`
	Fields   []Expression   `json:"fields,omitempty"`
}

func (s *StructExpr) Pos() token.Position { return s.Position }
func (s *StructExpr) End() token.Position { return s.Position }
func (s *StructExpr) expressionNode()     {}

// RowExpr represents a row constructor (a, b, ...) with at least two items.
type RowExpr struct {
	Position token.Position `json:"-"`
	Items    []Expression   `json:"items"`
}

func (r *RowExpr) Pos() token.Position { return r.Position }
func (r *RowExpr) End() token.Position { return r.Position }
func (r *RowExpr) expressionNode()     {}

// Subquery represents a scalar subquery expression.
type Subquery struct {
	Position token.Position `json:"-"`
	Query    *Query         `json:"query"`
}

func (s *Subquery) Pos() token.Position { return s.Position }
func (s *Subquery) End() token.Position { return s.Position }
func (s *Subquery) expressionNode()     {}

// Lambda represents x -> body or (x, y) -> body.
type Lambda struct {
	Position token.Position `json:"-"`
	Params   []*Identifier  `json:"params"`
	Body     Expression     `json:"body"`
}

func (l *Lambda) Pos() token.Position { return l.Position }
func (l *Lambda) End() token.Position { return l.Position }
func (l *Lambda) expressionNode()     {}

// Subscript represents base[index].
type Subscript struct {
	Position token.Position `json:"-"`
	Base     Expression     `json:"base"`
	Index    Expression     `json:"index"`
}

func (s *Subscript) Pos() token.Position { return s.Position }
func (s *Subscript) End() token.Position { return s.Position }
func (s *Subscript) expressionNode()     {}

// Dereference represents base.field where base is not a plain column name.
type Dereference struct {
	Position token.Position `json:"-"`
	Base     Expression     `json:"base"`
	Field    *Identifier    `json:"field"`
}

func (d *Dereference) Pos() token.Position { return d.Position }
func (d *Dereference) End() token.Position { return d.Position }
func (d *Dereference) expressionNode()     {}

// ExtractExpr represents EXTRACT(field FROM source).
type ExtractExpr struct {
	Position token.Position `json:"-"`
	Field    *Identifier    `json:"field"`
	Source   Expression     `json:"source"`
}

func (e *ExtractExpr) Pos() token.Position { return e.Position }
func (e *ExtractExpr) End() token.Position { return e.Position }
func (e *ExtractExpr) expressionNode()     {}

// SubstringExpr represents SUBSTRING(str FROM pos FOR len) and the comma form.
type SubstringExpr struct {
	Position token.Position `json:"-"`
	Str      Expression     `json:"str"`
	Start    Expression     `json:"start"`
	Length   Expression     `json:"length,omitempty"`
}

func (s *SubstringExpr) Pos() token.Position { return s.Position }
func (s *SubstringExpr) End() token.Position { return s.Position }
func (s *SubstringExpr) expressionNode()     {}

// TrimExpr represents TRIM([BOTH|LEADING|TRAILING] [chars] FROM source).
type TrimExpr struct {
	Position token.Position `json:"-"`
	Option   string         `json:"option,omitempty"`
	Chars    Expression     `json:"chars,omitempty"`
	Source   Expression     `json:"source"`
}

func (t *TrimExpr) Pos() token.Position { return t.Position }
func (t *TrimExpr) End() token.Position { return t.Position }
func (t *TrimExpr) expressionNode()     {}

// OverlayExpr represents OVERLAY(input PLACING replace FROM pos [FOR len]).
type OverlayExpr struct {
	Position token.Position `json:"-"`
	Input    Expression     `json:"input"`
	Replace  Expression     `json:"replace"`
	Start    Expression     `json:"start"`
	Length   Expression     `json:"length,omitempty"`
}

func (o *OverlayExpr) Pos() token.Position { return o.Position }
func (o *OverlayExpr) End() token.Position { return o.Position }
func (o *OverlayExpr) expressionNode()     {}

// PositionExpr represents POSITION(substr IN str).
type PositionExpr struct {
	Position token.Position `json:"-"`
	Substr   Expression     `json:"substr"`
	Str      Expression     `json:"str"`
}

func (p *PositionExpr) Pos() token.Position { return p.Position }
func (p *PositionExpr) End() token.Position { return p.Position }
func (p *PositionExpr) expressionNode()     {}

// CurrentDatetime represents CURRENT_DATE or CURRENT_TIMESTAMP.
type CurrentDatetime struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
}

func (c *CurrentDatetime) Pos() token.Position { return c.Position }
func (c *CurrentDatetime) End() token.Position { return c.Position }
func (c *CurrentDatetime) expressionNode()     {}

// AliasedExpr is a named expression: expr [AS] alias or expr AS (a, b).
type AliasedExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Alias    *Identifier    `json:"alias,omitempty"`
	Columns  []*Identifier  `json:"columns,omitempty"`
}

func (a *AliasedExpr) Pos() token.Position { return a.Position }
func (a *AliasedExpr) End() token.Position { return a.Position }
func (a *AliasedExpr) expressionNode()     {}

// -----------------------------------------------------------------------------
// Windows

// FrameBoundKind is the kind of a window frame boundary.
type FrameBoundKind string

const (
	UnboundedPreceding FrameBoundKind = "UNBOUNDED PRECEDING"
	UnboundedFollowing FrameBoundKind = "UNBOUNDED FOLLOWING"
	CurrentRow         FrameBoundKind = "CURRENT ROW"
	Preceding          FrameBoundKind = "PRECEDING"
	Following          FrameBoundKind = "FOLLOWING"
)

// FrameBound is one end of a window frame. Expr is set for PRECEDING and
// FOLLOWING offsets.
type FrameBound struct {
	Position token.Position `json:"-"`
	Kind     FrameBoundKind `json:"kind"`
	Expr     Expression     `json:"expr,omitempty"`
}

func (f *FrameBound) Pos() token.Position { return f.Position }
func (f *FrameBound) End() token.Position { return f.Position }

// WindowFrame is ROWS|RANGE from or ROWS|RANGE BETWEEN from AND to.
type WindowFrame struct {
	Position token.Position `json:"-"`
	Type     string         `json:"type"`
	From     *FrameBound    `json:"from"`
	To       *FrameBound    `json:"to,omitempty"`
}

func (w *WindowFrame) Pos() token.Position { return w.Position }
func (w *WindowFrame) End() token.Position { return w.Position }

// WindowSpec is either a reference to a named window or an inline
// definition.
type WindowSpec struct {
	Position    token.Position `json:"-"`
	Ref         *Identifier    `json:"ref,omitempty"`
	ParenRef    bool           `json:"paren_ref,omitempty"`
	ClusterBy   []Expression   `json:"cluster_by,omitempty"`
	PartitionBy []Expression   `json:"partition_by,omitempty"`
	OrderBy     []*SortItem    `json:"order_by,omitempty"`
	Frame       *WindowFrame   `json:"frame,omitempty"`
}

func (w *WindowSpec) Pos() token.Position { return w.Position }
func (w *WindowSpec) End() token.Position { return w.Position }

// NamedWindow is an entry of a WINDOW clause.
type NamedWindow struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Spec     *WindowSpec    `json:"spec"`
}

func (n *NamedWindow) Pos() token.Position { return n.Position }
func (n *NamedWindow) End() token.Position { return n.Position }

// SortItem is an ORDER BY / SORT BY element.
type SortItem struct {
	Position  token.Position `json:"-"`
	Expr      Expression     `json:"expr"`
	Ordering  string         `json:"ordering,omitempty"`   // ASC or DESC
	NullOrder string         `json:"null_order,omitempty"` // FIRST or LAST
}

func (s *SortItem) Pos() token.Position { return s.Position }
func (s *SortItem) End() token.Position { return s.Position }
