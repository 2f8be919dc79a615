package ast

import "github.com/sqlc-dev/sparksql/token"

// DataType is a column or cast type. Name is upper-cased; ARRAY uses Elem,
// MAP uses Key and Value, STRUCT uses Fields.
type DataType struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
	Params   []int          `json:"params,omitempty"`
	Elem     *DataType      `json:"elem,omitempty"`
	Key      *DataType      `json:"key,omitempty"`
	Value    *DataType      `json:"value,omitempty"`
	Fields   []*StructField `json:"fields,omitempty"`
}

func (d *DataType) Pos() token.Position { return d.Position }
func (d *DataType) End() token.Position { return d.Position }

// StructField is name: type [NOT NULL] [COMMENT '...'] inside STRUCT<...>.
type StructField struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Type     *DataType      `json:"type"`
	NotNull  bool           `json:"not_null,omitempty"`
	Comment  *string        `json:"comment,omitempty"`
}

func (s *StructField) Pos() token.Position { return s.Position }
func (s *StructField) End() token.Position { return s.Position }

// ColumnDef is name type [NOT NULL] [COMMENT '...'].
type ColumnDef struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Type     *DataType      `json:"type"`
	NotNull  bool           `json:"not_null,omitempty"`
	Comment  *string        `json:"comment,omitempty"`
}

func (c *ColumnDef) Pos() token.Position { return c.Position }
func (c *ColumnDef) End() token.Position { return c.Position }

// ColumnPosition is FIRST or AFTER column.
type ColumnPosition struct {
	Position token.Position `json:"-"`
	First    bool           `json:"first,omitempty"`
	After    *Identifier    `json:"after,omitempty"`
}

func (c *ColumnPosition) Pos() token.Position { return c.Position }
func (c *ColumnPosition) End() token.Position { return c.Position }

// QualifiedColumn is a column definition with a multipart name and an
// optional position, as used by ALTER TABLE ADD COLUMNS.
type QualifiedColumn struct {
	Position token.Position  `json:"-"`
	Name     *Identifier     `json:"name"`
	Type     *DataType       `json:"type"`
	NotNull  bool            `json:"not_null,omitempty"`
	Comment  *string         `json:"comment,omitempty"`
	Place    *ColumnPosition `json:"place,omitempty"`
}

func (q *QualifiedColumn) Pos() token.Position { return q.Position }
func (q *QualifiedColumn) End() token.Position { return q.Position }

// Property is key [=] value in a property list. StringKey records that the
// key was written as a string literal. Value is nil when absent.
type Property struct {
	Position  token.Position `json:"-"`
	Key       string         `json:"key"`
	StringKey bool           `json:"string_key,omitempty"`
	Value     *Literal       `json:"value,omitempty"`
}

func (p *Property) Pos() token.Position { return p.Position }
func (p *Property) End() token.Position { return p.Position }

// PartitionValue is name [= constant] inside PARTITION (...).
type PartitionValue struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Value    Expression     `json:"value,omitempty"`
}

func (p *PartitionValue) Pos() token.Position { return p.Position }
func (p *PartitionValue) End() token.Position { return p.Position }

// PartitionSpec is PARTITION (name [= value], ...).
type PartitionSpec struct {
	Position token.Position    `json:"-"`
	Values   []*PartitionValue `json:"values"`
}

func (p *PartitionSpec) Pos() token.Position { return p.Position }
func (p *PartitionSpec) End() token.Position { return p.Position }

// PartitionLocation is a partition spec with an optional LOCATION.
type PartitionLocation struct {
	Position token.Position `json:"-"`
	Spec     *PartitionSpec `json:"spec"`
	Location *string        `json:"location,omitempty"`
}

func (p *PartitionLocation) Pos() token.Position { return p.Position }
func (p *PartitionLocation) End() token.Position { return p.Position }

// RowFormat is ROW FORMAT SERDE ... or ROW FORMAT DELIMITED ... .
type RowFormat struct {
	Position                    token.Position `json:"-"`
	Serde                       *string        `json:"serde,omitempty"`
	SerdeProperties             []*Property    `json:"serde_properties,omitempty"`
	Delimited                   bool           `json:"delimited,omitempty"`
	FieldsTerminatedBy          *string        `json:"fields_terminated_by,omitempty"`
	EscapedBy                   *string        `json:"escaped_by,omitempty"`
	CollectionItemsTerminatedBy *string        `json:"collection_items_terminated_by,omitempty"`
	MapKeysTerminatedBy         *string        `json:"map_keys_terminated_by,omitempty"`
	LinesTerminatedBy           *string        `json:"lines_terminated_by,omitempty"`
	NullDefinedAs               *string        `json:"null_defined_as,omitempty"`
}

func (r *RowFormat) Pos() token.Position { return r.Position }
func (r *RowFormat) End() token.Position { return r.Position }

// FileFormat is STORED AS format, STORED AS INPUTFORMAT ... OUTPUTFORMAT ...
// or STORED BY handler.
type FileFormat struct {
	Position          token.Position `json:"-"`
	Format            *Identifier    `json:"format,omitempty"`
	InputFormat       *string        `json:"input_format,omitempty"`
	OutputFormat      *string        `json:"output_format,omitempty"`
	StorageHandler    *string        `json:"storage_handler,omitempty"`
	HandlerProperties []*Property    `json:"handler_properties,omitempty"`
}

func (f *FileFormat) Pos() token.Position { return f.Position }
func (f *FileFormat) End() token.Position { return f.Position }

// OrderedIdentifier is a column of SORTED BY.
type OrderedIdentifier struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Ordering string         `json:"ordering,omitempty"`
}

func (o *OrderedIdentifier) Pos() token.Position { return o.Position }
func (o *OrderedIdentifier) End() token.Position { return o.Position }

// BucketSpec is CLUSTERED BY (cols) [SORTED BY (cols)] INTO n BUCKETS.
type BucketSpec struct {
	Position token.Position       `json:"-"`
	Columns  []*Identifier        `json:"columns"`
	SortedBy []*OrderedIdentifier `json:"sorted_by,omitempty"`
	Buckets  int                  `json:"buckets"`
}

func (b *BucketSpec) Pos() token.Position { return b.Position }
func (b *BucketSpec) End() token.Position { return b.Position }

// SkewSpec is SKEWED BY (cols) ON (values) [STORED AS DIRECTORIES]. Each
// entry of Values is one constant list; Nested is set when the values were
// written as a list of lists.
type SkewSpec struct {
	Position            token.Position `json:"-"`
	Columns             []*Identifier  `json:"columns"`
	Values              [][]Expression `json:"values"`
	Nested              bool           `json:"nested,omitempty"`
	StoredAsDirectories bool           `json:"stored_as_directories,omitempty"`
}

func (s *SkewSpec) Pos() token.Position { return s.Position }
func (s *SkewSpec) End() token.Position { return s.Position }

// Transform is a partitioning transform: an identity column reference
// (Func empty) or func(args).
type Transform struct {
	Position token.Position `json:"-"`
	Column   *Identifier    `json:"column,omitempty"`
	Func     *Identifier    `json:"func,omitempty"`
	Args     []Expression   `json:"args,omitempty"`
}

func (t *Transform) Pos() token.Position { return t.Position }
func (t *Transform) End() token.Position { return t.Position }

// TableClauses collects the optional clauses that may follow a CREATE or
// REPLACE TABLE header, each at most once.
type TableClauses struct {
	Position         token.Position `json:"-"`
	Options          []*Property    `json:"options,omitempty"`
	Partitioning     []*Transform   `json:"partitioning,omitempty"`
	PartitionColumns []*ColumnDef   `json:"partition_columns,omitempty"`
	Bucket           *BucketSpec    `json:"bucket,omitempty"`
	Skew             *SkewSpec      `json:"skew,omitempty"`
	RowFormat        *RowFormat     `json:"row_format,omitempty"`
	FileFormat       *FileFormat    `json:"file_format,omitempty"`
	Location         *string        `json:"location,omitempty"`
	Comment          *string        `json:"comment,omitempty"`
	Properties       []*Property    `json:"properties,omitempty"`
}

func (t *TableClauses) Pos() token.Position { return t.Position }
func (t *TableClauses) End() token.Position { return t.Position }

// FunctionResource is a USING JAR|FILE|ARCHIVE 'uri' entry.
type FunctionResource struct {
	Position token.Position `json:"-"`
	Type     string         `json:"type"`
	URI      string         `json:"uri"`
}

func (f *FunctionResource) Pos() token.Position { return f.Position }
func (f *FunctionResource) End() token.Position { return f.Position }

// Assignment is column = value in UPDATE and MERGE.
type Assignment struct {
	Position token.Position `json:"-"`
	Column   *Identifier    `json:"column"`
	Value    Expression     `json:"value"`
}

func (a *Assignment) Pos() token.Position { return a.Position }
func (a *Assignment) End() token.Position { return a.Position }
