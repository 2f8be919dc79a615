package ast

import "github.com/sqlc-dev/sparksql/token"

// InsertKind is the form of an INSERT target.
type InsertKind string

const (
	InsertInto             InsertKind = "INTO"
	InsertOverwrite        InsertKind = "OVERWRITE"
	InsertOverwriteHiveDir InsertKind = "OVERWRITE HIVE DIRECTORY"
	InsertOverwriteDir     InsertKind = "OVERWRITE DIRECTORY"
)

// MergeActionKind is the action of a MERGE arm.
type MergeActionKind string

const (
	MergeDelete     MergeActionKind = "DELETE"
	MergeUpdate     MergeActionKind = "UPDATE"
	MergeUpdateStar MergeActionKind = "UPDATE *"
	MergeInsert     MergeActionKind = "INSERT"
	MergeInsertStar MergeActionKind = "INSERT *"
)

// -----------------------------------------------------------------------------
// Statement helpers

// CreateTableHeader is CREATE [TEMPORARY] [EXTERNAL] TABLE [IF NOT EXISTS] name.
type CreateTableHeader struct {
	Position    token.Position `json:"-"`
	Temporary   bool           `json:"temporary,omitempty"`
	External    bool           `json:"external,omitempty"`
	IfNotExists bool           `json:"if_not_exists,omitempty"`
	Name        *Identifier    `json:"name"`
}

func (c *CreateTableHeader) Pos() token.Position { return c.Position }
func (c *CreateTableHeader) End() token.Position { return c.Position }

// InsertTarget is the INSERT INTO|OVERWRITE part of an insert.
type InsertTarget struct {
	Position    token.Position `json:"-"`
	Kind        InsertKind     `json:"kind"`
	Table       *Identifier    `json:"table,omitempty"`
	Partition   *PartitionSpec `json:"partition,omitempty"`
	IfNotExists bool           `json:"if_not_exists,omitempty"`
	Local       bool           `json:"local,omitempty"`
	Path        *string        `json:"path,omitempty"`
	RowFormat   *RowFormat     `json:"row_format,omitempty"`
	FileFormat  *FileFormat    `json:"file_format,omitempty"`
	Provider    *Identifier    `json:"provider,omitempty"`
	Options     []*Property    `json:"options,omitempty"`
}

func (i *InsertTarget) Pos() token.Position { return i.Position }
func (i *InsertTarget) End() token.Position { return i.Position }

// MultiInsertBody is one INSERT ... SELECT arm of a multi-insert. Body never
// carries a FROM clause.
type MultiInsertBody struct {
	Position token.Position `json:"-"`
	Target   *InsertTarget  `json:"target"`
	Body     *Query         `json:"body"`
}

func (m *MultiInsertBody) Pos() token.Position { return m.Position }
func (m *MultiInsertBody) End() token.Position { return m.Position }

// MergeAction is a WHEN [NOT] MATCHED [AND cond] THEN action arm.
type MergeAction struct {
	Position    token.Position  `json:"-"`
	Condition   Expression      `json:"condition,omitempty"`
	Kind        MergeActionKind `json:"kind"`
	Assignments []*Assignment   `json:"assignments,omitempty"`
	Columns     []*Identifier   `json:"columns,omitempty"`
	Values      []Expression    `json:"values,omitempty"`
}

func (m *MergeAction) Pos() token.Position { return m.Position }
func (m *MergeAction) End() token.Position { return m.Position }

// AlterColumnAction is the action of ALTER TABLE ... ALTER COLUMN.
type AlterColumnAction struct {
	Position    token.Position  `json:"-"`
	Type        *DataType       `json:"type,omitempty"`
	Comment     *string         `json:"comment,omitempty"`
	Place       *ColumnPosition `json:"place,omitempty"`
	SetNotNull  bool            `json:"set_not_null,omitempty"`
	DropNotNull bool            `json:"drop_not_null,omitempty"`
}

func (a *AlterColumnAction) Pos() token.Position { return a.Position }
func (a *AlterColumnAction) End() token.Position { return a.Position }

// ViewColumn is a column of a CREATE VIEW column list.
type ViewColumn struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Comment  *string        `json:"comment,omitempty"`
}

func (v *ViewColumn) Pos() token.Position { return v.Position }
func (v *ViewColumn) End() token.Position { return v.Position }

// -----------------------------------------------------------------------------
// Statements

// InsertStatement is [WITH ...] INSERT ... query.
type InsertStatement struct {
	Position token.Position `json:"-"`
	With     []*CTE         `json:"with,omitempty"`
	Target   *InsertTarget  `json:"target"`
	Query    *Query         `json:"query"`
}

func (i *InsertStatement) Pos() token.Position { return i.Position }
func (i *InsertStatement) End() token.Position { return i.Position }
func (i *InsertStatement) statementNode()      {}

// MultiInsertStatement is FROM source INSERT ... SELECT ... [INSERT ... SELECT ...].
type MultiInsertStatement struct {
	Position token.Position     `json:"-"`
	With     []*CTE             `json:"with,omitempty"`
	From     *FromClause        `json:"from"`
	Bodies   []*MultiInsertBody `json:"bodies"`
}

func (m *MultiInsertStatement) Pos() token.Position { return m.Position }
func (m *MultiInsertStatement) End() token.Position { return m.Position }
func (m *MultiInsertStatement) statementNode()      {}

// DeleteFromTable is DELETE FROM table [alias] [WHERE cond].
type DeleteFromTable struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	Alias    *TableAlias    `json:"alias,omitempty"`
	Where    Expression     `json:"where,omitempty"`
}

func (d *DeleteFromTable) Pos() token.Position { return d.Position }
func (d *DeleteFromTable) End() token.Position { return d.Position }
func (d *DeleteFromTable) statementNode()      {}

// UpdateTable is UPDATE table [alias] SET assignments [WHERE cond].
type UpdateTable struct {
	Position    token.Position `json:"-"`
	Table       *Identifier    `json:"table"`
	Alias       *TableAlias    `json:"alias,omitempty"`
	Assignments []*Assignment  `json:"assignments"`
	Where       Expression     `json:"where,omitempty"`
}

func (u *UpdateTable) Pos() token.Position { return u.Position }
func (u *UpdateTable) End() token.Position { return u.Position }
func (u *UpdateTable) statementNode()      {}

// MergeIntoTable is MERGE INTO target USING source ON cond WHEN ... . All
// matched actions precede the not-matched actions.
type MergeIntoTable struct {
	Position    token.Position `json:"-"`
	Target      *Identifier    `json:"target"`
	TargetAlias *TableAlias    `json:"target_alias,omitempty"`
	SourceTable *Identifier    `json:"source_table,omitempty"`
	SourceQuery *Query         `json:"source_query,omitempty"`
	SourceAlias *TableAlias    `json:"source_alias,omitempty"`
	On          Expression     `json:"on"`
	Matched     []*MergeAction `json:"matched,omitempty"`
	NotMatched  []*MergeAction `json:"not_matched,omitempty"`
}

func (m *MergeIntoTable) Pos() token.Position { return m.Position }
func (m *MergeIntoTable) End() token.Position { return m.Position }
func (m *MergeIntoTable) statementNode()      {}

// Use is USE [NAMESPACE] name.
type Use struct {
	Position  token.Position `json:"-"`
	Namespace bool           `json:"namespace,omitempty"`
	Name      *Identifier    `json:"name"`
}

func (u *Use) Pos() token.Position { return u.Position }
func (u *Use) End() token.Position { return u.Position }
func (u *Use) statementNode()      {}

// CreateNamespace is CREATE NAMESPACE|DATABASE|SCHEMA [IF NOT EXISTS] name ... .
type CreateNamespace struct {
	Position          token.Position `json:"-"`
	Kind              string         `json:"kind"`
	IfNotExists       bool           `json:"if_not_exists,omitempty"`
	Name              *Identifier    `json:"name"`
	Comment           *string        `json:"comment,omitempty"`
	Location          *string        `json:"location,omitempty"`
	Properties        []*Property    `json:"properties,omitempty"`
	PropertiesKeyword string         `json:"properties_keyword,omitempty"`
}

func (c *CreateNamespace) Pos() token.Position { return c.Position }
func (c *CreateNamespace) End() token.Position { return c.Position }
func (c *CreateNamespace) statementNode()      {}

// SetNamespaceProperties is ALTER NAMESPACE name SET DBPROPERTIES|PROPERTIES (...).
type SetNamespaceProperties struct {
	Position          token.Position `json:"-"`
	Kind              string         `json:"kind"`
	Name              *Identifier    `json:"name"`
	PropertiesKeyword string         `json:"properties_keyword"`
	Properties        []*Property    `json:"properties"`
}

func (s *SetNamespaceProperties) Pos() token.Position { return s.Position }
func (s *SetNamespaceProperties) End() token.Position { return s.Position }
func (s *SetNamespaceProperties) statementNode()      {}

// SetNamespaceLocation is ALTER NAMESPACE name SET LOCATION path.
type SetNamespaceLocation struct {
	Position token.Position `json:"-"`
	Kind     string         `json:"kind"`
	Name     *Identifier    `json:"name"`
	Location string         `json:"location"`
}

func (s *SetNamespaceLocation) Pos() token.Position { return s.Position }
func (s *SetNamespaceLocation) End() token.Position { return s.Position }
func (s *SetNamespaceLocation) statementNode()      {}

// DropNamespace is DROP NAMESPACE [IF EXISTS] name [RESTRICT|CASCADE].
type DropNamespace struct {
	Position token.Position `json:"-"`
	Kind     string         `json:"kind"`
	IfExists bool           `json:"if_exists,omitempty"`
	Name     *Identifier    `json:"name"`
	Cascade  bool           `json:"cascade,omitempty"`
	Restrict bool           `json:"restrict,omitempty"`
}

func (d *DropNamespace) Pos() token.Position { return d.Position }
func (d *DropNamespace) End() token.Position { return d.Position }
func (d *DropNamespace) statementNode()      {}

// ShowNamespaces is SHOW DATABASES|NAMESPACES [FROM|IN ns] [[LIKE] pattern].
type ShowNamespaces struct {
	Position token.Position `json:"-"`
	Keyword  string         `json:"keyword"`
	In       *Identifier    `json:"in,omitempty"`
	Pattern  *string        `json:"pattern,omitempty"`
}

func (s *ShowNamespaces) Pos() token.Position { return s.Position }
func (s *ShowNamespaces) End() token.Position { return s.Position }
func (s *ShowNamespaces) statementNode()      {}

// CreateTable is a data source table: CREATE TABLE ... USING provider.
type CreateTable struct {
	Position token.Position     `json:"-"`
	Header   *CreateTableHeader `json:"header"`
	Columns  []*ColumnDef       `json:"columns,omitempty"`
	Provider *Identifier        `json:"provider"`
	Clauses  *TableClauses      `json:"clauses"`
	AsQuery  *Query             `json:"as_query,omitempty"`
}

func (c *CreateTable) Pos() token.Position { return c.Position }
func (c *CreateTable) End() token.Position { return c.Position }
func (c *CreateTable) statementNode()      {}

// CreateHiveTable is a Hive format table: CREATE TABLE without USING.
type CreateHiveTable struct {
	Position token.Position     `json:"-"`
	Header   *CreateTableHeader `json:"header"`
	Columns  []*ColumnDef       `json:"columns,omitempty"`
	Clauses  *TableClauses      `json:"clauses"`
	AsQuery  *Query             `json:"as_query,omitempty"`
}

func (c *CreateHiveTable) Pos() token.Position { return c.Position }
func (c *CreateHiveTable) End() token.Position { return c.Position }
func (c *CreateHiveTable) statementNode()      {}

// CreateTableLike is CREATE TABLE [IF NOT EXISTS] target LIKE source ... .
type CreateTableLike struct {
	Position    token.Position `json:"-"`
	IfNotExists bool           `json:"if_not_exists,omitempty"`
	Target      *Identifier    `json:"target"`
	Source      *Identifier    `json:"source"`
	Provider    *Identifier    `json:"provider,omitempty"`
	Clauses     *TableClauses  `json:"clauses"`
}

func (c *CreateTableLike) Pos() token.Position { return c.Position }
func (c *CreateTableLike) End() token.Position { return c.Position }
func (c *CreateTableLike) statementNode()      {}

// ReplaceTable is [CREATE OR] REPLACE TABLE name ... USING provider.
type ReplaceTable struct {
	Position token.Position `json:"-"`
	OrCreate bool           `json:"or_create,omitempty"`
	Name     *Identifier    `json:"name"`
	Columns  []*ColumnDef   `json:"columns,omitempty"`
	Provider *Identifier    `json:"provider"`
	Clauses  *TableClauses  `json:"clauses"`
	AsQuery  *Query         `json:"as_query,omitempty"`
}

func (r *ReplaceTable) Pos() token.Position { return r.Position }
func (r *ReplaceTable) End() token.Position { return r.Position }
func (r *ReplaceTable) statementNode()      {}

// Analyze is ANALYZE TABLE name [PARTITION ...] COMPUTE STATISTICS [...].
type Analyze struct {
	Position      token.Position `json:"-"`
	Table         *Identifier    `json:"table"`
	Partition     *PartitionSpec `json:"partition,omitempty"`
	NoScan        bool           `json:"no_scan,omitempty"`
	ForColumns    []*Identifier  `json:"for_columns,omitempty"`
	ForAllColumns bool           `json:"for_all_columns,omitempty"`
}

func (a *Analyze) Pos() token.Position { return a.Position }
func (a *Analyze) End() token.Position { return a.Position }
func (a *Analyze) statementNode()      {}

// AddTableColumns is ALTER TABLE name ADD COLUMN|COLUMNS ... .
type AddTableColumns struct {
	Position token.Position     `json:"-"`
	Table    *Identifier        `json:"table"`
	Columns  []*QualifiedColumn `json:"columns"`
}

func (a *AddTableColumns) Pos() token.Position { return a.Position }
func (a *AddTableColumns) End() token.Position { return a.Position }
func (a *AddTableColumns) statementNode()      {}

// RenameTableColumn is ALTER TABLE name RENAME COLUMN from TO to.
type RenameTableColumn struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	From     *Identifier    `json:"from"`
	To       *Identifier    `json:"to"`
}

func (r *RenameTableColumn) Pos() token.Position { return r.Position }
func (r *RenameTableColumn) End() token.Position { return r.Position }
func (r *RenameTableColumn) statementNode()      {}

// DropTableColumns is ALTER TABLE name DROP COLUMN|COLUMNS ... .
type DropTableColumns struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	Columns  []*Identifier  `json:"columns"`
}

func (d *DropTableColumns) Pos() token.Position { return d.Position }
func (d *DropTableColumns) End() token.Position { return d.Position }
func (d *DropTableColumns) statementNode()      {}

// RenameTable is ALTER TABLE|VIEW from RENAME TO to.
type RenameTable struct {
	Position token.Position `json:"-"`
	View     bool           `json:"view,omitempty"`
	From     *Identifier    `json:"from"`
	To       *Identifier    `json:"to"`
}

func (r *RenameTable) Pos() token.Position { return r.Position }
func (r *RenameTable) End() token.Position { return r.Position }
func (r *RenameTable) statementNode()      {}

// SetTableProperties is ALTER TABLE|VIEW name SET TBLPROPERTIES (...).
type SetTableProperties struct {
	Position   token.Position `json:"-"`
	View       bool           `json:"view,omitempty"`
	Table      *Identifier    `json:"table"`
	Properties []*Property    `json:"properties"`
}

func (s *SetTableProperties) Pos() token.Position { return s.Position }
func (s *SetTableProperties) End() token.Position { return s.Position }
func (s *SetTableProperties) statementNode()      {}

// UnsetTableProperties is ALTER TABLE|VIEW name UNSET TBLPROPERTIES [IF EXISTS] (...).
type UnsetTableProperties struct {
	Position   token.Position `json:"-"`
	View       bool           `json:"view,omitempty"`
	Table      *Identifier    `json:"table"`
	IfExists   bool           `json:"if_exists,omitempty"`
	Properties []*Property    `json:"properties"`
}

func (u *UnsetTableProperties) Pos() token.Position { return u.Position }
func (u *UnsetTableProperties) End() token.Position { return u.Position }
func (u *UnsetTableProperties) statementNode()      {}

// AlterTableAlterColumn is ALTER TABLE name ALTER|CHANGE [COLUMN] col [action].
type AlterTableAlterColumn struct {
	Position token.Position     `json:"-"`
	Table    *Identifier        `json:"table"`
	Change   bool               `json:"change,omitempty"`
	Column   *Identifier        `json:"column"`
	Action   *AlterColumnAction `json:"action,omitempty"`
}

func (a *AlterTableAlterColumn) Pos() token.Position { return a.Position }
func (a *AlterTableAlterColumn) End() token.Position { return a.Position }
func (a *AlterTableAlterColumn) statementNode()      {}

// HiveChangeColumn is ALTER TABLE name [PARTITION ...] CHANGE [COLUMN] col newcol type ... .
type HiveChangeColumn struct {
	Position  token.Position  `json:"-"`
	Table     *Identifier     `json:"table"`
	Partition *PartitionSpec  `json:"partition,omitempty"`
	Column    *Identifier     `json:"column"`
	NewColumn *ColumnDef      `json:"new_column"`
	Place     *ColumnPosition `json:"place,omitempty"`
}

func (h *HiveChangeColumn) Pos() token.Position { return h.Position }
func (h *HiveChangeColumn) End() token.Position { return h.Position }
func (h *HiveChangeColumn) statementNode()      {}

// HiveReplaceColumns is ALTER TABLE name [PARTITION ...] REPLACE COLUMNS (...).
type HiveReplaceColumns struct {
	Position  token.Position     `json:"-"`
	Table     *Identifier        `json:"table"`
	Partition *PartitionSpec     `json:"partition,omitempty"`
	Columns   []*QualifiedColumn `json:"columns"`
}

func (h *HiveReplaceColumns) Pos() token.Position { return h.Position }
func (h *HiveReplaceColumns) End() token.Position { return h.Position }
func (h *HiveReplaceColumns) statementNode()      {}

// SetTableSerDe is ALTER TABLE name [PARTITION ...] SET SERDE ... | SET SERDEPROPERTIES ... .
type SetTableSerDe struct {
	Position   token.Position `json:"-"`
	Table      *Identifier    `json:"table"`
	Partition  *PartitionSpec `json:"partition,omitempty"`
	Serde      *string        `json:"serde,omitempty"`
	Properties []*Property    `json:"properties,omitempty"`
}

func (s *SetTableSerDe) Pos() token.Position { return s.Position }
func (s *SetTableSerDe) End() token.Position { return s.Position }
func (s *SetTableSerDe) statementNode()      {}

// AddTablePartition is ALTER TABLE|VIEW name ADD [IF NOT EXISTS] PARTITION ... .
type AddTablePartition struct {
	Position    token.Position       `json:"-"`
	View        bool                 `json:"view,omitempty"`
	Table       *Identifier          `json:"table"`
	IfNotExists bool                 `json:"if_not_exists,omitempty"`
	Partitions  []*PartitionLocation `json:"partitions"`
}

func (a *AddTablePartition) Pos() token.Position { return a.Position }
func (a *AddTablePartition) End() token.Position { return a.Position }
func (a *AddTablePartition) statementNode()      {}

// RenameTablePartition is ALTER TABLE name PARTITION ... RENAME TO PARTITION ... .
type RenameTablePartition struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	From     *PartitionSpec `json:"from"`
	To       *PartitionSpec `json:"to"`
}

func (r *RenameTablePartition) Pos() token.Position { return r.Position }
func (r *RenameTablePartition) End() token.Position { return r.Position }
func (r *RenameTablePartition) statementNode()      {}

// DropTablePartitions is ALTER TABLE|VIEW name DROP [IF EXISTS] PARTITION ..., ... [PURGE].
type DropTablePartitions struct {
	Position   token.Position   `json:"-"`
	View       bool             `json:"view,omitempty"`
	Table      *Identifier      `json:"table"`
	IfExists   bool             `json:"if_exists,omitempty"`
	Partitions []*PartitionSpec `json:"partitions"`
	Purge      bool             `json:"purge,omitempty"`
}

func (d *DropTablePartitions) Pos() token.Position { return d.Position }
func (d *DropTablePartitions) End() token.Position { return d.Position }
func (d *DropTablePartitions) statementNode()      {}

// SetTableLocation is ALTER TABLE name [PARTITION ...] SET LOCATION path.
type SetTableLocation struct {
	Position  token.Position `json:"-"`
	Table     *Identifier    `json:"table"`
	Partition *PartitionSpec `json:"partition,omitempty"`
	Location  string         `json:"location"`
}

func (s *SetTableLocation) Pos() token.Position { return s.Position }
func (s *SetTableLocation) End() token.Position { return s.Position }
func (s *SetTableLocation) statementNode()      {}

// RecoverPartitions is ALTER TABLE name RECOVER PARTITIONS.
type RecoverPartitions struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
}

func (r *RecoverPartitions) Pos() token.Position { return r.Position }
func (r *RecoverPartitions) End() token.Position { return r.Position }
func (r *RecoverPartitions) statementNode()      {}

// DropTable is DROP TABLE [IF EXISTS] name [PURGE].
type DropTable struct {
	Position token.Position `json:"-"`
	IfExists bool           `json:"if_exists,omitempty"`
	Name     *Identifier    `json:"name"`
	Purge    bool           `json:"purge,omitempty"`
}

func (d *DropTable) Pos() token.Position { return d.Position }
func (d *DropTable) End() token.Position { return d.Position }
func (d *DropTable) statementNode()      {}

// DropView is DROP VIEW [IF EXISTS] name.
type DropView struct {
	Position token.Position `json:"-"`
	IfExists bool           `json:"if_exists,omitempty"`
	Name     *Identifier    `json:"name"`
}

func (d *DropView) Pos() token.Position { return d.Position }
func (d *DropView) End() token.Position { return d.Position }
func (d *DropView) statementNode()      {}

// CreateView is CREATE [OR REPLACE] [[GLOBAL] TEMPORARY] VIEW ... AS query.
type CreateView struct {
	Position      token.Position `json:"-"`
	OrReplace     bool           `json:"or_replace,omitempty"`
	Global        bool           `json:"global,omitempty"`
	Temporary     bool           `json:"temporary,omitempty"`
	IfNotExists   bool           `json:"if_not_exists,omitempty"`
	Name          *Identifier    `json:"name"`
	Columns       []*ViewColumn  `json:"columns,omitempty"`
	Comment       *string        `json:"comment,omitempty"`
	PartitionedOn []*Identifier  `json:"partitioned_on,omitempty"`
	Properties    []*Property    `json:"properties,omitempty"`
	Query         *Query         `json:"query"`
}

func (c *CreateView) Pos() token.Position { return c.Position }
func (c *CreateView) End() token.Position { return c.Position }
func (c *CreateView) statementNode()      {}

// CreateTempViewUsing is CREATE [OR REPLACE] [GLOBAL] TEMPORARY VIEW name [(cols)] USING provider [OPTIONS (...)].
type CreateTempViewUsing struct {
	Position  token.Position `json:"-"`
	OrReplace bool           `json:"or_replace,omitempty"`
	Global    bool           `json:"global,omitempty"`
	Name      *Identifier    `json:"name"`
	Columns   []*ColumnDef   `json:"columns,omitempty"`
	Provider  *Identifier    `json:"provider"`
	Options   []*Property    `json:"options,omitempty"`
}

func (c *CreateTempViewUsing) Pos() token.Position { return c.Position }
func (c *CreateTempViewUsing) End() token.Position { return c.Position }
func (c *CreateTempViewUsing) statementNode()      {}

// AlterViewQuery is ALTER VIEW name [AS] query.
type AlterViewQuery struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Query    *Query         `json:"query"`
}

func (a *AlterViewQuery) Pos() token.Position { return a.Position }
func (a *AlterViewQuery) End() token.Position { return a.Position }
func (a *AlterViewQuery) statementNode()      {}

// CreateFunction is CREATE [OR REPLACE] [TEMPORARY] FUNCTION [IF NOT EXISTS] name AS class [USING ...].
type CreateFunction struct {
	Position    token.Position      `json:"-"`
	OrReplace   bool                `json:"or_replace,omitempty"`
	Temporary   bool                `json:"temporary,omitempty"`
	IfNotExists bool                `json:"if_not_exists,omitempty"`
	Name        *Identifier         `json:"name"`
	ClassName   string              `json:"class_name"`
	Resources   []*FunctionResource `json:"resources,omitempty"`
}

func (c *CreateFunction) Pos() token.Position { return c.Position }
func (c *CreateFunction) End() token.Position { return c.Position }
func (c *CreateFunction) statementNode()      {}

// DropFunction is DROP [TEMPORARY] FUNCTION [IF EXISTS] name.
type DropFunction struct {
	Position  token.Position `json:"-"`
	Temporary bool           `json:"temporary,omitempty"`
	IfExists  bool           `json:"if_exists,omitempty"`
	Name      *Identifier    `json:"name"`
}

func (d *DropFunction) Pos() token.Position { return d.Position }
func (d *DropFunction) End() token.Position { return d.Position }
func (d *DropFunction) statementNode()      {}

// Explain is EXPLAIN [LOGICAL|FORMATTED|EXTENDED|CODEGEN|COST] statement.
type Explain struct {
	Position  token.Position `json:"-"`
	Mode      string         `json:"mode,omitempty"`
	Statement Statement      `json:"statement"`
}

func (e *Explain) Pos() token.Position { return e.Position }
func (e *Explain) End() token.Position { return e.Position }
func (e *Explain) statementNode()      {}

// ShowTables is SHOW TABLES [FROM|IN ns] [[LIKE] pattern].
type ShowTables struct {
	Position token.Position `json:"-"`
	In       *Identifier    `json:"in,omitempty"`
	Pattern  *string        `json:"pattern,omitempty"`
}

func (s *ShowTables) Pos() token.Position { return s.Position }
func (s *ShowTables) End() token.Position { return s.Position }
func (s *ShowTables) statementNode()      {}

// ShowTableExtended is SHOW TABLE EXTENDED [FROM|IN ns] LIKE pattern [PARTITION ...].
type ShowTableExtended struct {
	Position  token.Position `json:"-"`
	In        *Identifier    `json:"in,omitempty"`
	Pattern   string         `json:"pattern"`
	Partition *PartitionSpec `json:"partition,omitempty"`
}

func (s *ShowTableExtended) Pos() token.Position { return s.Position }
func (s *ShowTableExtended) End() token.Position { return s.Position }
func (s *ShowTableExtended) statementNode()      {}

// ShowTblProperties is SHOW TBLPROPERTIES table [(key)].
type ShowTblProperties struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	Key      *Property      `json:"key,omitempty"`
}

func (s *ShowTblProperties) Pos() token.Position { return s.Position }
func (s *ShowTblProperties) End() token.Position { return s.Position }
func (s *ShowTblProperties) statementNode()      {}

// ShowColumns is SHOW COLUMNS FROM|IN table [FROM|IN ns].
type ShowColumns struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	In       *Identifier    `json:"in,omitempty"`
}

func (s *ShowColumns) Pos() token.Position { return s.Position }
func (s *ShowColumns) End() token.Position { return s.Position }
func (s *ShowColumns) statementNode()      {}

// ShowViews is SHOW VIEWS [FROM|IN ns] [[LIKE] pattern].
type ShowViews struct {
	Position token.Position `json:"-"`
	In       *Identifier    `json:"in,omitempty"`
	Pattern  *string        `json:"pattern,omitempty"`
}

func (s *ShowViews) Pos() token.Position { return s.Position }
func (s *ShowViews) End() token.Position { return s.Position }
func (s *ShowViews) statementNode()      {}

// ShowPartitions is SHOW PARTITIONS table [PARTITION ...].
type ShowPartitions struct {
	Position  token.Position `json:"-"`
	Table     *Identifier    `json:"table"`
	Partition *PartitionSpec `json:"partition,omitempty"`
}

func (s *ShowPartitions) Pos() token.Position { return s.Position }
func (s *ShowPartitions) End() token.Position { return s.Position }
func (s *ShowPartitions) statementNode()      {}

// ShowFunctions is SHOW [USER|SYSTEM|ALL] FUNCTIONS [[LIKE] name|pattern].
type ShowFunctions struct {
	Position token.Position `json:"-"`
	Scope    *Identifier    `json:"scope,omitempty"`
	Name     *Identifier    `json:"name,omitempty"`
	Pattern  *string        `json:"pattern,omitempty"`
}

func (s *ShowFunctions) Pos() token.Position { return s.Position }
func (s *ShowFunctions) End() token.Position { return s.Position }
func (s *ShowFunctions) statementNode()      {}

// ShowCreateTable is SHOW CREATE TABLE name [AS SERDE].
type ShowCreateTable struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	AsSerde  bool           `json:"as_serde,omitempty"`
}

func (s *ShowCreateTable) Pos() token.Position { return s.Position }
func (s *ShowCreateTable) End() token.Position { return s.Position }
func (s *ShowCreateTable) statementNode()      {}

// ShowCurrentNamespace is SHOW CURRENT NAMESPACE.
type ShowCurrentNamespace struct {
	Position token.Position `json:"-"`
}

func (s *ShowCurrentNamespace) Pos() token.Position { return s.Position }
func (s *ShowCurrentNamespace) End() token.Position { return s.Position }
func (s *ShowCurrentNamespace) statementNode()      {}

// DescribeFunction is DESCRIBE FUNCTION [EXTENDED] name. Name holds a
// qualified name, a string or an operator symbol.
type DescribeFunction struct {
	Position   token.Position `json:"-"`
	Extended   bool           `json:"extended,omitempty"`
	Name       string         `json:"name"`
	StringName bool           `json:"string_name,omitempty"`
}

func (d *DescribeFunction) Pos() token.Position { return d.Position }
func (d *DescribeFunction) End() token.Position { return d.Position }
func (d *DescribeFunction) statementNode()      {}

// DescribeNamespace is DESCRIBE NAMESPACE [EXTENDED] name.
type DescribeNamespace struct {
	Position token.Position `json:"-"`
	Kind     string         `json:"kind"`
	Extended bool           `json:"extended,omitempty"`
	Name     *Identifier    `json:"name"`
}

func (d *DescribeNamespace) Pos() token.Position { return d.Position }
func (d *DescribeNamespace) End() token.Position { return d.Position }
func (d *DescribeNamespace) statementNode()      {}

// DescribeRelation is DESCRIBE [TABLE] [EXTENDED|FORMATTED] name [PARTITION ...] [column].
type DescribeRelation struct {
	Position  token.Position `json:"-"`
	Option    string         `json:"option,omitempty"`
	Table     *Identifier    `json:"table"`
	Partition *PartitionSpec `json:"partition,omitempty"`
	Column    *Identifier    `json:"column,omitempty"`
}

func (d *DescribeRelation) Pos() token.Position { return d.Position }
func (d *DescribeRelation) End() token.Position { return d.Position }
func (d *DescribeRelation) statementNode()      {}

// DescribeQuery is DESCRIBE [QUERY] query.
type DescribeQuery struct {
	Position token.Position `json:"-"`
	Query    *Query         `json:"query"`
}

func (d *DescribeQuery) Pos() token.Position { return d.Position }
func (d *DescribeQuery) End() token.Position { return d.Position }
func (d *DescribeQuery) statementNode()      {}

// CommentNamespace is COMMENT ON NAMESPACE name IS comment. A nil Comment
// is NULL.
type CommentNamespace struct {
	Position token.Position `json:"-"`
	Kind     string         `json:"kind"`
	Name     *Identifier    `json:"name"`
	Comment  *string        `json:"comment,omitempty"`
}

func (c *CommentNamespace) Pos() token.Position { return c.Position }
func (c *CommentNamespace) End() token.Position { return c.Position }
func (c *CommentNamespace) statementNode()      {}

// CommentTable is COMMENT ON TABLE name IS comment. A nil Comment is NULL.
type CommentTable struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
	Comment  *string        `json:"comment,omitempty"`
}

func (c *CommentTable) Pos() token.Position { return c.Position }
func (c *CommentTable) End() token.Position { return c.Position }
func (c *CommentTable) statementNode()      {}

// RefreshTable is REFRESH TABLE name.
type RefreshTable struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
}

func (r *RefreshTable) Pos() token.Position { return r.Position }
func (r *RefreshTable) End() token.Position { return r.Position }
func (r *RefreshTable) statementNode()      {}

// RefreshFunction is REFRESH FUNCTION name.
type RefreshFunction struct {
	Position token.Position `json:"-"`
	Name     *Identifier    `json:"name"`
}

func (r *RefreshFunction) Pos() token.Position { return r.Position }
func (r *RefreshFunction) End() token.Position { return r.Position }
func (r *RefreshFunction) statementNode()      {}

// RefreshResource is REFRESH path. Quoted is set when the path was a string.
type RefreshResource struct {
	Position token.Position `json:"-"`
	Path     string         `json:"path"`
	Quoted   bool           `json:"quoted,omitempty"`
}

func (r *RefreshResource) Pos() token.Position { return r.Position }
func (r *RefreshResource) End() token.Position { return r.Position }
func (r *RefreshResource) statementNode()      {}

// CacheTable is CACHE [LAZY] TABLE name [OPTIONS (...)] [[AS] query].
type CacheTable struct {
	Position token.Position `json:"-"`
	Lazy     bool           `json:"lazy,omitempty"`
	Name     *Identifier    `json:"name"`
	Options  []*Property    `json:"options,omitempty"`
	Query    *Query         `json:"query,omitempty"`
}

func (c *CacheTable) Pos() token.Position { return c.Position }
func (c *CacheTable) End() token.Position { return c.Position }
func (c *CacheTable) statementNode()      {}

// UncacheTable is UNCACHE TABLE [IF EXISTS] name.
type UncacheTable struct {
	Position token.Position `json:"-"`
	IfExists bool           `json:"if_exists,omitempty"`
	Name     *Identifier    `json:"name"`
}

func (u *UncacheTable) Pos() token.Position { return u.Position }
func (u *UncacheTable) End() token.Position { return u.Position }
func (u *UncacheTable) statementNode()      {}

// ClearCache is CLEAR CACHE.
type ClearCache struct {
	Position token.Position `json:"-"`
}

func (c *ClearCache) Pos() token.Position { return c.Position }
func (c *ClearCache) End() token.Position { return c.Position }
func (c *ClearCache) statementNode()      {}

// LoadData is LOAD DATA [LOCAL] INPATH path [OVERWRITE] INTO TABLE name [PARTITION ...].
type LoadData struct {
	Position  token.Position `json:"-"`
	Local     bool           `json:"local,omitempty"`
	Path      string         `json:"path"`
	Overwrite bool           `json:"overwrite,omitempty"`
	Table     *Identifier    `json:"table"`
	Partition *PartitionSpec `json:"partition,omitempty"`
}

func (l *LoadData) Pos() token.Position { return l.Position }
func (l *LoadData) End() token.Position { return l.Position }
func (l *LoadData) statementNode()      {}

// TruncateTable is TRUNCATE TABLE name [PARTITION ...].
type TruncateTable struct {
	Position  token.Position `json:"-"`
	Table     *Identifier    `json:"table"`
	Partition *PartitionSpec `json:"partition,omitempty"`
}

func (t *TruncateTable) Pos() token.Position { return t.Position }
func (t *TruncateTable) End() token.Position { return t.Position }
func (t *TruncateTable) statementNode()      {}

// RepairTable is MSCK REPAIR TABLE name [ADD|DROP|SYNC PARTITIONS].
type RepairTable struct {
	Position token.Position `json:"-"`
	Table    *Identifier    `json:"table"`
	Option   string         `json:"option,omitempty"`
}

func (r *RepairTable) Pos() token.Position { return r.Position }
func (r *RepairTable) End() token.Position { return r.Position }
func (r *RepairTable) statementNode()      {}

// ManageResource is ADD|LIST FILE|JAR|ARCHIVE ... with its verbatim arguments.
type ManageResource struct {
	Position token.Position `json:"-"`
	Op       string         `json:"op"`
	Type     *Identifier    `json:"type"`
	Args     string         `json:"args,omitempty"`
}

func (m *ManageResource) Pos() token.Position { return m.Position }
func (m *ManageResource) End() token.Position { return m.Position }
func (m *ManageResource) statementNode()      {}

// SetTimeZone is SET TIME ZONE interval|string|LOCAL.
type SetTimeZone struct {
	Position token.Position `json:"-"`
	Interval Expression     `json:"interval,omitempty"`
	Zone     *string        `json:"zone,omitempty"`
	Local    bool           `json:"local,omitempty"`
}

func (s *SetTimeZone) Pos() token.Position { return s.Position }
func (s *SetTimeZone) End() token.Position { return s.Position }
func (s *SetTimeZone) statementNode()      {}

// SetConfiguration is SET, SET key, SET key = value or SET -v. Key and Value
// keep their verbatim text.
type SetConfiguration struct {
	Position token.Position `json:"-"`
	Key      string         `json:"key,omitempty"`
	Value    *string        `json:"value,omitempty"`
}

func (s *SetConfiguration) Pos() token.Position { return s.Position }
func (s *SetConfiguration) End() token.Position { return s.Position }
func (s *SetConfiguration) statementNode()      {}

// ResetConfiguration is RESET [key].
type ResetConfiguration struct {
	Position token.Position `json:"-"`
	Key      string         `json:"key,omitempty"`
}

func (r *ResetConfiguration) Pos() token.Position { return r.Position }
func (r *ResetConfiguration) End() token.Position { return r.Position }
func (r *ResetConfiguration) statementNode()      {}

// UnsupportedCommand is a recognized legacy command that is not supported.
// Text holds the verbatim statement.
type UnsupportedCommand struct {
	Position   token.Position `json:"-"`
	Keywords   []string       `json:"keywords"`
	Text       string         `json:"text"`
	Diagnostic *Diagnostic    `json:"diagnostic"`
}

func (u *UnsupportedCommand) Pos() token.Position { return u.Position }
func (u *UnsupportedCommand) End() token.Position { return u.Position }
func (u *UnsupportedCommand) statementNode()      {}
