package types

// ColumnType is the dialect-neutral column type set. Renderers map each
// entry to the target dialect's type name.
type ColumnType string

const (
	ColTinyInt    ColumnType = "tinyint"
	ColSmallInt   ColumnType = "smallint"
	ColInteger    ColumnType = "integer"
	ColBigInt     ColumnType = "bigint"
	ColVarchar    ColumnType = "varchar"
	ColText       ColumnType = "text"
	ColBoolean    ColumnType = "boolean"
	ColFloat      ColumnType = "float"
	ColDouble     ColumnType = "double"
	ColDecimal    ColumnType = "decimal"
	ColDate       ColumnType = "date"
	ColTime       ColumnType = "time"
	ColDateTime   ColumnType = "datetime"
	ColTimestamp  ColumnType = "timestamp"
	ColBlob       ColumnType = "blob"
	ColJSON       ColumnType = "json"
	ColJSONBinary ColumnType = "jsonb"
	ColUUID       ColumnType = "uuid"
)

// ColumnDef describes one column in CREATE TABLE or ALTER TABLE. Default
// values render through the literal-fallback path because DDL contexts
// cannot bind parameters.
type ColumnDef struct {
	Name          Iden
	Type          ColumnType
	Size          uint32 // varchar length, 0 means dialect default
	Precision     uint32 // decimal precision
	Scale         uint32 // decimal scale
	Unsigned      bool
	NotNull       bool
	Nullable      bool // explicit NULL
	Default       *Value
	AutoIncrement bool
	Unique        bool
	PrimaryKey    bool
}

// ForeignKeyAction is a referential action for ON DELETE / ON UPDATE.
// The zero value omits the clause.
type ForeignKeyAction string

const (
	FKNone       ForeignKeyAction = ""
	FKCascade    ForeignKeyAction = "CASCADE"
	FKSetNull    ForeignKeyAction = "SET NULL"
	FKSetDefault ForeignKeyAction = "SET DEFAULT"
	FKRestrict   ForeignKeyAction = "RESTRICT"
	FKNoAction   ForeignKeyAction = "NO ACTION"
)

// CreateTableStatement holds CREATE TABLE. PrimaryKey lists the columns
// of a table-level composite key; column-level PRIMARY KEY lives on the
// ColumnDef.
type CreateTableStatement struct {
	Table       Iden
	IfNotExists bool
	Columns     []*ColumnDef
	PrimaryKey  []Iden
}

// DropTableStatement holds DROP TABLE for one or more tables.
type DropTableStatement struct {
	Tables   []Iden
	IfExists bool
}

// TruncateTableStatement holds TRUNCATE TABLE.
type TruncateTableStatement struct {
	Table Iden
}

// RenameTableStatement holds a table rename.
type RenameTableStatement struct {
	From Iden
	To   Iden
}

// AlterKind discriminates ALTER TABLE operations.
type AlterKind int

const (
	AlterAddColumn AlterKind = iota
	AlterModifyColumn
	AlterRenameColumn
	AlterDropColumn
)

// AlterTableStatement holds a single ALTER TABLE operation. One
// operation per statement: dialects disagree on comma-joined forms.
type AlterTableStatement struct {
	Table  Iden
	Kind   AlterKind
	Column *ColumnDef // AlterAddColumn, AlterModifyColumn
	From   Iden       // AlterRenameColumn
	To     Iden       // AlterRenameColumn
	Name   Iden       // AlterDropColumn
}

// CreateIndexStatement holds CREATE [UNIQUE] INDEX.
type CreateIndexStatement struct {
	Name    Iden
	Table   Iden
	Columns []Iden
	Unique  bool
}

// DropIndexStatement holds DROP INDEX. Some dialects require the table
// name, which the renderer supplies from Table.
type DropIndexStatement struct {
	Name  Iden
	Table Iden
}

// CreateForeignKeyStatement renders ALTER TABLE ... ADD CONSTRAINT ...
// FOREIGN KEY.
type CreateForeignKeyStatement struct {
	Name       Iden
	Table      Iden
	Columns    []Iden
	RefTable   Iden
	RefColumns []Iden
	OnDelete   ForeignKeyAction
	OnUpdate   ForeignKeyAction
}

// DropForeignKeyStatement renders ALTER TABLE ... DROP FOREIGN KEY on
// MySQL and ALTER TABLE ... DROP CONSTRAINT elsewhere.
type DropForeignKeyStatement struct {
	Name  Iden
	Table Iden
}

func (*CreateTableStatement) isStatement()      {}
func (*DropTableStatement) isStatement()        {}
func (*TruncateTableStatement) isStatement()    {}
func (*RenameTableStatement) isStatement()      {}
func (*AlterTableStatement) isStatement()       {}
func (*CreateIndexStatement) isStatement()      {}
func (*DropIndexStatement) isStatement()        {}
func (*CreateForeignKeyStatement) isStatement() {}
func (*DropForeignKeyStatement) isStatement()   {}

func (s *CreateTableStatement) Validate() error {
	if s.Table == nil {
		return NewEmptyStatementError("CREATE TABLE", "no table name")
	}
	if len(s.Columns) == 0 {
		return NewEmptyStatementError("CREATE TABLE", "no columns")
	}
	for _, col := range s.Columns {
		if col == nil || col.Name == nil {
			return NewEmptyStatementError("CREATE TABLE", "column without a name")
		}
	}
	return nil
}

func (s *DropTableStatement) Validate() error {
	if len(s.Tables) == 0 {
		return NewEmptyStatementError("DROP TABLE", "no tables")
	}
	return nil
}

func (s *TruncateTableStatement) Validate() error {
	if s.Table == nil {
		return NewEmptyStatementError("TRUNCATE TABLE", "no table name")
	}
	return nil
}

func (s *RenameTableStatement) Validate() error {
	if s.From == nil || s.To == nil {
		return NewEmptyStatementError("RENAME TABLE", "both names are required")
	}
	return nil
}

func (s *AlterTableStatement) Validate() error {
	if s.Table == nil {
		return NewEmptyStatementError("ALTER TABLE", "no table name")
	}
	switch s.Kind {
	case AlterAddColumn, AlterModifyColumn:
		if s.Column == nil || s.Column.Name == nil {
			return NewEmptyStatementError("ALTER TABLE", "no column definition")
		}
	case AlterRenameColumn:
		if s.From == nil || s.To == nil {
			return NewEmptyStatementError("ALTER TABLE", "rename requires both column names")
		}
	case AlterDropColumn:
		if s.Name == nil {
			return NewEmptyStatementError("ALTER TABLE", "no column name")
		}
	}
	return nil
}

func (s *CreateIndexStatement) Validate() error {
	if s.Name == nil {
		return NewEmptyStatementError("CREATE INDEX", "no index name")
	}
	if s.Table == nil {
		return NewEmptyStatementError("CREATE INDEX", "no table name")
	}
	if len(s.Columns) == 0 {
		return NewEmptyStatementError("CREATE INDEX", "no columns")
	}
	return nil
}

func (s *DropIndexStatement) Validate() error {
	if s.Name == nil {
		return NewEmptyStatementError("DROP INDEX", "no index name")
	}
	return nil
}

func (s *CreateForeignKeyStatement) Validate() error {
	if s.Name == nil {
		return NewEmptyStatementError("FOREIGN KEY", "no constraint name")
	}
	if s.Table == nil || s.RefTable == nil {
		return NewEmptyStatementError("FOREIGN KEY", "both tables are required")
	}
	if len(s.Columns) == 0 || len(s.RefColumns) == 0 {
		return NewEmptyStatementError("FOREIGN KEY", "both column lists are required")
	}
	if len(s.Columns) != len(s.RefColumns) {
		return NewEmptyStatementError("FOREIGN KEY", "column lists differ in length")
	}
	return nil
}

func (s *DropForeignKeyStatement) Validate() error {
	if s.Name == nil {
		return NewEmptyStatementError("FOREIGN KEY", "no constraint name")
	}
	if s.Table == nil {
		return NewEmptyStatementError("FOREIGN KEY", "no table name")
	}
	return nil
}
