package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// ColumnDef describes one column for CREATE TABLE and ALTER TABLE,
// built fluently: Column("id").BigInteger().NotNull().AutoIncrement().
// Type mapping to dialect type names happens at render.
type ColumnDef struct {
	def types.ColumnDef
}

// Column starts a column definition with the given name.
func Column(name any) *ColumnDef {
	return &ColumnDef{def: types.ColumnDef{Name: asIden(name)}}
}

// TinyInteger sets the tinyint column type.
func (c *ColumnDef) TinyInteger() *ColumnDef {
	c.def.Type = types.ColTinyInt
	return c
}

// SmallInteger sets the smallint column type.
func (c *ColumnDef) SmallInteger() *ColumnDef {
	c.def.Type = types.ColSmallInt
	return c
}

// Integer sets the integer column type.
func (c *ColumnDef) Integer() *ColumnDef {
	c.def.Type = types.ColInteger
	return c
}

// BigInteger sets the bigint column type.
func (c *ColumnDef) BigInteger() *ColumnDef {
	c.def.Type = types.ColBigInt
	return c
}

// Varchar sets a varchar column type. Zero size means the dialect
// default length.
func (c *ColumnDef) Varchar(size uint32) *ColumnDef {
	c.def.Type = types.ColVarchar
	c.def.Size = size
	return c
}

// Text sets the text column type.
func (c *ColumnDef) Text() *ColumnDef {
	c.def.Type = types.ColText
	return c
}

// Boolean sets the boolean column type.
func (c *ColumnDef) Boolean() *ColumnDef {
	c.def.Type = types.ColBoolean
	return c
}

// Float sets the single-precision float column type.
func (c *ColumnDef) Float() *ColumnDef {
	c.def.Type = types.ColFloat
	return c
}

// Double sets the double-precision float column type.
func (c *ColumnDef) Double() *ColumnDef {
	c.def.Type = types.ColDouble
	return c
}

// Decimal sets a decimal column type. Zero precision means the dialect
// default.
func (c *ColumnDef) Decimal(precision, scale uint32) *ColumnDef {
	c.def.Type = types.ColDecimal
	c.def.Precision = precision
	c.def.Scale = scale
	return c
}

// Date sets the date column type.
func (c *ColumnDef) Date() *ColumnDef {
	c.def.Type = types.ColDate
	return c
}

// Time sets the time-of-day column type.
func (c *ColumnDef) Time() *ColumnDef {
	c.def.Type = types.ColTime
	return c
}

// DateTime sets the datetime column type.
func (c *ColumnDef) DateTime() *ColumnDef {
	c.def.Type = types.ColDateTime
	return c
}

// Timestamp sets the timestamp column type.
func (c *ColumnDef) Timestamp() *ColumnDef {
	c.def.Type = types.ColTimestamp
	return c
}

// Blob sets the binary column type.
func (c *ColumnDef) Blob() *ColumnDef {
	c.def.Type = types.ColBlob
	return c
}

// JSON sets the json column type.
func (c *ColumnDef) JSON() *ColumnDef {
	c.def.Type = types.ColJSON
	return c
}

// JSONBinary sets the binary json column type. Postgres renders jsonb;
// dialects without a binary variant fall back to their json type.
func (c *ColumnDef) JSONBinary() *ColumnDef {
	c.def.Type = types.ColJSONBinary
	return c
}

// UUID sets the uuid column type. Dialects without a native type render
// a char(36) equivalent.
func (c *ColumnDef) UUID() *ColumnDef {
	c.def.Type = types.ColUUID
	return c
}

// Unsigned marks an integer column unsigned. Only the MySQL family
// renders it; other dialects ignore the flag.
func (c *ColumnDef) Unsigned() *ColumnDef {
	c.def.Unsigned = true
	return c
}

// NotNull adds NOT NULL.
func (c *ColumnDef) NotNull() *ColumnDef {
	c.def.NotNull = true
	return c
}

// Null adds an explicit NULL.
func (c *ColumnDef) Null() *ColumnDef {
	c.def.Nullable = true
	return c
}

// Default sets the column default. The value renders as a literal, since
// DDL cannot bind parameters.
func (c *ColumnDef) Default(v any) *ColumnDef {
	val := V(v)
	c.def.Default = &val
	return c
}

// AutoIncrement marks the column auto-incrementing. Dialects render
// their own keyword or fold it into the type, as serial does.
func (c *ColumnDef) AutoIncrement() *ColumnDef {
	c.def.AutoIncrement = true
	return c
}

// Unique adds a UNIQUE constraint.
func (c *ColumnDef) Unique() *ColumnDef {
	c.def.Unique = true
	return c
}

// PrimaryKey marks the column as the primary key.
func (c *ColumnDef) PrimaryKey() *ColumnDef {
	c.def.PrimaryKey = true
	return c
}

// CreateTableBuilder accumulates a CREATE TABLE statement.
type CreateTableBuilder struct {
	stmt *types.CreateTableStatement
}

// CreateTable creates a CREATE TABLE builder for the given table.
func CreateTable(table any) *CreateTableBuilder {
	return &CreateTableBuilder{stmt: &types.CreateTableStatement{Table: asIden(table)}}
}

// IfNotExists adds IF NOT EXISTS. Dialects without it reject at render.
func (b *CreateTableBuilder) IfNotExists() *CreateTableBuilder {
	b.stmt.IfNotExists = true
	return b
}

// Column appends a column definition.
func (b *CreateTableBuilder) Column(c *ColumnDef) *CreateTableBuilder {
	def := c.def
	b.stmt.Columns = append(b.stmt.Columns, &def)
	return b
}

// PrimaryKey sets a table-level composite primary key.
func (b *CreateTableBuilder) PrimaryKey(columns ...any) *CreateTableBuilder {
	b.stmt.PrimaryKey = asIdens(columns)
	return b
}

// Statement returns the built tree.
func (b *CreateTableBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *CreateTableBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *CreateTableBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// DropTableBuilder accumulates a DROP TABLE statement.
type DropTableBuilder struct {
	stmt *types.DropTableStatement
}

// DropTable creates a DROP TABLE builder for one or more tables.
func DropTable(tables ...any) *DropTableBuilder {
	return &DropTableBuilder{stmt: &types.DropTableStatement{Tables: asIdens(tables)}}
}

// IfExists adds IF EXISTS.
func (b *DropTableBuilder) IfExists() *DropTableBuilder {
	b.stmt.IfExists = true
	return b
}

// Statement returns the built tree.
func (b *DropTableBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *DropTableBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *DropTableBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// TruncateTableBuilder accumulates a TRUNCATE TABLE statement.
type TruncateTableBuilder struct {
	stmt *types.TruncateTableStatement
}

// TruncateTable creates a TRUNCATE TABLE builder. Dialects without
// TRUNCATE reject at render.
func TruncateTable(table any) *TruncateTableBuilder {
	return &TruncateTableBuilder{stmt: &types.TruncateTableStatement{Table: asIden(table)}}
}

// Statement returns the built tree.
func (b *TruncateTableBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *TruncateTableBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *TruncateTableBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// RenameTableBuilder accumulates a table rename.
type RenameTableBuilder struct {
	stmt *types.RenameTableStatement
}

// RenameTable creates a rename builder. MySQL renders RENAME TABLE,
// Postgres and SQLite render ALTER TABLE RENAME TO.
func RenameTable(from, to any) *RenameTableBuilder {
	return &RenameTableBuilder{stmt: &types.RenameTableStatement{From: asIden(from), To: asIden(to)}}
}

// Statement returns the built tree.
func (b *RenameTableBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *RenameTableBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *RenameTableBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// AlterTableBuilder holds exactly one ALTER TABLE operation, set by the
// last of AddColumn, ModifyColumn, RenameColumn, or DropColumn called.
// Engines differ in multi-operation ALTER support, so each operation is
// its own statement.
type AlterTableBuilder struct {
	stmt *types.AlterTableStatement
}

// AlterTable creates an ALTER TABLE builder for the given table.
func AlterTable(table any) *AlterTableBuilder {
	return &AlterTableBuilder{stmt: &types.AlterTableStatement{Table: asIden(table)}}
}

// AddColumn sets the operation to ADD COLUMN.
func (b *AlterTableBuilder) AddColumn(c *ColumnDef) *AlterTableBuilder {
	def := c.def
	b.stmt.Kind = types.AlterAddColumn
	b.stmt.Column = &def
	return b
}

// ModifyColumn sets the operation to a column type change. SQLite has no
// such operation and rejects at render.
func (b *AlterTableBuilder) ModifyColumn(c *ColumnDef) *AlterTableBuilder {
	def := c.def
	b.stmt.Kind = types.AlterModifyColumn
	b.stmt.Column = &def
	return b
}

// RenameColumn sets the operation to RENAME COLUMN.
func (b *AlterTableBuilder) RenameColumn(from, to any) *AlterTableBuilder {
	b.stmt.Kind = types.AlterRenameColumn
	b.stmt.From = asIden(from)
	b.stmt.To = asIden(to)
	return b
}

// DropColumn sets the operation to DROP COLUMN.
func (b *AlterTableBuilder) DropColumn(name any) *AlterTableBuilder {
	b.stmt.Kind = types.AlterDropColumn
	b.stmt.Name = asIden(name)
	return b
}

// Statement returns the built tree.
func (b *AlterTableBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *AlterTableBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *AlterTableBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}
