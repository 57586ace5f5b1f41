package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// ForeignKeyBuilder accumulates an ALTER TABLE ADD CONSTRAINT statement.
// SQLite cannot add constraints after table creation and rejects at
// render.
type ForeignKeyBuilder struct {
	stmt *types.CreateForeignKeyStatement
}

// CreateForeignKey creates a foreign key builder with the given
// constraint name.
func CreateForeignKey(name any) *ForeignKeyBuilder {
	return &ForeignKeyBuilder{stmt: &types.CreateForeignKeyStatement{Name: asIden(name)}}
}

// From sets the referencing table and columns.
func (b *ForeignKeyBuilder) From(table any, columns ...any) *ForeignKeyBuilder {
	b.stmt.Table = asIden(table)
	b.stmt.Columns = asIdens(columns)
	return b
}

// To sets the referenced table and columns.
func (b *ForeignKeyBuilder) To(table any, columns ...any) *ForeignKeyBuilder {
	b.stmt.RefTable = asIden(table)
	b.stmt.RefColumns = asIdens(columns)
	return b
}

// OnDelete sets the ON DELETE referential action.
func (b *ForeignKeyBuilder) OnDelete(action ForeignKeyAction) *ForeignKeyBuilder {
	b.stmt.OnDelete = action
	return b
}

// OnUpdate sets the ON UPDATE referential action.
func (b *ForeignKeyBuilder) OnUpdate(action ForeignKeyAction) *ForeignKeyBuilder {
	b.stmt.OnUpdate = action
	return b
}

// Statement returns the built tree.
func (b *ForeignKeyBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *ForeignKeyBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *ForeignKeyBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// DropForeignKeyBuilder accumulates an ALTER TABLE DROP constraint
// statement.
type DropForeignKeyBuilder struct {
	stmt *types.DropForeignKeyStatement
}

// DropForeignKey creates a builder dropping the named constraint. MySQL
// renders DROP FOREIGN KEY, Postgres and SQL Server DROP CONSTRAINT.
func DropForeignKey(name any) *DropForeignKeyBuilder {
	return &DropForeignKeyBuilder{stmt: &types.DropForeignKeyStatement{Name: asIden(name)}}
}

// On sets the table carrying the constraint.
func (b *DropForeignKeyBuilder) On(table any) *DropForeignKeyBuilder {
	b.stmt.Table = asIden(table)
	return b
}

// Statement returns the built tree.
func (b *DropForeignKeyBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *DropForeignKeyBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *DropForeignKeyBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}
