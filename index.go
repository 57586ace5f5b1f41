package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// CreateIndexBuilder accumulates a CREATE INDEX statement.
type CreateIndexBuilder struct {
	stmt *types.CreateIndexStatement
}

// CreateIndex creates an index builder with the given index name.
func CreateIndex(name any) *CreateIndexBuilder {
	return &CreateIndexBuilder{stmt: &types.CreateIndexStatement{Name: asIden(name)}}
}

// On sets the indexed table.
func (b *CreateIndexBuilder) On(table any) *CreateIndexBuilder {
	b.stmt.Table = asIden(table)
	return b
}

// Columns appends indexed columns.
func (b *CreateIndexBuilder) Columns(columns ...any) *CreateIndexBuilder {
	b.stmt.Columns = append(b.stmt.Columns, asIdens(columns)...)
	return b
}

// Unique marks the index UNIQUE.
func (b *CreateIndexBuilder) Unique() *CreateIndexBuilder {
	b.stmt.Unique = true
	return b
}

// Statement returns the built tree.
func (b *CreateIndexBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *CreateIndexBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *CreateIndexBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// DropIndexBuilder accumulates a DROP INDEX statement.
type DropIndexBuilder struct {
	stmt *types.DropIndexStatement
}

// DropIndex creates a drop-index builder. MySQL and SQL Server require
// the indexed table via On; Postgres and SQLite ignore it.
func DropIndex(name any) *DropIndexBuilder {
	return &DropIndexBuilder{stmt: &types.DropIndexStatement{Name: asIden(name)}}
}

// On sets the indexed table for dialects that need it.
func (b *DropIndexBuilder) On(table any) *DropIndexBuilder {
	b.stmt.Table = asIden(table)
	return b
}

// Statement returns the built tree.
func (b *DropIndexBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement.
func (b *DropIndexBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement as plain text.
func (b *DropIndexBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}
