package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// UpdateBuilder accumulates an UPDATE statement. An UPDATE with zero
// assignments is representable and rejected at render time.
type UpdateBuilder struct {
	stmt *types.UpdateStatement
}

// Update creates an UPDATE builder targeting the given table.
func Update(table any) *UpdateBuilder {
	return &UpdateBuilder{stmt: &types.UpdateStatement{Table: asIden(table)}}
}

// Set appends one assignment. The value may be a native Go value, a
// Value, or an expression such as Col("hits").Add(1).
func (b *UpdateBuilder) Set(column, value any) *UpdateBuilder {
	b.stmt.Assignments = append(b.stmt.Assignments, types.Assignment{
		Column: asIden(column),
		Value:  toExpr(value),
	})
	return b
}

// Where adds a condition. Repeated calls AND-combine with the existing
// condition tree.
func (b *UpdateBuilder) Where(cond Expr) *UpdateBuilder {
	b.stmt.Where = andCombine(b.stmt.Where, cond.node)
	return b
}

// Returning appends RETURNING columns. Dialects without RETURNING reject
// at render.
func (b *UpdateBuilder) Returning(columns ...any) *UpdateBuilder {
	for _, c := range columns {
		b.stmt.Returning = append(b.stmt.Returning, colOrExpr(c).node)
	}
	return b
}

// Statement returns the built tree.
func (b *UpdateBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement with bound parameters.
func (b *UpdateBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement with values inlined as literals.
func (b *UpdateBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}
