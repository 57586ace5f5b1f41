package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// DeleteBuilder accumulates a DELETE statement. A missing WHERE clause
// is legal and deletes every row, exactly as the SQL it renders.
type DeleteBuilder struct {
	stmt *types.DeleteStatement
}

// DeleteFrom creates a DELETE builder targeting the given table.
func DeleteFrom(table any) *DeleteBuilder {
	return &DeleteBuilder{stmt: &types.DeleteStatement{Table: asIden(table)}}
}

// Where adds a condition. Repeated calls AND-combine with the existing
// condition tree.
func (b *DeleteBuilder) Where(cond Expr) *DeleteBuilder {
	b.stmt.Where = andCombine(b.stmt.Where, cond.node)
	return b
}

// Returning appends RETURNING columns. Dialects without RETURNING reject
// at render.
func (b *DeleteBuilder) Returning(columns ...any) *DeleteBuilder {
	for _, c := range columns {
		b.stmt.Returning = append(b.stmt.Returning, colOrExpr(c).node)
	}
	return b
}

// Statement returns the built tree.
func (b *DeleteBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement with bound parameters.
func (b *DeleteBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement with values inlined as literals.
func (b *DeleteBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}
