package sqlb

import (
	"sort"

	"github.com/zoobzio/sqlb/internal/types"
)

// InsertBuilder accumulates an INSERT statement. Value rows and a SELECT
// source are mutually exclusive; the conflict and any row arity mismatch
// surface at render time.
type InsertBuilder struct {
	stmt *types.InsertStatement
}

// InsertInto creates an INSERT builder targeting the given table.
func InsertInto(table any) *InsertBuilder {
	return &InsertBuilder{stmt: &types.InsertStatement{Table: asIden(table)}}
}

// Columns sets the column list.
func (b *InsertBuilder) Columns(columns ...any) *InsertBuilder {
	b.stmt.Columns = asIdens(columns)
	return b
}

// Values appends one value row. Arguments coerce through V, so native Go
// values, Value constructors, and nil all work. Each row must match the
// column list length, checked at render.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	row := make([]types.Value, len(values))
	for i, v := range values {
		row[i] = V(v)
	}
	b.stmt.Rows = append(b.stmt.Rows, row)
	return b
}

// Row appends one value row that is already coerced.
func (b *InsertBuilder) Row(values ...Value) *InsertBuilder {
	b.stmt.Rows = append(b.stmt.Rows, append([]types.Value(nil), values...))
	return b
}

// JSON appends one row from a map. The first JSON row fixes the column
// list to its keys in sorted order; later rows fill missing keys with
// NULL and ignore keys outside the column list.
func (b *InsertBuilder) JSON(row map[string]any) *InsertBuilder {
	if len(b.stmt.Columns) == 0 {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.stmt.Columns = append(b.stmt.Columns, types.Alias(k))
		}
	}
	values := make([]types.Value, len(b.stmt.Columns))
	for i, col := range b.stmt.Columns {
		if v, ok := row[col.Unquoted()]; ok {
			values[i] = V(v)
		} else {
			values[i] = Null()
		}
	}
	b.stmt.Rows = append(b.stmt.Rows, values)
	return b
}

// FromSelect sets a SELECT statement as the row source.
func (b *InsertBuilder) FromSelect(sub *SelectBuilder) *InsertBuilder {
	b.stmt.Select = sub.stmt
	return b
}

// Returning appends RETURNING columns. Dialects without RETURNING reject
// at render.
func (b *InsertBuilder) Returning(columns ...any) *InsertBuilder {
	for _, c := range columns {
		b.stmt.Returning = append(b.stmt.Returning, colOrExpr(c).node)
	}
	return b
}

// Statement returns the built tree.
func (b *InsertBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement with bound parameters.
func (b *InsertBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement with values inlined as literals.
func (b *InsertBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}
