package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// SelectBuilder accumulates a SELECT statement. Methods may be called in
// any order before rendering; construction never fails. The builder is
// not safe for concurrent mutation.
type SelectBuilder struct {
	stmt *types.SelectStatement
}

// Select creates a SELECT builder projecting the given columns. With no
// columns it renders SELECT *.
func Select(columns ...any) *SelectBuilder {
	b := &SelectBuilder{stmt: &types.SelectStatement{}}
	return b.Columns(columns...)
}

// Columns appends projected columns.
func (b *SelectBuilder) Columns(columns ...any) *SelectBuilder {
	for _, c := range columns {
		b.stmt.Projections = append(b.stmt.Projections, types.Projection{Expr: colOrExpr(c).node})
	}
	return b
}

// ColumnAs appends one projected column with an alias.
func (b *SelectBuilder) ColumnAs(column, alias any) *SelectBuilder {
	b.stmt.Projections = append(b.stmt.Projections, types.Projection{
		Expr:  colOrExpr(column).node,
		Alias: asIden(alias),
	})
	return b
}

// Expr appends a projected expression.
func (b *SelectBuilder) Expr(e Expr) *SelectBuilder {
	b.stmt.Projections = append(b.stmt.Projections, types.Projection{Expr: e.node})
	return b
}

// ExprAs appends a projected expression with an alias.
func (b *SelectBuilder) ExprAs(e Expr, alias any) *SelectBuilder {
	b.stmt.Projections = append(b.stmt.Projections, types.Projection{Expr: e.node, Alias: asIden(alias)})
	return b
}

// Distinct marks the projection DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.stmt.Distinct = true
	return b
}

// From sets the source table.
func (b *SelectBuilder) From(table any) *SelectBuilder {
	b.stmt.From = &types.TableSource{Table: asIden(table)}
	return b
}

// FromAs sets the source table with an alias.
func (b *SelectBuilder) FromAs(table, alias any) *SelectBuilder {
	b.stmt.From = &types.TableSource{Table: asIden(table), Alias: asIden(alias)}
	return b
}

// FromSelect sets a derived table as the source. Most dialects require
// the alias.
func (b *SelectBuilder) FromSelect(sub *SelectBuilder, alias any) *SelectBuilder {
	b.stmt.From = &types.TableSource{Subquery: sub.stmt, Alias: asIden(alias)}
	return b
}

// Join appends a join of the given kind.
func (b *SelectBuilder) Join(jt JoinType, table any, on Expr) *SelectBuilder {
	b.stmt.Joins = append(b.stmt.Joins, types.JoinClause{
		Type:   jt,
		Source: types.TableSource{Table: asIden(table)},
		On:     on.node,
	})
	return b
}

// JoinAs appends a join with a table alias.
func (b *SelectBuilder) JoinAs(jt JoinType, table, alias any, on Expr) *SelectBuilder {
	b.stmt.Joins = append(b.stmt.Joins, types.JoinClause{
		Type:   jt,
		Source: types.TableSource{Table: asIden(table), Alias: asIden(alias)},
		On:     on.node,
	})
	return b
}

// JoinSelect appends a join against a derived table.
func (b *SelectBuilder) JoinSelect(jt JoinType, sub *SelectBuilder, alias any, on Expr) *SelectBuilder {
	b.stmt.Joins = append(b.stmt.Joins, types.JoinClause{
		Type:   jt,
		Source: types.TableSource{Subquery: sub.stmt, Alias: asIden(alias)},
		On:     on.node,
	})
	return b
}

// InnerJoin appends an INNER JOIN.
func (b *SelectBuilder) InnerJoin(table any, on Expr) *SelectBuilder {
	return b.Join(types.InnerJoin, table, on)
}

// LeftJoin appends a LEFT JOIN.
func (b *SelectBuilder) LeftJoin(table any, on Expr) *SelectBuilder {
	return b.Join(types.LeftJoin, table, on)
}

// RightJoin appends a RIGHT JOIN.
func (b *SelectBuilder) RightJoin(table any, on Expr) *SelectBuilder {
	return b.Join(types.RightJoin, table, on)
}

// FullJoin appends a FULL JOIN. Dialects without it reject at render.
func (b *SelectBuilder) FullJoin(table any, on Expr) *SelectBuilder {
	return b.Join(types.FullJoin, table, on)
}

// CrossJoin appends a CROSS JOIN, which carries no ON condition.
func (b *SelectBuilder) CrossJoin(table any) *SelectBuilder {
	b.stmt.Joins = append(b.stmt.Joins, types.JoinClause{
		Type:   types.CrossJoin,
		Source: types.TableSource{Table: asIden(table)},
	})
	return b
}

// Where adds a condition. Repeated calls AND-combine with the existing
// condition tree.
func (b *SelectBuilder) Where(cond Expr) *SelectBuilder {
	b.stmt.Where = andCombine(b.stmt.Where, cond.node)
	return b
}

// GroupBy appends grouping columns.
func (b *SelectBuilder) GroupBy(columns ...any) *SelectBuilder {
	for _, c := range columns {
		b.stmt.GroupBy = append(b.stmt.GroupBy, colOrExpr(c).node)
	}
	return b
}

// Having adds a post-aggregation condition. Repeated calls AND-combine.
func (b *SelectBuilder) Having(cond Expr) *SelectBuilder {
	b.stmt.Having = andCombine(b.stmt.Having, cond.node)
	return b
}

// OrderBy appends an ordering column.
func (b *SelectBuilder) OrderBy(column any, dir Direction) *SelectBuilder {
	b.stmt.OrderBy = append(b.stmt.OrderBy, types.OrderByItem{
		Expr:      colOrExpr(column).node,
		Direction: dir,
	})
	return b
}

// OrderByNulls appends an ordering column with explicit NULL placement.
// Dialects without NULLS FIRST/LAST reject at render.
func (b *SelectBuilder) OrderByNulls(column any, dir Direction, nulls NullsOrdering) *SelectBuilder {
	b.stmt.OrderBy = append(b.stmt.OrderBy, types.OrderByItem{
		Expr:      colOrExpr(column).node,
		Direction: dir,
		Nulls:     nulls,
	})
	return b
}

// Limit sets the row limit.
func (b *SelectBuilder) Limit(n uint64) *SelectBuilder {
	b.stmt.Limit = &n
	return b
}

// Offset sets the row offset. Dialects that forbid OFFSET without LIMIT
// reject the combination at render.
func (b *SelectBuilder) Offset(n uint64) *SelectBuilder {
	b.stmt.Offset = &n
	return b
}

// Statement returns the built tree. Rendering does not consume it, so
// the same statement may be rendered for several dialects.
func (b *SelectBuilder) Statement() Statement {
	return b.stmt
}

// Render renders the statement with bound parameters.
func (b *SelectBuilder) Render(r Renderer) (*Result, error) {
	return r.Render(b.stmt)
}

// RenderInline renders the statement with values inlined as literals.
func (b *SelectBuilder) RenderInline(r Renderer) (string, error) {
	return r.RenderInline(b.stmt)
}

// andCombine folds a new condition into an existing tree with AND, or
// installs it as the root when the tree is empty.
func andCombine(existing, next types.Expr) types.Expr {
	if existing == nil {
		return next
	}
	return types.BinaryExpr{Op: types.OpAnd, Left: existing, Right: next}
}
