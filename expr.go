package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// Expr is one node of an expression tree: a column reference, a value, a
// comparison, a function call. Expressions are built by constructors and
// combined with methods; construction never fails, and structural
// problems such as an empty IN list surface at render time.
type Expr struct {
	node types.Expr
}

// toExpr coerces an expression argument: an Expr passes through, a Value
// becomes a bound parameter, and native Go values coerce through V.
func toExpr(x any) types.Expr {
	switch v := x.(type) {
	case Expr:
		return v.node
	case types.Expr:
		return v
	}
	return types.ValueExpr{Value: V(x)}
}

// Col references an unqualified column.
func Col(column any) Expr {
	return Expr{node: types.ColumnExpr{Name: asIden(column)}}
}

// TC references a table-qualified column, rendered as "table"."column".
func TC(table, column any) Expr {
	return Expr{node: types.ColumnExpr{Table: asIden(table), Name: asIden(column)}}
}

// Val lifts a value into an expression bound as a parameter.
func Val(v any) Expr {
	return Expr{node: types.ValueExpr{Value: V(v)}}
}

// Raw inserts a SQL fragment verbatim at the declared position. It
// bypasses every quoting and injection-safety guarantee this package
// provides; never pass it user input.
func Raw(sql string) Expr {
	return Expr{node: types.RawExpr{SQL: sql}}
}

// SubQ embeds a SELECT as a parenthesized scalar or membership operand.
// The builder's statement is shared by reference, not copied.
func SubQ(b *SelectBuilder) Expr {
	return Expr{node: types.SubqueryExpr{Select: b.stmt}}
}

func (e Expr) binary(op types.BinaryOp, right any) Expr {
	return Expr{node: types.BinaryExpr{Op: op, Left: e.node, Right: toExpr(right)}}
}

// Eq builds e = v. A Null value renders as a bound NULL parameter, which
// compares as unknown under SQL semantics; use IsNull to test for NULL.
func (e Expr) Eq(v any) Expr { return e.binary(types.OpEQ, v) }

// Ne builds e <> v.
func (e Expr) Ne(v any) Expr { return e.binary(types.OpNE, v) }

// Gt builds e > v.
func (e Expr) Gt(v any) Expr { return e.binary(types.OpGT, v) }

// Gte builds e >= v.
func (e Expr) Gte(v any) Expr { return e.binary(types.OpGTE, v) }

// Lt builds e < v.
func (e Expr) Lt(v any) Expr { return e.binary(types.OpLT, v) }

// Lte builds e <= v.
func (e Expr) Lte(v any) Expr { return e.binary(types.OpLTE, v) }

// Like builds e LIKE pattern.
func (e Expr) Like(pattern any) Expr { return e.binary(types.OpLike, pattern) }

// NotLike builds e NOT LIKE pattern.
func (e Expr) NotLike(pattern any) Expr { return e.binary(types.OpNotLike, pattern) }

// ILike builds e ILIKE pattern. Dialects without ILIKE reject it at
// render time.
func (e Expr) ILike(pattern any) Expr { return e.binary(types.OpILike, pattern) }

// In builds e IN (v1, v2, ...). An empty value list is representable and
// rejected at render time.
func (e Expr) In(values ...any) Expr {
	return Expr{node: types.BinaryExpr{Op: types.OpIn, Left: e.node, Right: tuple(values)}}
}

// NotIn builds e NOT IN (v1, v2, ...).
func (e Expr) NotIn(values ...any) Expr {
	return Expr{node: types.BinaryExpr{Op: types.OpNotIn, Left: e.node, Right: tuple(values)}}
}

// InSelect builds e IN (SELECT ...).
func (e Expr) InSelect(b *SelectBuilder) Expr {
	return Expr{node: types.BinaryExpr{Op: types.OpIn, Left: e.node, Right: types.SubqueryExpr{Select: b.stmt}}}
}

// NotInSelect builds e NOT IN (SELECT ...).
func (e Expr) NotInSelect(b *SelectBuilder) Expr {
	return Expr{node: types.BinaryExpr{Op: types.OpNotIn, Left: e.node, Right: types.SubqueryExpr{Select: b.stmt}}}
}

func tuple(values []any) types.TupleExpr {
	vs := make([]types.Value, len(values))
	for i, v := range values {
		vs[i] = V(v)
	}
	return types.TupleExpr{Values: vs}
}

// IsNull builds e IS NULL.
func (e Expr) IsNull() Expr {
	return Expr{node: types.UnaryExpr{Op: types.OpIsNull, Operand: e.node}}
}

// IsNotNull builds e IS NOT NULL.
func (e Expr) IsNotNull() Expr {
	return Expr{node: types.UnaryExpr{Op: types.OpIsNotNull, Operand: e.node}}
}

// Between builds e BETWEEN low AND high.
func (e Expr) Between(low, high any) Expr {
	return Expr{node: types.BetweenExpr{Operand: e.node, Low: toExpr(low), High: toExpr(high)}}
}

// NotBetween builds e NOT BETWEEN low AND high.
func (e Expr) NotBetween(low, high any) Expr {
	return Expr{node: types.BetweenExpr{Operand: e.node, Low: toExpr(low), High: toExpr(high), Not: true}}
}

// Add builds e + v.
func (e Expr) Add(v any) Expr { return e.binary(types.OpAdd, v) }

// Sub builds e - v.
func (e Expr) Sub(v any) Expr { return e.binary(types.OpSub, v) }

// Mul builds e * v.
func (e Expr) Mul(v any) Expr { return e.binary(types.OpMul, v) }

// Div builds e / v.
func (e Expr) Div(v any) Expr { return e.binary(types.OpDiv, v) }

// Mod builds e % v.
func (e Expr) Mod(v any) Expr { return e.binary(types.OpMod, v) }

// Concat builds e || v. Dialects without the operator render CONCAT(e, v).
func (e Expr) Concat(v any) Expr { return e.binary(types.OpConcat, v) }

// Cast builds CAST(e AS typeName). typeName is emitted verbatim.
func (e Expr) Cast(typeName string) Expr {
	return Expr{node: types.CastExpr{Operand: e.node, Type: typeName}}
}

// And combines e with another condition.
func (e Expr) And(other Expr) Expr {
	return Expr{node: types.BinaryExpr{Op: types.OpAnd, Left: e.node, Right: other.node}}
}

// Or combines e with another condition.
func (e Expr) Or(other Expr) Expr {
	return Expr{node: types.BinaryExpr{Op: types.OpOr, Left: e.node, Right: other.node}}
}

// And combines conditions left to right. Requires at least one.
func And(exprs ...Expr) Expr {
	return combine(types.OpAnd, exprs)
}

// Or combines conditions left to right. Requires at least one.
func Or(exprs ...Expr) Expr {
	return combine(types.OpOr, exprs)
}

func combine(op types.BinaryOp, exprs []Expr) Expr {
	if len(exprs) == 0 {
		panic("sqlb: combining zero conditions")
	}
	acc := exprs[0]
	for _, e := range exprs[1:] {
		acc = Expr{node: types.BinaryExpr{Op: op, Left: acc.node, Right: e.node}}
	}
	return acc
}

// Not negates a condition.
func Not(e Expr) Expr {
	return Expr{node: types.UnaryExpr{Op: types.OpNot, Operand: e.node}}
}

// CaseBuilder accumulates CASE WHEN arms.
type CaseBuilder struct {
	expr types.CaseExpr
}

// Case starts a searched CASE expression.
func Case() *CaseBuilder {
	return &CaseBuilder{}
}

// When adds a WHEN condition THEN result arm.
func (b *CaseBuilder) When(condition Expr, result any) *CaseBuilder {
	b.expr.Whens = append(b.expr.Whens, types.WhenClause{
		Condition: condition.node,
		Result:    toExpr(result),
	})
	return b
}

// Else sets the ELSE arm.
func (b *CaseBuilder) Else(result any) *CaseBuilder {
	b.expr.Else = toExpr(result)
	return b
}

// End finishes the CASE expression. A CASE with zero WHEN arms is
// representable and rejected at render time.
func (b *CaseBuilder) End() Expr {
	return Expr{node: b.expr}
}
