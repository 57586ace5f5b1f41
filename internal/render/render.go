// Package render turns statement trees into dialect-specific SQL. One
// shared walker handles traversal, clause ordering, and parameter
// collection; a Dialect value supplies the quoting, placeholder, and
// literal rules that differ between engines. Parameters are collected in
// the order their placeholders appear in the SQL text, so the n-th
// parameter always belongs to the n-th placeholder.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/sqlb/internal/types"
)

// renderContext carries the state of a single render pass. A fresh
// context is created per call, so renders never share mutable state.
type renderContext struct {
	d      *Dialect
	sql    strings.Builder
	params []types.Value
	inline bool
}

func (c *renderContext) write(s string) {
	c.sql.WriteString(s)
}

func (c *renderContext) writeByte(b byte) {
	c.sql.WriteByte(b)
}

// writeIdent quotes a single identifier with the dialect's quote pair.
func (c *renderContext) writeIdent(id types.Iden) error {
	if id == nil {
		return NewInvalidIdentifierError("", "missing identifier")
	}
	quoted, err := c.d.QuoteIdent(id.Unquoted())
	if err != nil {
		return err
	}
	c.sql.WriteString(quoted)
	return nil
}

// addValue emits one bound parameter, or its literal when inlining. In
// parameter mode the value is appended to params first so the
// placeholder index matches its position.
func (c *renderContext) addValue(v types.Value) error {
	if c.inline {
		lit, err := c.literal(v)
		if err != nil {
			return err
		}
		c.sql.WriteString(lit)
		return nil
	}
	c.params = append(c.params, v)
	c.sql.WriteString(c.d.Placeholder(len(c.params)))
	return nil
}

// literal formats a value as dialect SQL text for the inline path and
// for contexts that cannot bind parameters, such as column defaults.
func (c *renderContext) literal(v types.Value) (string, error) {
	switch v.Kind {
	case types.KindNull:
		return "NULL", nil
	case types.KindBool:
		return c.d.BoolLiteral(v.Bool), nil
	case types.KindInt8, types.KindInt16, types.KindInt32, types.KindInt64:
		return strconv.FormatInt(v.Int, 10), nil
	case types.KindUint8, types.KindUint16, types.KindUint32, types.KindUint64:
		return strconv.FormatUint(v.Uint, 10), nil
	case types.KindFloat32:
		return strconv.FormatFloat(v.Float, 'g', -1, 32), nil
	case types.KindFloat64:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil
	case types.KindString:
		return StringLiteral(v.Str, c.d.EscapeBackslashes), nil
	case types.KindDecimal:
		return v.Str, nil
	case types.KindBytes:
		return c.d.BytesLiteral(v.Bytes), nil
	case types.KindTime:
		return StringLiteral(v.Time.Format(types.TimeFormat), c.d.EscapeBackslashes), nil
	case types.KindJSON:
		return StringLiteral(string(v.Bytes), c.d.EscapeBackslashes), nil
	case types.KindUUID:
		return StringLiteral(v.UUID.String(), c.d.EscapeBackslashes), nil
	}
	return "", fmt.Errorf("unhandled value kind %s", v.Kind)
}

// Render validates stmt and renders it as SQL with bound parameters.
// Parameters are returned in placeholder order. On error no SQL is
// returned.
func Render(d *Dialect, stmt types.Statement) (string, []types.Value, error) {
	if stmt == nil {
		return "", nil, types.NewEmptyStatementError("statement", "nil statement")
	}
	if err := stmt.Validate(); err != nil {
		return "", nil, err
	}
	c := &renderContext{d: d}
	if err := renderStatement(c, stmt); err != nil {
		return "", nil, err
	}
	return c.sql.String(), c.params, nil
}

// RenderInline renders stmt with every value written as a SQL literal
// instead of a placeholder. Intended for logging and debugging, not for
// execution with untrusted input.
func RenderInline(d *Dialect, stmt types.Statement) (string, error) {
	if stmt == nil {
		return "", types.NewEmptyStatementError("statement", "nil statement")
	}
	if err := stmt.Validate(); err != nil {
		return "", err
	}
	c := &renderContext{d: d, inline: true}
	if err := renderStatement(c, stmt); err != nil {
		return "", err
	}
	return c.sql.String(), nil
}

func renderStatement(c *renderContext, stmt types.Statement) error {
	switch s := stmt.(type) {
	case *types.SelectStatement:
		return renderSelect(c, s)
	case *types.InsertStatement:
		return renderInsert(c, s)
	case *types.UpdateStatement:
		return renderUpdate(c, s)
	case *types.DeleteStatement:
		return renderDelete(c, s)
	case *types.CreateTableStatement:
		return renderCreateTable(c, s)
	case *types.DropTableStatement:
		return renderDropTable(c, s)
	case *types.TruncateTableStatement:
		return renderTruncateTable(c, s)
	case *types.RenameTableStatement:
		return renderRenameTable(c, s)
	case *types.AlterTableStatement:
		return renderAlterTable(c, s)
	case *types.CreateIndexStatement:
		return renderCreateIndex(c, s)
	case *types.DropIndexStatement:
		return renderDropIndex(c, s)
	case *types.CreateForeignKeyStatement:
		return renderCreateForeignKey(c, s)
	case *types.DropForeignKeyStatement:
		return renderDropForeignKey(c, s)
	}
	return fmt.Errorf("unhandled statement type %T", stmt)
}

func renderSelect(c *renderContext, s *types.SelectStatement) error {
	c.write("SELECT ")
	if s.Distinct {
		c.write("DISTINCT ")
	}
	if len(s.Projections) == 0 {
		c.writeByte('*')
	} else {
		for i, p := range s.Projections {
			if i > 0 {
				c.write(", ")
			}
			if err := renderExpr(c, p.Expr, false); err != nil {
				return err
			}
			if p.Alias != nil {
				c.write(" AS ")
				if err := c.writeIdent(p.Alias); err != nil {
					return err
				}
			}
		}
	}
	if s.From != nil {
		c.write(" FROM ")
		if err := renderTableSource(c, *s.From); err != nil {
			return err
		}
	}
	for _, j := range s.Joins {
		if j.Type == types.FullJoin && !c.d.Caps.FullJoin {
			return c.d.Unsupported("FULL JOIN", "combine LEFT JOIN and RIGHT JOIN with UNION")
		}
		c.writeByte(' ')
		c.write(string(j.Type))
		c.writeByte(' ')
		if err := renderTableSource(c, j.Source); err != nil {
			return err
		}
		if j.On != nil {
			c.write(" ON ")
			if err := renderExpr(c, j.On, false); err != nil {
				return err
			}
		}
	}
	if s.Where != nil {
		c.write(" WHERE ")
		if err := renderExpr(c, s.Where, false); err != nil {
			return err
		}
	}
	if len(s.GroupBy) > 0 {
		c.write(" GROUP BY ")
		for i, e := range s.GroupBy {
			if i > 0 {
				c.write(", ")
			}
			if err := renderExpr(c, e, false); err != nil {
				return err
			}
		}
	}
	if s.Having != nil {
		c.write(" HAVING ")
		if err := renderExpr(c, s.Having, false); err != nil {
			return err
		}
	}
	if err := renderOrderBy(c, s.OrderBy); err != nil {
		return err
	}
	return renderLimitOffset(c, s)
}

func renderOrderBy(c *renderContext, items []types.OrderByItem) error {
	if len(items) == 0 {
		return nil
	}
	c.write(" ORDER BY ")
	for i, item := range items {
		if i > 0 {
			c.write(", ")
		}
		if err := renderExpr(c, item.Expr, false); err != nil {
			return err
		}
		dir := item.Direction
		if dir == "" {
			dir = types.ASC
		}
		c.writeByte(' ')
		c.write(string(dir))
		if item.Nulls != types.NullsDefault {
			if !c.d.Caps.NullsOrdering {
				return c.d.Unsupported("NULLS FIRST/LAST", "order by an IS NULL expression first")
			}
			c.writeByte(' ')
			c.write(string(item.Nulls))
		}
	}
	return nil
}

func renderLimitOffset(c *renderContext, s *types.SelectStatement) error {
	if s.Limit == nil && s.Offset == nil {
		return nil
	}
	if c.d.Caps.OffsetFetch {
		// OFFSET ... FETCH is only valid after an ORDER BY clause.
		if len(s.OrderBy) == 0 {
			return c.d.Unsupported("LIMIT/OFFSET without ORDER BY", "add an ORDER BY clause")
		}
		var offset uint64
		if s.Offset != nil {
			offset = *s.Offset
		}
		c.write(" OFFSET ")
		c.write(strconv.FormatUint(offset, 10))
		c.write(" ROWS")
		if s.Limit != nil {
			c.write(" FETCH NEXT ")
			c.write(strconv.FormatUint(*s.Limit, 10))
			c.write(" ROWS ONLY")
		}
		return nil
	}
	if s.Limit != nil {
		c.write(" LIMIT ")
		c.write(strconv.FormatUint(*s.Limit, 10))
	}
	if s.Offset != nil {
		if s.Limit == nil && !c.d.Caps.OffsetWithoutLimit {
			return c.d.Unsupported("OFFSET without LIMIT", "add a LIMIT clause")
		}
		c.write(" OFFSET ")
		c.write(strconv.FormatUint(*s.Offset, 10))
	}
	return nil
}

func renderTableSource(c *renderContext, src types.TableSource) error {
	if src.Subquery != nil {
		c.writeByte('(')
		if err := renderSelect(c, src.Subquery); err != nil {
			return err
		}
		c.writeByte(')')
	} else {
		if err := c.writeIdent(src.Table); err != nil {
			return err
		}
	}
	if src.Alias != nil {
		c.write(" AS ")
		return c.writeIdent(src.Alias)
	}
	return nil
}

func renderInsert(c *renderContext, s *types.InsertStatement) error {
	c.write("INSERT INTO ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	if len(s.Columns) > 0 {
		c.write(" (")
		for i, col := range s.Columns {
			if i > 0 {
				c.write(", ")
			}
			if err := c.writeIdent(col); err != nil {
				return err
			}
		}
		c.writeByte(')')
	}
	if s.Select != nil {
		c.writeByte(' ')
		if err := renderSelect(c, s.Select); err != nil {
			return err
		}
	} else {
		c.write(" VALUES ")
		for ri, row := range s.Rows {
			if ri > 0 {
				c.write(", ")
			}
			c.writeByte('(')
			for vi, v := range row {
				if vi > 0 {
					c.write(", ")
				}
				if err := c.addValue(v); err != nil {
					return err
				}
			}
			c.writeByte(')')
		}
	}
	return renderReturning(c, s.Returning)
}

func renderUpdate(c *renderContext, s *types.UpdateStatement) error {
	c.write("UPDATE ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	c.write(" SET ")
	for i, a := range s.Assignments {
		if i > 0 {
			c.write(", ")
		}
		if err := c.writeIdent(a.Column); err != nil {
			return err
		}
		c.write(" = ")
		if err := renderExpr(c, a.Value, false); err != nil {
			return err
		}
	}
	if s.Where != nil {
		c.write(" WHERE ")
		if err := renderExpr(c, s.Where, false); err != nil {
			return err
		}
	}
	return renderReturning(c, s.Returning)
}

func renderDelete(c *renderContext, s *types.DeleteStatement) error {
	c.write("DELETE FROM ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	if s.Where != nil {
		c.write(" WHERE ")
		if err := renderExpr(c, s.Where, false); err != nil {
			return err
		}
	}
	return renderReturning(c, s.Returning)
}

func renderReturning(c *renderContext, exprs []types.Expr) error {
	if len(exprs) == 0 {
		return nil
	}
	if !c.d.Caps.Returning {
		return c.d.Unsupported("RETURNING", "issue a follow-up SELECT instead")
	}
	c.write(" RETURNING ")
	for i, e := range exprs {
		if i > 0 {
			c.write(", ")
		}
		if err := renderExpr(c, e, false); err != nil {
			return err
		}
	}
	return nil
}

// renderExpr renders one expression node. In operand position, compound
// expressions are parenthesized so the output never depends on operator
// precedence. Clause-level positions (WHERE, ON, HAVING, THEN) pass
// operand=false and render bare.
func renderExpr(c *renderContext, e types.Expr, operand bool) error {
	if e == nil {
		return fmt.Errorf("nil expression")
	}
	if operand && needsParens(e) {
		c.writeByte('(')
		if err := renderExprInner(c, e); err != nil {
			return err
		}
		c.writeByte(')')
		return nil
	}
	return renderExprInner(c, e)
}

func needsParens(e types.Expr) bool {
	switch e.(type) {
	case types.BinaryExpr, types.UnaryExpr, types.BetweenExpr, types.CaseExpr:
		return true
	}
	return false
}

func renderExprInner(c *renderContext, e types.Expr) error {
	switch x := e.(type) {
	case types.ColumnExpr:
		return renderColumn(c, x)
	case types.ValueExpr:
		return c.addValue(x.Value)
	case types.TupleExpr:
		if len(x.Values) == 0 {
			return types.NewEmptyStatementError("value list", "no values provided")
		}
		c.writeByte('(')
		for i, v := range x.Values {
			if i > 0 {
				c.write(", ")
			}
			if err := c.addValue(v); err != nil {
				return err
			}
		}
		c.writeByte(')')
		return nil
	case types.BinaryExpr:
		return renderBinary(c, x)
	case types.UnaryExpr:
		if x.Op == types.OpNot {
			c.write("NOT ")
			return renderExpr(c, x.Operand, true)
		}
		if err := renderExpr(c, x.Operand, true); err != nil {
			return err
		}
		c.writeByte(' ')
		c.write(string(x.Op))
		return nil
	case types.BetweenExpr:
		if err := renderExpr(c, x.Operand, true); err != nil {
			return err
		}
		if x.Not {
			c.write(" NOT BETWEEN ")
		} else {
			c.write(" BETWEEN ")
		}
		if err := renderExpr(c, x.Low, true); err != nil {
			return err
		}
		c.write(" AND ")
		return renderExpr(c, x.High, true)
	case types.FuncExpr:
		c.write(c.d.FuncName(x.Name))
		c.writeByte('(')
		if x.Star {
			c.writeByte('*')
		} else {
			for i, a := range x.Args {
				if i > 0 {
					c.write(", ")
				}
				if err := renderExpr(c, a, false); err != nil {
					return err
				}
			}
		}
		c.writeByte(')')
		return nil
	case types.SubqueryExpr:
		c.writeByte('(')
		if err := renderSelect(c, x.Select); err != nil {
			return err
		}
		c.writeByte(')')
		return nil
	case types.CaseExpr:
		if len(x.Whens) == 0 {
			return types.NewEmptyStatementError("CASE expression", "no WHEN arms provided")
		}
		c.write("CASE")
		for _, w := range x.Whens {
			c.write(" WHEN ")
			if err := renderExpr(c, w.Condition, false); err != nil {
				return err
			}
			c.write(" THEN ")
			if err := renderExpr(c, w.Result, false); err != nil {
				return err
			}
		}
		if x.Else != nil {
			c.write(" ELSE ")
			if err := renderExpr(c, x.Else, false); err != nil {
				return err
			}
		}
		c.write(" END")
		return nil
	case types.CastExpr:
		c.write("CAST(")
		if err := renderExpr(c, x.Operand, false); err != nil {
			return err
		}
		c.write(" AS ")
		c.write(x.Type)
		c.writeByte(')')
		return nil
	case types.RawExpr:
		c.write(x.SQL)
		return nil
	}
	return fmt.Errorf("unhandled expression type %T", e)
}

func renderBinary(c *renderContext, x types.BinaryExpr) error {
	switch x.Op {
	case types.OpILike:
		if !c.d.Caps.ILike {
			return c.d.Unsupported("ILIKE", "apply LOWER() to both operands and use LIKE")
		}
	case types.OpConcat:
		if c.d.Caps.ConcatFunction {
			c.write("CONCAT(")
			if err := renderExpr(c, x.Left, false); err != nil {
				return err
			}
			c.write(", ")
			if err := renderExpr(c, x.Right, false); err != nil {
				return err
			}
			c.writeByte(')')
			return nil
		}
	}
	if err := renderExpr(c, x.Left, true); err != nil {
		return err
	}
	c.writeByte(' ')
	c.write(string(x.Op))
	c.writeByte(' ')
	return renderExpr(c, x.Right, true)
}

func renderColumn(c *renderContext, x types.ColumnExpr) error {
	if x.Table != nil {
		if err := c.writeIdent(x.Table); err != nil {
			return err
		}
		c.writeByte('.')
	}
	if x.Name != nil && x.Name.Unquoted() == "*" {
		c.writeByte('*')
		return nil
	}
	return c.writeIdent(x.Name)
}
