package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// Call builds a function call with the given name. Arguments may be
// expressions, values, or identifiers already wrapped with Col. Dialects
// remap portable names where their spelling differs, so prefer the named
// helpers below when one exists.
func Call(name string, args ...any) Expr {
	fn := types.FuncExpr{Name: name}
	for _, a := range args {
		fn.Args = append(fn.Args, toExpr(a))
	}
	return Expr{node: fn}
}

// colOrExpr treats identifiers as column references and passes
// expressions through, so aggregates accept either.
func colOrExpr(x any) Expr {
	switch v := x.(type) {
	case Expr:
		return v
	case string:
		return Col(v)
	case types.Iden:
		return Col(v)
	}
	return Expr{node: toExpr(x)}
}

// CountAll builds COUNT(*).
func CountAll() Expr {
	return Expr{node: types.FuncExpr{Name: "COUNT", Star: true}}
}

// Count builds COUNT(column).
func Count(column any) Expr {
	return Call("COUNT", colOrExpr(column))
}

// Sum builds SUM(column).
func Sum(column any) Expr {
	return Call("SUM", colOrExpr(column))
}

// Avg builds AVG(column).
func Avg(column any) Expr {
	return Call("AVG", colOrExpr(column))
}

// Min builds MIN(column).
func Min(column any) Expr {
	return Call("MIN", colOrExpr(column))
}

// Max builds MAX(column).
func Max(column any) Expr {
	return Call("MAX", colOrExpr(column))
}

// Coalesce builds COALESCE(a, b, ...).
func Coalesce(args ...any) Expr {
	return Call("COALESCE", args...)
}

// IfNull builds IFNULL(a, b). Postgres renders COALESCE and SQL Server
// renders ISNULL.
func IfNull(a, b any) Expr {
	return Call("IFNULL", a, b)
}

// Lower builds LOWER(arg).
func Lower(arg any) Expr {
	return Call("LOWER", arg)
}

// Upper builds UPPER(arg).
func Upper(arg any) Expr {
	return Call("UPPER", arg)
}

// CharLength builds CHAR_LENGTH(arg). SQLite renders LENGTH and SQL
// Server renders LEN.
func CharLength(arg any) Expr {
	return Call("CHAR_LENGTH", arg)
}
