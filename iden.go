package sqlb

import (
	"fmt"

	"github.com/zoobzio/sqlb/internal/types"
)

// asIden coerces an identifier argument: anything satisfying Iden passes
// through, plain strings wrap as Alias, and an unqualified column
// expression unwraps to its name so schema handles work in identifier
// positions. Other types are programmer errors and panic.
func asIden(x any) types.Iden {
	switch v := x.(type) {
	case types.Iden:
		return v
	case string:
		return types.Alias(v)
	case Expr:
		if col, ok := v.node.(types.ColumnExpr); ok && col.Table == nil {
			return col.Name
		}
		panic(fmt.Errorf("cannot use a computed or qualified expression as an identifier"))
	}
	panic(fmt.Errorf("cannot use %T as an identifier", x))
}

// asIdens coerces a slice of identifier arguments.
func asIdens(xs []any) []types.Iden {
	out := make([]types.Iden, len(xs))
	for i, x := range xs {
		out[i] = asIden(x)
	}
	return out
}
