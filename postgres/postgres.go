// Package postgres provides the PostgreSQL dialect renderer for sqlb.
//
// Identifiers are double-quoted, placeholders are numbered ($1, $2),
// auto-increment integers map to the serial type family, and binary
// literals use the '\x...' bytea form.
package postgres

import (
	"fmt"

	"github.com/zoobzio/sqlb"
	"github.com/zoobzio/sqlb/internal/render"
	"github.com/zoobzio/sqlb/internal/types"
)

var dialect = &render.Dialect{
	Name:         "PostgreSQL",
	QuoteOpen:    '"',
	QuoteClose:   '"',
	Placeholder:  render.DollarPlaceholder,
	BytesLiteral: render.PostgresByteaLiteral,
	BoolLiteral:  render.TrueFalseLiteral,
	ColumnType:   columnType,
	Funcs: map[string]string{
		"IFNULL": "COALESCE",
	},
	Caps: render.Capabilities{
		FullJoin:           true,
		Returning:          true,
		ILike:              true,
		NullsOrdering:      true,
		OffsetWithoutLimit: true,
		IfNotExists:        true,
		Truncate:           true,
		RenameTable:        true,
		AddColumnKeyword:   true,
		ModifyColumn:       render.ModifyAlterType,
		DropColumn:         true,
		RenameColumn:       true,
		ForeignKeys:        true,
	},
}

// columnType maps neutral column types to PostgreSQL type names.
// Auto-increment integers become the serial family, so no separate
// keyword is needed.
func columnType(def *types.ColumnDef) (string, error) {
	switch def.Type {
	case types.ColTinyInt, types.ColSmallInt:
		if def.AutoIncrement {
			return "smallserial", nil
		}
		return "smallint", nil
	case types.ColInteger:
		if def.AutoIncrement {
			return "serial", nil
		}
		return "integer", nil
	case types.ColBigInt:
		if def.AutoIncrement {
			return "bigserial", nil
		}
		return "bigint", nil
	case types.ColVarchar:
		return render.VarcharType(def), nil
	case types.ColText:
		return "text", nil
	case types.ColBoolean:
		return "boolean", nil
	case types.ColFloat:
		return "real", nil
	case types.ColDouble:
		return "double precision", nil
	case types.ColDecimal:
		return render.DecimalType(def), nil
	case types.ColDate:
		return "date", nil
	case types.ColTime:
		return "time", nil
	case types.ColDateTime, types.ColTimestamp:
		return "timestamp", nil
	case types.ColBlob:
		return "bytea", nil
	case types.ColJSON:
		return "json", nil
	case types.ColJSONBinary:
		return "jsonb", nil
	case types.ColUUID:
		return "uuid", nil
	}
	return "", fmt.Errorf("column %q has no type", def.Name.Unquoted())
}

// Renderer implements the PostgreSQL dialect. It holds no state and is
// safe for concurrent use.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return dialect.Name
}

// Render converts a statement to PostgreSQL SQL with $N placeholders.
func (*Renderer) Render(stmt sqlb.Statement) (*sqlb.Result, error) {
	sql, params, err := render.Render(dialect, stmt)
	if err != nil {
		return nil, err
	}
	return &sqlb.Result{SQL: sql, Params: params}, nil
}

// RenderInline converts a statement to PostgreSQL SQL with every value
// inlined as an escaped literal.
func (*Renderer) RenderInline(stmt sqlb.Statement) (string, error) {
	return render.RenderInline(dialect, stmt)
}
