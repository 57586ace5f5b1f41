// Package mssql provides the SQL Server dialect renderer for sqlb.
//
// Identifiers are bracket-quoted, placeholders are numbered (@p1, @p2),
// pagination renders as OFFSET ... FETCH and requires ORDER BY, and
// auto-increment folds into the type as IDENTITY(1,1). RETURNING has no
// T-SQL equivalent and fails with UnsupportedFeatureError.
package mssql

import (
	"fmt"

	"github.com/zoobzio/sqlb"
	"github.com/zoobzio/sqlb/internal/render"
	"github.com/zoobzio/sqlb/internal/types"
)

var dialect = &render.Dialect{
	Name:         "SQLServer",
	QuoteOpen:    '[',
	QuoteClose:   ']',
	Placeholder:  render.AtPlaceholder,
	BytesLiteral: render.RawHexLiteral,
	BoolLiteral:  render.OneZeroLiteral,
	ColumnType:   columnType,
	Funcs: map[string]string{
		"CHAR_LENGTH": "LEN",
		"IFNULL":      "ISNULL",
	},
	Caps: render.Capabilities{
		FullJoin:         true,
		OffsetFetch:      true,
		ConcatFunction:   true,
		Truncate:         true,
		ModifyColumn:     render.ModifyAlterPlain,
		DropColumn:       true,
		DropIndexOnTable: true,
		ForeignKeys:      true,
		DropFKKeyword:    "CONSTRAINT",
	},
}

// columnType maps neutral column types to T-SQL type names. Strings map
// to nvarchar so non-ASCII text survives, timestamps map to datetime2
// because the T-SQL timestamp type is a row version, and auto-increment
// folds into the type as IDENTITY(1,1).
func columnType(def *types.ColumnDef) (string, error) {
	base, err := baseType(def)
	if err != nil {
		return "", err
	}
	if def.AutoIncrement {
		return base + " IDENTITY(1,1)", nil
	}
	return base, nil
}

func baseType(def *types.ColumnDef) (string, error) {
	switch def.Type {
	case types.ColTinyInt:
		return "tinyint", nil
	case types.ColSmallInt:
		return "smallint", nil
	case types.ColInteger:
		return "int", nil
	case types.ColBigInt:
		return "bigint", nil
	case types.ColVarchar:
		size := def.Size
		if size == 0 {
			size = 255
		}
		return fmt.Sprintf("nvarchar(%d)", size), nil
	case types.ColText:
		return "nvarchar(max)", nil
	case types.ColBoolean:
		return "bit", nil
	case types.ColFloat:
		return "real", nil
	case types.ColDouble:
		return "float", nil
	case types.ColDecimal:
		return render.DecimalType(def), nil
	case types.ColDate:
		return "date", nil
	case types.ColTime:
		return "time", nil
	case types.ColDateTime, types.ColTimestamp:
		return "datetime2", nil
	case types.ColBlob:
		return "varbinary(max)", nil
	case types.ColJSON, types.ColJSONBinary:
		return "nvarchar(max)", nil
	case types.ColUUID:
		return "uniqueidentifier", nil
	}
	return "", fmt.Errorf("column %q has no type", def.Name.Unquoted())
}

// Renderer implements the SQL Server dialect. It holds no state and is
// safe for concurrent use.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return dialect.Name
}

// Render converts a statement to T-SQL with @pN placeholders.
func (*Renderer) Render(stmt sqlb.Statement) (*sqlb.Result, error) {
	sql, params, err := render.Render(dialect, stmt)
	if err != nil {
		return nil, err
	}
	return &sqlb.Result{SQL: sql, Params: params}, nil
}

// RenderInline converts a statement to T-SQL with every value inlined as
// an escaped literal.
func (*Renderer) RenderInline(stmt sqlb.Statement) (string, error) {
	return render.RenderInline(dialect, stmt)
}
