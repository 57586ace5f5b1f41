// Package sqlite provides the SQLite dialect renderer for sqlb.
//
// Identifiers are double-quoted, placeholders are unnumbered (?), and
// AUTOINCREMENT renders after PRIMARY KEY. SQLite has no TRUNCATE, no
// column type changes, and no ALTER TABLE constraint support; those
// constructs fail with UnsupportedFeatureError.
package sqlite

import (
	"fmt"

	"github.com/zoobzio/sqlb"
	"github.com/zoobzio/sqlb/internal/render"
	"github.com/zoobzio/sqlb/internal/types"
)

var dialect = &render.Dialect{
	Name:                 "SQLite",
	QuoteOpen:            '"',
	QuoteClose:           '"',
	Placeholder:          render.QuestionPlaceholder,
	BytesLiteral:         render.HexLiteral,
	BoolLiteral:          render.TrueFalseLiteral,
	ColumnType:           columnType,
	AutoIncrement:        "AUTOINCREMENT",
	AutoIncrementAfterPK: true,
	Funcs: map[string]string{
		"CHAR_LENGTH": "LENGTH",
	},
	Caps: render.Capabilities{
		Returning:     true,
		NullsOrdering: true,
		IfNotExists:   true,
		RenameTable:   true,
		// ALTER TABLE grew RENAME COLUMN in 3.25 and DROP COLUMN in
		// 3.35; type changes still require a table rebuild.
		AddColumnKeyword: true,
		ModifyColumn:     render.ModifyUnsupported,
		DropColumn:       true,
		RenameColumn:     true,
	},
}

// columnType maps neutral column types to SQLite type names. Integer
// widths collapse to integer, which AUTOINCREMENT requires, and string
// based kinds collapse to text affinity.
func columnType(def *types.ColumnDef) (string, error) {
	switch def.Type {
	case types.ColTinyInt, types.ColSmallInt, types.ColInteger, types.ColBigInt:
		return "integer", nil
	case types.ColVarchar:
		return render.VarcharType(def), nil
	case types.ColText:
		return "text", nil
	case types.ColBoolean:
		return "boolean", nil
	case types.ColFloat, types.ColDouble:
		return "real", nil
	case types.ColDecimal:
		return render.DecimalType(def), nil
	case types.ColDate:
		return "date", nil
	case types.ColTime:
		return "time", nil
	case types.ColDateTime:
		return "datetime", nil
	case types.ColTimestamp:
		return "timestamp", nil
	case types.ColBlob:
		return "blob", nil
	case types.ColJSON, types.ColJSONBinary:
		return "text", nil
	case types.ColUUID:
		return "text", nil
	}
	return "", fmt.Errorf("column %q has no type", def.Name.Unquoted())
}

// Renderer implements the SQLite dialect. It holds no state and is safe
// for concurrent use.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return dialect.Name
}

// Render converts a statement to SQLite SQL with ? placeholders.
func (*Renderer) Render(stmt sqlb.Statement) (*sqlb.Result, error) {
	sql, params, err := render.Render(dialect, stmt)
	if err != nil {
		return nil, err
	}
	return &sqlb.Result{SQL: sql, Params: params}, nil
}

// RenderInline converts a statement to SQLite SQL with every value
// inlined as an escaped literal.
func (*Renderer) RenderInline(stmt sqlb.Statement) (string, error) {
	return render.RenderInline(dialect, stmt)
}
