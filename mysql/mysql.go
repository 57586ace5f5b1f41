// Package mysql provides the MySQL dialect renderer for sqlb.
//
// Identifiers are backtick-quoted, placeholders are unnumbered (?),
// string literals escape backslashes, and || renders as CONCAT. MySQL
// has no FULL JOIN, no RETURNING, no ILIKE, and requires LIMIT when
// OFFSET is present; those constructs fail with UnsupportedFeatureError.
package mysql

import (
	"fmt"

	"github.com/zoobzio/sqlb"
	"github.com/zoobzio/sqlb/internal/render"
	"github.com/zoobzio/sqlb/internal/types"
)

var dialect = NewDialect("MySQL")

// NewDialect builds the MySQL-family walker configuration. The mariadb
// package derives from it, since MariaDB differs only in the features it
// adds on top.
func NewDialect(name string) *render.Dialect {
	return &render.Dialect{
		Name:              name,
		QuoteOpen:         '`',
		QuoteClose:        '`',
		Placeholder:       render.QuestionPlaceholder,
		EscapeBackslashes: true,
		BytesLiteral:      render.HexLiteral,
		BoolLiteral:       render.TrueFalseLiteral,
		ColumnType:        columnType,
		AutoIncrement:     "AUTO_INCREMENT",
		Caps: render.Capabilities{
			ConcatFunction:     true,
			IfNotExists:        true,
			Truncate:           true,
			RenameTable:        true,
			RenameTableKeyword: true,
			AddColumnKeyword:   true,
			ModifyColumn:       render.ModifyMySQL,
			DropColumn:         true,
			RenameColumn:       true,
			DropIndexOnTable:   true,
			ForeignKeys:        true,
			RepeatFKName:       true,
			DropFKKeyword:      "FOREIGN KEY",
		},
	}
}

// columnType maps neutral column types to MySQL type names. Unsigned
// renders as a type suffix; auto-increment stays a column keyword.
func columnType(def *types.ColumnDef) (string, error) {
	base, err := baseType(def)
	if err != nil {
		return "", err
	}
	if def.Unsigned && isIntegerType(def.Type) {
		return base + " unsigned", nil
	}
	return base, nil
}

func isIntegerType(t types.ColumnType) bool {
	switch t {
	case types.ColTinyInt, types.ColSmallInt, types.ColInteger, types.ColBigInt:
		return true
	}
	return false
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
		return render.VarcharType(def), nil
	case types.ColText:
		return "text", nil
	case types.ColBoolean:
		return "boolean", nil
	case types.ColFloat:
		return "float", nil
	case types.ColDouble:
		return "double", nil
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
		return "json", nil
	case types.ColUUID:
		return "char(36)", nil
	}
	return "", fmt.Errorf("column %q has no type", def.Name.Unquoted())
}

// Renderer implements the MySQL dialect. It holds no state and is safe
// for concurrent use.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return dialect.Name
}

// Render converts a statement to MySQL SQL with ? placeholders.
func (*Renderer) Render(stmt sqlb.Statement) (*sqlb.Result, error) {
	sql, params, err := render.Render(dialect, stmt)
	if err != nil {
		return nil, err
	}
	return &sqlb.Result{SQL: sql, Params: params}, nil
}

// RenderInline converts a statement to MySQL SQL with every value
// inlined as an escaped literal.
func (*Renderer) RenderInline(stmt sqlb.Statement) (string, error) {
	return render.RenderInline(dialect, stmt)
}
