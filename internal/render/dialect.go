package render

import (
	"fmt"
	"strconv"

	"github.com/zoobzio/sqlb/internal/types"
)

// ModifyColumnStyle selects the ALTER TABLE syntax for changing a
// column's type.
type ModifyColumnStyle int

const (
	ModifyUnsupported ModifyColumnStyle = iota // no portable form
	ModifyMySQL                                // MODIFY COLUMN <full definition>
	ModifyAlterType                            // ALTER COLUMN <name> TYPE <type>
	ModifyAlterPlain                           // ALTER COLUMN <name> <type>
)

// Capabilities describes the SQL features supported by a dialect. The
// shared walker consults these flags and fails with
// UnsupportedFeatureError instead of emitting text the dialect cannot
// parse.
type Capabilities struct {
	FullJoin           bool              // FULL JOIN
	Returning          bool              // RETURNING clause
	ILike              bool              // ILIKE operator
	NullsOrdering      bool              // NULLS FIRST / NULLS LAST
	OffsetWithoutLimit bool              // OFFSET with no LIMIT clause
	OffsetFetch        bool              // OFFSET ... FETCH instead of LIMIT, needs ORDER BY
	ConcatFunction     bool              // render || as CONCAT(l, r)
	IfNotExists        bool              // CREATE TABLE IF NOT EXISTS
	Truncate           bool              // TRUNCATE TABLE
	RenameTable        bool              // any table rename form
	RenameTableKeyword bool              // RENAME TABLE a TO b instead of ALTER TABLE
	AddColumnKeyword   bool              // ALTER TABLE ... ADD COLUMN vs bare ADD
	ModifyColumn       ModifyColumnStyle // column type change syntax
	DropColumn         bool              // ALTER TABLE ... DROP COLUMN
	RenameColumn       bool              // ALTER TABLE ... RENAME COLUMN a TO b
	DropIndexOnTable   bool              // DROP INDEX name ON table
	ForeignKeys        bool              // ALTER TABLE ADD/DROP constraint support
	RepeatFKName       bool              // FOREIGN KEY <name> (cols), MySQL index name
	DropFKKeyword      string            // FOREIGN KEY (MySQL) or CONSTRAINT
}

// Dialect is the per-dialect configuration consumed by the shared
// walker: quote pair, placeholder shape, literal formatters, column type
// mapping, and capability flags. A Dialect carries no mutable state, so
// one instance serves any number of concurrent renders.
type Dialect struct {
	Name string

	QuoteOpen  byte
	QuoteClose byte

	// Placeholder returns the marker for the n-th parameter, 1-based.
	Placeholder func(n int) string

	// EscapeBackslashes marks string literals as backslash-aware.
	EscapeBackslashes bool

	// BytesLiteral formats a blob for the literal-fallback path.
	BytesLiteral func(b []byte) string

	// BoolLiteral formats a boolean for the literal-fallback path.
	BoolLiteral func(v bool) string

	// ColumnType maps a neutral column definition to the dialect's type
	// text. It absorbs auto-increment where the dialect folds it into
	// the type (serial, IDENTITY).
	ColumnType func(def *types.ColumnDef) (string, error)

	// AutoIncrement is the column keyword, empty when ColumnType absorbs
	// it. AutoIncrementAfterPK places it after PRIMARY KEY (SQLite).
	AutoIncrement        string
	AutoIncrementAfterPK bool

	// Funcs remaps portable function names, e.g. IFNULL to COALESCE.
	Funcs map[string]string

	Caps Capabilities
}

// QuoteIdent quotes one identifier with the dialect's pair.
func (d *Dialect) QuoteIdent(name string) (string, error) {
	return QuoteIdent(name, d.QuoteOpen, d.QuoteClose)
}

// FuncName resolves a portable function name to the dialect's spelling.
func (d *Dialect) FuncName(name string) string {
	if mapped, ok := d.Funcs[name]; ok {
		return mapped
	}
	return name
}

// Unsupported builds the dialect's UnsupportedFeatureError.
func (d *Dialect) Unsupported(feature string, hint ...string) error {
	return NewUnsupportedFeatureError(d.Name, feature, hint...)
}

// QuestionPlaceholder renders ? regardless of position.
func QuestionPlaceholder(int) string {
	return "?"
}

// DollarPlaceholder renders $1, $2, ...
func DollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// AtPlaceholder renders @p1, @p2, ...
func AtPlaceholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

// TrueFalseLiteral renders TRUE / FALSE.
func TrueFalseLiteral(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// OneZeroLiteral renders 1 / 0 for dialects without boolean literals.
func OneZeroLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// VarcharType renders varchar(n) with a default length of 255.
func VarcharType(def *types.ColumnDef) string {
	size := def.Size
	if size == 0 {
		size = 255
	}
	return fmt.Sprintf("varchar(%d)", size)
}

// DecimalType renders decimal with optional precision and scale.
func DecimalType(def *types.ColumnDef) string {
	if def.Precision == 0 {
		return "decimal"
	}
	if def.Scale == 0 {
		return fmt.Sprintf("decimal(%d)", def.Precision)
	}
	return fmt.Sprintf("decimal(%d, %d)", def.Precision, def.Scale)
}
