// Package sqlb builds SQL statements as plain syntax trees and renders
// them per dialect into SQL text plus an ordered list of bound values.
//
// Statements are constructed with fluent builders, never by string
// concatenation. Every user-supplied value travels through the parameter
// channel, so the generated SQL contains only placeholders:
//
//	import "github.com/zoobzio/sqlb/postgres"
//
//	query := sqlb.Select("id", "name").
//		From("users").
//		Where(sqlb.Col("age").Gte(18)).
//		OrderBy("name", sqlb.ASC).
//		Limit(10)
//
//	result, err := query.Render(postgres.New())
//	// result.SQL:    SELECT "id", "name" FROM "users" WHERE "age" >= $1 ORDER BY "name" ASC LIMIT 10
//	// result.Params: [Int64(18)]
//
// # Multi-Dialect Support
//
// Rendering is dialect-specific through the Renderer interface. Available
// dialects: postgres, mysql, mariadb, sqlite, mssql. The same statement
// tree renders against any of them:
//
//	import "github.com/zoobzio/sqlb/mysql"
//
//	result, err := query.Render(mysql.New())
//	// result.SQL: SELECT `id`, `name` FROM `users` WHERE `age` >= ? ORDER BY `name` ASC LIMIT 10
//
// A construct some engines cannot express (FULL JOIN on MySQL, RETURNING
// on SQL Server, TRUNCATE on SQLite) fails with UnsupportedFeatureError
// instead of producing broken SQL.
//
// # Values and Parameters
//
// Values are a closed union of SQL-representable types built through
// constructors such as Int64, String, Bytes, Null, or coerced from native
// Go values with V. Rendered parameters come back in placeholder order,
// so result.Args() can be passed directly to database/sql:
//
//	rows, err := db.Query(result.SQL, result.Args()...)
//
// # Identifiers
//
// Table and column names satisfy the single-method Iden interface. Plain
// strings are accepted everywhere an identifier is expected and wrapped
// as Alias; schema-derived types from the schema package satisfy Iden
// directly, and an unqualified column expression such as Col("age") is
// accepted in identifier positions too. Renderers quote every
// identifier, so reserved words are safe.
//
// # Schema Definition
//
// CREATE TABLE, ALTER TABLE, indexes, and foreign keys are built the same
// way as queries:
//
//	table := sqlb.CreateTable("users").
//		IfNotExists().
//		Column(sqlb.Column("id").BigInteger().NotNull().AutoIncrement().PrimaryKey()).
//		Column(sqlb.Column("name").Varchar(255).NotNull())
//
// # Inline Rendering
//
// RenderInline writes values as escaped SQL literals instead of
// placeholders. It exists for logging, debugging, and DDL defaults; for
// execution with untrusted input, always use Render.
package sqlb

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// Value is the closed union of SQL-representable values.
// This is re-exported from internal/types for use by consumers.
type Value = types.Value

// ValueKind discriminates the variants of Value.
type ValueKind = types.ValueKind

// Re-export value kind constants for public API.
const (
	KindNull    = types.KindNull
	KindBool    = types.KindBool
	KindInt8    = types.KindInt8
	KindInt16   = types.KindInt16
	KindInt32   = types.KindInt32
	KindInt64   = types.KindInt64
	KindUint8   = types.KindUint8
	KindUint16  = types.KindUint16
	KindUint32  = types.KindUint32
	KindUint64  = types.KindUint64
	KindFloat32 = types.KindFloat32
	KindFloat64 = types.KindFloat64
	KindString  = types.KindString
	KindBytes   = types.KindBytes
	KindTime    = types.KindTime
	KindDecimal = types.KindDecimal
	KindJSON    = types.KindJSON
	KindUUID    = types.KindUUID
)

// TimeFormat is the layout used when a Time value renders as a literal.
const TimeFormat = types.TimeFormat

// Iden is the capability every table, column, and alias name satisfies.
type Iden = types.Iden

// Alias is the stock string-backed Iden implementation.
type Alias = types.Alias

// Statement is a fully built statement tree ready for rendering.
type Statement = types.Statement

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// NullsOrdering represents NULL placement in ORDER BY.
type NullsOrdering = types.NullsOrdering

// Re-export nulls ordering constants for public API.
const (
	NullsFirst = types.NullsFirst
	NullsLast  = types.NullsLast
)

// JoinType represents the kind of SQL join.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
	CrossJoin = types.CrossJoin
)

// ForeignKeyAction is a referential action for ON DELETE / ON UPDATE.
type ForeignKeyAction = types.ForeignKeyAction

// Re-export referential action constants for public API.
const (
	Cascade    = types.FKCascade
	SetNull    = types.FKSetNull
	SetDefault = types.FKSetDefault
	Restrict   = types.FKRestrict
	NoAction   = types.FKNoAction
)
