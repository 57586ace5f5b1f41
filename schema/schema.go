// Package schema validates identifiers against a known database layout.
//
// The core builders accept any table or column name and trust the
// caller. A Schema adds an allow-list on top: it indexes a DBML project
// and hands out identifiers only for tables and columns that exist in
// it, so a typo fails fast at construction instead of at the database.
//
//	project := dbml.NewProject("app")
//	users := dbml.NewTable("users")
//	users.AddColumn(dbml.NewColumn("id", "bigint"))
//	users.AddColumn(dbml.NewColumn("email", "varchar"))
//	project.AddTable(users)
//
//	s, err := schema.New(project)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	q := sqlb.Select("id").From(s.T("users")).Where(s.C("users", "email").Eq("a@b.c"))
//
// Constructors come in pairs: T panics on an unknown name, TryT returns
// the error. Schemas can also be derived from Go structs, see
// FromStructs.
package schema

import (
	"fmt"
	"sort"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/sqlb"
)

// Schema indexes a DBML project for identifier validation. It is
// immutable after New and safe for concurrent use.
type Schema struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column
}

// New indexes a DBML project.
func New(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}
	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// Tables returns the table names in the schema, sorted.
func (s *Schema) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns returns the column names of a table, sorted.
func (s *Schema) Columns(table string) ([]string, error) {
	cols, ok := s.columns[table]
	if !ok {
		return nil, fmt.Errorf("table %q not found in schema", table)
	}
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Has reports whether the schema contains a table.
func (s *Schema) Has(table string) bool {
	_, ok := s.tables[table]
	return ok
}

// HasColumn reports whether a table in the schema contains a column.
func (s *Schema) HasColumn(table, column string) bool {
	cols, ok := s.columns[table]
	if !ok {
		return false
	}
	_, ok = cols[column]
	return ok
}

// TryT returns a table identifier, or an error when the table is not in
// the schema.
func (s *Schema) TryT(name string) (sqlb.Iden, error) {
	if !s.Has(name) {
		return nil, fmt.Errorf("table %q not found in schema", name)
	}
	return sqlb.Alias(name), nil
}

// T returns a validated table identifier. It panics when the table is
// not in the schema; use TryT to handle the error instead.
func (s *Schema) T(name string) sqlb.Iden {
	t, err := s.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC returns a table-qualified column expression, or an error when
// the table or column is not in the schema.
func (s *Schema) TryC(table, column string) (sqlb.Expr, error) {
	if !s.Has(table) {
		return sqlb.Expr{}, fmt.Errorf("table %q not found in schema", table)
	}
	if !s.HasColumn(table, column) {
		return sqlb.Expr{}, fmt.Errorf("column %q not found in table %q", column, table)
	}
	return sqlb.TC(table, column), nil
}

// C returns a validated table-qualified column expression. It panics
// when the table or column is not in the schema; use TryC to handle the
// error instead.
func (s *Schema) C(table, column string) sqlb.Expr {
	c, err := s.TryC(table, column)
	if err != nil {
		panic(err)
	}
	return c
}

// TryCol returns an unqualified column expression, or an error when no
// table in the schema has the column.
func (s *Schema) TryCol(column string) (sqlb.Expr, error) {
	for _, cols := range s.columns {
		if _, ok := cols[column]; ok {
			return sqlb.Col(column), nil
		}
	}
	return sqlb.Expr{}, fmt.Errorf("column %q not found in schema", column)
}

// Col returns a validated unqualified column expression. It panics when
// no table has the column; use TryCol to handle the error instead.
func (s *Schema) Col(column string) sqlb.Expr {
	c, err := s.TryCol(column)
	if err != nil {
		panic(err)
	}
	return c
}
