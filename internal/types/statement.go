package types

import "fmt"

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// NullsOrdering represents NULL placement in ORDER BY. The zero value
// leaves placement to the dialect default.
type NullsOrdering string

const (
	NullsDefault NullsOrdering = ""
	NullsFirst   NullsOrdering = "NULLS FIRST"
	NullsLast    NullsOrdering = "NULLS LAST"
)

// JoinType represents the kind of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
	RightJoin JoinType = "RIGHT JOIN"
	FullJoin  JoinType = "FULL JOIN"
	CrossJoin JoinType = "CROSS JOIN"
)

// Statement is the sealed interface over every statement kind. A
// statement is plain data: renderers perform a read-only traversal, so
// the same statement can be rendered repeatedly and for several dialects.
type Statement interface {
	isStatement()

	// Validate checks structural shape only. Dialect constraints are the
	// renderer's concern.
	Validate() error
}

// TableSource is a FROM or JOIN target: either a table identifier or a
// parenthesized subquery. A subquery source requires an alias wherever
// the dialect's grammar mandates one, which the renderer enforces.
type TableSource struct {
	Table    Iden // nil when Subquery is set
	Subquery *SelectStatement
	Alias    Iden // nil when absent
}

// JoinClause is one join in declared order. On is nil only for CROSS
// joins.
type JoinClause struct {
	Type   JoinType
	Source TableSource
	On     Expr
}

// Projection is one projected expression with an optional alias.
type Projection struct {
	Expr  Expr
	Alias Iden // nil when absent
}

// OrderByItem is one ORDER BY entry.
type OrderByItem struct {
	Expr      Expr
	Direction Direction
	Nulls     NullsOrdering
}

// SelectStatement holds every SELECT clause in fixed order. Empty
// projections render as *.
type SelectStatement struct {
	Distinct    bool
	Projections []Projection
	From        *TableSource // nil renders no FROM clause
	Joins       []JoinClause
	Where       Expr
	GroupBy     []Expr
	Having      Expr
	OrderBy     []OrderByItem
	Limit       *uint64
	Offset      *uint64
}

// InsertStatement holds an INSERT with explicit value rows or a SELECT
// source, never both.
type InsertStatement struct {
	Table     Iden
	Columns   []Iden
	Rows      [][]Value
	Select    *SelectStatement
	Returning []Expr
}

// Assignment is one SET column = expr pair. Assignments keep the order
// they were added in.
type Assignment struct {
	Column Iden
	Value  Expr
}

// UpdateStatement holds an UPDATE.
type UpdateStatement struct {
	Table       Iden
	Assignments []Assignment
	Where       Expr
	Returning   []Expr
}

// DeleteStatement holds a DELETE.
type DeleteStatement struct {
	Table     Iden
	Where     Expr
	Returning []Expr
}

func (*SelectStatement) isStatement() {}
func (*InsertStatement) isStatement() {}
func (*UpdateStatement) isStatement() {}
func (*DeleteStatement) isStatement() {}

// Validate on SELECT accepts any shape: projections default to * and a
// missing FROM is legal.
func (*SelectStatement) Validate() error {
	return nil
}

func (s *InsertStatement) Validate() error {
	if s.Table == nil {
		return NewEmptyStatementError("INSERT", "no target table")
	}
	if len(s.Rows) == 0 && s.Select == nil {
		return NewEmptyStatementError("INSERT", "no value rows and no SELECT source")
	}
	if len(s.Rows) > 0 && s.Select != nil {
		return NewEmptyStatementError("INSERT", "VALUES rows and a SELECT source are mutually exclusive")
	}
	for i, row := range s.Rows {
		if len(row) == 0 {
			return NewEmptyStatementError("INSERT", "empty value row")
		}
		if len(s.Columns) > 0 && len(row) != len(s.Columns) {
			detail := fmt.Sprintf("value row %d has %d values for %d columns", i, len(row), len(s.Columns))
			return NewEmptyStatementError("INSERT", detail)
		}
	}
	return nil
}

func (s *UpdateStatement) Validate() error {
	if s.Table == nil {
		return NewEmptyStatementError("UPDATE", "no target table")
	}
	if len(s.Assignments) == 0 {
		return NewEmptyStatementError("UPDATE", "no assignments")
	}
	return nil
}

func (s *DeleteStatement) Validate() error {
	if s.Table == nil {
		return NewEmptyStatementError("DELETE", "no target table")
	}
	return nil
}
