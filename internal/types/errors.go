package types

import "fmt"

// EmptyStatementError indicates a statement whose structural shape has
// nothing to render: an UPDATE with zero assignments, an INSERT with zero
// rows, an empty IN list. Rendering produces no text when it is returned.
type EmptyStatementError struct {
	Stmt   string
	Detail string
}

func (e EmptyStatementError) Error() string {
	return fmt.Sprintf("%s cannot be rendered: %s", e.Stmt, e.Detail)
}

// NewEmptyStatementError creates a new empty statement error.
func NewEmptyStatementError(stmt, detail string) error {
	return EmptyStatementError{Stmt: stmt, Detail: detail}
}
