package types

// BinaryOp represents binary operators.
type BinaryOp string

const (
	// Comparison operators.
	OpEQ  BinaryOp = "="
	OpNE  BinaryOp = "<>"
	OpGT  BinaryOp = ">"
	OpGTE BinaryOp = ">="
	OpLT  BinaryOp = "<"
	OpLTE BinaryOp = "<="

	// Pattern operators.
	OpLike    BinaryOp = "LIKE"
	OpNotLike BinaryOp = "NOT LIKE"
	OpILike   BinaryOp = "ILIKE"

	// Membership operators. The right operand is a TupleExpr or a
	// SubqueryExpr.
	OpIn    BinaryOp = "IN"
	OpNotIn BinaryOp = "NOT IN"

	// Logical operators.
	OpAnd BinaryOp = "AND"
	OpOr  BinaryOp = "OR"

	// Arithmetic operators.
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpMod BinaryOp = "%"

	// String concatenation. Dialects without || render CONCAT(l, r).
	OpConcat BinaryOp = "||"
)

// UnaryOp represents unary operators. OpNot is a prefix operator; the
// null tests are postfix.
type UnaryOp string

const (
	OpNot       UnaryOp = "NOT"
	OpIsNull    UnaryOp = "IS NULL"
	OpIsNotNull UnaryOp = "IS NOT NULL"
)

// Expr is the sealed expression node interface. Every leaf is a Value, a
// Column, a Raw fragment, or a SubQuery; interior nodes exclusively own
// their children, so the tree is acyclic by construction.
type Expr interface {
	isExpr()
}

// ColumnExpr references a column, optionally qualified by a table or
// table alias.
type ColumnExpr struct {
	Table Iden // nil when unqualified
	Name  Iden
}

// ValueExpr is a bound literal leaf. It renders as a placeholder on the
// parameter path and as an escaped literal in inline mode.
type ValueExpr struct {
	Value Value
}

// TupleExpr is a parenthesized value list, used for IN lists and row
// constructors. An empty tuple is representable and rejected at render.
type TupleExpr struct {
	Values []Value
}

// BinaryExpr applies Op to two operands.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// UnaryExpr applies Op to one operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

// BetweenExpr is operand [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Operand Expr
	Low     Expr
	High    Expr
	Not     bool
}

// FuncExpr is a function call. Star renders a single * argument, as in
// COUNT(*). Dialects may remap Name (e.g. IFNULL to COALESCE).
type FuncExpr struct {
	Name string
	Args []Expr
	Star bool
}

// SubqueryExpr embeds a SELECT as a scalar or membership operand. Always
// rendered parenthesized.
type SubqueryExpr struct {
	Select *SelectStatement
}

// WhenClause is one WHEN condition THEN result arm.
type WhenClause struct {
	Condition Expr
	Result    Expr
}

// CaseExpr is a searched CASE expression.
type CaseExpr struct {
	Whens []WhenClause
	Else  Expr // nil when absent
}

// CastExpr renders CAST(operand AS Type). Type is emitted verbatim after
// identifier validation, so it must come from trusted code.
type CastExpr struct {
	Operand Expr
	Type    string
}

// RawExpr is the escape hatch: SQL inserted verbatim at the declared
// position. It bypasses every injection-safety guarantee; callers assert
// it contains no untrusted input.
type RawExpr struct {
	SQL string
}

func (ColumnExpr) isExpr()   {}
func (ValueExpr) isExpr()    {}
func (TupleExpr) isExpr()    {}
func (BinaryExpr) isExpr()   {}
func (UnaryExpr) isExpr()    {}
func (BetweenExpr) isExpr()  {}
func (FuncExpr) isExpr()     {}
func (SubqueryExpr) isExpr() {}
func (CaseExpr) isExpr()     {}
func (CastExpr) isExpr()     {}
func (RawExpr) isExpr()      {}
