package types

// Iden is the capability every table, column, and alias name must
// satisfy: deterministic rendering to a raw, unquoted name string.
// Renderers are the only code that adds quoting.
type Iden interface {
	Unquoted() string
}

// Alias is the stock string-backed Iden implementation.
type Alias string

// Unquoted returns the alias text verbatim.
func (a Alias) Unquoted() string {
	return string(a)
}
