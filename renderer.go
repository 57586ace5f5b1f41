package sqlb

// Renderer is the per-dialect rendering entry point. Implementations
// live in the dialect subpackages (postgres, mysql, mariadb, sqlite,
// mssql), hold no mutable state, and are safe for concurrent use.
// Rendering never consumes the statement, so one tree may be rendered
// repeatedly and against several dialects.
type Renderer interface {
	// Render converts a statement to SQL with bound parameters in
	// placeholder order.
	Render(stmt Statement) (*Result, error)

	// RenderInline converts a statement to SQL with every value written
	// as an escaped literal. Meant for logging and debugging, not for
	// executing untrusted input.
	RenderInline(stmt Statement) (string, error)

	// Name returns the dialect name used in error messages.
	Name() string
}
