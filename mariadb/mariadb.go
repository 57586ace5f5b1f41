// Package mariadb provides the MariaDB dialect renderer for sqlb.
//
// MariaDB renders exactly like MySQL (backticks, ? placeholders,
// backslash escaping) and additionally supports the RETURNING clause on
// INSERT, UPDATE, and DELETE.
package mariadb

import (
	"github.com/zoobzio/sqlb"
	"github.com/zoobzio/sqlb/internal/render"
	"github.com/zoobzio/sqlb/mysql"
)

var dialect = func() *render.Dialect {
	d := mysql.NewDialect("MariaDB")
	d.Caps.Returning = true
	return d
}()

// Renderer implements the MariaDB dialect. It holds no state and is
// safe for concurrent use.
type Renderer struct{}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return dialect.Name
}

// Render converts a statement to MariaDB SQL with ? placeholders.
func (*Renderer) Render(stmt sqlb.Statement) (*sqlb.Result, error) {
	sql, params, err := render.Render(dialect, stmt)
	if err != nil {
		return nil, err
	}
	return &sqlb.Result{SQL: sql, Params: params}, nil
}

// RenderInline converts a statement to MariaDB SQL with every value
// inlined as an escaped literal.
func (*Renderer) RenderInline(stmt sqlb.Statement) (string, error) {
	return render.RenderInline(dialect, stmt)
}
