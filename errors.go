package sqlb

import (
	"github.com/zoobzio/sqlb/internal/render"
	"github.com/zoobzio/sqlb/internal/types"
)

// The three render-time error kinds. Each is a distinct type, checkable
// with errors.As; construction never fails, so malformed trees surface
// only through these when rendered.

// UnsupportedFeatureError indicates a construct with no valid rendering
// in the target dialect, such as FULL JOIN on MySQL.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// EmptyStatementError indicates a statement whose structural shape has
// nothing to render, such as an UPDATE with zero assignments.
type EmptyStatementError = types.EmptyStatementError

// InvalidIdentifierError indicates a name that cannot be quoted, such as
// an empty name or one containing a NUL byte.
type InvalidIdentifierError = render.InvalidIdentifierError
