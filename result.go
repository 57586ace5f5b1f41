package sqlb

// Result contains the rendered SQL and its bound parameters, ordered to
// match the placeholders in the text.
type Result struct {
	SQL    string
	Params []Value
}

// Args converts the parameters to native driver values for database/sql:
//
//	rows, err := db.Query(result.SQL, result.Args()...)
func (r *Result) Args() []any {
	args := make([]any, len(r.Params))
	for i, p := range r.Params {
		args[i] = p.Arg()
	}
	return args
}
