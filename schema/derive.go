package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/inflect"
	"github.com/google/uuid"
	"github.com/zoobzio/dbml"
)

var rules = inflect.NewDefaultRuleset()

// FromStructs derives a Schema from Go struct types. Each struct maps
// to a table named after the type in plural snake_case (OrderItem
// becomes order_items). Exported fields map to columns named by their
// db tag, or by the field name in snake_case when the tag is absent.
// Fields tagged db:"-" and unexported fields are skipped.
//
//	type User struct {
//		ID        int64     `db:"id"`
//		Email     string    `db:"email"`
//		CreatedAt time.Time // column created_at
//		internal  int       // skipped
//	}
//
//	s, err := schema.FromStructs(User{}, Order{})
func FromStructs(models ...any) (*Schema, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("at least one model is required")
	}

	project := dbml.NewProject("derived")
	for _, model := range models {
		table, err := tableFromStruct(model)
		if err != nil {
			return nil, err
		}
		project.AddTable(table)
	}
	return New(project)
}

func tableFromStruct(model any) (*dbml.Table, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %T", model)
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("model must be a named struct type")
	}

	table := dbml.NewTable(rules.Tableize(t.Name()))
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := f.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = rules.Underscore(f.Name)
		}
		if !ValidIdent(name) {
			return nil, fmt.Errorf("field %s.%s maps to unsafe column name %q", t.Name(), f.Name, name)
		}
		table.AddColumn(dbml.NewColumn(name, columnTypeOf(f.Type)))
	}
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("struct %s has no usable fields", t.Name())
	}
	return table, nil
}

// columnTypeOf picks an advisory DBML type for a Go field type. The
// registry only validates names, so a rough mapping is enough.
func columnTypeOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case reflect.TypeOf(time.Time{}):
		return "timestamp"
	case reflect.TypeOf(uuid.UUID{}):
		return "uuid"
	case reflect.TypeOf(json.RawMessage{}):
		return "json"
	case reflect.TypeOf([]byte(nil)):
		return "blob"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int8, reflect.Int16, reflect.Uint8, reflect.Uint16:
		return "smallint"
	case reflect.Int32, reflect.Uint32:
		return "int"
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return "bigint"
	case reflect.Float32:
		return "float"
	case reflect.Float64:
		return "double"
	case reflect.String:
		return "varchar"
	}
	return "text"
}

// ValidIdent accepts names made of letters, digits, and underscores,
// not starting with a digit. Everything else is rejected so a hostile
// struct tag or schema file cannot smuggle quoting or punctuation into
// a query.
func ValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
