package types

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValueKind discriminates the variants of the Value union.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
	KindTime
	KindDecimal
	KindJSON
	KindUUID
)

// String returns the kind name for debug output.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindTime:
		return "Time"
	case KindDecimal:
		return "Decimal"
	case KindJSON:
		return "JSON"
	case KindUUID:
		return "UUID"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// TimeFormat is the layout used when a Time value is rendered as a literal.
const TimeFormat = "2006-01-02 15:04:05"

// Value is a bound literal. Exactly one storage field is meaningful,
// selected by Kind. A Value never carries SQL text: it reaches the output
// either through the parameter channel or through a dialect literal
// formatter.
//
// This is exported from the internal package so the base package and the
// dialect renderers can share it, but external users cannot import this
// package.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Str   string // String and Decimal storage
	Bytes []byte // Bytes and JSON storage
	Time  time.Time
	UUID  uuid.UUID
}

// IsNull reports whether the value is the Null variant.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Equal reports structural equality. Null equals Null here: this is the
// model's own equality for deduplication and tests, not SQL three-valued
// logic, where NULL = NULL is unknown.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return v.Int == o.Int
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.Uint == o.Uint
	case KindFloat32, KindFloat64:
		return v.Float == o.Float
	case KindString, KindDecimal:
		return v.Str == o.Str
	case KindBytes, KindJSON:
		if len(v.Bytes) != len(o.Bytes) {
			return false
		}
		for i := range v.Bytes {
			if v.Bytes[i] != o.Bytes[i] {
				return false
			}
		}
		return true
	case KindTime:
		return v.Time.Equal(o.Time)
	case KindUUID:
		return v.UUID == o.UUID
	default:
		return false
	}
}

// Arg returns the native Go value to hand to a database driver when the
// value is bound as a parameter. Null yields nil. UUID, Decimal, and JSON
// yield strings, which every supported driver binds portably.
func (v Value) Arg() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return v.Int
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.Uint
	case KindFloat32, KindFloat64:
		return v.Float
	case KindString, KindDecimal:
		return v.Str
	case KindBytes:
		return v.Bytes
	case KindJSON:
		return string(v.Bytes)
	case KindTime:
		return v.Time
	case KindUUID:
		return v.UUID.String()
	default:
		return nil
	}
}

// String returns a debug representation such as Int64(18) or
// String("abc"). It is not SQL and must never be concatenated into a
// statement.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "Null"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.Bool)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return fmt.Sprintf("%s(%d)", v.Kind, v.Int)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return fmt.Sprintf("%s(%d)", v.Kind, v.Uint)
	case KindFloat32, KindFloat64:
		return fmt.Sprintf("%s(%v)", v.Kind, v.Float)
	case KindString:
		return fmt.Sprintf("String(%q)", v.Str)
	case KindDecimal:
		return fmt.Sprintf("Decimal(%s)", v.Str)
	case KindBytes:
		return fmt.Sprintf("Bytes(0x%s)", hex.EncodeToString(v.Bytes))
	case KindJSON:
		return fmt.Sprintf("JSON(%s)", string(v.Bytes))
	case KindTime:
		return fmt.Sprintf("Time(%s)", v.Time.Format(TimeFormat))
	case KindUUID:
		return fmt.Sprintf("UUID(%s)", v.UUID)
	default:
		return v.Kind.String()
	}
}
