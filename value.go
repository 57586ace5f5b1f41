package sqlb

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/zoobzio/sqlb/internal/types"
)

// Null creates the SQL NULL value.
func Null() Value {
	return Value{Kind: types.KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{Kind: types.KindBool, Bool: v}
}

// Int8 creates an 8-bit signed integer value.
func Int8(v int8) Value {
	return Value{Kind: types.KindInt8, Int: int64(v)}
}

// Int16 creates a 16-bit signed integer value.
func Int16(v int16) Value {
	return Value{Kind: types.KindInt16, Int: int64(v)}
}

// Int32 creates a 32-bit signed integer value.
func Int32(v int32) Value {
	return Value{Kind: types.KindInt32, Int: int64(v)}
}

// Int64 creates a 64-bit signed integer value.
func Int64(v int64) Value {
	return Value{Kind: types.KindInt64, Int: v}
}

// Int creates a 64-bit signed integer value from a native int.
func Int(v int) Value {
	return Value{Kind: types.KindInt64, Int: int64(v)}
}

// Uint8 creates an 8-bit unsigned integer value.
func Uint8(v uint8) Value {
	return Value{Kind: types.KindUint8, Uint: uint64(v)}
}

// Uint16 creates a 16-bit unsigned integer value.
func Uint16(v uint16) Value {
	return Value{Kind: types.KindUint16, Uint: uint64(v)}
}

// Uint32 creates a 32-bit unsigned integer value.
func Uint32(v uint32) Value {
	return Value{Kind: types.KindUint32, Uint: uint64(v)}
}

// Uint64 creates a 64-bit unsigned integer value.
func Uint64(v uint64) Value {
	return Value{Kind: types.KindUint64, Uint: v}
}

// Uint creates a 64-bit unsigned integer value from a native uint.
func Uint(v uint) Value {
	return Value{Kind: types.KindUint64, Uint: uint64(v)}
}

// Float32 creates a 32-bit float value.
func Float32(v float32) Value {
	return Value{Kind: types.KindFloat32, Float: float64(v)}
}

// Float64 creates a 64-bit float value.
func Float64(v float64) Value {
	return Value{Kind: types.KindFloat64, Float: v}
}

// String creates a string value.
func String(v string) Value {
	return Value{Kind: types.KindString, Str: v}
}

// Bytes creates a binary value. The slice is copied so later mutation of
// the argument cannot change an already built statement.
func Bytes(v []byte) Value {
	cp := make([]byte, len(v))
	copy(cp, v)
	return Value{Kind: types.KindBytes, Bytes: cp}
}

// Time creates a timestamp value.
func Time(v time.Time) Value {
	return Value{Kind: types.KindTime, Time: v}
}

// JSON creates a value holding a raw JSON document. The bytes are copied.
func JSON(raw []byte) Value {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Value{Kind: types.KindJSON, Bytes: cp}
}

// UUID creates a UUID value.
func UUID(v uuid.UUID) Value {
	return Value{Kind: types.KindUUID, UUID: v}
}

// TryDecimal creates an arbitrary-precision decimal value from its
// string form, returning an error when the text is not a valid number.
// The digits are carried verbatim, so no float rounding occurs.
func TryDecimal(s string) (Value, error) {
	if _, ok := new(big.Rat).SetString(s); !ok {
		return Value{}, fmt.Errorf("invalid decimal %q", s)
	}
	return Value{Kind: types.KindDecimal, Str: s}, nil
}

// Decimal creates an arbitrary-precision decimal value from its string
// form. Panics when the text is not a valid number.
func Decimal(s string) Value {
	v, err := TryDecimal(s)
	if err != nil {
		panic(err)
	}
	return v
}

// TryV coerces a native Go value into a Value, returning an error for
// types outside the supported set. nil coerces to Null, a Value passes
// through unchanged, and non-nil pointers coerce to their element.
func TryV(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int8(v), nil
	case int16:
		return Int16(v), nil
	case int32:
		return Int32(v), nil
	case int64:
		return Int64(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint8(v), nil
	case uint16:
		return Uint16(v), nil
	case uint32:
		return Uint32(v), nil
	case uint64:
		return Uint64(v), nil
	case float32:
		return Float32(v), nil
	case float64:
		return Float64(v), nil
	case string:
		return String(v), nil
	case json.RawMessage:
		return JSON(v), nil
	case []byte:
		return Bytes(v), nil
	case time.Time:
		return Time(v), nil
	case uuid.UUID:
		return UUID(v), nil
	}

	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Null(), nil
		}
		return TryV(rv.Elem().Interface())
	}
	return Value{}, fmt.Errorf("cannot convert %T to a SQL value", x)
}

// V coerces a native Go value into a Value. Panics for types outside the
// supported set; use TryV when the input is not statically known.
func V(x any) Value {
	v, err := TryV(x)
	if err != nil {
		panic(err)
	}
	return v
}
