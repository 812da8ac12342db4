package settings

import (
	"encoding/json"
	"fmt"
	"math"
)

// MaxNestingDepth bounds how deeply list values may nest. Option tables use
// three levels: table, row, identity/filter column.
const MaxNestingDepth = 3

// Kind discriminates the closed set of value shapes a setting may carry.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindList
)

// Value is an immutable configuration value: a scalar or a nested list of
// further values. The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  int
	flag bool
	list []Value
}

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs an integer Value.
func Int(n int) Value { return Value{kind: KindInt, num: n} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List constructs a list Value from the given items.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Strings constructs a list Value of string items.
func Strings(items ...string) Value {
	values := make([]Value, len(items))
	for i, item := range items {
		values[i] = String(item)
	}
	return List(values...)
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload, or "" for non-string values.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// IntVal returns the integer payload, or 0 for non-integer values.
func (v Value) IntVal() int {
	if v.kind != KindInt {
		return 0
	}
	return v.num
}

// BoolVal interprets the value as a flag. Booleans report their payload;
// any non-empty string is true, so SSH_BATCH_MODE=anything in the
// environment enables batch mode; integers are true when non-zero; lists
// are true when non-empty.
func (v Value) BoolVal() bool {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindString:
		return v.str != ""
	case KindInt:
		return v.num != 0
	case KindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// Items returns the list elements, or nil for scalar values. The returned
// slice must not be mutated.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Interface converts the value into plain Go data (string, int, bool,
// []any) suitable for JSON encoding and comparison in tests.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindBool:
		return v.flag
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values have the same shape and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	default:
		return v.str == other.str && v.num == other.num && v.flag == other.flag
	}
}

// String renders the value as compact JSON for display and diagnostics.
func (v Value) String() string {
	encoded, err := json.Marshal(v.Interface())
	if err != nil {
		return fmt.Sprintf("%v", v.Interface())
	}
	return string(encoded)
}

// MarshalJSON encodes the value as its native JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// fromJSON converts decoded JSON data into a Value, rejecting shapes the
// catalog cannot carry: non-integral numbers, objects, and lists nested
// deeper than MaxNestingDepth.
func fromJSON(raw any, depth int) (Value, error) {
	switch data := raw.(type) {
	case string:
		return String(data), nil
	case bool:
		return Bool(data), nil
	case float64:
		if data != math.Trunc(data) {
			return Value{}, fmt.Errorf("non-integer number %v", data)
		}
		return Int(int(data)), nil
	case nil:
		return String(""), nil
	case []any:
		if depth >= MaxNestingDepth {
			return Value{}, fmt.Errorf("list nested deeper than %d levels", MaxNestingDepth)
		}
		items := make([]Value, len(data))
		for i, item := range data {
			value, err := fromJSON(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			items[i] = value
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
