// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"
)

// Kind enumerates the scalar types a property value can hold.
type Kind uint8

const (
	// KindNull is an explicit JSON null. It is also the zero Kind, so a zero
	// [Value] is a null value.
	KindNull Kind = iota
	// KindString is a JSON string.
	KindString
	// KindNumber is a JSON number, kept in its original textual form.
	KindNumber
	// KindBool is a JSON boolean.
	KindBool
)

// String returns the lower-case JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "null"
	}
}

// Value is a single property value received from the config service.
//
// Property sources are flat: nesting is always encoded in the key, so a value
// is one of null, string, number or boolean. Value is immutable and safe to
// copy.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
}

// Null returns an explicit null value.
func Null() Value { return Value{} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps n. The textual form of n is kept as is.
func NumberValue(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// IntValue wraps i as a number.
func IntValue(i int64) Value { return NumberValue(json.Number(strconv.FormatInt(i, 10))) }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf converts a decoded JSON scalar into a Value. It accepts nil, string,
// json.Number, float64, the Go integer types and bool. ok is false for
// anything else (objects, arrays, unsupported types).
func ValueOf(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return Null(), true
	case Value:
		return x, true
	case string:
		return StringValue(x), true
	case json.Number:
		return NumberValue(x), true
	case float64:
		return NumberValue(json.Number(strconv.FormatFloat(x, 'g', -1, 64))), true
	case float32:
		return NumberValue(json.Number(strconv.FormatFloat(float64(x), 'g', -1, 32))), true
	case int:
		return IntValue(int64(x)), true
	case int32:
		return IntValue(int64(x)), true
	case int64:
		return IntValue(x), true
	case uint:
		return NumberValue(json.Number(strconv.FormatUint(uint64(x), 10))), true
	case uint64:
		return NumberValue(json.Number(strconv.FormatUint(x, 10))), true
	case bool:
		return BoolValue(x), true
	default:
		return Value{}, false
	}
}

// MustValue is like [ValueOf] but panics on unsupported input. Intended for
// fixtures and tests.
func MustValue(v any) Value {
	val, ok := ValueOf(v)
	if !ok {
		panic("models: unsupported property value type")
	}
	return val
}

// Kind reports the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload and true if v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Number returns the number payload and true if v is a number.
func (v Value) Number() (json.Number, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and true if v is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Interface returns v as a plain Go value: nil, string, json.Number or bool.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders v the way it would appear in a properties listing. Null is
// rendered as "null".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// Equal reports whether v and o hold the same kind and payload. Numbers are
// compared by their textual form.
func (v Value) Equal(o Value) bool {
	return v == o
}

// DeepCopy implements the deepcopy.Interface. Value is immutable, so the
// receiver itself is returned.
func (v Value) DeepCopy() any { return v }

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if v.num == "" {
			return []byte("0"), nil
		}
		return []byte(v.num), nil
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Objects and arrays are rejected
// with [ErrUnsupportedValue].
func (v *Value) UnmarshalJSON(b []byte) error {
	it := jsonAPI.BorrowIterator(b)
	defer jsonAPI.ReturnIterator(it)

	val, err := readValue(it)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalYAML implements yaml.Marshaler so that YAML output keeps the scalar
// type instead of exposing the struct layout.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == KindNumber {
		if i, err := v.num.Int64(); err == nil {
			return i, nil
		}
		if f, err := v.num.Float64(); err == nil {
			return f, nil
		}
		return v.num.String(), nil
	}
	return v.Interface(), nil
}
