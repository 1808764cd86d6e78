// internal/types/value.go
//
// Tagged JSON variant.
//
// Context
// -------
// API envelopes and error details carry open-ended, JSON-shaped payloads.
// Rather than threading `any` through the codebase, Value is a closed
// variant over the six JSON shapes: null, bool, number, string, list, and
// string-keyed map.  Constructors pin the kind at build time, accessors
// report it, and the json.Marshaler / json.Unmarshaler pair keeps the wire
// form identical to plain JSON.
//
// Notes
// -----
//   - Numbers are float64, matching encoding/json's default decode.
//   - The zero Value is null, so `var v Value` is always usable.
//   - Oxford commas, two spaces after periods.
package types

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ValueKind discriminates the six JSON shapes a Value can hold.
type ValueKind uint8

const (
	NullKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
	ListKind
	MapKind
)

// String returns the lowercase kind name, mainly for error messages.
func (k ValueKind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	}
	return "invalid"
}

// Value is an immutable, JSON-representable datum.  Build one with the
// constructors below; the zero value is JSON null.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
	l    []Value
	m    map[string]Value
}

//
// constructors
//

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Number wraps a float64.  Integers should be converted by the caller.
func Number(n float64) Value { return Value{kind: NumberKind, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// List wraps an ordered sequence of Values.
func List(items ...Value) Value { return Value{kind: ListKind, l: items} }

// Map wraps a string-keyed mapping of Values.  The map is used as-is, so
// callers must not mutate it afterwards.
func Map(m map[string]Value) Value { return Value{kind: MapKind, m: m} }

//
// accessors
//

// Kind reports which variant the Value holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the Value is JSON null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// AsBool returns the boolean payload; ok is false for other kinds.
func (v Value) AsBool() (b, ok bool) { return v.b, v.kind == BoolKind }

// AsNumber returns the numeric payload; ok is false for other kinds.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == NumberKind }

// AsString returns the string payload; ok is false for other kinds.
func (v Value) AsString() (string, bool) { return v.s, v.kind == StringKind }

// AsList returns the list payload; ok is false for other kinds.  The
// returned slice must be treated as read-only.
func (v Value) AsList() ([]Value, bool) { return v.l, v.kind == ListKind }

// AsMap returns the map payload; ok is false for other kinds.  The
// returned map must be treated as read-only.
func (v Value) AsMap() (map[string]Value, bool) { return v.m, v.kind == MapKind }

//
// JSON wire form
//

// MarshalJSON renders the Value exactly as the plain JSON it wraps.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case NullKind:
		return []byte("null"), nil
	case BoolKind:
		return json.Marshal(v.b)
	case NumberKind:
		return json.Marshal(v.n)
	case StringKind:
		return json.Marshal(v.s)
	case ListKind:
		if v.l == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.l)
	case MapKind:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	}
	return nil, fmt.Errorf("types: cannot marshal value of kind %d", v.kind)
}

// UnmarshalJSON decodes arbitrary JSON into the matching variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	got, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = got
	return nil
}

// FromAny converts a dynamically-typed Go value into a Value.  It accepts
// nil, booleans, all integer and float widths, strings, slices, arrays, and
// string-keyed maps whose elements are themselves convertible.  Anything
// else is rejected with an error naming the offending type.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("types: %q is not a JSON number", t)
		}
		return Number(f), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32:
		return Number(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			items[i] = el
		}
		return List(items...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("types: map key type %s is not a string", rv.Type().Key())
		}
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			el, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			m[iter.Key().String()] = el
		}
		return Map(m), nil
	}
	return Value{}, fmt.Errorf("types: %T is not JSON-representable", x)
}
