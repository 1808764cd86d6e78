// internal/types/guards.go
//
// Dynamic type guards for values crossing an untyped boundary, e.g. data
// decoded from third-party SDKs.
package types

import "reflect"

// IsValidJSON reports whether x can be represented as JSON: nil, booleans,
// any numeric width, strings, and slices, arrays, or string-keyed maps
// whose elements are themselves representable.
func IsValidJSON(x any) bool {
	_, err := FromAny(x)
	return err == nil
}

// IsValidTimestamp reports whether x is a positive numeric timestamp.
func IsValidTimestamp(x any) bool {
	if x == nil {
		return false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() > 0
	}
	return false
}
