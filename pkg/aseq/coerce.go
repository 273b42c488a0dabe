package aseq

import (
	"fmt"
	"math"
	"reflect"
)

type holeMarker struct{}

type undefinedMarker struct{}

// Hole marks an absent slot inside a []any collection. A hole survives
// every operation unchanged and is never handed to a callable. Distinct
// from Undefined and from nil.
var Hole any = holeMarker{}

// Undefined is a present "no value": dense record gaps normalize to it and
// ForEach settles to it. Renders as "undefined".
var Undefined any = undefinedMarker{}

// Display is the default string coercion used by TypeError messages.
func Display(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case undefinedMarker, holeMarker:
		return "undefined"
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return "[object Object]"
	case reflect.Ptr:
		if rv.IsNil() {
			return "null"
		}
		if rv.Elem().Kind() == reflect.Struct || rv.Elem().Kind() == reflect.Map {
			return "[object Object]"
		}
	}
	return fmt.Sprintf("%v", v)
}

// Truthy is the predicate coercion used by filter and search operations:
// nil, Undefined, Hole, false, numeric zero, NaN and the empty string are
// false, everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil, undefinedMarker, holeMarker:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// IsNil reports whether v is nil, including a typed nil behind an
// interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
