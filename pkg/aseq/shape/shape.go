package shape

import (
	"math"
	"reflect"
	"strconv"

	"github.com/ib-77/aseq/pkg/aseq"
)

// maxLength bounds a declared record length to the 32-bit range.
const maxLength = int64(math.MaxUint32)

// ArrayLike is the capability a record needs to be walked as a collection:
// a declared length and indexed access. At reports ok=false for an index
// holding no own value, which normalizes as an absent slot.
type ArrayLike interface {
	Len() int
	At(i int) (any, bool)
}

// Eligible reports whether v can be normalized into a View. Pure: no
// element value is read or settled.
func Eligible(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return true
	case ArrayLike:
		return validLength(int64(t.Len()))
	case map[string]any:
		_, ok := recordLength(t)
		return ok
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// Normalize builds the View for v, mirroring the source's own length and
// hole structure exactly. ok is false when v is not eligible.
func Normalize(v any) (*View, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		view := &View{}
		for _, r := range t {
			view.slots = append(view.slots, Slot{Present: true, Value: string(r)})
		}
		return view, true
	case ArrayLike:
		n := t.Len()
		if !validLength(int64(n)) {
			return nil, false
		}
		view := NewView(n)
		for i := 0; i < n; i++ {
			if val, ok := t.At(i); ok {
				view.Set(i, val)
			}
		}
		return view, true
	case map[string]any:
		n, ok := recordLength(t)
		if !ok {
			return nil, false
		}
		view := NewView(n)
		for i := 0; i < n; i++ {
			val, ok := t[strconv.Itoa(i)]
			if !ok {
				// records are dense: a missing own entry is still present
				val = aseq.Undefined
			}
			view.Set(i, val)
		}
		return view, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		view := NewView(n)
		for i := 0; i < n; i++ {
			el := rv.Index(i).Interface()
			if el == aseq.Hole {
				continue
			}
			view.Set(i, el)
		}
		return view, true
	}
	return nil, false
}

func validLength(n int64) bool {
	return n >= 0 && n <= maxLength
}

func recordLength(m map[string]any) (int, bool) {
	raw, ok := m["length"]
	if !ok {
		return 0, false
	}
	return toLength(raw)
}

// toLength accepts any integer kind plus integral floats inside the
// 32-bit range.
func toLength(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if !validLength(n) {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > uint64(maxLength) {
			return 0, false
		}
		return int(n), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f < 0 || f > float64(maxLength) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}
