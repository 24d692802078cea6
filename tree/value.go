package tree

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Value is any node of a tree.
type Value = any

// Kind names the shape of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// KindOf classifies v.
func KindOf(v Value) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case *Array:
		return KindArray
	case *Object:
		return KindObject
	default:
		return KindUnknown
	}
}

// Describe renders v's shape for error messages.
func Describe(v Value) string {
	if k := KindOf(v); k != KindUnknown {
		return k.String()
	}
	return fmt.Sprintf("unknown(%T)", v)
}

// AsObject returns v as an object.
func AsObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

// AsArray returns v as an array.
func AsArray(v Value) (*Array, bool) {
	a, ok := v.(*Array)
	return a, ok && a != nil
}

// Same reports whether a and b are the identical value: the same container
// pointer, or equal comparable scalars. It never panics on incomparable
// dynamic types.
func Same(a, b Value) bool {
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		return ok && x == y
	case *Array:
		y, ok := b.(*Array)
		return ok && x == y
	case nil:
		return b == nil
	}
	if b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b || isNaN(a) && isNaN(b)
}

// isNaN reports a float NaN. NaN leaves count as identical to themselves so
// that an identity update leaves them in place.
func isNaN(v Value) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

// Equal reports deep structural equality. Objects compare by key set
// regardless of order; numbers compare by numeric value across Go types.
func Equal(a, b Value) bool {
	if Same(a, b) {
		return true
	}
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, k := range x.keys {
			yv, ok := y.Get(k)
			if !ok || !Equal(x.vals[i], yv) {
				return false
			}
		}
		return true
	case *Array:
		y, ok := b.(*Array)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	}
	if KindOf(a) == KindNumber && KindOf(b) == KindNumber {
		fa, oka := Number(a)
		fb, okb := Number(b)
		return oka && okb && (fa == fb || math.IsNaN(fa) && math.IsNaN(fb))
	}
	return reflect.DeepEqual(a, b)
}

// Number converts a numeric scalar to float64.
func Number(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil && !math.IsNaN(f)
	}
	return 0, false
}
