package tree

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// FromGo converts plain Go data (maps with string keys, slices, scalars) into
// a tree. Map keys are sorted since Go maps carry no order. Existing *Object
// and *Array values are kept as they are.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil, bool, string, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number, *Object, *Array:
		return x, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			child, err := FromGo(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			fields = append(fields, Field{Key: k, Value: child})
		}
		return NewObject(fields...), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			child, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = child
		}
		return adopt(items), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			child, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = child
		}
		return adopt(items), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromGo(m)
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	}
	return nil, fmt.Errorf("unsupported type %s", rv.Type())
}

// MustFromGo is FromGo for literals known to be valid.
func MustFromGo(v any) Value {
	out, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return out
}

// ToGo converts a tree back into map[string]any / []any / scalars.
func ToGo(v Value) any {
	switch x := v.(type) {
	case *Object:
		m := make(map[string]any, x.Len())
		for i, k := range x.keysOrNil() {
			m[k] = ToGo(x.vals[i])
		}
		return m
	case *Array:
		out := make([]any, x.Len())
		for i := range out {
			out[i] = ToGo(x.items[i])
		}
		return out
	}
	return v
}

func render(v Value) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(b)
}
