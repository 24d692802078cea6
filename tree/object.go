package tree

import (
	"bytes"
	"encoding/json"

	"github.com/authcorp/optics/functional"
)

// Field is one key/value entry of an Object.
type Field struct {
	Key   string
	Value Value
}

// F is shorthand for a Field literal.
func F(key string, value Value) Field {
	return Field{Key: key, Value: value}
}

// Object is an immutable mapping from string keys to values that remembers
// insertion order. The zero value is an empty object.
type Object struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewObject builds an object from fields in order. A repeated key keeps its
// first position and its last value.
func NewObject(fields ...Field) *Object {
	o := &Object{
		keys:  make([]string, 0, len(fields)),
		vals:  make([]Value, 0, len(fields)),
		index: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if i, ok := o.index[f.Key]; ok {
			o.vals[i] = f.Value
			continue
		}
		o.index[f.Key] = len(o.keys)
		o.keys = append(o.keys, f.Key)
		o.vals = append(o.vals, f.Value)
	}
	return o
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value at key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Lookup returns the value at key as an Option.
func (o *Object) Lookup(key string) functional.Option[Value] {
	if v, ok := o.Get(key); ok {
		return functional.Some(v)
	}
	return functional.None[Value]()
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Fields iterates entries in insertion order.
func (o *Object) Fields() functional.Iterator[Field] {
	return func(yield func(Field) bool) {
		if o == nil {
			return
		}
		for i, k := range o.keys {
			if !yield(Field{Key: k, Value: o.vals[i]}) {
				return
			}
		}
	}
}

// With returns an object with key bound to v. An existing key keeps its
// position; a new key is appended. The key list and index are shared with
// the receiver when the key already exists.
func (o *Object) With(key string, v Value) *Object {
	if o != nil {
		if i, ok := o.index[key]; ok {
			vals := make([]Value, len(o.vals))
			copy(vals, o.vals)
			vals[i] = v
			return &Object{keys: o.keys, vals: vals, index: o.index}
		}
	}
	n := o.Len()
	keys := make([]string, n, n+1)
	vals := make([]Value, n, n+1)
	index := make(map[string]int, n+1)
	if o != nil {
		copy(keys, o.keys)
		copy(vals, o.vals)
		for k, i := range o.index {
			index[k] = i
		}
	}
	index[key] = n
	return &Object{keys: append(keys, key), vals: append(vals, v), index: index}
}

// Without returns an object lacking key. It returns the receiver itself when
// key is absent.
func (o *Object) Without(key string) *Object {
	if o == nil {
		return o
	}
	pos, ok := o.index[key]
	if !ok {
		return o
	}
	n := len(o.keys) - 1
	keys := make([]string, 0, n)
	vals := make([]Value, 0, n)
	index := make(map[string]int, n)
	for i, k := range o.keys {
		if i == pos {
			continue
		}
		index[k] = len(keys)
		keys = append(keys, k)
		vals = append(vals, o.vals[i])
	}
	return &Object{keys: keys, vals: vals, index: index}
}

// MarshalJSON writes keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keysOrNil() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) keysOrNil() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// String renders the object as compact JSON.
func (o *Object) String() string {
	if o == nil {
		return "{}"
	}
	return render(o)
}
