package tree

import (
	"encoding/json"

	"github.com/authcorp/optics/functional"
)

// Array is an immutable ordered sequence of values. The zero value is an
// empty array.
type Array struct {
	items []Value
}

// NewArray builds an array holding a copy of items.
func NewArray(items ...Value) *Array {
	return &Array{items: append([]Value(nil), items...)}
}

// adopt wraps items without copying; callers must not retain items.
func adopt(items []Value) *Array {
	return &Array{items: items}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the element at i.
func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.items[i], true
}

// Values iterates elements in index order.
func (a *Array) Values() functional.Iterator[Value] {
	return func(yield func(Value) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (a *Array) IndexFunc(pred func(Value) bool) int {
	for i := 0; i < a.Len(); i++ {
		if pred(a.items[i]) {
			return i
		}
	}
	return -1
}

// Slice returns a copy of the elements.
func (a *Array) Slice() []Value {
	if a == nil {
		return nil
	}
	return append([]Value(nil), a.items...)
}

// With returns an array whose element i is v. Out of range returns the
// receiver.
func (a *Array) With(i int, v Value) *Array {
	if i < 0 || i >= a.Len() {
		return a
	}
	items := make([]Value, len(a.items))
	copy(items, a.items)
	items[i] = v
	return adopt(items)
}

// Append returns an array with vs added at the end.
func (a *Array) Append(vs ...Value) *Array {
	n := a.Len()
	items := make([]Value, n, n+len(vs))
	if a != nil {
		copy(items, a.items)
	}
	return adopt(append(items, vs...))
}

// RemoveAt returns an array without element i, preserving the order of the
// rest. Out of range returns the receiver.
func (a *Array) RemoveAt(i int) *Array {
	if i < 0 || i >= a.Len() {
		return a
	}
	items := make([]Value, 0, len(a.items)-1)
	items = append(items, a.items[:i]...)
	return adopt(append(items, a.items[i+1:]...))
}

// Update rebuilds the array with fn applied to each element in order. An
// element is dropped when fn reports keep=false. The receiver itself is
// returned when every element is kept unchanged, and the elements are
// copied at most once otherwise.
func (a *Array) Update(fn func(i int, v Value) (next Value, keep bool, err error)) (*Array, error) {
	var out []Value
	changed := false
	for i := 0; i < a.Len(); i++ {
		child := a.items[i]
		next, keep, err := fn(i, child)
		if err != nil {
			return nil, err
		}
		if !changed {
			if keep && Same(next, child) {
				continue
			}
			changed = true
			out = make([]Value, i, len(a.items))
			copy(out, a.items[:i])
		}
		if keep {
			out = append(out, next)
		}
	}
	if !changed {
		return a, nil
	}
	return adopt(out), nil
}

// MarshalJSON writes the elements in order.
func (a *Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	if a.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.items)
}

// String renders the array as compact JSON.
func (a *Array) String() string {
	if a == nil {
		return "[]"
	}
	return render(a)
}
