package optics

import (
	"strconv"

	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/tree"
)

// Predicate selects values for Find and When.
type Predicate func(tree.Value) bool

// FieldEquals matches objects whose field key is structurally equal to want.
func FieldEquals(key string, want tree.Value) Predicate {
	return func(v tree.Value) bool {
		obj, ok := tree.AsObject(v)
		if !ok {
			return false
		}
		got, ok := obj.Get(key)
		return ok && tree.Equal(got, want)
	}
}

// OutOfRange decides what Modify and Set do with an index past the end of an
// array. Get always fails.
type OutOfRange uint8

const (
	OutOfRangeFail OutOfRange = iota
	OutOfRangeIgnore
)

// ParseOutOfRange accepts "fail" or "ignore".
func ParseOutOfRange(s string) (OutOfRange, error) {
	switch s {
	case "", "fail":
		return OutOfRangeFail, nil
	case "ignore":
		return OutOfRangeIgnore, nil
	}
	return 0, opterrors.Newf(opterrors.ErrCodeInvalidPath, "unknown out-of-range policy %q", s)
}

func (p OutOfRange) String() string {
	if p == OutOfRangeIgnore {
		return "ignore"
	}
	return "fail"
}

// Step is one primitive navigation. The concrete step types below are the
// only implementations.
type Step interface {
	Kind() Kind
	String() string

	// view calls yield for each focus of v in order and reports whether
	// yield asked to continue.
	view(v tree.Value, yield func(tree.Value) bool) (bool, error)
	// over rebuilds v with fn applied to each focus. It returns v itself
	// when no focus changed.
	over(v tree.Value, fn updateFunc) (tree.Value, error)
}

type updateFunc func(tree.Value) (tree.Value, error)

// removed marks a focus to be dropped by the nearest enclosing container step.
type removed struct{}

func isRemoved(v tree.Value) bool {
	_, ok := v.(removed)
	return ok
}

// PropStep focuses a required object field.
type PropStep struct {
	Key string
}

func (PropStep) Kind() Kind { return KindLens }

func (s PropStep) String() string {
	if isIdent(s.Key) {
		return "." + s.Key
	}
	return "[" + strconv.Quote(s.Key) + "]"
}

func (s PropStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	obj, ok := tree.AsObject(v)
	if !ok {
		return false, opterrors.TypeMismatch("object", tree.Describe(v))
	}
	child, ok := obj.Get(s.Key)
	if !ok {
		return false, opterrors.MissingKey(s.Key)
	}
	return yield(child), nil
}

func (s PropStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	obj, ok := tree.AsObject(v)
	if !ok {
		return nil, opterrors.TypeMismatch("object", tree.Describe(v))
	}
	child, ok := obj.Get(s.Key)
	if !ok {
		return nil, opterrors.MissingKey(s.Key)
	}
	next, err := fn(child)
	if err != nil {
		return nil, err
	}
	if isRemoved(next) {
		return nil, opterrors.InvalidRemoveOnLens(s.String())
	}
	if tree.Same(next, child) {
		return v, nil
	}
	return obj.With(s.Key, next), nil
}

// IndexStep focuses a required array element.
type IndexStep struct {
	Index      int
	OutOfRange OutOfRange
}

func (IndexStep) Kind() Kind { return KindLens }

func (s IndexStep) String() string {
	return "[" + strconv.Itoa(s.Index) + "]"
}

func (s IndexStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	arr, ok := tree.AsArray(v)
	if !ok {
		return false, opterrors.TypeMismatch("array", tree.Describe(v))
	}
	child, ok := arr.At(s.Index)
	if !ok {
		return false, opterrors.MissingIndex(s.Index, arr.Len())
	}
	return yield(child), nil
}

func (s IndexStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	arr, ok := tree.AsArray(v)
	if !ok {
		return nil, opterrors.TypeMismatch("array", tree.Describe(v))
	}
	child, ok := arr.At(s.Index)
	if !ok {
		if s.OutOfRange == OutOfRangeIgnore {
			return v, nil
		}
		return nil, opterrors.MissingIndex(s.Index, arr.Len())
	}
	next, err := fn(child)
	if err != nil {
		return nil, err
	}
	if isRemoved(next) {
		return nil, opterrors.InvalidRemoveOnLens(s.String())
	}
	if tree.Same(next, child) {
		return v, nil
	}
	return arr.With(s.Index, next), nil
}

// FindStep focuses the first array element matching Pred.
type FindStep struct {
	Pred  Predicate
	Label string
}

func (FindStep) Kind() Kind { return KindPrism }

func (s FindStep) String() string {
	if s.Label != "" {
		return "[?" + s.Label + "]"
	}
	return "[?find]"
}

func (s FindStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	arr, ok := tree.AsArray(v)
	if !ok {
		return false, opterrors.TypeMismatch("array", tree.Describe(v))
	}
	i := arr.IndexFunc(s.Pred)
	if i < 0 {
		return true, nil
	}
	child, _ := arr.At(i)
	return yield(child), nil
}

func (s FindStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	arr, ok := tree.AsArray(v)
	if !ok {
		return nil, opterrors.TypeMismatch("array", tree.Describe(v))
	}
	i := arr.IndexFunc(s.Pred)
	if i < 0 {
		return v, nil
	}
	child, _ := arr.At(i)
	next, err := fn(child)
	if err != nil {
		return nil, err
	}
	switch {
	case isRemoved(next):
		return arr.RemoveAt(i), nil
	case tree.Same(next, child):
		return v, nil
	}
	return arr.With(i, next), nil
}

// AtStep focuses an object field if it exists.
type AtStep struct {
	Key string
}

func (AtStep) Kind() Kind { return KindPrism }

func (s AtStep) String() string {
	if isIdent(s.Key) {
		return "{" + s.Key + "}"
	}
	return "{" + strconv.Quote(s.Key) + "}"
}

func (s AtStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	obj, ok := tree.AsObject(v)
	if !ok {
		return false, opterrors.TypeMismatch("object", tree.Describe(v))
	}
	child, ok := obj.Get(s.Key)
	if !ok {
		return true, nil
	}
	return yield(child), nil
}

func (s AtStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	obj, ok := tree.AsObject(v)
	if !ok {
		return nil, opterrors.TypeMismatch("object", tree.Describe(v))
	}
	child, ok := obj.Get(s.Key)
	if !ok {
		return v, nil
	}
	next, err := fn(child)
	if err != nil {
		return nil, err
	}
	switch {
	case isRemoved(next):
		return obj.Without(s.Key), nil
	case tree.Same(next, child):
		return v, nil
	}
	return obj.With(s.Key, next), nil
}

// WhenStep keeps the current focus only if Pred holds. It does not descend,
// so removal through it deletes the focus from the enclosing container.
type WhenStep struct {
	Pred  Predicate
	Label string
}

func (WhenStep) Kind() Kind { return KindPrism }

func (s WhenStep) String() string {
	if s.Label != "" {
		return "?(" + s.Label + ")"
	}
	return "?(when)"
}

func (s WhenStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	if !s.Pred(v) {
		return true, nil
	}
	return yield(v), nil
}

func (s WhenStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	if !s.Pred(v) {
		return v, nil
	}
	return fn(v)
}

// ElemsStep focuses every element of an array.
type ElemsStep struct{}

func (ElemsStep) Kind() Kind { return KindTraversal }

func (ElemsStep) String() string { return "[*]" }

func (ElemsStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	arr, ok := tree.AsArray(v)
	if !ok {
		return false, opterrors.TypeMismatch("array", tree.Describe(v))
	}
	more := true
	arr.Values()(func(child tree.Value) bool {
		more = yield(child)
		return more
	})
	return more, nil
}

func (ElemsStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	arr, ok := tree.AsArray(v)
	if !ok {
		return nil, opterrors.TypeMismatch("array", tree.Describe(v))
	}
	out, err := arr.Update(func(_ int, child tree.Value) (tree.Value, bool, error) {
		next, err := fn(child)
		if err != nil {
			return nil, false, err
		}
		return next, !isRemoved(next), nil
	})
	if err != nil {
		return nil, err
	}
	if out == arr {
		return v, nil
	}
	return out, nil
}

// IsoStep views the focus through a reversible conversion. To maps the stored
// value to the viewed one and From maps it back.
type IsoStep struct {
	Name string
	To   func(tree.Value) (tree.Value, error)
	From func(tree.Value) (tree.Value, error)
}

func (IsoStep) Kind() Kind { return KindLens }

func (s IsoStep) String() string { return "~" + s.Name }

func (s IsoStep) view(v tree.Value, yield func(tree.Value) bool) (bool, error) {
	viewed, err := s.To(v)
	if err != nil {
		return false, err
	}
	return yield(viewed), nil
}

func (s IsoStep) over(v tree.Value, fn updateFunc) (tree.Value, error) {
	viewed, err := s.To(v)
	if err != nil {
		return nil, err
	}
	next, err := fn(viewed)
	if err != nil {
		return nil, err
	}
	if isRemoved(next) {
		return nil, opterrors.InvalidRemoveOnLens(s.String())
	}
	if tree.Same(next, viewed) {
		return v, nil
	}
	return s.From(next)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}
