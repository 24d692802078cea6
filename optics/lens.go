package optics

import (
	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/tree"
)

// Lens focuses exactly one value. Get either returns it or fails with a
// typed error; it never invents a placeholder.
type Lens struct {
	steps []Step
}

func (Lens) Kind() Kind { return KindLens }

func (l Lens) Steps() []Step { return append([]Step(nil), l.steps...) }

func (l Lens) String() string { return render(l.steps) }

// Prop descends into a required object field.
func (l Lens) Prop(key string) Lens { return Lens{steps: extend(l.steps, PropStep{Key: key})} }

// Path descends through required object fields.
func (l Lens) Path(keys ...string) Lens { return Lens{steps: extend(l.steps, propSteps(keys)...)} }

// Index descends into a required array element.
func (l Lens) Index(i int) Lens { return l.IndexWith(i, OutOfRangeFail) }

// IndexWith is Index with an explicit out-of-range policy.
func (l Lens) IndexWith(i int, policy OutOfRange) Lens {
	return Lens{steps: extend(l.steps, IndexStep{Index: i, OutOfRange: policy})}
}

// Iso views the focus through a reversible conversion.
func (l Lens) Iso(name string, to, from func(tree.Value) (tree.Value, error)) Lens {
	return Lens{steps: extend(l.steps, IsoStep{Name: name, To: to, From: from})}
}

// At focuses an optional object field.
func (l Lens) At(key string) Prism { return Prism{steps: extend(l.steps, AtStep{Key: key})} }

// Find focuses the first matching array element.
func (l Lens) Find(pred Predicate) Prism { return Prism{steps: extend(l.steps, FindStep{Pred: pred})} }

// When filters the focus.
func (l Lens) When(pred Predicate) Prism { return Prism{steps: extend(l.steps, WhenStep{Pred: pred})} }

// Elems focuses every array element.
func (l Lens) Elems() Traversal { return Traversal{steps: extend(l.steps, ElemsStep{})} }

// Compose appends another lens.
func (l Lens) Compose(other Lens) Lens { return Lens{steps: extend(l.steps, other.steps...)} }

// ComposePrism appends a prism; the result may have no focus.
func (l Lens) ComposePrism(other Prism) Prism { return Prism{steps: extend(l.steps, other.steps...)} }

// ComposeTraversal appends a traversal.
func (l Lens) ComposeTraversal(other Traversal) Traversal {
	return Traversal{steps: extend(l.steps, other.steps...)}
}

// Get returns the focused value.
func (l Lens) Get(s tree.Value) (tree.Value, error) {
	found, err := preview(l.steps, s)
	if err != nil {
		return nil, err
	}
	v, ok := found.Get()
	if !ok {
		return nil, opterrors.NoFocus(l.String())
	}
	return v, nil
}

// Preview returns the focus as an Option; for a lens it is Some unless Get
// would fail.
func (l Lens) Preview(s tree.Value) (functional.Option[tree.Value], error) {
	return preview(l.steps, s)
}

// Modify replaces the focus with fn applied to it.
func (l Lens) Modify(s tree.Value, fn func(tree.Value) tree.Value) (tree.Value, error) {
	return modify(l.steps, s, lift(fn))
}

// ModifyE is Modify with a transform that may fail.
func (l Lens) ModifyE(s tree.Value, fn func(tree.Value) (tree.Value, error)) (tree.Value, error) {
	return modify(l.steps, s, fn)
}

// Set replaces the focus with v.
func (l Lens) Set(s tree.Value, v tree.Value) (tree.Value, error) {
	return modify(l.steps, s, constant(v))
}

func lift(fn func(tree.Value) tree.Value) updateFunc {
	return func(v tree.Value) (tree.Value, error) { return fn(v), nil }
}

func constant(v tree.Value) updateFunc {
	return func(tree.Value) (tree.Value, error) { return v, nil }
}
