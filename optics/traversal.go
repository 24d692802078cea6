package optics

import (
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/tree"
)

// Traversal focuses any number of values, in array index order with nested
// foci before later siblings.
type Traversal struct {
	steps []Step
}

func (Traversal) Kind() Kind { return KindTraversal }

func (t Traversal) Steps() []Step { return append([]Step(nil), t.steps...) }

func (t Traversal) String() string { return render(t.steps) }

func (t Traversal) Prop(key string) Traversal {
	return Traversal{steps: extend(t.steps, PropStep{Key: key})}
}

func (t Traversal) Path(keys ...string) Traversal {
	return Traversal{steps: extend(t.steps, propSteps(keys)...)}
}

func (t Traversal) Index(i int) Traversal { return t.IndexWith(i, OutOfRangeFail) }

func (t Traversal) IndexWith(i int, policy OutOfRange) Traversal {
	return Traversal{steps: extend(t.steps, IndexStep{Index: i, OutOfRange: policy})}
}

func (t Traversal) Iso(name string, to, from func(tree.Value) (tree.Value, error)) Traversal {
	return Traversal{steps: extend(t.steps, IsoStep{Name: name, To: to, From: from})}
}

func (t Traversal) At(key string) Traversal { return Traversal{steps: extend(t.steps, AtStep{Key: key})} }

func (t Traversal) Find(pred Predicate) Traversal {
	return Traversal{steps: extend(t.steps, FindStep{Pred: pred})}
}

func (t Traversal) When(pred Predicate) Traversal {
	return Traversal{steps: extend(t.steps, WhenStep{Pred: pred})}
}

func (t Traversal) Elems() Traversal { return Traversal{steps: extend(t.steps, ElemsStep{})} }

func (t Traversal) Compose(other Traversal) Traversal {
	return Traversal{steps: extend(t.steps, other.steps...)}
}

func (t Traversal) ComposeLens(other Lens) Traversal {
	return Traversal{steps: extend(t.steps, other.steps...)}
}

func (t Traversal) ComposePrism(other Prism) Traversal {
	return Traversal{steps: extend(t.steps, other.steps...)}
}

// Preview returns the first focus without visiting the rest.
func (t Traversal) Preview(s tree.Value) (functional.Option[tree.Value], error) {
	return preview(t.steps, s)
}

// GetAll returns every focus. No focus is an empty slice, not an error.
func (t Traversal) GetAll(s tree.Value) ([]tree.Value, error) {
	return collect(t.steps, s)
}

// Foci is the lazy form of GetAll. Ranging over it twice yields the same
// values for the same s.
func (t Traversal) Foci(s tree.Value) functional.Iterator[functional.Result[tree.Value]] {
	return foci(t.steps, s)
}

// Count returns the number of foci.
func (t Traversal) Count(s tree.Value) (int, error) {
	return count(t.steps, s)
}

// Modify applies fn to every focus.
func (t Traversal) Modify(s tree.Value, fn func(tree.Value) tree.Value) (tree.Value, error) {
	return modify(t.steps, s, lift(fn))
}

// ModifyE is Modify with a transform that may fail; the first failure aborts
// the update.
func (t Traversal) ModifyE(s tree.Value, fn func(tree.Value) (tree.Value, error)) (tree.Value, error) {
	return modify(t.steps, s, fn)
}

// Set replaces every focus with v.
func (t Traversal) Set(s tree.Value, v tree.Value) (tree.Value, error) {
	return modify(t.steps, s, constant(v))
}

// Remove deletes every focus from its enclosing container, compacting arrays.
func (t Traversal) Remove(s tree.Value) (tree.Value, error) {
	return remove(t.steps, s)
}
