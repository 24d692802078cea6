package optics

import (
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/tree"
)

// Prism focuses zero or one value. Absence is a normal outcome: Preview
// returns None and updates leave the structure untouched.
type Prism struct {
	steps []Step
}

func (Prism) Kind() Kind { return KindPrism }

func (p Prism) Steps() []Step { return append([]Step(nil), p.steps...) }

func (p Prism) String() string { return render(p.steps) }

func (p Prism) Prop(key string) Prism { return Prism{steps: extend(p.steps, PropStep{Key: key})} }

func (p Prism) Path(keys ...string) Prism { return Prism{steps: extend(p.steps, propSteps(keys)...)} }

func (p Prism) Index(i int) Prism { return p.IndexWith(i, OutOfRangeFail) }

func (p Prism) IndexWith(i int, policy OutOfRange) Prism {
	return Prism{steps: extend(p.steps, IndexStep{Index: i, OutOfRange: policy})}
}

func (p Prism) Iso(name string, to, from func(tree.Value) (tree.Value, error)) Prism {
	return Prism{steps: extend(p.steps, IsoStep{Name: name, To: to, From: from})}
}

func (p Prism) At(key string) Prism { return Prism{steps: extend(p.steps, AtStep{Key: key})} }

func (p Prism) Find(pred Predicate) Prism { return Prism{steps: extend(p.steps, FindStep{Pred: pred})} }

func (p Prism) When(pred Predicate) Prism { return Prism{steps: extend(p.steps, WhenStep{Pred: pred})} }

func (p Prism) Elems() Traversal { return Traversal{steps: extend(p.steps, ElemsStep{})} }

func (p Prism) Compose(other Prism) Prism { return Prism{steps: extend(p.steps, other.steps...)} }

func (p Prism) ComposeLens(other Lens) Prism { return Prism{steps: extend(p.steps, other.steps...)} }

func (p Prism) ComposeTraversal(other Traversal) Traversal {
	return Traversal{steps: extend(p.steps, other.steps...)}
}

// Preview returns the focus if there is one.
func (p Prism) Preview(s tree.Value) (functional.Option[tree.Value], error) {
	return preview(p.steps, s)
}

// Modify applies fn to the focus; with no focus it returns s itself.
func (p Prism) Modify(s tree.Value, fn func(tree.Value) tree.Value) (tree.Value, error) {
	return modify(p.steps, s, lift(fn))
}

// ModifyE is Modify with a transform that may fail.
func (p Prism) ModifyE(s tree.Value, fn func(tree.Value) (tree.Value, error)) (tree.Value, error) {
	return modify(p.steps, s, fn)
}

// Set replaces the focus with v; with no focus it returns s itself.
func (p Prism) Set(s tree.Value, v tree.Value) (tree.Value, error) {
	return modify(p.steps, s, constant(v))
}

// Remove deletes the focus from its enclosing array or object.
func (p Prism) Remove(s tree.Value) (tree.Value, error) {
	return remove(p.steps, s)
}
