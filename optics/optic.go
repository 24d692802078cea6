package optics

import (
	"github.com/authcorp/optics/tree"
)

// Optic is implemented by Lens, Prism and Traversal.
type Optic interface {
	// Kind is resolved at construction and never changes.
	Kind() Kind
	// Steps returns a copy of the step list.
	Steps() []Step
	String() string
}

// Remover is implemented by the optics that may delete their foci: Prism
// and Traversal. Lens deliberately does not implement it.
type Remover interface {
	Optic
	Remove(s tree.Value) (tree.Value, error)
}

// Compose chains optics left to right. The concrete type of the result is
// Lens, Prism or Traversal according to the weakest kind among the inputs.
func Compose(optics ...Optic) Optic {
	kind := KindLens
	n := 0
	for _, o := range optics {
		kind = kind.Join(o.Kind())
		n += len(o.Steps())
	}
	steps := make([]Step, 0, n)
	for _, o := range optics {
		steps = append(steps, o.Steps()...)
	}
	return build(kind, steps)
}

// FromSteps builds an optic from a step list, resolving its kind.
func FromSteps(steps ...Step) Optic {
	kind := KindLens
	for _, s := range steps {
		kind = kind.Join(s.Kind())
	}
	return build(kind, append([]Step(nil), steps...))
}

func build(kind Kind, steps []Step) Optic {
	switch kind {
	case KindLens:
		return Lens{steps: steps}
	case KindPrism:
		return Prism{steps: steps}
	default:
		return Traversal{steps: steps}
	}
}

// extend returns a fresh slice so optics built from a shared prefix never
// alias each other's steps.
func extend(steps []Step, more ...Step) []Step {
	out := make([]Step, 0, len(steps)+len(more))
	out = append(out, steps...)
	return append(out, more...)
}

func propSteps(keys []string) []Step {
	steps := make([]Step, len(keys))
	for i, k := range keys {
		steps[i] = PropStep{Key: k}
	}
	return steps
}

// Identity is the lens focusing the whole structure.
func Identity() Lens { return Lens{} }

// Prop focuses a required object field.
func Prop(key string) Lens { return Identity().Prop(key) }

// Path composes Prop steps left to right.
func Path(keys ...string) Lens { return Identity().Path(keys...) }

// Index focuses a required array element; Modify and Set fail when it is out
// of range.
func Index(i int) Lens { return Identity().Index(i) }

// IndexWith is Index with an explicit out-of-range policy for updates.
func IndexWith(i int, policy OutOfRange) Lens { return Identity().IndexWith(i, policy) }

// Iso views the focus through a reversible conversion.
func Iso(name string, to, from func(tree.Value) (tree.Value, error)) Lens {
	return Identity().Iso(name, to, from)
}

// Find focuses the first array element matching pred.
func Find(pred Predicate) Prism { return Identity().Find(pred) }

// At focuses an object field when it exists.
func At(key string) Prism { return Identity().At(key) }

// When keeps the focus only if pred holds.
func When(pred Predicate) Prism { return Identity().When(pred) }

// Elems focuses every array element.
func Elems() Traversal { return Identity().Elems() }
