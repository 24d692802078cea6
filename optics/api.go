package optics

import (
	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/tree"
)

// Package-level forms of the operations, for callers holding an Optic whose
// concrete kind was chosen at runtime (Compose, ParsePath).

// Get reads the single focus of a lens.
func Get(l Lens, s tree.Value) (tree.Value, error) {
	return l.Get(s)
}

// Preview returns the first focus of any optic.
func Preview(o Optic, s tree.Value) (functional.Option[tree.Value], error) {
	return preview(stepsOf(o), s)
}

// GetAll returns every focus of any optic in traversal order.
func GetAll(o Optic, s tree.Value) ([]tree.Value, error) {
	return collect(stepsOf(o), s)
}

// Modify applies fn to every focus of o.
func Modify(o Optic, s tree.Value, fn func(tree.Value) tree.Value) (tree.Value, error) {
	return modify(stepsOf(o), s, lift(fn))
}

// Set replaces every focus of o with v.
func Set(o Optic, s tree.Value, v tree.Value) (tree.Value, error) {
	return modify(stepsOf(o), s, constant(v))
}

// Remove deletes the foci of a prism or traversal.
func Remove(o Remover, s tree.Value) (tree.Value, error) {
	return o.Remove(s)
}

// RemoveAny removes through an optic of unknown kind. A lens is rejected
// with INVALID_REMOVE_ON_LENS before the structure is touched.
func RemoveAny(o Optic, s tree.Value) (tree.Value, error) {
	if r, ok := o.(Remover); ok && o.Kind() != KindLens {
		return r.Remove(s)
	}
	return nil, opterrors.InvalidRemoveOnLens(o.String())
}

// AsLens returns o as a Lens when its kind allows it.
func AsLens(o Optic) (Lens, bool) {
	l, ok := o.(Lens)
	return l, ok
}

// AsPrism returns o as a Prism when it has at most one focus. A lens
// widens to a prism.
func AsPrism(o Optic) (Prism, bool) {
	switch x := o.(type) {
	case Prism:
		return x, true
	case Lens:
		return Prism{steps: x.steps}, true
	}
	return Prism{}, false
}

// AsTraversal widens any optic to a Traversal; every optic is one.
func AsTraversal(o Optic) Traversal {
	if t, ok := o.(Traversal); ok {
		return t
	}
	return Traversal{steps: o.Steps()}
}

// stepsOf avoids the defensive copy for the package's own types.
func stepsOf(o Optic) []Step {
	switch x := o.(type) {
	case Lens:
		return x.steps
	case Prism:
		return x.steps
	case Traversal:
		return x.steps
	}
	return o.Steps()
}
