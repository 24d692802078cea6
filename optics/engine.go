package optics

import (
	"strings"

	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/tree"
)

// over rebuilds v along every focus path, applying fn at the leaves.
func over(steps []Step, depth int, v tree.Value, fn updateFunc) (tree.Value, error) {
	if depth == len(steps) {
		return fn(v)
	}
	var inner error
	out, err := steps[depth].over(v, func(child tree.Value) (tree.Value, error) {
		next, err := over(steps, depth+1, child, fn)
		if err != nil {
			inner = err
		}
		return next, err
	})
	if inner != nil {
		return nil, inner
	}
	if err != nil {
		return nil, annotate(err, steps, depth)
	}
	return out, nil
}

// annotate records which step failed and the path that led to it. Only
// errors raised by the step itself reach here. The error is copied first:
// steps and user conversions may hand back shared sentinels.
func annotate(err error, steps []Step, depth int) error {
	oe, ok := err.(*opterrors.OpticError)
	if !ok || oe.Step != "" {
		return err
	}
	return oe.Clone().WithStep(steps[depth].String()).WithDetail("at", render(steps[:depth]))
}

func render(steps []Step) string {
	var b strings.Builder
	b.WriteString("$")
	for _, s := range steps {
		b.WriteString(s.String())
	}
	return b.String()
}

type focus = functional.Result[tree.Value]

// foci is the lazy, restartable read: each step fans the upstream foci out
// through FlatMap, so arity multiplies in upstream order. A failure is the
// last element.
func foci(steps []Step, s tree.Value) functional.Iterator[focus] {
	it := functional.FromSlice([]focus{functional.Ok(s)})
	for depth := range steps {
		it = functional.FlatMap(it, expand(steps, depth))
	}
	return func(yield func(focus) bool) {
		it(func(r focus) bool {
			return yield(r) && r.IsOk()
		})
	}
}

// expand applies one step to an upstream focus. Upstream failures pass
// through untouched.
func expand(steps []Step, depth int) func(focus) functional.Iterator[focus] {
	return func(r focus) functional.Iterator[focus] {
		return func(yield func(focus) bool) {
			v, err := r.Get()
			if err != nil {
				yield(r)
				return
			}
			stopped := false
			_, err = steps[depth].view(v, func(child tree.Value) bool {
				if !yield(functional.Ok(child)) {
					stopped = true
					return false
				}
				return true
			})
			if err != nil && !stopped {
				yield(functional.Err[tree.Value](annotate(err, steps, depth)))
			}
		}
	}
}

func preview(steps []Step, s tree.Value) (functional.Option[tree.Value], error) {
	first, ok := functional.First(foci(steps, s)).Get()
	if !ok {
		return functional.None[tree.Value](), nil
	}
	if err := first.Error(); err != nil {
		return functional.None[tree.Value](), err
	}
	return first.ToOption(), nil
}

func collect(steps []Step, s tree.Value) ([]tree.Value, error) {
	out, err := functional.CollectResults(foci(steps, s))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []tree.Value{}
	}
	return out, nil
}

func count(steps []Step, s tree.Value) (int, error) {
	n := 0
	for r := range foci(steps, s) {
		if err := r.Error(); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

func modify(steps []Step, s tree.Value, fn func(tree.Value) (tree.Value, error)) (tree.Value, error) {
	return over(steps, 0, s, fn)
}

// remove deletes every focus from its enclosing container. The check runs
// before the walk so an illegal removal fails without touching the input.
func remove(steps []Step, s tree.Value) (tree.Value, error) {
	if err := checkRemovable(steps); err != nil {
		return nil, err
	}
	out, err := over(steps, 0, s, func(tree.Value) (tree.Value, error) {
		return removed{}, nil
	})
	if err != nil {
		return nil, err
	}
	if isRemoved(out) {
		return nil, opterrors.RemoveRoot(render(steps))
	}
	return out, nil
}

func checkRemovable(steps []Step) error {
	for i := len(steps) - 1; i >= 0; i-- {
		switch steps[i].(type) {
		case WhenStep:
			continue
		case FindStep, AtStep, ElemsStep:
			return nil
		default:
			return opterrors.InvalidRemoveOnLens(render(steps)).
				WithStep(steps[i].String()).
				WithDetail("at", render(steps[:i]))
		}
	}
	return opterrors.RemoveRoot(render(steps))
}
