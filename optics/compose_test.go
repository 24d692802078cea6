package optics_test

import (
	"testing"

	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindJoin(t *testing.T) {
	tests := []struct {
		a, b, want optics.Kind
	}{
		{optics.KindLens, optics.KindLens, optics.KindLens},
		{optics.KindLens, optics.KindPrism, optics.KindPrism},
		{optics.KindPrism, optics.KindLens, optics.KindPrism},
		{optics.KindLens, optics.KindTraversal, optics.KindTraversal},
		{optics.KindPrism, optics.KindTraversal, optics.KindTraversal},
		{optics.KindTraversal, optics.KindLens, optics.KindTraversal},
		{optics.KindPrism, optics.KindPrism, optics.KindPrism},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"∘"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Join(tt.b))
		})
	}
}

func TestComposeResolvesConcreteType(t *testing.T) {
	pred := optics.FieldEquals("id", "x")

	tests := []struct {
		name   string
		optic  optics.Optic
		assert func(t *testing.T, o optics.Optic)
	}{
		{"lens∘lens", optics.Compose(optics.Prop("a"), optics.Index(0)), func(t *testing.T, o optics.Optic) {
			assert.IsType(t, optics.Lens{}, o)
		}},
		{"lens∘prism", optics.Compose(optics.Prop("a"), optics.Find(pred)), func(t *testing.T, o optics.Optic) {
			assert.IsType(t, optics.Prism{}, o)
		}},
		{"prism∘lens", optics.Compose(optics.At("a"), optics.Prop("b")), func(t *testing.T, o optics.Optic) {
			assert.IsType(t, optics.Prism{}, o)
		}},
		{"lens∘traversal", optics.Compose(optics.Prop("a"), optics.Elems()), func(t *testing.T, o optics.Optic) {
			assert.IsType(t, optics.Traversal{}, o)
		}},
		{"prism∘traversal∘lens", optics.Compose(optics.At("a"), optics.Elems(), optics.Prop("b")), func(t *testing.T, o optics.Optic) {
			assert.IsType(t, optics.Traversal{}, o)
		}},
		{"empty", optics.Compose(), func(t *testing.T, o optics.Optic) {
			assert.IsType(t, optics.Lens{}, o)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, tt.optic)
		})
	}
}

func TestTypedCompositionPromotes(t *testing.T) {
	var (
		_ optics.Lens      = optics.Prop("a").Compose(optics.Prop("b"))
		_ optics.Prism     = optics.Prop("a").ComposePrism(optics.At("b"))
		_ optics.Traversal = optics.Prop("a").ComposeTraversal(optics.Elems())
		_ optics.Prism     = optics.At("a").ComposeLens(optics.Prop("b"))
		_ optics.Traversal = optics.At("a").ComposeTraversal(optics.Elems())
		_ optics.Traversal = optics.Elems().ComposeLens(optics.Prop("b"))
		_ optics.Traversal = optics.Elems().ComposePrism(optics.At("b"))
		_ optics.Prism     = optics.Prop("a").Find(nil)
		_ optics.Traversal = optics.At("a").Elems()
	)
}

func TestComposeIsAssociative(t *testing.T) {
	doc := tree.MustFromGo(map[string]any{
		"a": map[string]any{"b": []any{
			map[string]any{"c": "x"},
			map[string]any{"c": "y"},
		}},
	})
	a, b, c := optics.Prop("a"), optics.Prop("b").Elems(), optics.Prop("c")

	left := optics.Compose(optics.Compose(a, b), c)
	right := optics.Compose(a, optics.Compose(b, c))
	assert.Equal(t, left.String(), right.String())
	assert.Equal(t, left.Kind(), right.Kind())

	l, err := optics.GetAll(left, doc)
	require.NoError(t, err)
	r, err := optics.GetAll(right, doc)
	require.NoError(t, err)
	assert.Equal(t, l, r)
	assert.Equal(t, []tree.Value{"x", "y"}, l)
}

func TestComposeMatchesNestedApplication(t *testing.T) {
	doc := tree.MustFromGo(map[string]any{"a": map[string]any{"b": "v"}})
	outer, inner := optics.Prop("a"), optics.Prop("b")

	mid, err := outer.Get(doc)
	require.NoError(t, err)
	want, err := inner.Get(mid)
	require.NoError(t, err)
	got, err := outer.Compose(inner).Get(doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	up := func(v tree.Value) tree.Value { return v.(string) + "!" }
	composed, err := outer.Compose(inner).Modify(doc, up)
	require.NoError(t, err)
	nested, err := outer.ModifyE(doc, func(v tree.Value) (tree.Value, error) {
		return inner.Modify(v, up)
	})
	require.NoError(t, err)
	assert.True(t, tree.Equal(composed, nested))
}

func TestStepsAreNotShared(t *testing.T) {
	base := optics.Prop("a")
	x := base.Prop("x")
	y := base.Prop("y")
	assert.Equal(t, "$.a.x", x.String())
	assert.Equal(t, "$.a.y", y.String())

	steps := x.Steps()
	steps[0] = optics.PropStep{Key: "mutated"}
	assert.Equal(t, "$.a.x", x.String())
}

func TestAsConversions(t *testing.T) {
	l, ok := optics.AsLens(optics.Compose(optics.Prop("a")))
	require.True(t, ok)
	assert.Equal(t, "$.a", l.String())

	_, ok = optics.AsLens(optics.Compose(optics.At("a")))
	assert.False(t, ok)

	p, ok := optics.AsPrism(optics.Prop("a"))
	require.True(t, ok)
	assert.Equal(t, optics.KindPrism, p.Kind())

	_, ok = optics.AsPrism(optics.Elems())
	assert.False(t, ok)

	tr := optics.AsTraversal(optics.Prop("a"))
	assert.Equal(t, optics.KindTraversal, tr.Kind())
}
