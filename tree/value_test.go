package tree_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/authcorp/optics/tree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    tree.Value
		want tree.Kind
	}{
		{nil, tree.KindNull},
		{true, tree.KindBool},
		{"s", tree.KindString},
		{1, tree.KindNumber},
		{int64(1), tree.KindNumber},
		{1.5, tree.KindNumber},
		{json.Number("1"), tree.KindNumber},
		{tree.NewArray(), tree.KindArray},
		{tree.NewObject(), tree.KindObject},
		{struct{}{}, tree.KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tree.KindOf(tt.v), "%#v", tt.v)
	}
	assert.Equal(t, "unknown(struct {})", tree.Describe(struct{}{}))
	assert.Equal(t, "array", tree.Describe(tree.NewArray()))
}

func TestSame(t *testing.T) {
	a := tree.NewObject(tree.F("x", 1))
	b := tree.NewObject(tree.F("x", 1))

	assert.True(t, tree.Same(a, a))
	assert.False(t, tree.Same(a, b))
	assert.True(t, tree.Same("s", "s"))
	assert.True(t, tree.Same(nil, nil))
	assert.False(t, tree.Same(1, int64(1)))
	assert.False(t, tree.Same(nil, 0))
	assert.False(t, tree.Same([]int{1}, []int{1}), "incomparable values are never the same")

	assert.True(t, tree.Same(math.NaN(), math.NaN()), "NaN leaves are unchanged, not different")
	assert.True(t, tree.Same(float32(math.NaN()), float32(math.NaN())))
	assert.False(t, tree.Same(math.NaN(), 1.0))
}

func TestEqual(t *testing.T) {
	left := tree.NewObject(tree.F("a", 1), tree.F("b", tree.NewArray("x", 2.0)))
	right := tree.NewObject(tree.F("b", tree.NewArray("x", int64(2))), tree.F("a", json.Number("1")))

	assert.True(t, tree.Equal(left, right), "order-insensitive, numbers by value")
	assert.False(t, tree.Equal(left, right.With("a", 2)))
	assert.False(t, tree.Equal(left, right.Without("a")))
	assert.False(t, tree.Equal(tree.NewArray(1, 2), tree.NewArray(2, 1)))
	assert.False(t, tree.Equal("1", 1))
	assert.True(t, tree.Equal(nil, nil))

	nan := tree.NewObject(tree.F("x", math.NaN()))
	assert.True(t, tree.Equal(nan, tree.NewObject(tree.F("x", math.NaN()))))
	assert.False(t, tree.Equal(nan, tree.NewObject(tree.F("x", 0.0))))
}

func TestFromGoToGo(t *testing.T) {
	in := map[string]any{
		"name": "Luke",
		"tags": []string{"jedi", "pilot"},
		"ptr":  (*int)(nil),
		"nested": map[string]any{
			"n": 1,
		},
	}
	v, err := tree.FromGo(in)
	require.NoError(t, err)

	obj, ok := tree.AsObject(v)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "nested", "ptr", "tags"}, obj.Keys(), "map keys are sorted")

	want := map[string]any{
		"name":   "Luke",
		"tags":   []any{"jedi", "pilot"},
		"ptr":    nil,
		"nested": map[string]any{"n": 1},
	}
	if diff := cmp.Diff(want, tree.ToGo(v)); diff != "" {
		t.Errorf("ToGo mismatch (-want +got):\n%s", diff)
	}

	_, err = tree.FromGo(map[int]string{1: "x"})
	assert.Error(t, err)
	_, err = tree.FromGo(map[string]any{"f": func() {}})
	assert.ErrorContains(t, err, `key "f"`)
}

func TestNumber(t *testing.T) {
	for _, v := range []tree.Value{3, int64(3), 3.0, float32(3), uint8(3), json.Number("3")} {
		n, ok := tree.Number(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, 3.0, n)
	}
	_, ok := tree.Number("3")
	assert.False(t, ok)
}
