// Package testutil provides rapid generators and fixtures for tree and
// optics tests.
package testutil

import (
	"fmt"

	"github.com/authcorp/optics/tree"
	"pgregory.net/rapid"
)

// KeyGen generates short object keys from a small alphabet so that
// generated paths hit existing keys often.
func KeyGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-e][a-z0-9]{0,3}`)
}

// ScalarGen generates JSON scalars. Strings are printable so that both
// codecs can write them without escaping rules getting in the way.
func ScalarGen() *rapid.Generator[tree.Value] {
	return rapid.OneOf(
		rapid.Just[tree.Value](nil),
		rapid.Map(rapid.Bool(), func(b bool) tree.Value { return b }),
		rapid.Map(rapid.Int64Range(-1000, 1000), func(n int64) tree.Value { return n }),
		rapid.Map(rapid.StringMatching(`[ -~é世]{0,12}`), func(s string) tree.Value { return s }),
	)
}

// ValueGen generates trees up to the given depth.
func ValueGen(depth int) *rapid.Generator[tree.Value] {
	if depth <= 0 {
		return ScalarGen()
	}
	return rapid.OneOf(
		ScalarGen(),
		rapid.Map(ObjectGen(depth), func(o *tree.Object) tree.Value { return o }),
		rapid.Map(ArrayGen(depth), func(a *tree.Array) tree.Value { return a }),
	)
}

// ObjectGen generates objects whose children are at most depth-1 deep.
func ObjectGen(depth int) *rapid.Generator[*tree.Object] {
	return rapid.Custom(func(t *rapid.T) *tree.Object {
		n := rapid.IntRange(0, 4).Draw(t, "fields")
		fields := make([]tree.Field, n)
		for i := range fields {
			fields[i] = tree.F(KeyGen().Draw(t, "key"), ValueGen(depth-1).Draw(t, "value"))
		}
		return tree.NewObject(fields...)
	})
}

// ArrayGen generates arrays whose children are at most depth-1 deep.
func ArrayGen(depth int) *rapid.Generator[*tree.Array] {
	return rapid.Custom(func(t *rapid.T) *tree.Array {
		items := rapid.SliceOfN(ValueGen(depth-1), 0, 5).Draw(t, "items")
		return tree.NewArray(items...)
	})
}

// NestedGen generates an object that is guaranteed to contain every key of
// path as nested objects, ending in a random leaf, plus random siblings at
// every level.
func NestedGen(path []string) *rapid.Generator[*tree.Object] {
	return rapid.Custom(func(t *rapid.T) *tree.Object {
		var leaf tree.Value = ValueGen(1).Draw(t, "leaf")
		for i := len(path) - 1; i >= 0; i-- {
			sibling := ObjectGen(1).Draw(t, "siblings")
			leaf = sibling.With(path[i], leaf)
		}
		obj, _ := tree.AsObject(leaf)
		if obj == nil {
			obj = tree.NewObject()
		}
		return obj
	})
}

// PathGen generates a non-empty key path.
func PathGen() *rapid.Generator[[]string] {
	return rapid.SliceOfN(KeyGen(), 1, 5)
}

// Record is one element of the benchmark fixture.
func Record(i int) *tree.Object {
	return tree.NewObject(
		tree.F("id", fmt.Sprintf("id-%d", i)),
		tree.F("name", fmt.Sprintf("Luke-%d", i)),
	)
}

// RecordsGen generates arrays of {id, name} records with unique ids.
func RecordsGen(maxLen int) *rapid.Generator[*tree.Array] {
	return rapid.Custom(func(t *rapid.T) *tree.Array {
		n := rapid.IntRange(0, maxLen).Draw(t, "records")
		items := make([]tree.Value, n)
		for i := range items {
			items[i] = Record(i)
		}
		return tree.NewArray(items...)
	})
}

// Fixture builds the benchmark document:
//
//	{a: {b: {c: {d: {e: "hello"}}}}, m: {n: {names: [{id, name} x size]}}}
func Fixture(size int) *tree.Object {
	names := make([]tree.Value, size)
	for i := range names {
		names[i] = Record(i)
	}
	return tree.NewObject(
		tree.F("a", tree.NewObject(tree.F("b", tree.NewObject(tree.F("c",
			tree.NewObject(tree.F("d", tree.NewObject(tree.F("e", "hello"))))))))),
		tree.F("m", tree.NewObject(tree.F("n", tree.NewObject(tree.F("names", tree.NewArray(names...)))))),
	)
}
