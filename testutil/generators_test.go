package testutil

import (
	"testing"

	"github.com/authcorp/optics/tree"
	"pgregory.net/rapid"
)

func TestNestedGenContainsPath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		path := PathGen().Draw(t, "path")
		var cur tree.Value = NestedGen(path).Draw(t, "doc")
		for _, key := range path {
			obj, ok := tree.AsObject(cur)
			if !ok {
				t.Fatalf("expected object before %q, got %s", key, tree.Describe(cur))
			}
			if cur, ok = obj.Get(key); !ok {
				t.Fatalf("key %q missing", key)
			}
		}
	})
}

func TestFixtureShape(t *testing.T) {
	doc := Fixture(5000)
	m, _ := doc.Get("m")
	n, _ := m.(*tree.Object).Get("n")
	names, _ := n.(*tree.Object).Get("names")
	arr := names.(*tree.Array)
	if arr.Len() != 5000 {
		t.Fatalf("len = %d", arr.Len())
	}
	last, _ := arr.At(4999)
	if !tree.Equal(last, Record(4999)) {
		t.Fatalf("last record = %v", last)
	}
}
