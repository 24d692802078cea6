package optics_test

import (
	"testing"

	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/testutil"
	"github.com/authcorp/optics/tree"
)

var sink tree.Value

func BenchmarkDeepGet(b *testing.B) {
	doc := testutil.Fixture(5000)
	l := optics.Path("a", "b", "c", "d", "e")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := l.Get(doc)
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}

func BenchmarkDeepSet(b *testing.B) {
	doc := testutil.Fixture(5000)
	l := optics.Path("a", "b", "c", "d", "e")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := l.Set(doc, "world")
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}

func BenchmarkFindPreview(b *testing.B) {
	doc := testutil.Fixture(5000)
	p := optics.Path("m", "n", "names").Find(optics.FieldEquals("id", "id-2500"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := p.Preview(doc)
		if err != nil {
			b.Fatal(err)
		}
		sink = v.UnwrapOr(nil)
	}
}

func BenchmarkElemsWhenPreview(b *testing.B) {
	doc := testutil.Fixture(5000)
	t := optics.Path("m", "n", "names").Elems().When(optics.FieldEquals("id", "id-2500"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := t.Preview(doc)
		if err != nil {
			b.Fatal(err)
		}
		sink = v.UnwrapOr(nil)
	}
}

func BenchmarkFindSet(b *testing.B) {
	doc := testutil.Fixture(5000)
	p := optics.Path("m", "n", "names").Find(optics.FieldEquals("id", "id-2500")).Prop("name")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := p.Set(doc, "Leia")
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}

func BenchmarkElemsWhenSet(b *testing.B) {
	doc := testutil.Fixture(5000)
	t := optics.Path("m", "n", "names").Elems().When(optics.FieldEquals("id", "id-2500")).Prop("name")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := t.Set(doc, "Leia")
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}
