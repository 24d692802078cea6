package optics_test

import (
	"fmt"

	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/tree"
)

func ExampleLens_Set() {
	doc := tree.MustFromGo(map[string]any{"a": map[string]any{"b": map[string]any{"c": "hello"}}})

	out, _ := optics.Path("a", "b", "c").Set(doc, "world")
	fmt.Println(out)
	fmt.Println(doc)
	// Output:
	// {"a":{"b":{"c":"world"}}}
	// {"a":{"b":{"c":"hello"}}}
}

func ExamplePrism_Remove() {
	doc := tree.NewObject(tree.F("children", tree.NewObject(
		tree.F("s1", "first"),
		tree.F("s2", "second"),
	)))

	out, _ := optics.Prop("children").At("s1").Remove(doc)
	fmt.Println(out)
	// Output:
	// {"children":{"s2":"second"}}
}

func ExampleTraversal_Modify() {
	doc := tree.MustFromGo(map[string]any{"xs": []any{1, 2, 3}})

	out, _ := optics.Prop("xs").Elems().Modify(doc, func(v tree.Value) tree.Value {
		n, _ := tree.Number(v)
		return n * 10
	})
	fmt.Println(out)
	// Output:
	// {"xs":[10,20,30]}
}

func ExampleParsePath() {
	o, _ := optics.ParsePath(`m.n.names[?id=="id-1"].name`)
	fmt.Println(o.Kind(), o)
	// Output:
	// prism $.m.n.names[?id=="id-1"].name
}
