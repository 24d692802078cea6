// Package optics provides lenses, prisms and traversals over immutable
// tree.Value structures.
//
// An optic is a list of steps plus a kind. The kind is fixed when the optic
// is built and is the weakest kind among its steps:
//
//	Lens      exactly one focus     Get, Modify, Set
//	Prism     zero or one focus     Preview, Modify, Set, Remove
//	Traversal zero or more foci     Preview, GetAll, Foci, Modify, Set, Remove
//
// Lens∘Lens is a Lens, Lens∘Prism a Prism, and anything composed with a
// Traversal is a Traversal. Because each kind is its own Go type, calling Get
// on something that may have no focus, or Remove through a Lens, does not
// compile.
//
//	names := optics.Path("m", "n", "names")
//	luke := names.Find(optics.FieldEquals("id", "id-2500"))
//
//	rec, err := luke.Preview(doc)                                  // Option[tree.Value]
//	doc2, err := luke.Prop("name").Set(doc, "Luke-2500-modified")  // new tree
//
// Updates rebuild only the containers on a focus path; everything else in
// the result is the same pointer as in the input.
package optics
