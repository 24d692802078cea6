// Package tree is the immutable JSON-like structure that optics navigate.
//
// A Value is one of:
//
//	nil, bool, string, float64, int, int64, json.Number  (scalars)
//	*Array                                               (ordered sequence)
//	*Object                                              (string keys, insertion ordered)
//
// Containers are never mutated after construction. Every method that looks
// like a mutation (With, Without, Append, RemoveAt, Update) returns a new
// container that shares all untouched children with the receiver, so a
// reference obtained earlier keeps observing the same tree forever.
package tree
