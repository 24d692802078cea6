// Package functional holds the focus value model used by the optics engine:
// Option for zero-or-one foci, Iterator for lazy zero-or-many foci and
// Result for a focus that may carry a traversal error.
package functional
