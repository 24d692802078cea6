package errors

// MissingKey reports an object without the key a Lens requires.
func MissingKey(key string) *OpticError {
	return Newf(ErrCodeMissingKey, "key %q not found", key).WithDetail("key", key)
}

// MissingIndex reports an array index outside [0, length).
func MissingIndex(index, length int) *OpticError {
	return Newf(ErrCodeMissingIndex, "index %d out of range for length %d", index, length).
		WithDetail("index", index).
		WithDetail("length", length)
}

// TypeMismatch reports a step that met a value of the wrong shape.
func TypeMismatch(want, got string) *OpticError {
	return Newf(ErrCodeTypeMismatch, "expected %s, got %s", want, got).
		WithDetail("want", want).
		WithDetail("got", got)
}

// NoFocus reports an optic that resolved to nothing where a focus was required.
func NoFocus(optic string) *OpticError {
	return Newf(ErrCodeNoFocus, "%s has no focus", optic)
}

// InvalidRemoveOnLens reports an attempt to remove through a total optic.
func InvalidRemoveOnLens(optic string) *OpticError {
	return Newf(ErrCodeInvalidRemoveOnLens, "cannot remove through lens %s", optic)
}

// RemoveRoot reports a removal whose focus is the structure itself.
func RemoveRoot(optic string) *OpticError {
	return Newf(ErrCodeRemoveRoot, "%s focuses the root; nothing to remove it from", optic)
}

// InvalidPath reports a malformed path expression or dynamic key.
func InvalidPath(expr string, pos int, reason string) *OpticError {
	return Newf(ErrCodeInvalidPath, "%s at offset %d in %q", reason, pos, expr).
		WithDetail("expr", expr).
		WithDetail("offset", pos)
}
