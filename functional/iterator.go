package functional

// Iterator is a lazy, restartable sequence compatible with range-over-func.
// Calling it twice over unchanged input yields the same elements.
type Iterator[T any] func(yield func(T) bool)

// FromSlice creates an iterator from a slice.
func FromSlice[T any](slice []T) Iterator[T] {
	return func(yield func(T) bool) {
		for _, v := range slice {
			if !yield(v) {
				return
			}
		}
	}
}

// Find returns the first element matching predicate and stops the iterator.
func Find[T any](iter Iterator[T], pred func(T) bool) Option[T] {
	result := None[T]()
	iter(func(t T) bool {
		if pred(t) {
			result = Some(t)
			return false
		}
		return true
	})
	return result
}

// First returns the first element, if any.
func First[T any](iter Iterator[T]) Option[T] {
	return Find(iter, func(T) bool { return true })
}

// FlatMap maps each element to an iterator and concatenates the results in
// upstream order.
func FlatMap[T, U any](iter Iterator[T], fn func(T) Iterator[U]) Iterator[U] {
	return func(yield func(U) bool) {
		iter(func(t T) bool {
			more := true
			fn(t)(func(u U) bool {
				more = yield(u)
				return more
			})
			return more
		})
	}
}

// CollectResults materializes an iterator of results, stopping at the first
// error.
func CollectResults[T any](iter Iterator[Result[T]]) ([]T, error) {
	var (
		out []T
		err error
	)
	iter(func(r Result[T]) bool {
		if r.err != nil {
			err = r.err
			return false
		}
		out = append(out, r.value)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
