package functional

// Result is either a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the value and error in the usual Go shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Error returns the contained error, nil on success.
func (r Result[T]) Error() error {
	return r.err
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// ToOption drops the error.
func (r Result[T]) ToOption() Option[T] {
	if r.err == nil {
		return Some(r.value)
	}
	return None[T]()
}
