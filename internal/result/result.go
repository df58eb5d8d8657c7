// Package result provides the two-variant outcome type threaded through
// the tokenize/parse/evaluate pipeline. Every stage returns a Result; a
// failure is never recovered from locally, it propagates unchanged to the
// caller responsible for display.
package result

import "fmt"

// Result holds either a success value or an error - if err is nil the
// value may be read, otherwise the value must be considered invalid.
type Result[T any] struct {
	value T
	err   error
}

// OK constructs a result indicating success.
func OK[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a result indicating failure. err must be non-nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err called with nil error")
	}
	return Result[T]{err: err}
}

// IsOK reports whether the result holds a success value.
func (r Result[T]) IsOK() bool {
	return r.err == nil
}

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Unwrap exposes the result as an ordinary Go value/error pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// MustGet returns the success value, panicking on a failed result.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(fmt.Sprintf("result.MustGet on failed result: %v", r.err))
	}
	return r.value
}

// Error returns the error, or nil for a successful result.
func (r Result[T]) Error() error {
	return r.err
}

// Map transforms the success value, passing failures through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return OK(f(r.value))
}

// FlatMap chains a next fallible step, short-circuiting on the first
// failure.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}
