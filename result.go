package errdomain

import (
	"fmt"
	"io"
)

// Result holds either a value of type T or an Error.
//
// A Result is ok exactly when it was built by Ok or last assigned by Set. In
// every other state it holds a failure Error and the zero T. The zero Result
// holds Uninitialized, so a Result that was never assigned cannot be mistaken
// for success.
//
// Result[Error] is a misuse: an Error is never a success value. Ok and Set
// treat an Error argument as a failure, so Ok(e) is Fail(e).
//
// Result has no internal synchronization.
type Result[T any] struct {
	value T
	err   Error
	ok    bool
}

// Ok returns a successful Result holding v. If v is an Error, Ok returns
// Fail(v) instead.
func Ok[T any](v T) Result[T] {
	if e, isErr := any(v).(Error); isErr {
		return Fail[T](e)
	}
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result holding e. A success Error is replaced by
// Uninitialized: an explicit error never silently means success.
//
// Example:
//
//	func open(name string) errdomain.Result[*File] {
//	    if name == "" {
//	        return errdomain.Fail[*File](store.Domain.Error(store.ErrcInvalid))
//	    }
//	    ...
//	}
func Fail[T any](e Error) Result[T] {
	return Result[T]{err: failure(e)}
}

// ResultOf converts a conventional (value, error) pair into a Result.
// A nil err yields Ok(v); otherwise the value is discarded and the error is
// converted with FromError.
func ResultOf[T any](v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	return Fail[T](FromError(err))
}

// OK reports whether r holds a value.
func (r Result[T]) OK() bool {
	return r.ok
}

// Err returns the error held by r. It returns the success Error when r is ok
// and Uninitialized for the zero Result.
func (r Result[T]) Err() Error {
	if r.ok {
		return Error{}
	}
	return failure(r.err)
}

// Value returns the held value. It panics if r is not ok; check OK first or
// use Get.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("errdomain: Value called on failed result: " + Format(r.Err()))
	}
	return r.value
}

// Get returns the held value and the success Error, or the zero T and the
// failure.
//
// Example:
//
//	v, e := load(key).Get()
//	if e.Failed() {
//	    return errdomain.Fail[Config](e)
//	}
func (r Result[T]) Get() (T, Error) {
	return r.value, r.Err()
}

// ValueOr returns the held value, or def when r is not ok.
func (r Result[T]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Split returns the held value and a nil error, or the zero T and the failure
// as a Go error.
func (r Result[T]) Split() (T, error) {
	if !r.ok {
		return r.value, r.Err()
	}
	return r.value, nil
}

// Set makes r ok and stores v, replacing any previous state. If v is an
// Error, Set is SetErr(v).
func (r *Result[T]) Set(v T) {
	if e, isErr := any(v).(Error); isErr {
		r.SetErr(e)
		return
	}
	r.err = Error{}
	r.value = v
	r.ok = true
}

// SetErr drops any held value and makes r fail with e. A success Error is
// replaced by Uninitialized.
func (r *Result[T]) SetErr(e Error) {
	var zero T
	r.value = zero
	r.ok = false
	r.err = failure(e)
}

// String formats r with %v.
func (r Result[T]) String() string {
	return fmt.Sprint(r)
}

// Format implements fmt.Formatter. An ok Result formats its value with the
// caller's verb and flags; a failed one writes Format(r.Err()).
func (r Result[T]) Format(f fmt.State, verb rune) {
	if r.ok {
		fmt.Fprintf(f, fmt.FormatString(f, verb), r.value)
		return
	}
	_, _ = io.WriteString(f, Format(r.Err()))
}

// failure coerces the success Error to Uninitialized.
func failure(e Error) Error {
	if !e.Failed() {
		return Uninitialized
	}
	return e
}
