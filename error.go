package errdomain

import (
	"cmp"
	"syscall"
)

// Error is a compact (domain, code) pair.
//
// An Error is 8 bytes, comparable, and safe to copy. The zero value is the
// success value: domain TagSuccess, code 0. Any other domain denotes a failure.
//
// Error implements the error interface so it can travel through ordinary Go
// error returns. Because the zero value is a non-nil interface once boxed,
// use Err to obtain a nil error for success.
type Error struct {
	tag  Tag
	code int32
}

// FromTag returns the Error with the given domain tag and code.
func FromTag(tag Tag, code int32) Error {
	return Error{tag: tag, code: code}
}

// System returns an Error in the operating system domain for a native error
// number (errno on unix, GetLastError values on windows).
//
// Example:
//
//	if n < 0 {
//	    return errdomain.System(int(errno))
//	}
func System(code int) Error {
	return Error{tag: TagSystem, code: int32(code)}
}

// Errno returns the system domain Error for errno.
func Errno(errno syscall.Errno) Error {
	return System(int(errno))
}

// Failed reports whether e denotes an error, meaning its domain is not TagSuccess.
func (e Error) Failed() bool {
	return e.tag != TagSuccess
}

// Tag returns the domain tag.
func (e Error) Tag() Tag {
	return e.tag
}

// Code returns the domain-specific error code.
func (e Error) Code() int32 {
	return e.code
}

// Name returns the registered name of e's domain, or the tag as 8 uppercase
// hex digits when the domain is not registered.
func (e Error) Name() string {
	return Default().Name(e)
}

// Message returns the registered message for e's code, or FormatCode(code)
// when the domain is not registered.
func (e Error) Message() string {
	return Default().Message(e)
}

// Error returns "name: message". See Format.
func (e Error) Error() string {
	return Default().Format(e)
}

// String is the same as Error.
func (e Error) String() string {
	return e.Error()
}

// Err returns nil for the success value and e otherwise.
//
// Example:
//
//	func remove(path string) error {
//	    return store.Remove(path).Err()
//	}
func (e Error) Err() error {
	if !e.Failed() {
		return nil
	}
	return e
}

// Compare orders errors by domain tag, then by code. It returns -1, 0 or +1.
func (e Error) Compare(other Error) int {
	if c := cmp.Compare(e.tag, other.tag); c != 0 {
		return c
	}
	return cmp.Compare(e.code, other.code)
}

// Less reports whether e orders before other.
func (e Error) Less(other Error) bool {
	return e.Compare(other) < 0
}
