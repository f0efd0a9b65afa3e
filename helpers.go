package errdomain

import (
	stderrors "errors"
	"syscall"
)

// As finds the first Error in err's chain.
//
// Example:
//
//	if e, ok := errdomain.As(err); ok && e.Tag() == store.Domain.Tag() {
//	    // Handle store errors
//	}
func As(err error) (Error, bool) {
	var e Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}

// FromError converts a Go error into an Error.
//
// It returns the success Error for nil, the first Error found in err's chain,
// the system Error for a syscall.Errno found in the chain, and
// PackageDomain's CodeUnknown for anything else.
func FromError(err error) Error {
	if err == nil {
		return Error{}
	}
	if e, ok := As(err); ok {
		return e
	}
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return Errno(errno)
	}
	return PackageDomain.Error(CodeUnknown)
}
