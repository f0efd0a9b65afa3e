package errdomain

// Status is the outcome of an operation that produces no value: success or an
// Error. Like Result, the zero Status holds Uninitialized, so returning
// Status{} reports a failure. Return Done() to report success.
type Status struct {
	err Error
	ok  bool
}

// Done returns a successful Status.
func Done() Status {
	return Status{ok: true}
}

// StatusOf returns a failed Status holding e. A success Error is replaced by
// Uninitialized.
func StatusOf(e Error) Status {
	return Status{err: failure(e)}
}

// OK reports whether s is successful.
func (s Status) OK() bool {
	return s.ok
}

// Err returns the error held by s, or the success Error when s is ok.
func (s Status) Err() Error {
	if s.ok {
		return Error{}
	}
	return failure(s.err)
}

// Check panics if s is not successful.
func (s Status) Check() {
	if !s.ok {
		panic("errdomain: Check called on failed status: " + Format(s.Err()))
	}
}

// SetDone makes s successful.
func (s *Status) SetDone() {
	*s = Done()
}

// SetErr makes s fail with e. A success Error is replaced by Uninitialized.
func (s *Status) SetErr(e Error) {
	*s = StatusOf(e)
}

// String returns "void" for a successful Status and Format(s.Err()) otherwise.
func (s Status) String() string {
	if s.ok {
		return "void"
	}
	return Format(s.Err())
}
