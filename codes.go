package errdomain

// ResultCode enumerates the errors this package itself produces.
type ResultCode int32

const (
	// CodeUninitialized marks a Result or Status that was never assigned.
	CodeUninitialized ResultCode = 1

	// CodeUnknown marks a Go error that carries no domain information.
	CodeUnknown ResultCode = 2
)

// PackageDomain is the domain of ResultCode.
var PackageDomain = NewDomain[ResultCode]("github.com/jmgilman/go/errdomain.ResultCode")

// Uninitialized is the poison value held by Results and Statuses that were
// never assigned, and the value a success Error is coerced to when passed
// where a failure is required.
var Uninitialized = PackageDomain.Error(CodeUninitialized)

// Category returns the category of this package's domain.
func (ResultCode) Category() Category {
	return packageCategory
}

var packageCategory = NewCategory("errdomain", map[int32]string{
	int32(CodeUninitialized): "result not initialized",
	int32(CodeUnknown):       "unknown error",
})

// RegisterPackage registers this package's own category in the default
// registry. It returns false if it was already registered.
func RegisterPackage() bool {
	return PackageDomain.Register(packageCategory)
}
