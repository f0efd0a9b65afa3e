// Package errdomain provides compact, allocation-free error values that
// independently built packages can mint without a shared enum or a central
// registry header, plus a Result type carrying either a value or an Error.
//
// # Features
//
//   - 8-byte comparable Error values: a 32-bit domain tag and a 32-bit code
//   - Domain tags derived from a stable identifier with FNV-1a, no central registry
//   - A process-wide category registry with lock-free lookups
//   - Lossless packed text ("TTTTTTTT: CCCCCCCC") for logs and interop
//   - Result[T] and Status sum types with a poison zero value
//
// # Domains
//
// A domain is a set of related codes owned by one package. Declare it once:
//
//	type Errc int32
//
//	const (
//	    ErrcFailure Errc = iota
//	    ErrcUnknown
//	)
//
//	var Domain = errdomain.NewDomain[Errc]("one::errc")
//
// The domain tag is TagOf("one::errc"). Any process that declares the same
// identifier computes the same tag, which is what lets a packed error written
// by one program be decoded by another. DomainOf derives the identifier from
// the enum's fully-qualified Go type name instead; moving or renaming the type
// then changes the tag.
//
// Two tags are reserved: TagSuccess (0) and TagSystem (0xFFFFFFFE, native OS
// error numbers). Declaring a domain that hashes to either panics.
//
// # Categories
//
// Error values carry no text. Names and messages come from a Category
// registered for the domain:
//
//	var category = errdomain.NewCategory("core", map[int32]string{
//	    int32(ErrcFailure): "failure",
//	    int32(ErrcUnknown): "unknown",
//	})
//
//	func init() {
//	    Domain.Register(category)
//	}
//
//	fmt.Println(Domain.Error(ErrcFailure)) // core: failure
//
// A domain that was never registered still formats, as hex:
//
//	fmt.Println(errdomain.FromTag(0xDEADBEEF, 16)) // DEADBEEF: 00000010 (16)
//
// A tag can be registered only once; later attempts return false and leave the
// first category in place. The built-in success and system categories are
// added by the first registration.
//
// # Packed Text
//
// Pack renders an Error as exactly 18 characters, independent of any
// registry. Parse turns packed text back into "name: message" using whatever
// is registered at that point, so a log written before a category was loaded
// can be resolved afterwards:
//
//	line := errdomain.Pack(e)    // "A1B2C3D4: 00000000"
//	// ... later, possibly in another process ...
//	fmt.Println(errdomain.Parse(line)) // "core: failure"
//
// Parse never fails. Text that is not, or is only partly, a packed error comes
// back unchanged or partly resolved.
//
// # Results
//
// Result[T] holds a value or an Error; Status is the variant without a value:
//
//	func lookup(key string) errdomain.Result[int] {
//	    v, ok := table[key]
//	    if !ok {
//	        return errdomain.Fail[int](Domain.Error(ErrcUnknown))
//	    }
//	    return errdomain.Ok(v)
//	}
//
//	if r := lookup("a"); r.OK() {
//	    use(r.Value())
//	}
//
// The zero Result and the zero Status hold Uninitialized, and a success Error
// passed to Fail or StatusOf is turned into Uninitialized as well, so a
// result is only ever successful when explicitly made so.
//
// # Standard Library Compatibility
//
// Error implements error, encoding.TextMarshaler and encoding.TextUnmarshaler.
// Use Err to obtain a nil error for the success value, and As or FromError to
// recover an Error from a Go error chain.
package errdomain
