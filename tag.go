package errdomain

import "fmt"

// Tag identifies an error domain.
//
// Tags are derived by hashing a string that uniquely and stably identifies
// the domain (see TagOf). Two values are reserved: TagSuccess and TagSystem.
// Collisions between unrelated domains are possible and are not detected.
type Tag uint32

const (
	// TagSuccess is the domain of the zero Error, meaning "no error".
	TagSuccess Tag = 0

	// TagSystem is the domain of native operating system error numbers.
	TagSystem Tag = 0xFFFFFFFE
)

// FNV-1a (32-bit) parameters.
const (
	fnvOffset uint32 = 0x811C9DC5
	fnvPrime  uint32 = 0x01000193
)

// TagOf derives the tag for the domain identified by id using 32-bit FNV-1a
// over the bytes of id.
//
// The identifier must not change between builds that have to interoperate,
// for example a producer writing packed codes to a log and a consumer reading
// them later. Changing it changes the tag.
//
// TagOf does not check for reserved values; use MustTag for that.
func TagOf(id string) Tag {
	return Tag(fnvString(fnvOffset, id))
}

// MustTag is like TagOf but panics if id hashes to a reserved tag.
// It is intended for package-level variables so that a bad identifier fails
// during program initialization.
//
// Example:
//
//	var tagStore = errdomain.MustTag("example.com/store.Errc")
func MustTag(id string) Tag {
	tag := TagOf(id)
	if tag.Reserved() {
		panic(fmt.Sprintf("errdomain: domain %q hashes to reserved tag %s", id, tag.Hex()))
	}
	return tag
}

// Reserved reports whether t is TagSuccess or TagSystem.
func (t Tag) Reserved() bool {
	return t == TagSuccess || t == TagSystem
}

// Hex returns t as 8 uppercase hexadecimal digits.
func (t Tag) Hex() string {
	return fmt.Sprintf("%08X", uint32(t))
}

// String returns the registered domain name for t, or its hex form.
func (t Tag) String() string {
	return FormatTag(t)
}

func fnvString(hash uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		hash = (hash ^ uint32(s[i])) * fnvPrime
	}
	return hash
}
