package errdomain

import (
	"fmt"
	"reflect"
)

// Code is the set of types usable as a domain's error enumeration: integer
// kinds no wider than 32 bits. bool, int, uint and the 64-bit kinds are
// rejected at compile time.
type Code interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// Enum is a Code that also knows its own category, enabling RegisterEnum.
type Enum interface {
	Code
	Category() Category
}

// Domain binds an enumeration type to the tag of the domain it belongs to.
// Domains are small immutable values, usually declared once at package level.
type Domain[E Code] struct {
	id  string
	tag Tag
}

// NewDomain declares the domain of E under an explicit identifier.
// It panics if id hashes to a reserved tag.
//
// Example:
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
//	err := Domain.Error(ErrcFailure)
func NewDomain[E Code](id string) Domain[E] {
	return Domain[E]{id: id, tag: MustTag(id)}
}

// DomainOf declares the domain of E using its fully-qualified type name
// ("import/path.TypeName") as the identifier. Renaming or moving the type
// changes the tag.
//
// E must be a named type declared in a package. Predeclared types such as
// int32 have no package and would give every caller the same domain, so
// DomainOf panics for them, as it does when the name hashes to a reserved tag.
func DomainOf[E Code]() Domain[E] {
	t := reflect.TypeFor[E]()
	if t.PkgPath() == "" || t.Name() == "" {
		panic(fmt.Sprintf("errdomain: %s is not a named enumeration type; use NewDomain", t))
	}
	hash := fnvString(fnvString(fnvString(fnvOffset, t.PkgPath()), "."), t.Name())
	tag := Tag(hash)
	if tag.Reserved() {
		panic(fmt.Sprintf("errdomain: type %s.%s hashes to reserved tag %s", t.PkgPath(), t.Name(), tag.Hex()))
	}
	return Domain[E]{tag: tag}
}

// ID returns the identifier the domain tag was derived from.
func (d Domain[E]) ID() string {
	if d.id == "" {
		t := reflect.TypeFor[E]()
		return t.PkgPath() + "." + t.Name()
	}
	return d.id
}

// Tag returns the domain tag.
func (d Domain[E]) Tag() Tag {
	return d.tag
}

// Error returns the Error value for e in this domain.
func (d Domain[E]) Error(e E) Error {
	return Error{tag: d.tag, code: int32(e)}
}

// Register registers c as the category of this domain in the default registry.
// It returns false if the domain already has a category.
func (d Domain[E]) Register(c Category) bool {
	return Default().Register(d.tag, c)
}

// RegisterIn is like Register but targets r.
func (d Domain[E]) RegisterIn(r *Registry, c Category) bool {
	return r.Register(d.tag, c)
}

// Make returns the Error value for e in the domain named after E's type.
// Like DomainOf, it panics when E is a predeclared type such as int32.
//
// Example:
//
//	return errdomain.Make(store.ErrcNotFound)
func Make[E Code](e E) Error {
	return DomainOf[E]().Error(e)
}

// RegisterEnum registers the category reported by E under DomainOf[E] in the
// default registry.
func RegisterEnum[E Enum]() bool {
	var zero E
	return DomainOf[E]().Register(zero.Category())
}
