package errdomain

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// index is an immutable snapshot of the registered categories.
// Published snapshots are never modified.
type index map[Tag]Category

// Registry maps domain tags to categories.
//
// Writers are serialized by a mutex and publish a fresh copy of the whole
// mapping on every successful registration. Readers load the current snapshot
// atomically and never block. A registration racing with a lookup may or may
// not be visible to that lookup; registrations are expected to happen a few
// times at startup while lookups happen whenever an error is formatted.
//
// Entries are never removed or replaced.
type Registry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[index]
	logger   atomic.Pointer[slog.Logger]
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registrations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.SetLogger(logger)
	}
}

// NewRegistry returns an empty registry. The built-in success and system
// categories are added by the first call to Register.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	r.logger.Store(slog.New(slog.DiscardHandler))
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Error's methods and the
// package-level formatting functions.
func Default() *Registry {
	return defaultRegistry
}

// SetLogger replaces the registry's logger. A nil logger discards output.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r.logger.Store(logger)
}

// Register makes c the category of tag.
//
// It returns false and leaves c unregistered if tag already has a category or
// c is nil; an existing category is never replaced. The first call on a
// registry registers the built-in success and system categories before
// anything else, even when c is then rejected.
//
// Example:
//
//	if !errdomain.Register(errdomain.TagOf("one::errc"), category) {
//	    log.Fatal("domain registered twice")
//	}
func (r *Registry) Register(tag Tag, c Category) bool {
	log := r.logger.Load()

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.snapshot.Load()
	if current == nil {
		current = &index{
			TagSuccess: successCategory{},
			TagSystem:  systemCategory{},
		}
		r.snapshot.Store(current)
	}
	if c == nil {
		log.Warn("rejected nil category", "tag", tag.Hex())
		return false
	}
	if existing, ok := (*current)[tag]; ok {
		log.Warn("rejected duplicate category",
			"tag", tag.Hex(),
			"name", c.Name(),
			"registered", existing.Name(),
		)
		return false
	}

	next := make(index, len(*current)+1)
	maps.Copy(next, *current)
	next[tag] = c
	r.snapshot.Store(&next)

	log.Debug("registered category", "tag", tag.Hex(), "name", c.Name())
	return true
}

// Lookup returns the category registered for tag.
func (r *Registry) Lookup(tag Tag) (Category, bool) {
	current := r.snapshot.Load()
	if current == nil {
		return nil, false
	}
	c, ok := (*current)[tag]
	return c, ok
}

// Tags returns the registered tags in ascending order.
func (r *Registry) Tags() []Tag {
	current := r.snapshot.Load()
	if current == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(*current))
}

// Len returns the number of registered categories, built-ins included.
func (r *Registry) Len() int {
	current := r.snapshot.Load()
	if current == nil {
		return 0
	}
	return len(*current)
}

// Register registers c for tag in the default registry. See Registry.Register.
func Register(tag Tag, c Category) bool {
	return defaultRegistry.Register(tag, c)
}

// Lookup returns the category registered for tag in the default registry.
func Lookup(tag Tag) (Category, bool) {
	return defaultRegistry.Lookup(tag)
}
