// Package registry holds the ordered set of patterns a tokenization
// context currently recognizes. Entries compile once at registration
// time (package pattern) and are never recompiled; registration order
// is preserved for the scanner's tie-break rule (spec §4.5/§8).
package registry

import (
	"github.com/obinexus/rift0/pattern"
	"github.com/obinexus/rift0/token"
)

// DefaultMaxPatterns bounds the number of live entries a Registry holds,
// mirroring the original tokenizer's RIFT_TOKENIZER_MAX_PATTERNS ceiling.
const DefaultMaxPatterns = 256

// Entry is one registered, compiled pattern.
type Entry struct {
	Name     string
	Compiled *pattern.Compiled
}

// Registry is the ordered, name-indexed collection of registered entries.
type Registry struct {
	entries []*Entry
	index   map[string]int
	max     int
}

// New creates an empty Registry at DefaultMaxPatterns capacity.
func New() *Registry {
	return NewWithCapacity(DefaultMaxPatterns)
}

// NewWithCapacity creates an empty Registry bounded at max entries.
func NewWithCapacity(max int) *Registry {
	return &Registry{
		entries: make([]*Entry, 0, 16),
		index:   make(map[string]int),
		max:     max,
	}
}

// Register compiles source and, on success, appends a new Entry named
// name to the registry. The registry is left unchanged if compilation
// fails, if name is already registered, or if the registry is full —
// the name and capacity checks run before compilation, and nothing is
// inserted until compilation has succeeded.
func (r *Registry) Register(name, source string, kind token.Kind, priority int, flags pattern.Flags) (*Entry, error) {
	if _, exists := r.index[name]; exists {
		return nil, newError(DuplicateName, name, "a pattern with this name is already registered")
	}
	if len(r.entries) >= r.max {
		return nil, newError(CapacityExhausted, name, "registry already holds the maximum of %d patterns", r.max)
	}

	compiled, err := pattern.Compile(source, kind, priority, flags)
	if err != nil {
		return nil, err
	}

	e := &Entry{Name: name, Compiled: compiled}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, e)
	return e, nil
}

// Unregister removes the named entry, shifting later entries down and
// reindexing them so registration order among the survivors is preserved.
func (r *Registry) Unregister(name string) error {
	idx, ok := r.index[name]
	if !ok {
		return newError(NotFound, name, "no pattern registered under this name")
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	delete(r.index, name)
	for i := idx; i < len(r.entries); i++ {
		r.index[r.entries[i].Name] = i
	}
	return nil
}

// Get returns the named entry, if any.
func (r *Registry) Get(name string) (*Entry, bool) {
	idx, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[idx], true
}

// Clear removes every registered entry.
func (r *Registry) Clear() {
	r.entries = r.entries[:0]
	r.index = make(map[string]int)
}

// Count returns the number of registered entries.
func (r *Registry) Count() int {
	return len(r.entries)
}

// Entries returns the registered entries in registration order. Callers
// must not mutate the returned slice.
func (r *Registry) Entries() []*Entry {
	return r.entries
}
