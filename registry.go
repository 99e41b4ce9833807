package memo

import "sync"

// Registry owns the memoized state for a set of wrappers.
//
// Each wrapper claims a private slot at construction time. Slot identifiers
// come from a monotonic counter and are never reused for the lifetime of the
// Registry, so two wrappers memoizing identical key values remain fully
// isolated from each other.
//
// The zero value is not usable; call [NewRegistry]. Most callers never touch
// a Registry directly and use the package [Default] implicitly.
type Registry struct {
	mu       sync.Mutex
	nextSlot uint64
	slots    map[uint64]map[string]any
}

// NewRegistry returns an empty registry. Independent registries give tests
// full isolation without relying on the global [Reset].
func NewRegistry() *Registry {
	return &Registry{slots: make(map[uint64]map[string]any)}
}

// Default is the registry used by wrappers not bound to an explicit registry
// via [WithRegistry].
var Default = NewRegistry()

// Reset clears the [Default] registry. See [Registry.Reset].
func Reset() { Default.Reset() }

// Reset discards every entry in every slot. Existing wrappers remain valid
// and treat all keys as absent again. Intended for clearing cached state
// between test cases; it does not cancel in-flight producers, whose results
// land in the freshly emptied slots when they complete.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.slots {
		r.slots[id] = make(map[string]any)
	}
}

// createSlot allocates a fresh slot identifier with an empty entry map.
func (r *Registry) createSlot() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSlot
	r.nextSlot++
	r.slots[id] = make(map[string]any)
	return id
}

// lookup reports the entry stored under key in slot. Presence alone is the
// "producer has run" marker: a stored zero value still reports ok.
func (r *Registry) lookup(slot uint64, key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.slots[slot][key]
	return v, ok
}

// store records the computed value under key in slot.
func (r *Registry) store(slot uint64, key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot][key] = value
}
