package argument

import (
	"fmt"
	"sync"

	"github.com/toyz/argon/pkg/annotation"
)

// Registry maps argument shapes to values. Keys match by Equal, so a lookup
// for a generic shape finds a registration declared with different parameter
// names or order. Safe for concurrent use.
type Registry[V any] struct {
	mu      sync.RWMutex
	buckets map[uint64][]registryEntry[V]
	order   []Argument
}

type registryEntry[V any] struct {
	key   Argument
	value V
}

// NewRegistry creates an empty registry
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{
		buckets: make(map[uint64][]registryEntry[V]),
	}
}

// Register stores value under the shape of key. Registering an equal shape
// twice fails with ErrDuplicate, unless both keys carry different qualifiers.
func (r *Registry[V]) Register(key Argument, value V) error {
	if key == nil {
		return fmt.Errorf("argument registry: key cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := key.Hash()
	for _, entry := range r.buckets[h] {
		if entry.key.Equal(key) && annotation.Same(entry.key.Qualifier(), key.Qualifier()) {
			return fmt.Errorf("%w: %s", ErrDuplicate, Format(key))
		}
	}
	r.buckets[h] = append(r.buckets[h], registryEntry[V]{key: key, value: value})
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the first value registered under a shape equal to key.
// Qualifiers are ignored.
func (r *Registry[V]) Lookup(key Argument) (V, bool) {
	return r.find(key, false)
}

// LookupQualified is Lookup that also requires a matching qualifier when key
// has one.
func (r *Registry[V]) LookupQualified(key Argument) (V, bool) {
	return r.find(key, key != nil && key.Qualifier() != nil)
}

func (r *Registry[V]) find(key Argument, qualified bool) (V, bool) {
	var zero V
	if key == nil {
		return zero, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.buckets[key.Hash()] {
		if !entry.key.Equal(key) {
			continue
		}
		if qualified && !annotation.Same(entry.key.Qualifier(), key.Qualifier()) {
			continue
		}
		return entry.value, true
	}
	return zero, false
}

// Keys returns the registered keys in registration order
func (r *Registry[V]) Keys() []Argument {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Argument, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registrations
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
