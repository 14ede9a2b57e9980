package registry

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Entry is a single registration in an Ordered registry.
// Its pointer identity distinguishes it from every other entry.
type Entry[V any] struct {
	// ID uniquely identifies the entry for logs and traces.
	ID string

	// Value is the registered value.
	Value V

	owner   *Ordered[V]
	removed bool // guarded by owner.mu
}

// Ordered is a thread-safe registry that preserves insertion order.
// It uses sync.RWMutex since membership checks dominate mutations.
type Ordered[V any] struct {
	mu      sync.RWMutex
	entries []*Entry[V]
}

// NewOrdered creates a new empty registry.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{}
}

// Add appends value to the end of the registry and returns its entry.
func (r *Ordered[V]) Add(value V) *Entry[V] {
	e := &Entry[V]{
		ID:    "sub-" + uuid.NewString()[:8],
		Value: value,
		owner: r,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return e
}

// Remove deletes e from the registry.
// Returns false if e was already removed or never belonged to r.
func (r *Ordered[V]) Remove(e *Entry[V]) bool {
	if e == nil || e.owner != r {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e.removed {
		return false
	}
	i := slices.Index(r.entries, e)
	if i < 0 {
		return false
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	e.removed = true
	return true
}

// Contains reports whether e is currently registered.
func (r *Ordered[V]) Contains(e *Entry[V]) bool {
	if e == nil || e.owner != r {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return !e.removed
}

// Snapshot returns the current entries in insertion order.
// The returned slice is a copy and is safe to iterate while r is mutated.
func (r *Ordered[V]) Snapshot() []*Entry[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*Entry[V], len(r.entries))
	copy(snapshot, r.entries)
	return snapshot
}

// Len returns the number of registered entries.
func (r *Ordered[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
