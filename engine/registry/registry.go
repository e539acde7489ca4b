package registry

import (
	"sync"
)

// ID identifies an entry for the life of a Registry. IDs start at 1 and are never reused.
type ID uint64

// Entry pairs a value with its ID.
type Entry[T any] struct {
	ID    ID
	Value T
}

// Registry is a concurrency-safe, append-only collection of scene entities. Loader goroutines Add
// entries as assets finish; the frame loop drains the ready queue and iterates snapshots.
type Registry[T any] interface {
	// Add stores value, queues it as ready and returns its ID.
	//
	// Parameters:
	//   - value: the entity to store
	//
	// Returns:
	//   - ID: the stable ID assigned to value
	Add(value T) ID

	// Snapshot returns the entries in insertion order. The slice is owned by the caller.
	Snapshot() []Entry[T]

	// DrainReady returns entries added since the previous drain and clears the queue.
	DrainReady() []Entry[T]

	// Len returns the number of entries.
	Len() int
}

type registryImpl[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T]
	drained int // entries[:drained] have been handed out by DrainReady
}

// New creates an empty Registry.
//
// Returns:
//   - Registry[T]: the registry
func New[T any]() Registry[T] {
	return &registryImpl[T]{}
}

func (r *registryImpl[T]) Add(value T) ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := ID(len(r.entries) + 1)
	r.entries = append(r.entries, Entry[T]{ID: id, Value: value})
	return id
}

func (r *registryImpl[T]) Snapshot() []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry[T](nil), r.entries...)
}

func (r *registryImpl[T]) DrainReady() []Entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drained == len(r.entries) {
		return nil
	}
	out := append([]Entry[T](nil), r.entries[r.drained:]...)
	r.drained = len(r.entries)
	return out
}

func (r *registryImpl[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
