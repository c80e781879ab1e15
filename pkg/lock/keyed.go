package lock

import "sync"

// Keyed provides mutual exclusion scoped to a single key. Holders of
// different keys never block each other; holders of the same key serialize.
type Keyed struct {
	mu      sync.Mutex
	entries map[uint]*entry
}

// entry tracks the mutex and the number of goroutines holding or waiting on it.
type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyed creates an empty keyed lock.
func NewKeyed() *Keyed {
	return &Keyed{
		entries: make(map[uint]*entry),
	}
}

// Lock acquires the mutex for the given key, creating it on first use.
func (k *Keyed) Lock(key uint) {
	k.mu.Lock()
	e, exists := k.entries[key]
	if !exists {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for the given key. The entry is removed from the
// map once no goroutine holds or waits on it, so the map does not grow with
// the number of keys ever seen.
func (k *Keyed) Unlock(key uint) {
	k.mu.Lock()
	e, exists := k.entries[key]
	if !exists {
		k.mu.Unlock()
		panic("lock: unlock of unheld key")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
