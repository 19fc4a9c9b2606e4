package encounter

import "sync"

// KeyedLock provides one mutex per encounter ID so that every mutating
// operation on a given encounter is serialised (a single encounter is a
// single-writer domain) while distinct encounters proceed concurrently.
//
// Locks are never evicted; an ended encounter's mutex is a few dozen bytes
// and encounter IDs are not reused within a process lifetime.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedLock creates an empty KeyedLock.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use, and returns
// the corresponding unlock function.
func (k *KeyedLock) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
