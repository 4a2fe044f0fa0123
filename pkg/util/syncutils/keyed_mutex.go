package syncutils

import "sync"

// KeyedMutex provides a mutex per string key. Locking one key never blocks
// callers working on a different key. The zero value is ready to use.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// Lock acquires the mutex for the given key, blocking until it is available.
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	if km.locks == nil {
		km.locks = make(map[string]*keyLock)
	}
	kl, ok := km.locks[key]
	if !ok {
		kl = &keyLock{}
		km.locks[key] = kl
	}
	kl.refs++
	km.mu.Unlock()

	kl.mu.Lock()
}

// Unlock releases the mutex for the given key. The per-key entry is removed
// once no goroutine holds or waits on it, so idle keys cost nothing.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	kl, ok := km.locks[key]
	if !ok {
		km.mu.Unlock()
		panic("syncutils: unlock of unlocked key " + key)
	}
	kl.refs--
	if kl.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()

	kl.mu.Unlock()
}
