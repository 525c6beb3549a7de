package service

import "sync"

// keyedMutex hands out one mutex per key and forgets it when nobody holds it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// TryLock returns false without waiting if key is already held.
func (that *keyedMutex) TryLock(key string) (func(), bool) {
	that.mu.Lock()
	m := that.locks[key]
	if m == nil {
		m = &refMutex{}
		that.locks[key] = m
	}
	m.refs++
	that.mu.Unlock()

	if !m.TryLock() {
		that.release(key, m)
		return nil, false
	}

	return func() {
		m.Unlock()
		that.release(key, m)
	}, true
}

func (that *keyedMutex) release(key string, m *refMutex) {
	that.mu.Lock()
	defer that.mu.Unlock()

	m.refs--
	if m.refs == 0 {
		delete(that.locks, key)
	}
}
