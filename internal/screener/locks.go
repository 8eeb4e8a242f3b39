package screener

import "sync"

// keyedMutex serializes score recomputation per asset id, so two concurrent
// series submissions for the same asset cannot interleave partial writes.
// Distinct ids never contend. Entries are retained for the life of the
// service; the map is bounded by the asset count.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock acquires and returns the mutex for id.
func (k *keyedMutex) lock(id string) *sync.Mutex {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m
}
