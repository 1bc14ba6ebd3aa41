package billing

import "sync"

// invoiceLockStore holds one mutex per invoice id so concurrent transitions
// against the same invoice serialize instead of racing the read-modify-write.
type invoiceLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newInvoiceLockStore() *invoiceLockStore {
	return &invoiceLockStore{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for the given invoice id, creating one if needed.
func (s *invoiceLockStore) get(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[id]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
