package storage

import "sync"

// MemStore is an in-memory Store used by tests and by callers that have no
// data directory. It honors the same notification contract as FileStore.
type MemStore struct {
	mu       sync.Mutex
	values   map[string]string
	nextID   int
	watchers map[int]func(Change)

	// FailWrites forces Set/Remove to fail, simulating a full or disabled
	// storage backend.
	FailWrites bool
	// FailReads forces Get to fail.
	FailReads bool
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		values:   make(map[string]string),
		watchers: make(map[int]func(Change)),
	}
}

// Get returns the stored value for key, with ok=false when absent.
func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReads {
		return "", false, errStorageUnavailable
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set writes key=value and notifies subscribers.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	if s.FailWrites {
		s.mu.Unlock()
		return errStorageUnavailable
	}
	s.values[key] = value
	fns := s.watcherList()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(Change{Key: key, Value: value})
	}
	return nil
}

// Remove deletes key if present and notifies subscribers.
func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	if s.FailWrites {
		s.mu.Unlock()
		return errStorageUnavailable
	}
	if _, ok := s.values[key]; !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.values, key)
	fns := s.watcherList()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(Change{Key: key, Removed: true})
	}
	return nil
}

// Subscribe registers fn for change notifications.
func (s *MemStore) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

// Len returns the number of stored keys.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// watcherList snapshots subscribers; callers must hold s.mu.
func (s *MemStore) watcherList() []func(Change) {
	fns := make([]func(Change), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	return fns
}
