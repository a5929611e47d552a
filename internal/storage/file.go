package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileName is the on-disk name of the key/value snapshot inside the data
// directory.
const fileName = "state.json"

// fileEnvelope is the persisted format: an explicit version field plus the
// flat key/value map, so later formats can migrate older files in place.
type fileEnvelope struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// envelopeVersion is the current persisted format version.
const envelopeVersion = 1

// FileStore is a Store backed by a single JSON file. Reads load the file on
// every access so an external write (another process, a test fixture) is
// observed; writes rewrite the whole snapshot. Mutations made through this
// instance are published to subscribers.
type FileStore struct {
	path string

	mu       sync.Mutex
	nextID   int
	watchers map[int]func(Change)
}

// NewFileStore creates a FileStore rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{
		path:     filepath.Join(dir, fileName),
		watchers: make(map[int]func(Change)),
	}, nil
}

// Get returns the stored value for key, with ok=false when absent.
func (s *FileStore) Get(key string) (string, bool, error) {
	env, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := env.Values[key]
	return v, ok, nil
}

// Set writes key=value and notifies subscribers.
func (s *FileStore) Set(key, value string) error {
	env, err := s.load()
	if err != nil {
		return err
	}
	env.Values[key] = value
	if err := s.save(env); err != nil {
		return err
	}
	s.notify(Change{Key: key, Value: value})
	return nil
}

// Remove deletes key if present and notifies subscribers. Removing an
// absent key is a no-op and produces no notification.
func (s *FileStore) Remove(key string) error {
	env, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := env.Values[key]; !ok {
		return nil
	}
	delete(env.Values, key)
	if err := s.save(env); err != nil {
		return err
	}
	s.notify(Change{Key: key, Removed: true})
	return nil
}

// Subscribe registers fn for change notifications from this instance.
func (s *FileStore) Subscribe(fn func(Change)) func() {
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

func (s *FileStore) notify(c Change) {
	s.mu.Lock()
	fns := make([]func(Change), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}

func (s *FileStore) load() (*fileEnvelope, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &fileEnvelope{Version: envelopeVersion, Values: make(map[string]string)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}

	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}
	if env.Values == nil {
		env.Values = make(map[string]string)
	}
	return &env, nil
}

func (s *FileStore) save(env *fileEnvelope) error {
	env.Version = envelopeVersion
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	return nil
}
