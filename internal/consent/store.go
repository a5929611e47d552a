package consent

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jonathan/resume-site/internal/storage"
)

// Update notifies a subscriber of the consent state after a change.
// Granted is false both for an explicit revoke and for an invalidated
// record; Permissions is meaningful only when Granted is true.
type Update struct {
	Granted     bool
	Permissions Permissions
}

// Store owns the persisted consent record. Every read re-validates the
// record and deletes it on failure, so corrupted or stale consent
// self-heals to "no consent" instead of persisting in a broken state.
type Store struct {
	kv  storage.Store
	now func() time.Time

	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Update)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's time source. Tests use this to age
// records past their TTL.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a consent store over the given key/value backend.
func NewStore(kv storage.Store, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		now:       time.Now,
		listeners: make(map[int]func(Update)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch forwards consent-key changes from an external watcher to this
// store's subscribers. This is the cross-tab analogue: a consent change
// made elsewhere over the same backing store is reflected here, last write
// wins. Do not watch a store this instance also mutates through, or
// subscribers see each change twice.
func (s *Store) Watch(w storage.Watcher) (cancel func()) {
	return w.Subscribe(func(c storage.Change) {
		if c.Key != StorageKey {
			return
		}
		if c.Removed {
			s.notify(Update{Granted: false})
			return
		}
		rec, ok := decodeRecord(c.Value)
		if ok && rec.AnalyticsConsent && rec.ValidAt(s.now()) {
			s.notify(Update{Granted: true, Permissions: rec.Permissions})
			return
		}
		// An overwrite with a corrupt, revoked, stale or mistyped record
		// still invalidates whatever consent state subscribers hold.
		s.notify(Update{Granted: false})
	})
}

// Grant writes a fresh consent record with the current timestamp and policy
// version. Supplied permissions merge over the defaults; nil keeps them as
// is. Subscribers are notified immediately. Storage failure is returned to
// the caller.
func (s *Store) Grant(perms *Permissions) (*Record, error) {
	p := DefaultPermissions()
	if perms != nil {
		p = *perms
	}

	rec := &Record{
		AnalyticsConsent: true,
		Timestamp:        s.now().UnixMilli(),
		Version:          PolicyVersion,
		Permissions:      p,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal consent record: %w", err)
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		return nil, fmt.Errorf("failed to persist consent record: %w", err)
	}

	s.notify(Update{Granted: true, Permissions: p})
	return rec, nil
}

// Revoke deletes the consent record and notifies subscribers with a denied
// update. Safe to call when no record exists.
func (s *Store) Revoke() error {
	if err := s.kv.Remove(StorageKey); err != nil {
		return fmt.Errorf("failed to remove consent record: %w", err)
	}
	s.notify(Update{Granted: false})
	return nil
}

// Current returns the stored record if it passes validation, nil otherwise.
// A record failing any check (malformed JSON, mistyped fields, expiry,
// version mismatch) is deleted as a side effect of the read. Storage errors
// are logged and read as "no consent"; they never break page rendering.
func (s *Store) Current() *Record {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		log.Printf("[CONSENT] failed to read consent record: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	rec, wellTyped := decodeRecord(data)
	if !wellTyped || !rec.ValidAt(s.now()) {
		if err := s.kv.Remove(StorageKey); err != nil {
			log.Printf("[CONSENT] failed to delete invalid consent record: %v", err)
		}
		return nil
	}
	return rec
}

// Valid reports whether a currently valid record grants analytics consent.
func (s *Store) Valid() bool {
	rec := s.Current()
	return rec != nil && rec.AnalyticsConsent
}

// Subscribe registers fn for consent updates. The returned function cancels
// the subscription.
func (s *Store) Subscribe(fn func(Update)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify(u Update) {
	s.mu.Lock()
	fns := make([]func(Update), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(u)
	}
}
