// Package storage provides the persisted key/value layer backing consent
// records and the language preference. It stands in for browser local
// storage: a handful of string keys, last write wins, with a change
// notification hook so other observers of the same store see updates.
package storage

// Store is the minimal key/value contract the consent and language layers
// depend on. Get returns ok=false when the key is absent. Remove is a no-op
// for absent keys.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Change describes a single mutation of a store key. Value is empty when
// the key was removed.
type Change struct {
	Key     string
	Value   string
	Removed bool
}

// Watcher delivers change notifications for a store. This replaces the
// browser's cross-tab storage event: implementations may watch a file,
// poll, or fan out in-process.
type Watcher interface {
	// Subscribe registers fn to be called on every change. The returned
	// function cancels the subscription.
	Subscribe(fn func(Change)) (cancel func())
}

// WatchedStore is a store that also publishes its own mutations.
type WatchedStore interface {
	Store
	Watcher
}
