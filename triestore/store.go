package triestore

import (
	"sync"

	"github.com/forestrie/go-cowtrie/trie"
)

// Latest is the version sentinel meaning "whichever version is newest when
// Get takes the snapshot-list read lock".
const Latest = ^uint64(0)

// Store is an append-only history of trie snapshots with single-writer,
// many-reader concurrency. Version 0 is always the empty trie; version i
// (i > 0) is the trie after the i'th committed write.
type Store struct {
	// writeMu serializes writers end to end, including the copy-on-write
	// rebuild that happens outside mu.
	writeMu sync.Mutex

	// mu guards snapshots. Writers take it only for the append.
	mu        sync.RWMutex
	snapshots []trie.Trie
}

// New returns a store seeded with the empty trie at version 0.
func New() *Store {
	return &Store{snapshots: []trie.Trie{trie.New()}}
}

// Version returns the index of the newest snapshot.
//
// A version captured here and passed to a later Get names a stable
// historical snapshot, but "newest" may have advanced between the two
// calls. Callers wanting newest-at-read-time should pass Latest to Get,
// which resolves it under a single lock acquisition.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.snapshots) - 1)
}

// Get returns the value stored for key at the given version, wrapped in a
// Guard that keeps the whole of that version's tree alive. The second
// result is false for a missing key, a stored type other than T, and a
// version that is out of range - all deliberately indistinguishable.
func Get[T any](s *Store, key string, version uint64) (Guard[T], bool) {
	s.mu.RLock()
	if version == Latest {
		version = uint64(len(s.snapshots) - 1)
	}
	if version >= uint64(len(s.snapshots)) {
		s.mu.RUnlock()
		return Guard[T]{}, false
	}
	snap := s.snapshots[version]
	s.mu.RUnlock()

	// No lock for the walk: snap is immutable and the list slot it came
	// from is never rewritten.
	v, ok := trie.Get[T](snap, key)
	if !ok {
		return Guard[T]{}, false
	}
	return Guard[T]{snapshot: snap, value: v, version: version}, true
}

// Put stores value under key in a new snapshot derived from the newest one
// and returns the new snapshot's version. The new version becomes visible
// to readers only once the append completes; no reader can observe a
// half-built tree.
func Put[T any](s *Store, key string, value T) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// Tail read without mu: appends happen only under writeMu, held here.
	next := trie.Put(s.snapshots[len(s.snapshots)-1], key, value)

	s.mu.Lock()
	s.snapshots = append(s.snapshots, next)
	version := uint64(len(s.snapshots) - 1)
	s.mu.Unlock()

	return version
}

// Remove deletes key in a new snapshot and returns its version. When the
// key is absent from the newest snapshot no version is created and the
// current newest version is returned unchanged.
func Remove(s *Store, key string) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	latest := s.snapshots[len(s.snapshots)-1]

	// trie.Remove clones the root even when it deletes nothing, so root
	// identity cannot detect a no-op. Probe for the key instead and skip
	// the version entirely when it is absent.
	if !trie.Has(latest, key) {
		return uint64(len(s.snapshots) - 1)
	}

	next := trie.Remove(latest, key)

	s.mu.Lock()
	s.snapshots = append(s.snapshots, next)
	version := uint64(len(s.snapshots) - 1)
	s.mu.Unlock()

	return version
}
