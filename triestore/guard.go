package triestore

import "github.com/forestrie/go-cowtrie/trie"

// Guard pairs a value read from the store with the snapshot it was read
// from. The retained snapshot keeps every node of that historical tree
// reachable for as long as the guard is, so the value stays consistent with
// a committed version regardless of how far later writers advance.
type Guard[T any] struct {
	snapshot trie.Trie
	value    T
	version  uint64
}

// Value returns the guarded value.
func (g Guard[T]) Value() T {
	return g.value
}

// Version returns the version the value was read from.
func (g Guard[T]) Version() uint64 {
	return g.version
}

// Snapshot returns the pinned historical trie, for further reads against
// exactly the version the guard was taken from.
func (g Guard[T]) Snapshot() trie.Trie {
	return g.snapshot
}
