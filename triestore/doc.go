package triestore

/*

# Versioned store over the persistent trie

This package adds multi-version concurrency control on top of the trie
package: an append-only history of trie snapshots, one per committed write,
with version 0 always the empty trie.

## Locking

Two locks with distinct jobs:

1. `writeMu` serializes writers for the whole of a Put or Remove, so there
   is exactly one in-flight write at a time and writes are linearizable.
2. `mu` (reader/writer) guards the snapshot list itself. A writer holds it
   only for the append, never for the copy-on-write rebuild, so an O(key)
   rebuild never stalls readers; readers exclude each other not at all and
   writers only for the brief handoff.

The snapshot list is append-only: slots are never reordered, shrunk, or
rewritten. Combined with writeMu this gives a useful derived rule - a
goroutine holding writeMu may read the list tail without taking mu, because
every append happens under writeMu and is therefore ordered before the
current writer acquired it.

## Reads and guards

Get resolves a version (or the Latest sentinel) under the read lock, then
walks the snapshot without any lock, which is sound because snapshots are
immutable and the list is append-only. A hit comes back wrapped in a Guard
that retains the snapshot it was read from: for as long as the guard is
reachable, every node of that historical tree is too, no matter how many
versions later writers commit. That is the whole of the lifetime story; the
runtime's shared ownership does the counting.

## History retention

All versions are retained indefinitely; there is no compaction and no way to
drop a historical snapshot. Readers of any version never go stale.

*/
