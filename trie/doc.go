package trie

/*

# Persistent copy-on-write trie

This package provides a persistent (immutable, structurally shared) byte-keyed
prefix tree. Mutating primitives never alter the tree they are given; they
return a new handle whose tree shares every untouched subtree with the input
by pointer.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

- small, composable package-level functions over a cheap handle value
- explicit contracts on what is and is not copied
- a burden of knowledge on the caller for hot paths

## Core invariants

1. A node reachable from any published Trie handle is never mutated again.
   All edits happen on shallow clones that are still exclusively owned by the
   call producing them.
2. A mutation touching a key of length L allocates exactly the nodes on the
   root-to-terminal path (at most L+1), and nothing else. Everything hanging
   off that path is shared by pointer between the old and new handle.
3. Cloning is shallow: the child map and the value box are copied, the
   descendants are not. Nothing in this package ever deep-copies a subtree.

Because of (1), any number of goroutines may read any number of handles
concurrently, including a handle that a writer is currently deriving a
successor from. The package itself takes no locks; one caller at a time may
*produce* trees from a given handle, which is the concern of the triestore
package, not this one.

## Values

Values are stored type-erased and recovered by type assertion at Get time.
A lookup that finds the key but not the asked-for type reports plain absence,
indistinguishable from a missing key. Overwrites may change the stored type
freely.

## The root floor

Remove prunes nodes that end up with no value and no children, bottom-up,
with one exemption: the root. Once a trie has materialized a root node, every
derived trie keeps a real (possibly empty, valueless) root rather than
collapsing back to the nil handle. This is a deliberate floor, not a leak:
a handle always denotes some tree, and an empty root node is content-equal
to the empty trie (see Equal).

## No-op detection

Remove clones the root before it walks, even when the key turns out to be
absent, so the result of a no-op Remove is content-equal to the input but
roots are always distinct instances. Comparing roots by identity therefore
cannot detect a no-op. Use Has before removing, or Equal after, never
pointer identity.

*/
