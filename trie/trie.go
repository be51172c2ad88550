package trie

// Trie is an immutable handle on one version of the tree. The zero value is
// the empty trie. Handles are cheap values: copying one copies a pointer,
// and no primitive in this package ever mutates the tree a handle denotes.
type Trie struct {
	root *node
}

// New returns the empty trie.
func New() Trie {
	return Trie{}
}

// IsEmpty reports whether t stores no keys. A trie whose keys have all been
// removed keeps an empty root node (the root floor, see the package docs)
// and is still empty in this sense.
func (t Trie) IsEmpty() bool {
	return t.root == nil || (!t.root.isTerminal && len(t.root.children) == 0)
}
