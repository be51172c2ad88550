package trie

import (
	"maps"
	"slices"
)

// node is one trie node. Once a node is reachable from a published Trie
// handle it is immutable; every edit in this package operates on a fresh
// clone that is still exclusively owned by the call producing it.
type node struct {
	// children maps the next key byte to a shared child node. The map
	// carries no ordering; lexical order is imposed wherever iteration is
	// observable (labels).
	children map[byte]*node

	// isTerminal marks that a stored key ends at this node. In a published
	// tree it is set exactly when value is present; Remove clears both
	// while keeping the children.
	isTerminal bool

	// value is the type-erased stored value, recovered by assertion in Get.
	value any
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// clone returns a shallow copy of n: the child map and value box are copied,
// every descendant is shared by pointer. This is the only copy operation in
// the package.
func (n *node) clone() *node {
	c := &node{
		children:   make(map[byte]*node, len(n.children)),
		isTerminal: n.isTerminal,
		value:      n.value,
	}
	maps.Copy(c.children, n.children)
	return c
}

// labels returns n's child labels in lexical order.
func (n *node) labels() []byte {
	ls := make([]byte, 0, len(n.children))
	for b := range n.children {
		ls = append(ls, b)
	}
	slices.Sort(ls)
	return ls
}
