package trie

import "reflect"

// Equal reports whether a and b store the same keys and values. It compares
// content, never node identity, so it is a sound way to decide whether a
// mutation actually changed anything. A nil root and an empty root node are
// the same content (the root floor makes both reachable states).
func Equal(a, b Trie) bool {
	return nodesEqual(a.root, b.root)
}

func nodesEqual(a, b *node) bool {
	if a == b {
		return true
	}
	if a == nil {
		return contentEmpty(b)
	}
	if b == nil {
		return contentEmpty(a)
	}
	if a.isTerminal != b.isTerminal {
		return false
	}
	// DeepEqual rather than == so uncomparable value types (slices, maps)
	// do not panic the comparison.
	if a.isTerminal && !reflect.DeepEqual(a.value, b.value) {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for label, ac := range a.children {
		bc, ok := b.children[label]
		if !ok || !nodesEqual(ac, bc) {
			return false
		}
	}
	return true
}

func contentEmpty(n *node) bool {
	return n == nil || (!n.isTerminal && len(n.children) == 0)
}
