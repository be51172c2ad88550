package trie

// Put stores value under key and returns the resulting trie. t is untouched
// and remains a valid handle on the prior contents.
//
// Exactly the nodes on the root-to-terminal path are freshly allocated;
// every subtree hanging off that path is shared by pointer between t and the
// result. A key that is already present has its value replaced, regardless
// of the previously stored type.
//
// key MUST be non-empty: the empty key has no terminal position to assign,
// so the result carries no new value and is content-equal to t (the root is
// still cloned).
func Put[T any](t Trie, key string, value T) Trie {
	var root *node
	if t.root != nil {
		root = t.root.clone()
	} else {
		root = newNode()
	}

	n := root
	for i := 0; i < len(key); i++ {
		var next *node
		if child, ok := n.children[key[i]]; ok {
			// Existing position: shallow clone so the edit cannot reach
			// any published tree. Children carry over by pointer.
			next = child.clone()
		} else {
			next = newNode()
		}
		if i == len(key)-1 {
			next.isTerminal = true
			next.value = value
		}
		n.children[key[i]] = next
		n = next
	}
	return Trie{root: root}
}
