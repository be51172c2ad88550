package trie

// Remove deletes key from t and returns the resulting trie. t is untouched
// and remains a valid handle on the prior contents.
//
// Nodes left with no value and no children after the deletion are pruned
// bottom-up, except for the root: once a trie has a root node, every derived
// trie keeps one, so the handle never collapses back to the nil root (the
// root floor).
//
// Removing an absent key returns a trie content-equal to t whose root is
// nevertheless a distinct instance, because the root is cloned before the
// walk. Do not detect no-ops by comparing roots; use Has or Equal.
func Remove(t Trie, key string) Trie {
	var root *node
	if t.root != nil {
		root = t.root.clone()
	} else {
		root = newNode()
	}
	return Trie{root: removeAt(root, 0, key)}
}

// removeAt edits n in place, which is sound because n is always a fresh
// clone still exclusively owned by this Remove. It returns the node to keep
// at this position, or nil to signal "this subtree is now empty" so the
// parent drops its entry. pos 0 is exempt from the nil signal.
func removeAt(n *node, pos int, key string) *node {
	if pos == len(key) {
		if !n.isTerminal {
			// Path exists but no value ends here; nothing to remove.
			return n
		}
		if pos != 0 && len(n.children) == 0 {
			return nil
		}
		// Demote to a plain interior node, keeping the children.
		n.isTerminal = false
		n.value = nil
		return n
	}

	child, ok := n.children[key[pos]]
	if !ok {
		// The key was never stored below here.
		return n
	}
	newChild := removeAt(child.clone(), pos+1, key)
	if newChild == nil {
		delete(n.children, key[pos])
	} else {
		n.children[key[pos]] = newChild
	}
	if pos != 0 && len(n.children) == 0 && !n.isTerminal {
		return nil
	}
	return n
}
