package trie

// Get returns the value stored for key in t. The second result is false when
// the key path does not exist, when the path ends on a non-value node, and
// when the stored value is not a T. The three cases are deliberately
// indistinguishable: absence and a type mismatch read the same.
//
// Get allocates nothing and mutates nothing, so any number of Gets may run
// concurrently against the same handle, including while a writer derives a
// successor tree from it.
func Get[T any](t Trie, key string) (T, bool) {
	var zero T

	n := walk(t, key)
	if n == nil || !n.isTerminal {
		return zero, false
	}
	v, ok := n.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Has reports whether key is stored in t, irrespective of the stored value's
// type. This is the probe to use for no-op detection before a Remove.
func Has(t Trie, key string) bool {
	n := walk(t, key)
	return n != nil && n.isTerminal
}

// walk descends from the root one key byte at a time. Returns nil as soon as
// a byte has no matching child, or when the trie is empty.
func walk(t Trie, key string) *node {
	n := t.root
	if n == nil {
		return nil
	}
	for i := 0; i < len(key); i++ {
		child, ok := n.children[key[i]]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
