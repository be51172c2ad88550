package trie

import (
	"fmt"
	"strings"
)

// debug utilities

// Dump renders every stored key of t, one per line as `"key": value`, in
// lexical key order. Child iteration is sorted so the output is stable
// across runs and map seeds.
func Dump(t Trie) string {
	if t.root == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	dumpNode(&b, t.root, "")
	if b.Len() == 0 {
		return "(empty)\n"
	}
	return b.String()
}

func dumpNode(b *strings.Builder, n *node, prefix string) {
	if n.isTerminal {
		fmt.Fprintf(b, "%q: %v\n", prefix, n.value)
	}
	for _, label := range n.labels() {
		dumpNode(b, n.children[label], prefix+string(label))
	}
}
