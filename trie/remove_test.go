package trie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// trieDiff compares full node structure, unexported fields included. Empty
// string means content-identical.
func trieDiff(a, b Trie) string {
	return cmp.Diff(a, b, cmp.AllowUnexported(Trie{}, node{}))
}

func TestRemoveThenGetAbsent(t *testing.T) {
	tr := Put(New(), "k", 1)
	tr = Remove(tr, "k")

	_, ok := Get[int](tr, "k")
	require.False(t, ok)
	require.True(t, tr.IsEmpty())
}

func TestRemovePrefixKeyKeepsExtension(t *testing.T) {
	tr := New()
	tr = Put(tr, "ab", 1)
	tr = Put(tr, "abc", 2)

	tr = Remove(tr, "ab")

	_, ok := Get[int](tr, "ab")
	require.False(t, ok)
	v, ok := Get[int](tr, "abc")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestRemoveExtensionKeyKeepsPrefix(t *testing.T) {
	tr := New()
	tr = Put(tr, "ab", 1)
	tr = Put(tr, "abc", 2)

	tr = Remove(tr, "abc")

	v, ok := Get[int](tr, "ab")
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = Get[int](tr, "abc")
	require.False(t, ok)

	// The pruned tail is really gone: the "ab" terminal has no children.
	require.Empty(t, tr.root.children['a'].children['b'].children)
}

func TestRemoveKeepsSiblingBranches(t *testing.T) {
	tr := New()
	tr = Put(tr, "cat", 1)
	tr = Put(tr, "car", 2)
	tr = Put(tr, "dog", 3)

	tr = Remove(tr, "cat")

	_, ok := Get[int](tr, "cat")
	require.False(t, ok)
	v, ok := Get[int](tr, "car")
	require.True(t, ok)
	require.Equal(t, 2, v)
	v, ok = Get[int](tr, "dog")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestRemovePrunesDeadPathBottomUp(t *testing.T) {
	tr := Put(New(), "abc", 1)
	tr = Remove(tr, "abc")

	// The whole a->b->c chain had neither values nor other children, so
	// it is pruned... except the root, which is the floor.
	require.NotNil(t, tr.root)
	require.Empty(t, tr.root.children)
	require.False(t, tr.root.isTerminal)
	require.True(t, tr.IsEmpty())
}

func TestRemoveRootIsNeverElided(t *testing.T) {
	tr := New()
	tr = Put(tr, "a", 1)
	tr = Put(tr, "b", 2)
	tr = Remove(tr, "a")
	tr = Remove(tr, "b")

	require.NotNil(t, tr.root)
	require.True(t, tr.IsEmpty())
	require.True(t, Equal(tr, New()))

	// And the emptied trie is still fully usable.
	tr = Put(tr, "again", 3)
	v, ok := Get[int](tr, "again")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestRemoveAbsentKeyIsContentNoOp(t *testing.T) {
	t1 := New()
	t1 = Put(t1, "keep", 1)
	t1 = Put(t1, "kept", 2)

	t2 := Remove(t1, "missing")

	require.True(t, Equal(t1, t2))
	require.Empty(t, trieDiff(t1, t2))

	// The root is cloned regardless of outcome, so identity comparison
	// would misread this no-op as a change.
	require.NotSame(t, t1.root, t2.root)
}

func TestRemoveLeavesInputUnchanged(t *testing.T) {
	t1 := New()
	t1 = Put(t1, "x", 1)
	t1 = Put(t1, "xy", 2)

	_ = Remove(t1, "x")
	_ = Remove(t1, "xy")

	v, ok := Get[int](t1, "x")
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = Get[int](t1, "xy")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestRemoveOnEmptyTrie(t *testing.T) {
	tr := Remove(New(), "anything")

	// An empty root is materialized rather than keeping the nil handle.
	require.NotNil(t, tr.root)
	require.True(t, tr.IsEmpty())
	require.True(t, Equal(tr, New()))
}

func TestRemoveSharesOffPathSubtrees(t *testing.T) {
	t1 := New()
	t1 = Put(t1, "left", 1)
	t1 = Put(t1, "right", 2)

	t2 := Remove(t1, "right")

	// The untouched "left" subtree is shared by reference.
	require.Same(t, t1.root.children['l'], t2.root.children['l'])
}
