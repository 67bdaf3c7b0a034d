package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeRequiresParent(t *testing.T) {
	n, err := newNode('a', nil)
	assert.ErrorIs(t, err, ErrNoParent)
	assert.Nil(t, n)
}

func TestNewNodeRegistersWithParent(t *testing.T) {
	root := newRoot()
	assert.False(t, root.hasChildren())

	n, err := newNode('k', root)
	require.NoError(t, err)
	assert.Same(t, n, root.child('k'))
	assert.Same(t, root, n.parent)
	assert.True(t, root.hasChildren())
	assert.Nil(t, root.child('a'))

	root.setChild('k', nil)
	assert.False(t, root.hasChildren())
}

func TestFind(t *testing.T) {
	root := newRoot()
	a, err := newNode('a', root)
	require.NoError(t, err)
	b, err := newNode('b', a)
	require.NoError(t, err)

	tests := []struct {
		key  string
		want *Node
	}{
		{"a", a},
		{"ab", b},
		{"abc", nil},
		{"b", nil},
		{"z", nil},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := root.find(tt.key)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}

	for _, key := range []string{"", "A", "a1", "a b", "ä", "-"} {
		_, err := root.find(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestRemoveOnRootIsNoop(t *testing.T) {
	root := newRoot()
	root.setValue(3)
	root.remove()
	v, ok := root.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCleanupStopsAtValuedAncestor(t *testing.T) {
	tr := New()
	for key, v := range map[string]int{"a": 1, "abcd": 2} {
		_, err := tr.Add(key, v)
		require.NoError(t, err)
	}

	d, err := tr.root.find("abcd")
	require.NoError(t, err)
	d.remove()

	a := tr.root.child('a')
	require.NotNil(t, a)
	assert.False(t, a.hasChildren())
	assert.Equal(t, "+(a[1])", tr.String())
}

func TestCleanupAscendsPastNodesWithChildren(t *testing.T) {
	// "ab" keeps its child, so nothing is detached, but the walk still
	// climbs through the valueless "a" up to the root.
	tr := New()
	_, err := tr.Add("ab", 1)
	require.NoError(t, err)
	_, err = tr.Add("abc", 2)
	require.NoError(t, err)

	b, err := tr.root.find("ab")
	require.NoError(t, err)
	b.remove()

	assert.Equal(t, "+(a(b(c[2])))", tr.String())
	assert.Same(t, b, tr.root.child('a').child('b'))
}

func TestCleanupPrunesEmptyNodeLeftAbove(t *testing.T) {
	// x never held a value, so it goes together with y.
	root := newRoot()
	x, err := newNode('x', root)
	require.NoError(t, err)
	y, err := newNode('y', x)
	require.NoError(t, err)
	y.setValue(5)

	y.remove()
	assert.False(t, root.hasChildren())
	assert.Equal(t, "+", root.String())
}

func TestNodeString(t *testing.T) {
	root := newRoot()
	assert.Equal(t, "+", root.String())

	c, err := newNode('c', root)
	require.NoError(t, err)
	c.setValue(0)
	a, err := newNode('a', root)
	require.NoError(t, err)
	z, err := newNode('z', a)
	require.NoError(t, err)
	z.setValue(42)

	assert.Equal(t, "+(a(z[42])c[0])", root.String())
	assert.Equal(t, "a(z[42])", a.String())
}
