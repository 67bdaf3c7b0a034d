// Package trie implements a prefix tree that maps names made of the
// lowercase letters a-z to non-negative points.
//
// Removing a name prunes every node that no longer leads to a stored value,
// so the tree never keeps dangling empty branches.
package trie

import (
	"io"
)

// Trie maps lowercase names to points. It is not safe for concurrent use.
type Trie struct {
	root *Node
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newRoot()}
}

// Add stores value under key. It reports false and leaves the trie untouched
// if key already holds a value.
func (t *Trie) Add(key string, value int) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if err := validateValue(value); err != nil {
		return false, err
	}

	cur := t.root
	for i := 0; i < len(key); i++ {
		next := cur.child(key[i])
		if next == nil {
			var err error
			if next, err = newNode(key[i], cur); err != nil {
				return false, err
			}
		}
		cur = next
	}
	if cur.valued {
		return false, nil
	}
	cur.setValue(value)
	return true, nil
}

// Change overwrites the value of an existing key. It reports false if key
// holds no value.
func (t *Trie) Change(key string, value int) (bool, error) {
	n, err := t.root.find(key)
	if err != nil {
		return false, err
	}
	if err := validateValue(value); err != nil {
		return false, err
	}
	if n == nil || !n.valued {
		return false, nil
	}
	n.setValue(value)
	return true, nil
}

// Remove deletes key and prunes the branch it leaves behind. It reports false
// if key holds no value.
func (t *Trie) Remove(key string) (bool, error) {
	n, err := t.root.find(key)
	if err != nil {
		return false, err
	}
	if n == nil || !n.valued {
		return false, nil
	}
	n.remove()
	return true, nil
}

// Value returns the points stored under key.
func (t *Trie) Value(key string) (int, bool, error) {
	n, err := t.root.find(key)
	if err != nil || n == nil {
		return 0, false, err
	}
	v, ok := n.Value()
	return v, ok, nil
}

// String renders the whole trie, see [Node.String].
func (t *Trie) String() string {
	return t.root.String()
}

// Fprint writes the rendering of the trie to w.
func (t *Trie) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.root.String())
	return err
}
