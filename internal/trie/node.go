package trie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	alphabetSize = 26

	// rootLetter marks the root in rendered output. It is never a key letter.
	rootLetter = '+'
)

// Node is a single trie vertex. The parent link is a back reference only;
// ownership runs from parent to children.
type Node struct {
	letter   byte
	value    int
	valued   bool
	children [alphabetSize]*Node
	parent   *Node
}

func newRoot() *Node {
	return &Node{letter: rootLetter}
}

// newNode creates a node for letter and registers it as a child of parent.
func newNode(letter byte, parent *Node) (*Node, error) {
	if parent == nil {
		return nil, ErrNoParent
	}
	n := &Node{letter: letter, parent: parent}
	parent.setChild(letter, n)
	return n, nil
}

// child returns the child for letter, or nil. letter must be in a-z.
func (n *Node) child(letter byte) *Node {
	return n.children[letter-'a']
}

func (n *Node) setChild(letter byte, c *Node) {
	n.children[letter-'a'] = c
}

// find walks the child links for key and returns the node it ends on, or nil
// as soon as a step is missing.
func (n *Node) find(key string) (*Node, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	cur := n
	for i := 0; i < len(key); i++ {
		cur = cur.child(key[i])
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}

func (n *Node) hasChildren() bool {
	return lo.ContainsBy(n.children[:], func(c *Node) bool {
		return c != nil
	})
}

// Value returns the points stored on the node, if any.
func (n *Node) Value() (int, bool) {
	return n.value, n.valued
}

func (n *Node) setValue(v int) {
	n.value = v
	n.valued = true
}

// remove clears the node's value and prunes the chain above it.
func (n *Node) remove() {
	if n.parent == nil {
		return
	}
	n.value, n.valued = 0, false
	n.cleanup()
}

// cleanup detaches n if it is empty, then moves up as long as the parent
// holds no value. The ascent does not depend on whether n was detached, so a
// valueless ancestor that still has children is visited too; it stays in
// place and the walk continues above it until a valued node or the root.
func (n *Node) cleanup() {
	for cur := n; cur.parent != nil; cur = cur.parent {
		if !cur.valued && !cur.hasChildren() {
			cur.parent.setChild(cur.letter, nil)
		}
		if cur.parent.valued {
			return
		}
	}
}

// String renders the subtree depth first in a-z order, e.g. "a[1](b[2])".
func (n *Node) String() string {
	var b strings.Builder
	n.appendTo(&b)
	return b.String()
}

func (n *Node) appendTo(b *strings.Builder) {
	b.WriteByte(n.letter)
	if n.valued {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(n.value))
		b.WriteByte(']')
	}
	if !n.hasChildren() {
		return
	}
	b.WriteByte('(')
	for _, c := range n.children {
		if c != nil {
			c.appendTo(b)
		}
	}
	b.WriteByte(')')
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// validateKey is the single check applied to every key crossing the API.
func validateKey(key string) error {
	if key == "" || !lo.EveryBy([]byte(key), isLetter) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func validateValue(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidValue, v)
	}
	return nil
}
