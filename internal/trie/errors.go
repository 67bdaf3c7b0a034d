package trie

import "errors"

var (
	// ErrInvalidKey is returned when a key is empty or contains anything
	// other than the lowercase letters a-z.
	ErrInvalidKey = errors.New("trie: invalid key")

	// ErrInvalidValue is returned when a value is negative.
	ErrInvalidValue = errors.New("trie: invalid value")

	// ErrNoParent is returned when a non-root node is created without a parent.
	ErrNoParent = errors.New("trie: node has no parent")
)
