package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound matches any *KeyNotFoundError with errors.Is.
	ErrKeyNotFound = errors.New("key not found")
	// ErrEmptyTree matches any *EmptyTreeError with errors.Is.
	ErrEmptyTree = errors.New("tree is empty")
)

// KeyNotFoundError is returned by Remove when a non-empty tree has no value equal to Key.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found in tree", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// EmptyTreeError is returned by operations that are undefined on an empty tree.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return fmt.Sprintf("%s: tree is empty", e.Op)
}

func (e *EmptyTreeError) Is(target error) bool {
	return target == ErrEmptyTree
}
