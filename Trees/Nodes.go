package Trees

// A node in the LinkedBST. Every node is owned by exactly one parent, or by
// the tree when it's the root. There are no parent pointers.
type node[T any] struct {
	v    T
	l, r *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.l == nil && n.r == nil
}

// rightmost descendant of n, n included.
// Time: O(D); Space: O(1)
func (n *node[T]) rightmost() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// leftmost descendant of n, n included.
// Time: O(D); Space: O(1)
func (n *node[T]) leftmost() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}
