package Trees

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// LinkedBST is an unbalanced binary search tree built from linked nodes.
// Values strictly less than a node go to its left subtree, values greater
// or equal go to its right subtree, so equal values are all kept.
// The tree never rebalances by itself: inserting sorted input builds a
// chain of height n-1, call Rebalance to restore minimal height.
// All methods are implemented iteratively, so a degenerate tree costs
// time but never call stack.
// The zero value is an empty tree ready to use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

// New returns an empty LinkedBST.
func New[T constraints.Ordered]() *LinkedBST[T] {
	return new(LinkedBST[T])
}

// From builds a LinkedBST by adding vs one by one in the given order.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *LinkedBST[T] {
	u := New[T]()
	for _, v := range vs {
		u.Add(v)
	}
	return u
}

// Size returns the number of values maintained by Add, Remove and Clear.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() uint {
	return u.sz
}

// IsEmpty reports whether Size is 0.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) IsEmpty() bool {
	return u.sz == 0
}

// Add [Tree.Add]. The new value always becomes a new leaf; it's never merged
// with an equal value.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	if u.root == nil {
		u.root = &node[T]{v: v}
	} else {
		for cur := u.root; ; {
			if v < cur.v {
				if cur.l == nil {
					cur.l = &node[T]{v: v}
					break
				}
				cur = cur.l
			} else {
				if cur.r == nil {
					cur.r = &node[T]{v: v}
					break
				}
				cur = cur.r
			}
		}
	}
	u.sz++
}

// AddAscending adds vs, which must be in ascending order, by linking each one
// as the right child of the rightmost node. This builds the same tree as
// calling Add for every value, but a value that isn't below the current
// maximum costs O(1) instead of O(D). A value below the maximum falls back
// to Add.
// Time: O(D+n) for ascending input
func (u *LinkedBST[T]) AddAscending(vs ...T) {
	var last *node[T]
	if u.root != nil {
		last = u.root.rightmost()
	}
	for _, v := range vs {
		if last == nil {
			u.root = &node[T]{v: v}
			last = u.root
		} else if v < last.v {
			u.Add(v)
			continue
		} else {
			last.r = &node[T]{v: v}
			last = last.r
		}
		u.sz++
	}
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur.v, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Contains(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Clear drops every node.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Remove one value equal to v and return the stored value.
// On an empty tree it returns (zero, false, nil). On a non-empty tree without
// v it returns a *KeyNotFoundError and leaves the tree unchanged.
// A node with two children isn't unlinked: it takes the value of its in-order
// predecessor, and the predecessor node is unlinked instead.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, bool, error) {
	if u.root == nil {
		return *new(T), false, nil
	}
	preRoot := &node[T]{l: u.root}
	parent, left := preRoot, true
	cur := u.root
	for cur != nil && cur.v != v {
		parent = cur
		if v < cur.v {
			left, cur = true, cur.l
		} else {
			left, cur = false, cur.r
		}
	}
	if cur == nil {
		return *new(T), false, &KeyNotFoundError{v}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		liftMaxLeft(cur)
		Log.WithFields(logrus.Fields{"op": "remove", "key": v, "lifted": cur.v}).Debug("replaced by predecessor")
	} else {
		child := cur.l
		if child == nil {
			child = cur.r
		}
		if left {
			parent.l = child
		} else {
			parent.r = child
		}
		Log.WithFields(logrus.Fields{"op": "remove", "key": v, "leaf": child == nil}).Debug("unlinked node")
	}
	u.sz--
	if u.sz == 0 {
		u.root = nil
	} else {
		u.root = preRoot.l
	}
	return removed, true, nil
}

// liftMaxLeft replaces top.v with the maximum value in its left subtree and
// unlinks the node that held it. top.l mustn't be nil.
// Time: O(D); Space: O(1)
func liftMaxLeft[T any](top *node[T]) {
	parent, cur := top, top.l
	for cur.r != nil {
		parent, cur = cur, cur.r
	}
	top.v = cur.v
	if parent == top {
		top.l = cur.l
	} else {
		parent.r = cur.l
	}
}

// Replace the first value equal to old found by descending the tree with nv,
// returning the value that was stored. The node isn't moved, so nv must sort
// the same way old does for the tree to stay ordered.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(old, nv T) (T, bool) {
	for cur := u.root; cur != nil; {
		if cur.v == old {
			was := cur.v
			cur.v = nv
			return was, true
		} else if cur.v > old {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Corrupt [Tree.Corrupt]. A left subtree may hold values equal to its root:
// removing a node with two children lifts its predecessor, and with
// duplicates that predecessor can equal a value left behind in the subtree.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Corrupt() bool {
	type bound struct {
		n            *node[T]
		lo, hi       T
		hasLo, hasHi bool
	}
	var count uint
	st := []bound{{n: u.root}}
	for len(st) > 0 {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if b.n == nil {
			continue
		}
		if (b.hasLo && b.n.v < b.lo) || (b.hasHi && b.n.v > b.hi) {
			return true
		}
		count++
		st = append(st,
			bound{b.n.l, b.lo, b.n.v, b.hasLo, true},
			bound{b.n.r, b.n.v, b.hi, true, b.hasHi})
	}
	return count != u.sz
}

var _ Tree[int] = (*LinkedBST[int])(nil)
