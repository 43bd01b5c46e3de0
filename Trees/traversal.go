package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/linkedbst/Queues"
)

// InOrder [Tree.InOrder]. Values come out in ascending order. Every call
// returns a new iterator starting from the smallest value.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) InOrder() func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.v, true
	}
}

// Iter is the default iteration of the tree, which is PreOrder.
func (u *LinkedBST[T]) Iter() func() (T, bool) {
	return u.PreOrder()
}

// PreOrder gives the root, then the left subtree, then the right subtree.
// The right child is pushed before the left one so the left is popped first.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PreOrder() func() (T, bool) {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*node[T])
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// PostOrder gives the left subtree, then the right subtree, then the root.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PostOrder() func() (T, bool) {
	var st []*node[T]
	var last *node[T]
	cur := u.root
	return func() (r T, has bool) {
		for cur != nil || len(st) > 0 {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			st = st[:len(st)-1]
			last = top
			return top.v, true
		}
		return
	}
}

// LevelOrder gives values level by level from the root, left to right.
// Time: f(): O(1) at each call to the returned function. Space: O(width)
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	q := new(Queues.ArrayQueue[*node[T]])
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		cur, err := q.Pop()
		if err != nil {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// Collect drains an iterator into a slice.
func Collect[T any](f func() (T, bool)) []T {
	var s []T
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	return s
}

// String draws the tree rotated 90 degrees counterclockwise: one value per
// line, right subtree above its parent, "| " for every level of depth.
func (u *LinkedBST[T]) String() string {
	type frame struct {
		n *node[T]
		d int
	}
	var sb strings.Builder
	var st []frame
	push := func(n *node[T], d int) {
		for ; n != nil; n, d = n.r, d+1 {
			st = append(st, frame{n, d})
		}
	}
	push(u.root, 0)
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		sb.WriteString(strings.Repeat("| ", f.d))
		fmt.Fprint(&sb, f.n.v)
		sb.WriteByte('\n')
		push(f.n.l, f.d+1)
	}
	return sb.String()
}
