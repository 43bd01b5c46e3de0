package Trees

import (
	"math"

	"github.com/g-m-twostay/linkedbst/Queues"
	"github.com/sirupsen/logrus"
)

// Height [Tree.Height]. A leaf has height 0, any other node is one more than
// its highest child. Computed level by level, so skewed trees are fine.
// Returns an *EmptyTreeError on an empty tree.
// Time: O(n); Space: O(width)
func (u *LinkedBST[T]) Height() (int, error) {
	if u.root == nil {
		return 0, &EmptyTreeError{"height"}
	}
	q := Queues.MakeArrayQueue[*node[T]](16)
	q.Push(u.root)
	h := -1
	for !q.Empty() {
		for i := q.Size(); i > 0; i-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
		h++
	}
	return h, nil
}

// NumNodes [Tree.NumNodes]. It walks the tree instead of trusting Size, so
// comparing both checks the structure.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) NumNodes() uint {
	var n uint
	for it := u.Iter(); ; n++ {
		if _, ok := it(); !ok {
			break
		}
	}
	return n
}

// IsBalanced reports whether height+1 < 2*log2(NumNodes+1)-1, i.e. whether the
// tree is close to the minimal height for its size. This isn't an AVL style
// balance check: a lone node or an empty tree isn't balanced by this measure.
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	h, err := u.Height()
	if err != nil {
		return false
	}
	return float64(h+1) < 2*math.Log2(float64(u.NumNodes()+1))-1
}

// Rebalance rebuilds the tree with minimal height. The values are taken in
// order, the tree is cleared, then the middle value of every range is added
// before the values on its left, which go before the values on its right.
// The resulting shape only depends on the values.
// Time: O(n*log n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	before := u.sz
	vs := Collect(u.InOrder())
	u.Clear()
	st := make([][2]int, 0, 64) //[lo,hi)
	st = append(st, [2]int{0, len(vs)})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] >= top[1] {
			continue
		}
		mid := top[0] + (top[1]-top[0])>>1
		u.Add(vs[mid])
		st = append(st, [2]int{mid + 1, top[1]}, [2]int{top[0], mid})
	}
	Log.WithFields(logrus.Fields{"op": "rebalance", "size": before}).Debug("rebuilt tree")
}
