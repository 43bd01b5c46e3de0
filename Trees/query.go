package Trees

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.leftmost().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.rightmost().v, true
}

// RangeFind scans the values in order, keeping every value >= low, and stops
// right after the first value equal to high. If no value equals high the scan
// runs to the end, so everything >= low is returned. The scan also stops at
// a value equal to high that is below low, returning nothing for it.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) RangeFind(low, high T) []T {
	var res []T
	it := u.InOrder()
	for v, ok := it(); ok; v, ok = it() {
		if v >= low {
			res = append(res, v)
		}
		if v == high {
			break
		}
	}
	return res
}

// Successor [Tree.Successor]. Found by scanning in order, v doesn't need to be
// in the tree.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	it := u.InOrder()
	for e, ok := it(); ok; e, ok = it() {
		if e > v {
			return e, true
		}
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]. Found by scanning in order up to the first
// value equal to v. Unlike Successor, v must be in the tree: when it isn't,
// or when nothing is less than v, the result is absent.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	var last T
	has := false
	it := u.InOrder()
	for e, ok := it(); ok; e, ok = it() {
		if e < v {
			last, has = e, true
		} else if e == v {
			return last, has
		}
	}
	return *new(T), false
}
