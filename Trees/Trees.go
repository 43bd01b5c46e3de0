package Trees

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Receivers returning an error fail loudly: the tree is left unchanged
// and the error describes why.
// Nothing here is safe for concurrent use; no method may be called while
// another one is running on the same tree, iterators included.
type Tree[T any] interface {
	//Add v to the Tree. Equal values are kept as separate entries.
	Add(v T)
	//Remove one entry equal to v. See the implementation for the exact
	//contract on empty trees and missing values.
	Remove(v T) (T, bool, error)
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Contains v. Equivalent to testing the second return value of Find.
	Contains(v T) bool
	//Clear the tree.
	Clear()
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree as maintained by the mutators.
	Size() uint
	//NumNodes counts the nodes reachable from the root.
	NumNodes() uint
	//Height of the tree, a single node has height 0.
	Height() (int, error)
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or the maintained size doesn't match
	//the nodes. This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
