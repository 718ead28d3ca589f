package Trees

import "errors"

var (
	// ErrEndDeref is the panic value when the value of an end Iter is read.
	ErrEndDeref = errors.New("Trees: dereference of end iterator")
	// ErrCapacity is the panic value when the index type of a tree can't address another node.
	ErrCapacity = errors.New("Trees: index space exhausted")
)

// Lesser is implemented by types that define their own strict weak order.
// a.LessThan(b) must report whether a sorts before b; a and b are equal
// when neither is less than the other.
type Lesser[T any] interface {
	LessThan(T) bool
}

// Tree represents a tree like structure holding unique values in order.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v wasn't present.
	Insert(v T) bool
	//Erase v from the Tree. Returning true if v was present.
	Erase(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder calls f on every element in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the links,
	//order or cached heights violate the properties of the implementation.
	Corrupt() bool
}

var _ Tree[int] = (*AVLTree[int, uint])(nil)
