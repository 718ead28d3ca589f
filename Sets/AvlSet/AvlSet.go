package AvlSet

import (
	"cmp"
	"iter"
	"slices"

	"github.com/g-m-twostay/avlset/Sets"
	"github.com/g-m-twostay/avlset/Trees"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set of unique elements backed by Trees.AVLTree.
// Insert, Erase, Find and LowerBound take O(log n); Size and Empty O(1).
// S is the index type of the tree: a Set holds at most ^S(0) elements.
// Two Sets never share nodes; copies are built by inserting every element again.
// A Set isn't safe for concurrent use.
type Set[T any, S constraints.Unsigned] struct {
	t *Trees.AVLTree[T, S]
}

var _ Sets.Set[int] = (*Set[int, uint])(nil)

// New empty Set of a cmp.Ordered type with room for hint elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Set[T, S] {
	return &Set[T, S]{Trees.New[T, S](hint)}
}

// NewFunc returns an empty Set ordered by less.
func NewFunc[T any, S constraints.Unsigned](less func(a, b T) bool, hint S) *Set[T, S] {
	return &Set[T, S]{Trees.NewFunc[T, S](less, hint)}
}

// NewLesser returns an empty Set of a type ordered by its LessThan method.
func NewLesser[T Trees.Lesser[T], S constraints.Unsigned](hint S) *Set[T, S] {
	return &Set[T, S]{Trees.NewLesser[T, S](hint)}
}

// Of returns a Set holding vs. Repeated values are kept once.
func Of[T cmp.Ordered, S constraints.Unsigned](vs ...T) *Set[T, S] {
	u := New[T, S](0)
	u.t.Grow(len(vs))
	for _, v := range vs {
		u.t.Insert(v)
	}
	return u
}

// Collect the values of seq into a Set ordered by less.
func Collect[T any, S constraints.Unsigned](seq iter.Seq[T], less func(a, b T) bool) *Set[T, S] {
	u := NewFunc[T, S](less, 0)
	for v := range seq {
		u.t.Insert(v)
	}
	return u
}

// Clone returns an independent Set with the same ordering and elements.
// Time: O(n log n)
func (u *Set[T, S]) Clone() *Set[T, S] {
	c := NewFunc[T, S](u.t.Less(), S(u.t.Size()))
	for v := range u.t.All() {
		c.t.Insert(v)
	}
	return c
}

// Assign the elements of o to u, dropping the previous ones. u keeps its own ordering.
// Assigning a Set to itself does nothing.
func (u *Set[T, S]) Assign(o *Set[T, S]) {
	if u == o || u.t == o.t {
		return
	}
	u.t.Clear(false)
	Sets.InsertAll[T](u, o)
}

// Insert v. Returns false if an equal element is already present, in which case nothing changes.
func (u *Set[T, S]) Insert(v T) bool {
	return u.t.Insert(v)
}

// Erase v. Returns false if v isn't present, in which case nothing changes.
// Every Iter of u is invalidated, see Trees.AVLTree.Erase.
func (u *Set[T, S]) Erase(v T) bool {
	return u.t.Erase(v)
}

func (u *Set[T, S]) Has(v T) bool {
	return u.t.Has(v)
}

// Find the element equal to v, or End.
func (u *Set[T, S]) Find(v T) Trees.Iter[T, S] {
	return u.t.Find(v)
}

// LowerBound returns the first element not less than v, or End.
func (u *Set[T, S]) LowerBound(v T) Trees.Iter[T, S] {
	return u.t.LowerBound(v)
}

// UpperBound returns the first element greater than v, or End.
func (u *Set[T, S]) UpperBound(v T) Trees.Iter[T, S] {
	return u.t.UpperBound(v)
}

func (u *Set[T, S]) Begin() Trees.Iter[T, S] {
	return u.t.Begin()
}

func (u *Set[T, S]) End() Trees.Iter[T, S] {
	return u.t.End()
}

func (u *Set[T, S]) Minimum() (T, bool) {
	return u.t.Minimum()
}

func (u *Set[T, S]) Maximum() (T, bool) {
	return u.t.Maximum()
}

func (u *Set[T, S]) Size() uint {
	return u.t.Size()
}

func (u *Set[T, S]) Empty() bool {
	return u.t.Empty()
}

// Clear removes every element. The memory is kept for later insertions.
func (u *Set[T, S]) Clear() {
	u.t.Clear(false)
}

// Range [Sets.Set.Range]. Elements are visited in ascending order.
func (u *Set[T, S]) Range(f func(T) bool) {
	u.t.InOrder(f)
}

// All elements in ascending order.
func (u *Set[T, S]) All() iter.Seq[T] {
	return u.t.All()
}

// Backward yields all elements in descending order.
func (u *Set[T, S]) Backward() iter.Seq[T] {
	return u.t.Backward()
}

// Values in ascending order in a new slice.
func (u *Set[T, S]) Values() []T {
	return slices.AppendSeq(make([]T, 0, u.t.Size()), u.t.All())
}
