package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// next is the in-order successor of i, walking the parent links when i has no right subtree.
// 0 stays 0.
func (u *base[T, S]) next(i S) S {
	if i == 0 {
		return 0
	}
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			return p
		}
	}
	return 0
}

// prev is the in-order predecessor of i. The predecessor of 0 is the maximum.
func (u *base[T, S]) prev(i S) S {
	if i == 0 {
		return u.rightmost(u.root)
	}
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].r == i {
			return p
		}
	}
	return 0
}

// Iter is a position in an AVLTree: either an element or End, which follows the
// last element. The zero Iter is End of no tree. Iters of the same tree compare
// equal with == when they are at the same position.
// Stepping costs amortized O(1) over a full traversal and O(D) at worst.
// Any Erase on the tree invalidates its Iters, see AVLTree.Erase.
type Iter[T any, S constraints.Unsigned] struct {
	t *base[T, S]
	i S
}

// Begin is the position of the minimum, or End if the tree is empty.
func (u *AVLTree[T, S]) Begin() Iter[T, S] {
	return Iter[T, S]{&u.base, u.leftmost(u.root)}
}

// End is the position after the maximum.
func (u *AVLTree[T, S]) End() Iter[T, S] {
	return Iter[T, S]{&u.base, 0}
}

// Valid reports whether u is at an element.
func (u Iter[T, S]) Valid() bool {
	return u.i != 0 && u.t != nil
}

// Value at u. Panics with ErrEndDeref at End.
func (u Iter[T, S]) Value() T {
	if !u.Valid() {
		panic(ErrEndDeref)
	}
	return u.t.vs[u.i-1]
}

// Next position. Next of End is End.
func (u Iter[T, S]) Next() Iter[T, S] {
	if u.t != nil {
		u.i = u.t.next(u.i)
	}
	return u
}

// Prev position. Prev of End is the maximum, Prev of the minimum is End.
func (u Iter[T, S]) Prev() Iter[T, S] {
	if u.t != nil {
		u.i = u.t.prev(u.i)
	}
	return u
}

// All elements in ascending order.
func (u *AVLTree[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curI := u.leftmost(u.root); curI != 0; curI = u.next(curI) {
			if !yield(u.vs[curI-1]) {
				return
			}
		}
	}
}

// Backward yields all elements in descending order.
func (u *AVLTree[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curI := u.rightmost(u.root); curI != 0; curI = u.prev(curI) {
			if !yield(u.vs[curI-1]) {
				return
			}
		}
	}
}
