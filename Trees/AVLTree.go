package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by keeping the heights of the two subtrees of
// every node within 1 of each other, so the height D of the tree is less
// than 1.44*log2(n+2).
// T is the type of values it will hold, S is the type of the indexes used
// to link the nodes; S bounds the number of nodes to ^S(0).
// Nodes are kept in arrays and addressed by index; 0 is reserved for "no node",
// which is also the end position of iterators. Each node keeps the index of
// its parent so that iterators step without a stack.
// An AVLTree isn't safe for concurrent use.
type AVLTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	less func(a, b T) bool
}

// New returns an empty tree of a cmp.Ordered type. hint is the number of nodes to reserve space for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return NewFunc[T, S](cmp.Less[T], hint)
}

// NewFunc returns an empty tree ordered by less, which must be a strict weak order.
func NewFunc[T any, S constraints.Unsigned](less func(a, b T) bool, hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T, S](hint), less}
}

// NewLesser returns an empty tree of a type ordered by its LessThan method.
func NewLesser[T Lesser[T], S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return NewFunc[T, S](func(a, b T) bool { return a.LessThan(b) }, hint)
}

// Less is the ordering of the tree.
func (u *AVLTree[T, S]) Less() func(a, b T) bool {
	return u.less
}

// Insert [Tree.Insert]. The new node is placed by descent, then every
// ancestor of it is rebalanced.
// Time: O(D)
func (u *AVLTree[T, S]) Insert(v T) bool {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		p = curI
		if cv := u.vs[curI-1]; u.less(v, cv) {
			curI, left = u.ifs[curI].l, true
		} else if u.less(cv, v) {
			curI, left = u.ifs[curI].r, false
		} else {
			return false
		}
	}
	//alloc may move ifs, so the link is written after it.
	i := u.alloc(v)
	u.ifs[i].p = p
	if p == 0 {
		u.root = i
	} else if left {
		u.ifs[p].l = i
	} else {
		u.ifs[p].r = i
	}
	u.sz++
	u.retrace(p)
	return true
}

// Erase [Tree.Erase]. A node with two children takes the value of its
// in-order successor and the successor's node is removed instead, so an
// Iter at the matched node reads the successor's value afterwards and an
// Iter at the successor is invalid. Treat every Iter as invalidated by Erase.
// Time: O(D)
func (u *AVLTree[T, S]) Erase(v T) bool {
	i := u.find(v)
	if i == 0 {
		return false
	}
	if n := u.ifs[i]; n.l != 0 && n.r != 0 {
		s := u.leftmost(n.r)
		u.vs[i-1] = u.vs[s-1]
		i = s
	}
	n := u.ifs[i]
	c := n.l
	if c == 0 {
		c = n.r
	}
	*u.ref(i) = c
	if c != 0 {
		u.ifs[c].p = n.p
	}
	u.addFree(i)
	u.sz--
	u.retrace(n.p)
	return true
}

func (u *AVLTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if cv := u.vs[curI-1]; u.less(v, cv) {
			curI = u.ifs[curI].l
		} else if u.less(cv, v) {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// lowerBound is the leftmost node not less than v, or 0.
func (u *AVLTree[T, S]) lowerBound(v T) (p S) {
	for curI := u.root; curI != 0; {
		if u.less(u.vs[curI-1], v) {
			curI = u.ifs[curI].r
		} else {
			p = curI
			curI = u.ifs[curI].l
		}
	}
	return
}

// upperBound is the leftmost node greater than v, or 0.
func (u *AVLTree[T, S]) upperBound(v T) (p S) {
	for curI := u.root; curI != 0; {
		if u.less(v, u.vs[curI-1]) {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return
}

// Find the element equal to v. Returns End if there's none.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Find(v T) Iter[T, S] {
	return Iter[T, S]{&u.base, u.find(v)}
}

// LowerBound returns the first element not less than v, or End.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) LowerBound(v T) Iter[T, S] {
	return Iter[T, S]{&u.base, u.lowerBound(v)}
}

// UpperBound returns the first element greater than v, or End.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) UpperBound(v T) Iter[T, S] {
	return Iter[T, S]{&u.base, u.upperBound(v)}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

func (u *AVLTree[T, S]) valueAt(i S) (r T, has bool) {
	if i != 0 {
		r, has = u.vs[i-1], true
	}
	return
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Minimum() (T, bool) {
	return u.valueAt(u.leftmost(u.root))
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Maximum() (T, bool) {
	return u.valueAt(u.rightmost(u.root))
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.less(u.vs[curI-1], v) {
			p = curI
			curI = u.ifs[curI].r
		} else {
			curI = u.ifs[curI].l
		}
	}
	return u.valueAt(p)
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) Successor(v T) (T, bool) {
	return u.valueAt(u.upperBound(v))
}

// InOrder [Tree.InOrder]
// Time: amortized O(1) per element; Space: O(1)
func (u *AVLTree[T, S]) InOrder(f func(T) bool) {
	for curI := u.leftmost(u.root); curI != 0; curI = u.next(curI) {
		if !f(u.vs[curI-1]) {
			return
		}
	}
}
