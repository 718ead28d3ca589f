package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// A node in the tree without its value.
// l and r own their subtrees; p is only a back reference used for traversal.
type info[S constraints.Unsigned] struct {
	p, l, r S
	h       int8 // height of the subtree; -1 for no subtree, 0 for a leaf.
}

// base is the node store shared by the tree and its iterators.
// ifs[0] is the loopback nil: it is both "no node" and the end position. Its height is -1 and its links are never written.
// vs[i-1] is the value of ifs[i].
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; info[S].l represents next.
	sz         S
	ifs        []info[S]
	vs         []T
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	ifs[0].h = -1
	return base[T, S]{ifs: ifs, vs: make([]T, 0, int(hint))}
}

// addFree index once. The value is zeroed so the tree doesn't keep it reachable.
func (u *base[T, S]) addFree(a S) {
	var zero T
	u.vs[a-1] = zero
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a leaf holding v. Free indexes are reused before the arrays grow.
// Panics with ErrCapacity when S can't address another node; nothing is linked at that point.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
		return i
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(ErrCapacity)
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// release the subtree rooting at i. The work list replaces recursion, so a subtree of
// any shape is freed with bounded stack. Links of a node are read before it's freed.
// Time: O(size of subtree)
func (u *base[T, S]) release(i S) {
	if i == 0 {
		return
	}
	st := make([]S, 1, int(u.ifs[i].h)+2)
	st[0] = i
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if cur := u.ifs[curI]; cur.l != 0 {
			st = append(st, cur.l)
		}
		if cur := u.ifs[curI]; cur.r != 0 {
			st = append(st, cur.r)
		}
		u.addFree(curI)
		u.sz--
	}
}

// Clear the tree. If reset is false, every node is released to the free list so the
// existing arrays are reused by later insertions. If reset is true, the arrays are truncated instead.
// Time: O(size)
func (u *base[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
		u.ifs, u.vs = u.ifs[:1], u.vs[:0]
		u.root, u.free, u.sz = 0, 0, 0
		return
	}
	u.release(u.root)
	u.root = 0
}

// Grow the underlying arrays to fit another n nodes without reallocating.
func (u *base[T, S]) Grow(n int) {
	u.ifs = slices.Grow(u.ifs, n)
	u.vs = slices.Grow(u.vs, n)
}

// Size of the tree.
// Time: O(1)
func (u *base[T, S]) Size() uint {
	return uint(u.sz)
}

// Empty reports whether the tree has no element.
func (u *base[T, S]) Empty() bool {
	return u.sz == 0
}

// Height of the tree; -1 when empty.
func (u *base[T, S]) Height() int {
	return int(u.ifs[u.root].h)
}

// ref returns the link that holds i: the child slot of its parent, or root.
func (u *base[T, S]) ref(i S) *S {
	if p := u.ifs[i].p; p == 0 {
		return &u.root
	} else if u.ifs[p].l == i {
		return &u.ifs[p].l
	} else {
		return &u.ifs[p].r
	}
}

func (u *base[T, S]) leftmost(i S) S {
	if i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	if i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
	}
	return i
}
