package Trees

// update the cached height of i from its children.
func (u *base[T, S]) update(i S) {
	n := &u.ifs[i]
	n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
}

// factor is the balance factor of i: height(left)-height(right).
func (u *base[T, S]) factor(i S) int8 {
	n := u.ifs[i]
	return u.ifs[n.l].h - u.ifs[n.r].h
}

// rotateLeft performs a left rotation on the node at *ni. ni is the link holding the node
// (a child slot of its parent, or root) and receives the promoted right child.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(ni *S) {
	ai := *ni
	a := &u.ifs[ai]
	bi := a.r
	b := &u.ifs[bi]

	if a.r = b.l; b.l != 0 {
		u.ifs[b.l].p = ai
	}
	b.l, b.p = ai, a.p
	a.p = bi
	u.update(ai)
	u.update(bi)
	*ni = bi
}

// rotateRight performs a right rotation on the node at *ni. See rotateLeft.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(ni *S) {
	ai := *ni
	a := &u.ifs[ai]
	bi := a.l
	b := &u.ifs[bi]

	if a.l = b.r; b.r != 0 {
		u.ifs[b.r].p = ai
	}
	b.r, b.p = ai, a.p
	a.p = bi
	u.update(ai)
	u.update(bi)
	*ni = bi
}

// rebalance the node at *ni, whose children are balanced and have correct heights.
// A right-left or left-right shape takes a rotation on the child first.
func (u *base[T, S]) rebalance(ni *S) {
	n := &u.ifs[*ni]
	switch u.factor(*ni) {
	case -2:
		if u.factor(n.r) == 1 {
			u.rotateRight(&n.r)
		}
		u.rotateLeft(ni)
	case 2:
		if u.factor(n.l) == -1 {
			u.rotateLeft(&n.l)
		}
		u.rotateRight(ni)
	default:
		u.update(*ni)
	}
}

// retrace rebalances i and every ancestor of it up to the root.
// Time: O(D)
func (u *base[T, S]) retrace(i S) {
	for i != 0 {
		ni := u.ref(i)
		u.rebalance(ni)
		i = u.ifs[*ni].p
	}
}
