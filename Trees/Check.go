package Trees

// Corrupt [Tree.Corrupt]. It checks, for every node, the parent links, the
// cached height, the balance and the count, then that the in-order walk is
// strictly increasing.
// Time: O(n); Space: O(D)
func (u *AVLTree[T, S]) Corrupt() bool {
	if u.ifs[0] != (info[S]{h: -1}) || u.ifs[u.root].p != 0 {
		return true
	}
	var n S
	st := make([]S, 0, u.Height()+2)
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		cur := u.ifs[curI]
		if cur.l != 0 {
			if u.ifs[cur.l].p != curI {
				return true
			}
			st = append(st, cur.l)
		}
		if cur.r != 0 {
			if u.ifs[cur.r].p != curI {
				return true
			}
			st = append(st, cur.r)
		}
		if f := u.factor(curI); f < -1 || f > 1 || cur.h != 1+max(u.ifs[cur.l].h, u.ifs[cur.r].h) {
			return true
		}
		n++
	}
	if n != u.sz {
		return true
	}
	prevI := u.leftmost(u.root)
	for curI := u.next(prevI); curI != 0; prevI, curI = curI, u.next(curI) {
		if !u.less(u.vs[prevI-1], u.vs[curI-1]) {
			return true
		}
	}
	return false
}
