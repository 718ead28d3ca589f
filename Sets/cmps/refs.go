// Package cmps adapts third-party containers to Sets.Set so they can be
// measured against AvlSet under the same workload.
package cmps

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/avlset/Sets"
	"github.com/g-m-twostay/avlset/Sets/AvlSet"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Ordered is a Sets.Set that answers lower bound queries.
type Ordered[E any] interface {
	Sets.Set[E]
	//LowerBound returns the smallest element not less than v.
	LowerBound(v E) (E, bool)
}

const btreeDegree = 32

// Names of the ordered implementations accepted by NewOrdered.
const (
	AVL   = "avl"
	BTree = "btree"
	Gods  = "gods"
	LLRB  = "llrb"
)

// NewOrdered returns an empty ordered int set of the named implementation, or nil if the name is unknown.
func NewOrdered(name string) Ordered[int] {
	switch name {
	case AVL:
		return avlSet{AvlSet.New[int, uint32](0)}
	case BTree:
		return btreeSet{btree.NewOrderedG[int](btreeDegree)}
	case Gods:
		return godsSet{redblacktree.NewWithIntComparator()}
	case LLRB:
		return llrbSet{llrb.New()}
	}
	return nil
}

type avlSet struct {
	*AvlSet.Set[int, uint32]
}

func (u avlSet) LowerBound(v int) (int, bool) {
	if it := u.Set.LowerBound(v); it.Valid() {
		return it.Value(), true
	}
	return 0, false
}

type btreeSet struct {
	t *btree.BTreeG[int]
}

func (u btreeSet) Insert(v int) bool {
	_, had := u.t.ReplaceOrInsert(v)
	return !had
}

func (u btreeSet) Erase(v int) bool {
	_, had := u.t.Delete(v)
	return had
}

func (u btreeSet) Has(v int) bool {
	return u.t.Has(v)
}

func (u btreeSet) Size() uint {
	return uint(u.t.Len())
}

func (u btreeSet) Empty() bool {
	return u.t.Len() == 0
}

func (u btreeSet) Range(f func(int) bool) {
	u.t.Ascend(f)
}

func (u btreeSet) LowerBound(v int) (r int, has bool) {
	u.t.AscendGreaterOrEqual(v, func(item int) bool {
		r, has = item, true
		return false
	})
	return
}

// godsSet keeps the elements as keys of a red-black tree.
type godsSet struct {
	t *redblacktree.Tree
}

func (u godsSet) Insert(v int) bool {
	if _, found := u.t.Get(v); found {
		return false
	}
	u.t.Put(v, struct{}{})
	return true
}

func (u godsSet) Erase(v int) bool {
	if _, found := u.t.Get(v); !found {
		return false
	}
	u.t.Remove(v)
	return true
}

func (u godsSet) Has(v int) bool {
	_, found := u.t.Get(v)
	return found
}

func (u godsSet) Size() uint {
	return uint(u.t.Size())
}

func (u godsSet) Empty() bool {
	return u.t.Empty()
}

func (u godsSet) Range(f func(int) bool) {
	for it := u.t.Iterator(); it.Next(); {
		if !f(it.Key().(int)) {
			return
		}
	}
}

func (u godsSet) LowerBound(v int) (int, bool) {
	if n, found := u.t.Ceiling(v); found {
		return n.Key.(int), true
	}
	return 0, false
}

type llrbSet struct {
	t *llrb.LLRB
}

func (u llrbSet) Insert(v int) bool {
	return u.t.ReplaceOrInsert(llrb.Int(v)) == nil
}

func (u llrbSet) Erase(v int) bool {
	return u.t.Delete(llrb.Int(v)) != nil
}

func (u llrbSet) Has(v int) bool {
	return u.t.Has(llrb.Int(v))
}

func (u llrbSet) Size() uint {
	return uint(u.t.Len())
}

func (u llrbSet) Empty() bool {
	return u.t.Len() == 0
}

func (u llrbSet) Range(f func(int) bool) {
	if u.t.Len() == 0 {
		return
	}
	u.t.AscendGreaterOrEqual(u.t.Min(), func(i llrb.Item) bool {
		return f(int(i.(llrb.Int)))
	})
}

func (u llrbSet) LowerBound(v int) (r int, has bool) {
	u.t.AscendGreaterOrEqual(llrb.Int(v), func(i llrb.Item) bool {
		r, has = int(i.(llrb.Int)), true
		return false
	})
	return
}

// Names of the hash based implementations accepted by NewHashed.
const (
	HaxMap  = "haxmap"
	HashMap = "hashmap"
)

// NewHashed returns an empty unordered int set of the named implementation, or nil if the name is unknown.
// Range of these sets visits the elements in no particular order.
func NewHashed(name string) Sets.Set[int] {
	switch name {
	case HaxMap:
		return haxSet{haxmap.New[int, struct{}]()}
	case HashMap:
		return hashSet{hashmap.New[int, struct{}]()}
	}
	return nil
}

type haxSet struct {
	m *haxmap.Map[int, struct{}]
}

func (u haxSet) Insert(v int) bool {
	if _, found := u.m.Get(v); found {
		return false
	}
	u.m.Set(v, struct{}{})
	return true
}

func (u haxSet) Erase(v int) bool {
	if _, found := u.m.Get(v); !found {
		return false
	}
	u.m.Del(v)
	return true
}

func (u haxSet) Has(v int) bool {
	_, found := u.m.Get(v)
	return found
}

func (u haxSet) Size() uint {
	return uint(u.m.Len())
}

func (u haxSet) Empty() bool {
	return u.m.Len() == 0
}

func (u haxSet) Range(f func(int) bool) {
	u.m.ForEach(func(k int, _ struct{}) bool {
		return f(k)
	})
}

type hashSet struct {
	m *hashmap.Map[int, struct{}]
}

func (u hashSet) Insert(v int) bool {
	return u.m.Insert(v, struct{}{})
}

func (u hashSet) Erase(v int) bool {
	return u.m.Del(v)
}

func (u hashSet) Has(v int) bool {
	_, found := u.m.Get(v)
	return found
}

func (u hashSet) Size() uint {
	return uint(u.m.Len())
}

func (u hashSet) Empty() bool {
	return u.m.Len() == 0
}

func (u hashSet) Range(f func(int) bool) {
	u.m.Range(func(k int, _ struct{}) bool {
		return f(k)
	})
}
