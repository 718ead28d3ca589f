package Trees

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tOpN      = 40000
	tValRange = 20000
)

func collect[T any, S constraints.Unsigned](u *AVLTree[T, S]) []T {
	var r []T
	for v := range u.All() {
		r = append(r, v)
	}
	return r
}

func sample() *AVLTree[int, uint32] {
	tree := New[int, uint32](0)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}
	return tree
}

func TestAVLTree_Sample(t *testing.T) {
	tree := sample()
	require.False(t, tree.Corrupt())
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, collect(tree))
	assert.Equal(t, uint(7), tree.Size())

	require.True(t, tree.Erase(5))
	require.False(t, tree.Corrupt())
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, collect(tree))
	assert.Equal(t, tree.End(), tree.Find(5))
	assert.Equal(t, 7, tree.LowerBound(6).Value())
	assert.Equal(t, 7, tree.LowerBound(7).Value())
	assert.Equal(t, 8, tree.UpperBound(7).Value())
	assert.Equal(t, tree.End(), tree.LowerBound(10))
	assert.Equal(t, 1, tree.LowerBound(math.MinInt).Value())
}

func TestAVLTree_Ascending(t *testing.T) {
	tree := New[int, uint16](1000)
	for i := 1; i <= 1000; i++ {
		require.True(t, tree.Insert(i))
	}
	require.False(t, tree.Corrupt())
	assert.LessOrEqual(t, float64(tree.Height()), 1.45*math.Log2(1002))
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())

	for i := 1000; i > 0; i -= 2 {
		require.True(t, tree.Erase(i))
	}
	require.False(t, tree.Corrupt())
	assert.Equal(t, uint(500), tree.Size())
}

func TestAVLTree_Idempotent(t *testing.T) {
	tree := sample()
	before := collect(tree)
	assert.False(t, tree.Insert(4))
	assert.False(t, tree.Erase(6))
	assert.Equal(t, before, collect(tree))
	assert.Equal(t, uint(7), tree.Size())

	empty := New[int, uint8](0)
	assert.False(t, empty.Erase(0))
	assert.True(t, empty.Empty())
	assert.Equal(t, -1, empty.Height())
	assert.False(t, empty.Corrupt())
}

// a random sequence of insertions and removals is checked against a red-black tree.
func TestAVLTree_Random(t *testing.T) {
	tree := New[int, uint16](1)
	ref := redblacktree.NewWithIntComparator()
	for i := range tOpN {
		v := rg.Intn(tValRange)
		_, in := ref.Get(v)
		if rg.Intn(3) == 0 {
			if b := tree.Erase(v); b != in {
				t.Fatalf("erase %v returned %v, want %v", v, b, in)
			}
			ref.Remove(v)
		} else {
			if b := tree.Insert(v); b == in {
				t.Fatalf("insert %v returned %v, want %v", v, b, !in)
			}
			ref.Put(v, struct{}{})
		}
		if i%1000 == 0 && tree.Corrupt() {
			t.Fatalf("corrupt after %d operations", i)
		}
	}
	require.False(t, tree.Corrupt())
	require.Equal(t, ref.Size(), int(tree.Size()))
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	assert.LessOrEqual(t, float64(tree.Height()), 1.44*math.Log2(float64(tree.Size())+2))

	keys := make([]int, 0, ref.Size())
	for _, k := range ref.Keys() {
		keys = append(keys, k.(int))
	}
	assert.Equal(t, keys, collect(tree))

	for range tOpN / 4 {
		q := rg.Intn(tValRange+2) - 1
		it := tree.LowerBound(q)
		if n, found := ref.Ceiling(q); found {
			require.True(t, it.Valid())
			require.Equal(t, n.Key.(int), it.Value())
		} else {
			require.Equal(t, tree.End(), it)
		}
		_, in := ref.Get(q)
		require.Equal(t, in, tree.Has(q))
	}
}

func TestAVLTree_Neighbours(t *testing.T) {
	tree := sample()
	v, ok := tree.Minimum()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = tree.Maximum()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
	v, ok = tree.Predecessor(5)
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	v, ok = tree.Successor(5)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	v, ok = tree.Predecessor(6)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = tree.Predecessor(1)
	assert.False(t, ok)
	_, ok = tree.Successor(9)
	assert.False(t, ok)

	empty := New[int, uint32](0)
	_, ok = empty.Minimum()
	assert.False(t, ok)
	_, ok = empty.Maximum()
	assert.False(t, ok)
}

func TestIter_RoundTrip(t *testing.T) {
	tree := New[int, uint32](0)
	for range 5000 {
		tree.Insert(rg.Int())
	}
	var fwd []int
	it := tree.Begin()
	for ; it != tree.End(); it = it.Next() {
		fwd = append(fwd, it.Value())
	}
	require.Equal(t, int(tree.Size()), len(fwd))
	require.True(t, slices.IsSorted(fwd))

	var bwd []int
	for it != tree.Begin() {
		it = it.Prev()
		bwd = append(bwd, it.Value())
	}
	slices.Reverse(bwd)
	assert.Equal(t, fwd, bwd)
	assert.Equal(t, tree.End(), tree.Begin().Prev())
	assert.Equal(t, tree.End(), tree.End().Next())

	var back []int
	for v := range tree.Backward() {
		back = append(back, v)
	}
	slices.Reverse(back)
	assert.Equal(t, fwd, back)
}

func TestIter_Empty(t *testing.T) {
	tree := New[string, uint32](0)
	assert.Equal(t, tree.End(), tree.Begin())
	assert.Equal(t, tree.End(), tree.End().Prev())
	assert.False(t, tree.Begin().Valid())
	assert.PanicsWithError(t, ErrEndDeref.Error(), func() { tree.End().Value() })
	assert.PanicsWithError(t, ErrEndDeref.Error(), func() { Iter[int, uint8]{}.Value() })
	for range tree.All() {
		t.Fatal("empty tree yielded a value")
	}
}

// a two-child erase moves the successor's value into the matched node.
func TestIter_TwoChildErase(t *testing.T) {
	tree := New[int, uint32](0)
	for i := 1; i <= 7; i++ {
		tree.Insert(i)
	}
	// 4 is the root with 2 and 6 as children.
	it := tree.Find(4)
	require.True(t, it.Valid())
	require.True(t, tree.Erase(4))
	require.False(t, tree.Corrupt())
	assert.Equal(t, 5, it.Value())
	assert.Equal(t, it, tree.Find(5))

	// a leaf keeps its node across unrelated removals.
	leaf := tree.Find(7)
	tree.Erase(1)
	tree.Erase(2)
	assert.Equal(t, leaf, tree.Find(7))
	assert.Equal(t, 7, leaf.Value())
}

func TestIter_EarlyBreak(t *testing.T) {
	tree := sample()
	var got []int
	for v := range tree.All() {
		if v > 4 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 4}, got)
	got = got[:0]
	tree.InOrder(func(v int) bool {
		got = append(got, v)
		return len(got) < 2
	})
	assert.Equal(t, []int{1, 3}, got)
}

func TestAVLTree_Capacity(t *testing.T) {
	tree := New[int, uint8](0)
	for i := range 255 {
		require.True(t, tree.Insert(i))
	}
	require.PanicsWithError(t, ErrCapacity.Error(), func() { tree.Insert(255) })
	require.False(t, tree.Corrupt())
	assert.Equal(t, uint(255), tree.Size())
	assert.False(t, tree.Has(255))

	require.True(t, tree.Erase(0))
	require.True(t, tree.Insert(255))
	require.False(t, tree.Corrupt())
	v, _ := tree.Maximum()
	assert.Equal(t, 255, v)
}

func TestAVLTree_Clear(t *testing.T) {
	tree := New[int, uint16](0)
	for i := range 3000 {
		tree.Insert(rg.Intn(tValRange) + i)
	}
	n, l := tree.Size(), len(tree.ifs)

	tree.Clear(false)
	require.True(t, tree.Empty())
	require.False(t, tree.Corrupt())
	assert.Equal(t, l, len(tree.ifs))
	for i := range n {
		tree.Insert(int(i))
	}
	require.False(t, tree.Corrupt())
	assert.Equal(t, l, len(tree.ifs), "released nodes must be reused")

	tree.Clear(true)
	require.True(t, tree.Empty())
	assert.Equal(t, 1, len(tree.ifs))
	assert.Empty(t, tree.vs)
	tree.Insert(1)
	require.False(t, tree.Corrupt())

	tree.Clear(false)
	tree.Clear(false)
	assert.True(t, tree.Empty())
}

func TestAVLTree_Corrupt(t *testing.T) {
	tree := sample()
	require.False(t, tree.Corrupt())
	tree.ifs[tree.root].h++
	assert.True(t, tree.Corrupt())
	tree.ifs[tree.root].h--

	i := tree.find(1)
	tree.vs[i-1] = 100
	assert.True(t, tree.Corrupt())
	tree.vs[i-1] = 1

	tree.ifs[i].p = 0
	assert.True(t, tree.Corrupt())
}

type pair struct {
	a, b int
}

func (p pair) LessThan(o pair) bool {
	if p.a != o.a {
		return p.a < o.a
	}
	return p.b < o.b
}

func TestAVLTree_Lesser(t *testing.T) {
	tree := NewLesser[pair, uint32](0)
	want := make([]pair, 0, 25)
	for a := 5; a > 0; a-- {
		for b := 1; b <= 5; b++ {
			tree.Insert(pair{a, b})
			tree.Insert(pair{a, b})
			want = append(want, pair{a, b})
		}
	}
	slices.SortFunc(want, func(x, y pair) int {
		return cmp.Or(cmp.Compare(x.a, y.a), cmp.Compare(x.b, y.b))
	})
	require.False(t, tree.Corrupt())
	assert.Equal(t, want, collect(tree))
	assert.Equal(t, pair{3, 1}, tree.LowerBound(pair{2, 6}).Value())
}

func TestAVLTree_Func(t *testing.T) {
	tree := NewFunc[string, uint32](func(a, b string) bool { return len(a) < len(b) }, 0)
	for _, s := range []string{"ccc", "a", "bb", "dd", "eeee"} {
		tree.Insert(s)
	}
	// "dd" is equal to "bb" under the ordering.
	assert.Equal(t, []string{"a", "bb", "ccc", "eeee"}, collect(tree))
	assert.True(t, tree.Has("zz"))
}
