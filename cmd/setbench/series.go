package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/g-m-twostay/avlset/Sets/cmps"
)

// config of an experiment. The set receives blocks*step operations; a timing is taken per block.
type config struct {
	step, blocks, iter int
	seed               int64
	maxc               int64 // values are drawn from [-maxc, maxc]
}

// series is the outcome of an experiment on one implementation.
// ns[j] is the time in nanoseconds attributed to block j, averaged over the iterations.
type series struct {
	ns  []int64
	sum int64
}

type experiment func(s cmps.Ordered[int], c config, rg *rand.Rand, ns []int64) int64

func (c config) gen(rg *rand.Rand) int {
	return int(rg.Int63n(2*c.maxc+1) - c.maxc)
}

// add inserts step values per block; ns is the time since the first insertion.
func add(s cmps.Ordered[int], c config, rg *rand.Rand, ns []int64) (sum int64) {
	start := time.Now()
	for j := range c.blocks {
		for range c.step {
			s.Insert(c.gen(rg))
		}
		ns[j] += time.Since(start).Nanoseconds()
	}
	s.Range(func(v int) bool {
		sum += int64(v)
		return true
	})
	return
}

// lowerBound inserts step values per block untimed, then times step lower bound queries.
func lowerBound(s cmps.Ordered[int], c config, rg *rand.Rand, ns []int64) (sum int64) {
	for j := range c.blocks {
		for range c.step {
			s.Insert(c.gen(rg))
		}
		start := time.Now()
		for range c.step {
			if v, ok := s.LowerBound(c.gen(rg)); ok {
				sum += int64(v)
			}
		}
		ns[j] += time.Since(start).Nanoseconds()
	}
	return
}

// addErase inserts or erases a value with equal chance; ns is the time since the first operation.
func addErase(s cmps.Ordered[int], c config, rg *rand.Rand, ns []int64) (sum int64) {
	start := time.Now()
	for j := range c.blocks {
		for range c.step {
			if c.gen(rg)&1 != 0 {
				s.Insert(c.gen(rg))
			} else {
				s.Erase(c.gen(rg))
			}
			sum += int64(s.Size())
		}
		ns[j] += time.Since(start).Nanoseconds()
	}
	return
}

var experiments = map[string]experiment{
	"add":       add,
	"lb":        lowerBound,
	"add-erase": addErase,
}

// measure runs e c.iter times on fresh sets of the named implementation with the same random stream.
func measure(e experiment, name string, c config) series {
	r := series{ns: make([]int64, c.blocks)}
	rg := rand.New(rand.NewSource(c.seed))
	for range c.iter {
		r.sum += e(cmps.NewOrdered(name), c, rg, r.ns)
	}
	for j := range r.ns {
		r.ns[j] /= int64(c.iter)
	}
	return r
}

// skip is the number of leading blocks that hold fewer than 4*step elements.
func (c config) skip() int {
	return min(4, c.blocks)
}

func writeInts[T int | int64](w io.Writer, vs []T) error {
	var sb strings.Builder
	for _, v := range vs {
		fmt.Fprintf(&sb, "%d ", v)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// report writes the element counts, the reference timings and the avl timings,
// one line each, followed by both checksums.
func report(w io.Writer, c config, ref, avl series) error {
	k := c.skip()
	ns := make([]int, 0, c.blocks-k)
	for j := k; j < c.blocks; j++ {
		ns = append(ns, j*c.step)
	}
	if err := writeInts(w, ns); err != nil {
		return err
	}
	if err := writeInts(w, ref.ns[k:]); err != nil {
		return err
	}
	if err := writeInts(w, avl.ns[k:]); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "sum_ref = %d\nsum_avl = %d\n\n", ref.sum, avl.sum)
	return err
}
