package testutil

import (
	"math/rand/v2"

	"github.com/ehsanranjbar/nestutils"
)

// Deep returns leaf wrapped in n levels of nesting, so that the result has depth n.
func Deep(n int, leaf any) nestutils.Sequence {
	seq := nestutils.Sequence{leaf}
	for i := 1; i < n; i++ {
		seq = nestutils.Sequence{seq}
	}
	return seq
}

// Random builds a randomly shaped nested sequence whose scalars are the ints 0..count-1
// in depth-first order. maxDepth bounds the nesting and maxWidth the length of every list.
func Random(rng *rand.Rand, maxDepth, maxWidth int) (seq nestutils.Sequence, count int) {
	var build func(depth int) nestutils.Sequence
	build = func(depth int) nestutils.Sequence {
		n := rng.IntN(maxWidth + 1)
		s := make(nestutils.Sequence, 0, n)
		for range n {
			if depth < maxDepth && rng.IntN(3) == 0 {
				s = append(s, build(depth+1))
				continue
			}
			s = append(s, count)
			count++
		}
		return s
	}
	seq = build(1)
	return seq, count
}

// Counting returns the sequence 0..n-1.
func Counting(n int) nestutils.Sequence {
	seq := make(nestutils.Sequence, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}
