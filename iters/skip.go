package iters

import "github.com/ehsanranjbar/nestutils"

// SkipIterator is an iterator that skips the leading items for which the condition holds.
// Skipping stops at an item whose value fails to load.
type SkipIterator[K, V, S any] struct {
	base  nestutils.Iterator[K, V]
	state S
	f     func(S, K, V) (S, bool)
}

// SkipN creates a new skip iterator that skips the first n items.
func SkipN[K, V any](base nestutils.Iterator[K, V], n int) *SkipIterator[K, V, int] {
	return Skip(base, func(s int, _ K, _ V) (int, bool) {
		return s + 1, s < n
	})
}

// Skip creates a new skip iterator.
func Skip[K, V, S any](base nestutils.Iterator[K, V], f func(S, K, V) (S, bool)) *SkipIterator[K, V, S] {
	return &SkipIterator[K, V, S]{base: base, f: f}
}

// Close implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Close() {
	it.base.Close()
}

// Next implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Next() {
	it.base.Next()
}

// Rewind implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Rewind() {
	it.base.Rewind()
	var s S
	it.state = s
	it.skip()
}

func (it *SkipIterator[K, V, S]) skip() {
	for it.base.Valid() {
		v, err := it.base.Value()
		if err != nil {
			break
		}
		s, ok := it.f(it.state, it.base.Key(), v)
		if !ok {
			break
		}

		it.state = s
		it.base.Next()
	}
}

// Valid implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Valid() bool {
	return it.base.Valid()
}

// Key implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *SkipIterator[K, V, S]) Value() (value V, err error) {
	return it.base.Value()
}
