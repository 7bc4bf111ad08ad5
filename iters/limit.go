package iters

import "github.com/ehsanranjbar/nestutils"

// LimitIterator is an iterator that limits the number of items when calling Next.
// The base iterator is not advanced past the last item it yields.
type LimitIterator[K, V any] struct {
	base nestutils.Iterator[K, V]
	n    int
	i    int
}

// Limit creates a new limit iterator.
func Limit[K, V any](base nestutils.Iterator[K, V], n int) *LimitIterator[K, V] {
	return &LimitIterator[K, V]{base: base, n: n}
}

// Close implements the Iterator interface.
func (it *LimitIterator[K, V]) Close() {
	it.base.Close()
}

// Next implements the Iterator interface.
func (it *LimitIterator[K, V]) Next() {
	if it.i >= it.n {
		return
	}
	it.i++
	if it.i < it.n {
		it.base.Next()
	}
}

// Rewind implements the Iterator interface.
func (it *LimitIterator[K, V]) Rewind() {
	it.base.Rewind()
	it.i = 0
}

// Valid implements the Iterator interface.
func (it *LimitIterator[K, V]) Valid() bool {
	return it.i < it.n && it.base.Valid()
}

// Key implements the Iterator interface.
func (it *LimitIterator[K, V]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *LimitIterator[K, V]) Value() (value V, err error) {
	return it.base.Value()
}
