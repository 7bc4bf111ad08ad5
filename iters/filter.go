package iters

import "github.com/ehsanranjbar/nestutils"

// FilterIterator is an iterator that filters the items based on a predicate.
// Items whose value fails to load are kept so that the error reaches the caller.
type FilterIterator[K, V any] struct {
	base nestutils.Iterator[K, V]
	f    func(K, V) bool
}

// Filter creates a new filter iterator.
func Filter[K, V any](base nestutils.Iterator[K, V], f func(K, V) bool) *FilterIterator[K, V] {
	return &FilterIterator[K, V]{base: base, f: f}
}

// Close implements the Iterator interface.
func (it *FilterIterator[K, V]) Close() {
	it.base.Close()
}

// Next implements the Iterator interface.
func (it *FilterIterator[K, V]) Next() {
	it.base.Next()
	it.findNext()
}

func (it *FilterIterator[K, V]) findNext() {
	for it.base.Valid() {
		v, err := it.base.Value()
		if err != nil || it.f(it.base.Key(), v) {
			return
		}
		it.base.Next()
	}
}

// Rewind implements the Iterator interface.
func (it *FilterIterator[K, V]) Rewind() {
	it.base.Rewind()
	it.findNext()
}

// Valid implements the Iterator interface.
func (it *FilterIterator[K, V]) Valid() bool {
	return it.base.Valid()
}

// Key implements the Iterator interface.
func (it *FilterIterator[K, V]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *FilterIterator[K, V]) Value() (value V, err error) {
	return it.base.Value()
}
