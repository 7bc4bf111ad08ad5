package iters

import "github.com/ehsanranjbar/nestutils"

// AggregateIterator is an iterator that aggregates the values of base iterator as it iterates without
// interfering with the base iterator.
type AggregateIterator[K, V, S any] struct {
	base  nestutils.Iterator[K, V]
	state S
	f     func(S, K, V) S
}

// Aggregate creates a new aggregate iterator.
func Aggregate[K, V, S any](base nestutils.Iterator[K, V], f func(S, K, V) S) *AggregateIterator[K, V, S] {
	return &AggregateIterator[K, V, S]{base: base, f: f}
}

// Close implements the Iterator interface.
func (it *AggregateIterator[K, V, S]) Close() {
	it.base.Close()
}

// Next implements the Iterator interface.
func (it *AggregateIterator[K, V, S]) Next() {
	it.base.Next()
	it.update()
}

func (it *AggregateIterator[K, V, S]) update() {
	if !it.base.Valid() {
		return
	}

	v, err := it.base.Value()
	if err != nil {
		return
	}
	it.state = it.f(it.state, it.base.Key(), v)
}

// Rewind implements the Iterator interface.
func (it *AggregateIterator[K, V, S]) Rewind() {
	it.base.Rewind()
	var s S
	it.state = s
	it.update()
}

// Valid implements the Iterator interface.
func (it *AggregateIterator[K, V, S]) Valid() bool {
	return it.base.Valid()
}

// Key implements the Iterator interface.
func (it *AggregateIterator[K, V, S]) Key() K {
	return it.base.Key()
}

// Value implements the Iterator interface.
func (it *AggregateIterator[K, V, S]) Value() (value V, err error) {
	return it.base.Value()
}

// Result returns the aggregated result.
func (it *AggregateIterator[K, V, S]) Result() S {
	return it.state
}
