package iters

import "github.com/ehsanranjbar/nestutils"

// Count returns an aggregate iterator that counts the number of items in the base iterator.
func Count[K, V any](it nestutils.Iterator[K, V]) *AggregateIterator[K, V, uint] {
	return Aggregate(it, func(count uint, _ K, _ V) uint {
		return count + 1
	})
}
