package iters

import "github.com/ehsanranjbar/nestutils"

// Collect collects all the values from the iterator and returns them as a slice.
func Collect[V any](it nestutils.ValueIterator[V]) ([]V, error) {
	items := []V{}
	for it.Rewind(); it.Valid(); it.Next() {
		v, err := it.Value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
