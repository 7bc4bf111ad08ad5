package iters

import (
	"fmt"

	"github.com/ehsanranjbar/nestutils"
)

// Path is the index path from the root sequence to a scalar.
type Path []int

// FlattenIterator is an iterator that lazily walks a nested sequence depth-first and yields its scalars.
// The key of every scalar is its Path.
type FlattenIterator struct {
	root  []any
	opts  nestutils.Options
	stack []flattenFrame
	value any
	err   error
	valid bool
}

type flattenFrame struct {
	items []any
	i     int
}

// Flatten creates a new flatten iterator. Only the depth limit and reflection options are honored.
func Flatten(seq nestutils.Sequence, opts ...nestutils.Option) *FlattenIterator {
	return &FlattenIterator{root: seq, opts: nestutils.NewOptions(opts...)}
}

// Close implements the Iterator interface.
func (it *FlattenIterator) Close() {
	it.stack = nil
	it.valid = false
}

// Next implements the Iterator interface.
func (it *FlattenIterator) Next() {
	if !it.valid {
		return
	}
	if it.err != nil {
		it.stack = it.stack[:0]
		it.valid = false
		return
	}

	it.stack[len(it.stack)-1].i++
	it.advance()
}

// Rewind implements the Iterator interface.
func (it *FlattenIterator) Rewind() {
	it.stack = append(it.stack[:0], flattenFrame{items: it.root})
	it.err = nil
	it.advance()
}

// advance moves to the first scalar at or after the current position.
func (it *FlattenIterator) advance() {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.i == len(top.items) {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.stack) > 0 {
				it.stack[len(it.stack)-1].i++
			}
			continue
		}

		v := top.items[top.i]
		if items, ok := it.opts.Unwrap(v); ok {
			if depth := len(it.stack) + 1; it.opts.Exceeds(depth) {
				it.value = nil
				it.err = fmt.Errorf("%w: depth %d, limit %d", nestutils.ErrMaxDepthExceeded, depth, it.opts.MaxDepth)
				it.valid = true
				return
			}
			it.stack = append(it.stack, flattenFrame{items: items})
			continue
		}

		it.value = v
		it.valid = true
		return
	}

	it.value = nil
	it.valid = false
}

// Valid implements the Iterator interface.
func (it *FlattenIterator) Valid() bool {
	return it.valid
}

// Key returns the path of the current scalar.
func (it *FlattenIterator) Key() Path {
	p := make(Path, len(it.stack))
	for i, f := range it.stack {
		p[i] = f.i
	}
	return p
}

// Depth returns the nesting depth of the current scalar, the root sequence being at depth 1.
func (it *FlattenIterator) Depth() int {
	return len(it.stack)
}

// Value implements the Iterator interface.
func (it *FlattenIterator) Value() (value any, err error) {
	if it.err != nil {
		return nil, it.err
	}
	return it.value, nil
}
