package nestutils

import (
	"fmt"
	"iter"
)

// frame is a list being walked and the index of its next element.
type frame struct {
	items []any
	i     int
}

// Flatten returns all the scalars of seq in depth-first left-to-right order.
//
// The walk uses an explicit stack, so the nesting depth is bounded by memory only.
func Flatten(seq Sequence) Sequence {
	out, _ := FlattenWith(seq)
	return out
}

// FlattenValue flattens v if it is a nested sequence and wraps it in a one-element sequence otherwise.
func FlattenValue(v any) Sequence {
	if items, ok := (Options{}).Unwrap(v); ok {
		return Flatten(items)
	}
	return Sequence{v}
}

// FlattenWith is like Flatten but configurable. It fails only when a depth limit is set and exceeded,
// in which case no partial result is returned.
func FlattenWith(seq Sequence, opts ...Option) (Sequence, error) {
	o := NewOptions(opts...)
	if o.Capacity <= 0 {
		o.Capacity = len(seq)
	}

	out := make(Sequence, 0, o.Capacity)
	err := walk(seq, o, func(v any) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// All returns an iterator over the scalars of seq in depth-first left-to-right order.
func All(seq Sequence) iter.Seq[any] {
	return func(yield func(any) bool) {
		_ = walk(seq, Options{}, yield)
	}
}

func walk(seq []any, o Options, yield func(any) bool) error {
	stack := []frame{{items: seq}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.items[top.i]
		top.i++
		if items, ok := o.Unwrap(v); ok {
			if depth := len(stack) + 1; o.Exceeds(depth) {
				return fmt.Errorf("%w: depth %d, limit %d", ErrMaxDepthExceeded, depth, o.MaxDepth)
			}
			stack = append(stack, frame{items: items})
			continue
		}

		if !yield(v) {
			return nil
		}
	}
	return nil
}
