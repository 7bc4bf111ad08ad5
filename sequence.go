// Package nestutils flattens arbitrarily nested sequences.
package nestutils

import (
	"errors"
	"reflect"
)

var (
	// ErrMaxDepthExceeded is returned when a nested sequence is deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// Sequence is an ordered list whose elements are either scalars or nested sequences.
type Sequence []any

// Options controls how nested sequences are recognized and walked.
type Options struct {
	// MaxDepth is the deepest list allowed, the root list being at depth 1. Zero or less means no limit.
	MaxDepth int
	// Reflection makes every slice and array count as a nested sequence, except byte slices and arrays.
	Reflection bool
	// Capacity is the initial capacity of the flattened result.
	Capacity int
}

// Option modifies Options.
type Option func(*Options)

// NewOptions applies opts over the zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxDepth limits the nesting depth.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithReflection treats any slice or array as a nested sequence.
func WithReflection() Option {
	return func(o *Options) {
		o.Reflection = true
	}
}

// WithCapacity preallocates the result of FlattenWith.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// Unwrap reports whether v is a nested sequence and returns its elements.
// Elements of reflected slices are copied into a new []any.
func (o Options) Unwrap(v any) ([]any, bool) {
	switch s := v.(type) {
	case Sequence:
		return s, true
	case []any:
		return s, true
	}
	if !o.Reflection || v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// Exceeds reports whether a list at the given depth is past the MaxDepth limit.
// The root list is depth 1 and a non-positive MaxDepth never exceeds.
func (o Options) Exceeds(depth int) bool {
	return o.MaxDepth > 0 && depth > o.MaxDepth
}

// Depth returns the maximum nesting depth of seq. A sequence without nested sequences has depth 1.
func Depth(seq Sequence) int {
	var (
		o       Options
		deepest = 1
		stack   = []frame{{items: seq}}
	)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.items[top.i]
		top.i++
		if items, ok := o.Unwrap(v); ok {
			stack = append(stack, frame{items: items})
			deepest = max(deepest, len(stack))
		}
	}
	return deepest
}

// IsFlat reports whether seq contains no nested sequences.
func IsFlat(seq Sequence) bool {
	var o Options
	for _, v := range seq {
		if _, ok := o.Unwrap(v); ok {
			return false
		}
	}
	return true
}
